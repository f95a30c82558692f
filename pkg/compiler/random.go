package compiler

import (
	"fmt"
	"time"

	"github.com/TypeDummying/AIuminum/pkg/cookie"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandom appends n synthetic cookies to the pending set, spread
// over ten example domains with a 24 hour expiry. Useful for exercising
// the compile pipeline without real browser data.
func (c *Compiler) GenerateRandom(n int) {
	c.Lock()
	defer c.Unlock()

	expiry := time.Now().Add(24 * time.Hour).Unix()
	for i := 0; i < n; i++ {
		c.cookies = append(c.cookies, cookie.Cookie{
			Name:     fmt.Sprintf("cookie_%d", i),
			Value:    c.randString(32),
			Domain:   fmt.Sprintf("example%d.com", i%10),
			Path:     "/",
			Expires:  expiry,
			Secure:   i%2 == 0,
			HttpOnly: i%3 == 0,
		})
	}
}

// randString returns a random alphanumeric string of the given length.
// Callers must hold the compiler lock.
func (c *Compiler) randString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[c.rnd.Intn(len(charset))]
	}
	return string(b)
}
