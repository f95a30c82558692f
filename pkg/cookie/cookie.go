// Package cookie holds the cookie entity shared by the compiler, the
// decompiler and the in-memory jar, along with the attribute-line codec
// used by compiled cookie files.
package cookie

import (
	"time"
)

// Cookie represents a single browser cookie. Expires is kept as Unix
// seconds since that is how both on-disk formats carry it; a zero value
// means the cookie never expires.
type Cookie struct {
	Domain   string `json:"domain"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	Path     string `json:"path"`
	Expires  int64  `json:"expires,omitempty"`
	Secure   bool   `json:"secure"`
	HttpOnly bool   `json:"httpOnly"`
}

// ExpiresTime returns the expiry as a time.Time. The zero time is
// returned for cookies without an expiry.
func (c Cookie) ExpiresTime() time.Time {
	if c.Expires == 0 {
		return time.Time{}
	}
	return time.Unix(c.Expires, 0)
}

// Expired reports whether the cookie's expiry has passed at the given
// instant. Cookies without an expiry never expire.
func (c Cookie) Expired(now time.Time) bool {
	if c.Expires == 0 {
		return false
	}
	return c.ExpiresTime().Before(now)
}
