package alcookie

import (
	"fmt"
	"testing"

	"github.com/TypeDummying/AIuminum/pkg/cookie"
)

func BenchmarkDecode(b *testing.B) {
	key := zeroKey()

	cookies := make([]cookie.Cookie, 1000)
	for i := range cookies {
		cookies[i] = cookie.Cookie{
			Domain:   fmt.Sprintf("example%d.com", i%10),
			Name:     fmt.Sprintf("cookie_%d", i),
			Value:    "4a3b2c1d4a3b2c1d4a3b2c1d4a3b2c1d",
			Path:     "/",
			Expires:  1735689600,
			Secure:   i%2 == 0,
			HttpOnly: i%3 == 0,
		}
	}
	data := encodeArchive(key, cookies...)

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(data, key); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
}

func BenchmarkCrypt(b *testing.B) {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	payload := make([]byte, 1<<16)

	b.SetBytes(int64(len(payload)))
	b.ReportAllocs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Crypt(payload, key); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
}
