package cookie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsThirdParty(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		cookieDomain  string
		requestDomain string
		thirdParty    bool
	}{
		{"example.com", "example.com", false},
		{"example.com", "sub.example.com", false},
		{"example.com", "a.b.example.com", false},
		{"tracker.net", "example.com", true},
		// Suffix matches must respect label boundaries.
		{"ample.com", "example.com", true},
		// A parent site reading a subdomain's cookie is third-party.
		{"sub.example.com", "example.com", true},
	}

	for _, c := range cases {
		got := IsThirdParty(c.cookieDomain, c.requestDomain)
		assert.Equal(c.thirdParty, got, "cookie=%s request=%s", c.cookieDomain, c.requestDomain)
	}
}

func TestApplyPolicy(t *testing.T) {
	var (
		jar    = NewJar()
		assert = assert.New(t)
	)

	seed := []Cookie{
		{Domain: "first.com", Name: "sid"},
		{Domain: "first.com", Name: "theme"},
		{Domain: "sub.first.com", Name: "token"},
		{Domain: "tracker.net", Name: "uid"},
		{Domain: "ads.example", Name: "seen"},
	}
	for _, c := range seed {
		assert.NoError(jar.Set(c))
	}

	t.Run("AcceptAll", func(t *testing.T) {
		removed := jar.ApplyPolicy(Policy{})
		assert.Equal(0, removed)
		assert.Equal(5, jar.Len())
	})

	t.Run("NoFirstParty", func(t *testing.T) {
		removed := jar.ApplyPolicy(Policy{BlockThirdParty: true})
		assert.Equal(0, removed)
		assert.Equal(5, jar.Len())
	})

	t.Run("BlockThirdParty", func(t *testing.T) {
		removed := jar.ApplyPolicy(Policy{BlockThirdParty: true, FirstParty: "sub.first.com"})
		assert.Equal(2, removed)
		assert.Equal(3, jar.Len())

		// first.com survives as the parent of the first-party site.
		_, ok := jar.Get("first.com", "sid")
		assert.True(ok)
		_, ok = jar.Get("tracker.net", "uid")
		assert.False(ok)
	})

	t.Run("BlockAll", func(t *testing.T) {
		removed := jar.ApplyPolicy(Policy{BlockAll: true})
		assert.Equal(3, removed)
		assert.Equal(0, jar.Len())
	})
}
