package cookie

import "strings"

// Policy controls which cookies a jar keeps when it is applied.
type Policy struct {
	// BlockAll drops every cookie in the jar.
	BlockAll bool
	// BlockThirdParty drops cookies whose domain is third-party
	// relative to FirstParty.
	BlockThirdParty bool
	// FirstParty is the site the third-party check is made against.
	FirstParty string
}

// IsThirdParty reports whether a cookie domain is third-party relative
// to the domain of the current request. A cookie is first-party when
// the domains match exactly or the request domain is a subdomain of
// the cookie domain.
func IsThirdParty(cookieDomain, requestDomain string) bool {
	return cookieDomain != requestDomain && !strings.HasSuffix(requestDomain, "."+cookieDomain)
}

// ApplyPolicy removes the cookies a policy forbids and returns how
// many were dropped. A BlockThirdParty policy without a FirstParty
// domain removes nothing.
func (j *Jar) ApplyPolicy(p Policy) int {
	j.Lock()
	defer j.Unlock()

	var removed int

	switch {
	case p.BlockAll:
		for _, names := range j.domains {
			removed += len(names)
		}
		j.domains = make(map[string]map[string]Cookie)

	case p.BlockThirdParty && p.FirstParty != "":
		for domain, names := range j.domains {
			if IsThirdParty(domain, p.FirstParty) {
				removed += len(names)
				delete(j.domains, domain)
			}
		}
	}

	return removed
}
