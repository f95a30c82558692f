package cookie

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	// MaxCookieSize is the maximum combined size of a cookie's name and
	// value in bytes.
	MaxCookieSize = 4096
	// MaxCookiesPerDomain caps how many cookies a single domain may hold.
	MaxCookiesPerDomain = 50
)

// Jar is an in-memory cookie store keyed by domain and cookie name.
// All operations are safe for concurrent use.
type Jar struct {
	sync.Mutex

	domains map[string]map[string]Cookie
}

// NewJar returns an empty cookie jar.
func NewJar() *Jar {
	return &Jar{
		domains: make(map[string]map[string]Cookie),
	}
}

// Set stores a cookie under its domain. It rejects cookies whose
// name+value exceed MaxCookieSize and refuses to grow a domain past
// MaxCookiesPerDomain. Overwriting an existing cookie never counts
// against the per-domain cap.
func (j *Jar) Set(c Cookie) error {
	j.Lock()
	defer j.Unlock()

	if len(c.Name)+len(c.Value) > MaxCookieSize {
		return fmt.Errorf("%w: cookie %q for domain %q", ErrCookieTooLarge, c.Name, c.Domain)
	}

	names, ok := j.domains[c.Domain]
	if !ok {
		names = make(map[string]Cookie)
		j.domains[c.Domain] = names
	}

	if _, exists := names[c.Name]; !exists && len(names) >= MaxCookiesPerDomain {
		return fmt.Errorf("%w: domain %q", ErrDomainFull, c.Domain)
	}

	names[c.Name] = c

	return nil
}

// Get returns the cookie stored for the given domain and name. Expired
// cookies are removed lazily and reported as missing.
func (j *Jar) Get(domain, name string) (Cookie, bool) {
	j.Lock()
	defer j.Unlock()

	names, ok := j.domains[domain]
	if !ok {
		return Cookie{}, false
	}

	c, ok := names[name]
	if !ok {
		return Cookie{}, false
	}

	if c.Expired(time.Now()) {
		delete(names, name)
		return Cookie{}, false
	}

	return c, true
}

// Delete removes a single cookie from the jar.
func (j *Jar) Delete(domain, name string) {
	j.Lock()
	defer j.Unlock()

	if names, ok := j.domains[domain]; ok {
		delete(names, name)
	}
}

// Clear removes every cookie from the jar.
func (j *Jar) Clear() {
	j.Lock()
	defer j.Unlock()

	j.domains = make(map[string]map[string]Cookie)
}

// ClearDomain removes all cookies stored for one domain.
func (j *Jar) ClearDomain(domain string) {
	j.Lock()
	defer j.Unlock()

	delete(j.domains, domain)
}

// Len returns the total number of cookies in the jar.
func (j *Jar) Len() int {
	j.Lock()
	defer j.Unlock()

	var n int
	for _, names := range j.domains {
		n += len(names)
	}
	return n
}

// ForURL returns the cookies relevant to the given URL: the host and
// every parent domain are checked, the cookie path must prefix the
// request path and expired cookies are skipped. Results are ordered by
// the domain walk, then by cookie name.
func (j *Jar) ForURL(rawURL string) ([]Cookie, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing url %q: %w", rawURL, err)
	}

	var (
		domain = u.Hostname()
		path   = u.Path
		now    = time.Now()
	)

	// Walk from the full host up to the registrable suffix, e.g.
	// a.b.example.com -> b.example.com -> example.com -> com.
	check := []string{domain}
	for strings.Contains(domain, ".") {
		domain = domain[strings.Index(domain, ".")+1:]
		check = append(check, domain)
	}

	j.Lock()
	defer j.Unlock()

	var relevant []Cookie
	for _, d := range check {
		names, ok := j.domains[d]
		if !ok {
			continue
		}

		keys := make([]string, 0, len(names))
		for name := range names {
			keys = append(keys, name)
		}
		sort.Strings(keys)

		for _, name := range keys {
			c := names[name]
			if c.Expired(now) {
				continue
			}
			if c.Path == "/" || strings.HasPrefix(path, c.Path) {
				relevant = append(relevant, c)
			}
		}
	}

	return relevant, nil
}

// CleanupExpired removes all expired cookies and drops domains left
// empty. It returns the number of cookies removed.
func (j *Jar) CleanupExpired() int {
	j.Lock()
	defer j.Unlock()

	var (
		now     = time.Now()
		removed int
	)

	for domain, names := range j.domains {
		for name, c := range names {
			if c.Expired(now) {
				delete(names, name)
				removed++
			}
		}
		if len(names) == 0 {
			delete(j.domains, domain)
		}
	}

	return removed
}

// Stats summarises the current state of the jar.
type Stats struct {
	TotalCookies        int `json:"total_cookies"`
	TotalDomains        int `json:"total_domains"`
	AvgCookiesPerDomain int `json:"avg_cookies_per_domain"`
}

// Stats returns cookie counts across the jar.
func (j *Jar) Stats() Stats {
	j.Lock()
	defer j.Unlock()

	var total int
	for _, names := range j.domains {
		total += len(names)
	}

	s := Stats{
		TotalCookies: total,
		TotalDomains: len(j.domains),
	}
	if len(j.domains) > 0 {
		s.AvgCookiesPerDomain = total / len(j.domains)
	}

	return s
}

// Export writes the jar as indented JSON, keyed by domain and cookie
// name, for storage or transmission.
func (j *Jar) Export(w io.Writer) error {
	j.Lock()
	defer j.Unlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(j.domains)
}

// Import merges previously exported cookies into the jar.
func (j *Jar) Import(r io.Reader) error {
	var loaded map[string]map[string]Cookie
	if err := json.NewDecoder(r).Decode(&loaded); err != nil {
		return fmt.Errorf("decoding cookie export: %w", err)
	}

	j.Lock()
	defer j.Unlock()

	for domain, names := range loaded {
		if _, ok := j.domains[domain]; !ok {
			j.domains[domain] = make(map[string]Cookie, len(names))
		}
		for name, c := range names {
			j.domains[domain][name] = c
		}
	}

	return nil
}

// WriteNetscape writes the jar in the Netscape/curl cookie file format:
// one tab-separated line per cookie under a fixed comment header.
func (j *Jar) WriteNetscape(w io.Writer) error {
	j.Lock()
	defer j.Unlock()

	if _, err := io.WriteString(w, "# Netscape HTTP Cookie File\n"); err != nil {
		return err
	}

	domains := make([]string, 0, len(j.domains))
	for domain := range j.domains {
		domains = append(domains, domain)
	}
	sort.Strings(domains)

	for _, domain := range domains {
		names := j.domains[domain]

		keys := make([]string, 0, len(names))
		for name := range names {
			keys = append(keys, name)
		}
		sort.Strings(keys)

		for _, name := range keys {
			c := names[name]
			line := fmt.Sprintf("%s\tTRUE\t%s\t%s\t%d\t%s\t%s\n",
				c.Domain, c.Path, netscapeBool(c.Secure), c.Expires, c.Name, c.Value)
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
	}

	return nil
}

func netscapeBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
