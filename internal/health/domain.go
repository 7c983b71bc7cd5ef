package health

import (
	"net/url"
	"strings"
)

// DomainClass is the authority tier of a source host.
type DomainClass string

const (
	DomainAuthoritative DomainClass = "authoritative"
	DomainCommunity     DomainClass = "community"
	DomainOther         DomainClass = "other"
)

// Static allow-lists. Classification is string matching only; hosts are
// never contacted.
var (
	authoritativeDomains = map[string]bool{
		"w3.org":                true,
		"ietf.org":              true,
		"rfc-editor.org":        true,
		"python.org":            true,
		"developer.mozilla.org": true,
	}

	authoritativeSuffixes = []string{
		".gov",
		".edu",
		".ac.uk",
	}

	communityDomains = map[string]bool{
		"medium.com":           true,
		"dev.to":               true,
		"substack.com":         true,
		"wordpress.com":        true,
		"blogspot.com":         true,
		"stackoverflow.com":    true,
		"reddit.com":           true,
		"news.ycombinator.com": true,
	}
)

// ClassifyDomain classifies a bare host name (no scheme, no path, no
// leading "www.").
func ClassifyDomain(host string) DomainClass {
	if authoritativeDomains[host] {
		return DomainAuthoritative
	}
	for _, suffix := range authoritativeSuffixes {
		if strings.HasSuffix(host, suffix) {
			return DomainAuthoritative
		}
	}
	if communityDomains[host] {
		return DomainCommunity
	}
	return DomainOther
}

// URLHost returns the network location of rawURL with a leading "www."
// removed. Unparsable URLs yield "".
func URLHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}
