package app

import (
	"net/url"
	"strconv"
	"strings"
)

// PortPolicy controls how a page URL without an explicit port is compared to
// the expected port.
type PortPolicy int

const (
	// PortImplicitDefault treats a missing port as the scheme default (80 for
	// http, 443 for https) before comparing.
	PortImplicitDefault PortPolicy = iota

	// PortExplicitOnly compares only an explicit port, so a page URL without
	// one never matches the expected port.
	PortExplicitOnly
)

// BaseOrigin returns the origin user-entered paths must be prefixed with, or
// "" when the page is served from the expected port. The page location is
// only consulted while the studio is waiting for a URL.
func BaseOrigin(needsURL bool, pageURL string, expectedPort int, policy PortPolicy) string {
	if !needsURL {
		return ""
	}
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return ""
	}
	port, ok := effectivePort(u, policy)
	if ok && port == expectedPort {
		return ""
	}
	return Origin(u)
}

// Origin renders scheme://host[:port] with scheme and host lowercased,
// dropping the port when it is the scheme default.
func Origin(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if p := u.Port(); p != "" && p != defaultPort(scheme) {
		host += ":" + p
	}
	return scheme + "://" + host
}

func effectivePort(u *url.URL, policy PortPolicy) (int, bool) {
	p := u.Port()
	if p == "" {
		if policy == PortExplicitOnly {
			return 0, false
		}
		p = defaultPort(strings.ToLower(u.Scheme))
		if p == "" {
			return 0, false
		}
	}
	n, err := strconv.Atoi(p)
	if err != nil {
		return 0, false
	}
	return n, true
}

func defaultPort(scheme string) string {
	switch scheme {
	case "http", "ws":
		return "80"
	case "https", "wss":
		return "443"
	}
	return ""
}
