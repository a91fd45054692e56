package app

import (
	"net/url"
	"strings"
)

// ResolveURL turns what the user typed into an absolute URL.
//
// With a base origin the input is resolved against it, so "/path" and "path"
// land on the base while a fully-qualified input replaces it. Without one, an
// input that already carries an http(s) scheme is returned as-is and anything
// else is prefixed with "http://". If resolution against the base fails the
// scheme rules apply instead. Surrounding whitespace is ignored on every path.
func ResolveURL(raw, baseOrigin string) string {
	raw = strings.TrimSpace(raw)
	if baseOrigin != "" {
		if resolved, ok := resolveAgainst(raw, baseOrigin); ok {
			return resolved
		}
	}
	if hasHTTPScheme(raw) {
		return raw
	}
	return HTTPScheme + raw
}

func resolveAgainst(raw, baseOrigin string) (string, bool) {
	base, err := url.Parse(baseOrigin)
	if err != nil || !base.IsAbs() || base.Host == "" {
		return "", false
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}

// hasHTTPScheme reports whether s starts with http:// or https://, ignoring case.
func hasHTTPScheme(s string) bool {
	for _, p := range []string{HTTPScheme, HTTPSScheme} {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return true
		}
	}
	return false
}
