package app

import (
	"net/url"
	"testing"
)

func TestBaseOrigin(t *testing.T) {
	tests := []struct {
		name     string
		needs    bool
		page     string
		port     int
		policy   PortPolicy
		expected string
	}{
		{"not needed", false, "http://localhost:8080", 3000, PortImplicitDefault, ""},
		{"same port", true, "http://localhost:3000/__/", 3000, PortImplicitDefault, ""},
		{"different port", true, "http://localhost:8080/__/", 3000, PortImplicitDefault, "http://localhost:8080"},
		{"implicit http default matches 80", true, "http://example.com/", 80, PortImplicitDefault, ""},
		{"implicit https default matches 443", true, "https://example.com/", 443, PortImplicitDefault, ""},
		{"implicit default mismatch", true, "https://example.com/", 3000, PortImplicitDefault, "https://example.com"},
		{"explicit only never matches missing port", true, "http://example.com/", 80, PortExplicitOnly, "http://example.com"},
		{"explicit only compares explicit port", true, "http://example.com:3000/", 3000, PortExplicitOnly, ""},
		{"explicit default port dropped from origin", true, "http://example.com:80/", 3000, PortImplicitDefault, "http://example.com"},
		{"host lowercased", true, "HTTP://LocalHost:8080/__/", 3000, PortImplicitDefault, "http://localhost:8080"},
		{"garbage page", true, "::not a url", 3000, PortImplicitDefault, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseOrigin(tt.needs, tt.page, tt.port, tt.policy); got != tt.expected {
				t.Errorf("BaseOrigin() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestOrigin_IPv6(t *testing.T) {
	u, err := url.Parse("http://[::1]:8080/x")
	if err != nil {
		t.Fatal(err)
	}
	if got := Origin(u); got != "http://[::1]:8080" {
		t.Errorf("Origin() = %q", got)
	}
}
