package storeinsights

import (
	"net/url"
	"strings"
)

// Target is a normalized storefront base URL: scheme and host only, no
// trailing path. A Target is immutable once created.
type Target struct {
	scheme string
	host   string
}

// NewTarget validates and normalizes a raw URL into a Target. A missing
// scheme defaults to https. Any path, query or fragment is discarded.
func NewTarget(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Target{}, Errorf(EINVALID, "target URL required")
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Target{}, Errorf(EINVALID, "invalid target URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Target{}, Errorf(EINVALID, "unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" || !strings.Contains(u.Host, ".") {
		return Target{}, Errorf(EINVALID, "target URL %q has no valid host", raw)
	}

	return Target{scheme: u.Scheme, host: u.Host}, nil
}

// String returns the normalized base URL, e.g. "https://example.myshopify.com".
func (t Target) String() string {
	return t.scheme + "://" + t.host
}

// Host returns the target's host.
func (t Target) Host() string {
	return t.host
}

// Domain returns the host without a leading "www." prefix.
func (t Target) Domain() string {
	return strings.TrimPrefix(t.host, "www.")
}

// URL joins a path onto the target's base URL. Absolute URLs are returned
// unchanged; protocol-relative and relative references are resolved against
// the base.
func (t Target) URL(ref string) string {
	if ref == "" {
		return t.String()
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if strings.HasPrefix(ref, "//") {
		return t.scheme + ":" + ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return t.String() + ref
}

// IsZero reports whether the target has not been initialized via NewTarget.
func (t Target) IsZero() bool {
	return t.host == ""
}
