package seo

import "strings"

// BaseURLProvider supplies the site origin used to absolutize paths. It is
// injected rather than read from ambient state so generation stays
// deterministic; request handlers pass the request origin, everything else
// passes the configured fallback.
type BaseURLProvider func() string

// StaticBase returns a provider for a fixed origin. A trailing slash is
// trimmed so concatenation with an absolute path never doubles it.
func StaticBase(origin string) BaseURLProvider {
	origin = strings.TrimSuffix(origin, "/")
	return func() string { return origin }
}

// Resolver turns site-relative paths into canonical absolute URLs.
type Resolver struct {
	base BaseURLProvider
}

// NewResolver builds a resolver around the given origin provider.
func NewResolver(base BaseURLProvider) *Resolver {
	return &Resolver{base: base}
}

// Resolve returns path unchanged when it is already absolute, otherwise
// prefixes the provider's origin.
func (r *Resolver) Resolve(path string) string {
	if strings.HasPrefix(path, "http") {
		return path
	}
	return r.base() + path
}

// BaseURL exposes the current origin, for callers that embed it directly
// (feed channel links, sitemap loc prefixes).
func (r *Resolver) BaseURL() string {
	return r.base()
}
