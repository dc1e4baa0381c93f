package uri

import (
	"github.com/ghettovoice/urlcanon/internal/util"
	"github.com/ghettovoice/urlcanon/parse"
)

// Origin returns "scheme://host[:port]/" of a valid standard URL.
// Credentials, path, query and fragment are dropped.
// Other URLs have no origin and produce the empty URL.
func (u URL) Origin() URL {
	if !u.valid || !u.IsStandard() {
		return URL{opts: u.opts}
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(u.Scheme())
	sb.WriteString("://")
	sb.WriteString(u.Host())
	if u.HasPort() {
		sb.WriteByte(':')
		sb.WriteString(u.Port())
	}
	sb.WriteByte('/')
	return New(sb.String(), u.opts)
}

// WithEmptyPath returns the URL with the path "/" and without query and fragment.
// Invalid and non-standard URLs produce the empty URL.
func (u URL) WithEmptyPath() URL {
	if !u.valid || !u.IsStandard() {
		return URL{opts: u.opts}
	}

	path := u.parsed.Path
	if path.Len <= 0 {
		return u
	}
	res := u
	res.spec = u.spec[:path.Begin] + "/"
	res.parsed.Path.Len = 1
	res.parsed.Query.Reset()
	res.parsed.Ref.Reset()
	return res
}

// PathForRequest returns the path and the query, the part of the URL sent
// in an HTTP request line. It is empty for URLs without a path.
func (u URL) PathForRequest() string {
	path := u.component(parse.Path)
	if !path.IsValid() {
		return ""
	}
	if ref := u.component(parse.Ref); ref.IsValid() {
		return u.spec[path.Begin : ref.Begin-1]
	}
	return u.spec[path.Begin:]
}

// DomainIs reports whether the host of a valid URL is domain or one of its
// subdomains, ignoring ASCII case. The domain is expected in lower case.
//
// A trailing dot of the host is ignored unless domain ends with a dot too,
// so "www.google.com." is in "google.com" and in "google.com.", while
// "google.com" is not in "google.com.".
func (u URL) DomainIs(domain string) bool {
	host := u.component(parse.Host)
	if !u.valid || !host.IsNonEmpty() || domain == "" {
		return false
	}

	h := parse.Substr(u.spec, host)
	if h[len(h)-1] == '.' && domain[len(domain)-1] != '.' {
		h = h[:len(h)-1]
	}
	if len(h) < len(domain) {
		return false
	}

	suffix := h[len(h)-len(domain):]
	if !util.EqFold(suffix, domain) {
		return false
	}
	// "www.iamnotgoogle.com" is not in "google.com"
	if domain[0] != '.' && len(h) > len(domain) && h[len(h)-len(domain)-1] != '.' {
		return false
	}
	return true
}
