package canon

import (
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

// CanonicalizeStandardURL writes a standard URL parsed with [parse.ParseStandardURL].
// The URL is invalid without a non-empty host, but the output is written anyway.
// Query and ref problems don't affect validity.
func CanonicalizeStandardURL[T constraints.Byteseq](spec T, parsed parse.Parsed, opts *Options, out *Buffer) (parse.Parsed, bool) {
	var res parse.Parsed

	var success bool
	res.Scheme, success = CanonicalizeScheme(spec, parsed.Scheme, out)

	haveAuthority := parsed.Username.IsValid() || parsed.Password.IsValid() ||
		parsed.Host.IsNonEmpty() || parsed.Port.IsValid()
	if haveAuthority {
		if parsed.Scheme.IsValid() {
			out.AppendString("//")
		}

		var ok bool
		res.Username, res.Password, ok = CanonicalizeUserInfo(spec, parsed.Username, parsed.Password, out)
		success = success && ok
		res.Host, ok = CanonicalizeHost(spec, parsed.Host, opts.idna(), out)
		success = success && ok && parsed.Host.IsNonEmpty()

		defaultPort := DefaultPortForScheme(string(parse.Substr(out.Bytes(), res.Scheme)))
		res.Port, ok = CanonicalizePort(spec, parsed.Port, defaultPort, out)
		success = success && ok
	} else {
		res.Username.Reset()
		res.Password.Reset()
		res.Host.Reset()
		res.Port.Reset()
		success = false
	}

	switch {
	case parsed.Path.IsValid():
		var ok bool
		res.Path, ok = CanonicalizePath(spec, parsed.Path, out)
		success = success && ok
	case haveAuthority || parsed.Query.IsValid() || parsed.Ref.IsValid():
		// the path is only left out when nothing follows it
		res.Path = parse.Component{Begin: out.Len(), Len: 1}
		out.Push('/')
	default:
		res.Path.Reset()
	}

	res.Query = CanonicalizeQuery(spec, parsed.Query, opts.charset(), out)
	res.Ref = CanonicalizeRef(spec, parsed.Ref, out)
	return res, success
}
