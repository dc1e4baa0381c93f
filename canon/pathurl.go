package canon

import (
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

// canonicalizeOpaquePath copies path escaping only controls and bytes
// outside ASCII. Bytes are escaped one by one like in hierarchical paths,
// so broken UTF-8 never makes the path invalid.
func canonicalizeOpaquePath[T constraints.Byteseq](spec T, path parse.Component, out *Buffer) parse.Component {
	if !path.IsValid() {
		return parse.Absent()
	}

	begin := out.Len()
	for i := path.Begin; i < path.End(); i++ {
		if ch := spec[i]; ch < 0x20 || ch >= 0x80 {
			appendEscapedChar(out, ch)
		} else {
			out.Push(ch)
		}
	}
	return parse.MakeRange(begin, out.Len())
}

// CanonicalizePathURL writes an URL parsed with [parse.ParsePathURL].
// The path keeps all printable ASCII characters, so "javascript:alert('x')"
// survives intact. The query and ref are written as in standard URLs and
// never make the URL invalid.
func CanonicalizePathURL[T constraints.Byteseq](spec T, parsed parse.Parsed, out *Buffer) (parse.Parsed, bool) {
	res := parse.NewParsed()

	var success bool
	res.Scheme, success = CanonicalizeScheme(spec, parsed.Scheme, out)
	res.Path = canonicalizeOpaquePath(spec, parsed.Path, out)
	res.Query = CanonicalizeQuery(spec, parsed.Query, nil, out)
	res.Ref = CanonicalizeRef(spec, parsed.Ref, out)
	return res, success
}
