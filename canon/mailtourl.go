package canon

import (
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

// CanonicalizeMailtoURL writes an URL parsed with [parse.ParseMailtoURL].
// Only the scheme, path and query survive; the query is always UTF-8.
func CanonicalizeMailtoURL[T constraints.Byteseq](spec T, parsed parse.Parsed, out *Buffer) (parse.Parsed, bool) {
	res := parse.NewParsed()

	res.Scheme = parse.Component{Begin: out.Len(), Len: 6}
	out.AppendString("mailto:")

	res.Path = canonicalizeOpaquePath(spec, parsed.Path, out)
	res.Query = CanonicalizeQuery(spec, parsed.Query, nil, out)
	return res, true
}
