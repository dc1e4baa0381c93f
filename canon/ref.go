package canon

import (
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

// CanonicalizeRef writes "#ref". NULs are dropped, control characters escaped.
// Non-ASCII characters are kept as UTF-8, with invalid sequences replaced by U+FFFD.
// The ref is the only component of the output that may contain non-ASCII bytes.
func CanonicalizeRef[T constraints.Byteseq](spec T, ref parse.Component, out *Buffer) parse.Component {
	if !ref.IsValid() {
		return parse.Absent()
	}

	out.Push('#')
	begin := out.Len()
	for i := ref.Begin; i < ref.End(); {
		ch := spec[i]
		switch {
		case ch == 0:
		case ch < 0x20:
			appendEscapedChar(out, ch)
		case ch < 0x80:
			out.Push(ch)
		default:
			r, next, _ := readUTFChar(spec, i, ref.End())
			appendUTF8Value(out, r)
			i = next
			continue
		}
		i++
	}
	return parse.MakeRange(begin, out.Len())
}
