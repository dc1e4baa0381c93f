package canon

import (
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

// CanonicalSchemeChar returns the canonical form of a scheme character:
// letters are lower-cased, digits and "+-." are kept. It returns 0 for
// characters not allowed in schemes.
func CanonicalSchemeChar(ch byte) byte {
	switch {
	case 'a' <= ch && ch <= 'z', '0' <= ch && ch <= '9', ch == '+', ch == '-', ch == '.':
		return ch
	case 'A' <= ch && ch <= 'Z':
		return ch + 'a' - 'A'
	}
	return 0
}

// CanonicalizeScheme writes the scheme followed by ':'.
// An absent or empty scheme produces just ":" and is valid.
// Invalid characters are still written, escaped, and make the result false.
func CanonicalizeScheme[T constraints.Byteseq](spec T, scheme parse.Component, out *Buffer) (parse.Component, bool) {
	if scheme.Len <= 0 {
		outScheme := parse.Component{Begin: out.Len()}
		out.Push(':')
		return outScheme, true
	}

	begin := out.Len()
	success := true
	for i := scheme.Begin; i < scheme.End(); {
		ch := spec[i]
		var repl byte
		if i > scheme.Begin || isASCIIAlpha(ch) {
			repl = CanonicalSchemeChar(ch)
		}

		switch {
		case repl != 0:
			out.Push(repl)
		case ch == '%':
			// kept raw so that escaping is not applied twice
			success = false
			out.Push('%')
		default:
			success = false
			i, _ = appendUTF8EscapedChar(spec, i, scheme.End(), out)
			continue
		}
		i++
	}
	outScheme := parse.MakeRange(begin, out.Len())
	out.Push(':')
	return outScheme, success
}
