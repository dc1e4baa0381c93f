package canon

import (
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

// CanonicalizeQuery writes "?query". A present query always writes the '?',
// even when it is empty.
//
// ASCII input is only escaped. Other input is converted with conv, when
// given, or encoded as UTF-8 otherwise.
func CanonicalizeQuery[T constraints.Byteseq](spec T, query parse.Component, conv CharsetConverter, out *Buffer) parse.Component {
	if !query.IsValid() {
		return parse.Absent()
	}

	out.Push('?')
	begin := out.Len()
	switch {
	case isAllASCII(spec, query):
		appendRaw8BitQueryString(spec, query.Begin, query.End(), out)
	case conv != nil:
		// broken UTF-8 turns into U+FFFD which is fine for queries
		units, _ := convertUTF8ToUTF16(spec, query.Begin, query.End())
		converted := conv.ConvertFromUTF16(units)
		appendRaw8BitQueryString(converted, 0, len(converted), out)
	default:
		appendStringOfType(spec, query, charQuery, out)
	}
	return parse.MakeRange(begin, out.Len())
}

func isAllASCII[T constraints.Byteseq](spec T, comp parse.Component) bool {
	for i := comp.Begin; i < comp.End(); i++ {
		if spec[i] >= 0x80 {
			return false
		}
	}
	return true
}

func appendRaw8BitQueryString[T constraints.Byteseq](spec T, begin, end int, out *Buffer) {
	for i := begin; i < end; i++ {
		if isCharOfType(spec[i], charQuery) {
			out.Push(spec[i])
		} else {
			appendEscapedChar(out, spec[i])
		}
	}
}
