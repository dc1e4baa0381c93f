package canon

import (
	"unicode/utf8"

	"github.com/ghettovoice/urlcanon/internal/constraints"
)

// EncodeURIComponent escapes everything but ASCII letters, digits and "!()*-._~",
// the way JavaScript's encodeURIComponent does, except that '\'' is escaped too.
func EncodeURIComponent[T constraints.Byteseq](s T) string {
	var out Buffer
	out.buf = make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if isCharOfType(s[i], charComponent) {
			out.Push(s[i])
		} else {
			appendEscapedChar(&out, s[i])
		}
	}
	return out.String()
}

// DecodeURLEscapeSequences decodes "%XX" sequences of s and interprets the
// result as UTF-8. Invalid escapes are kept, bytes that are not valid UTF-8
// are taken as Latin-1 characters.
func DecodeURLEscapeSequences[T constraints.Byteseq](s T) string {
	raw := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			if v, ok := decodeEscaped(s, i, len(s)); ok {
				raw = append(raw, v)
				i += 2
				continue
			}
		}
		raw = append(raw, s[i])
	}

	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		if raw[i] < 0x80 {
			out = append(out, raw[i])
			i++
			continue
		}
		r, next, ok := readUTFChar(raw, i, len(raw))
		if ok {
			out = utf8.AppendRune(out, r)
		} else {
			for _, b := range raw[i:next] {
				out = utf8.AppendRune(out, rune(b))
			}
		}
		i = next
	}
	return string(out)
}
