package canon

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

type charType uint8

const (
	charQuery charType = 1 << iota
	charUserinfo
	charIPv4
	charHex
	charDec
	charOct
	charComponent
)

// sharedCharTypes classifies the ASCII range; everything above 0x7f is 0.
var sharedCharTypes = func() (t [256]charType) {
	for ch := 0x21; ch < 0x7f; ch++ {
		t[ch] |= charQuery
	}
	for _, ch := range []byte{'"', '#', '\'', '<', '>'} {
		t[ch] &^= charQuery
	}

	for _, ch := range []byte("!$%&()*+,-._~") {
		t[ch] |= charUserinfo
	}
	for _, ch := range []byte("!()*-._~") {
		t[ch] |= charComponent
	}
	for ch := '0'; ch <= '9'; ch++ {
		t[ch] |= charUserinfo | charComponent | charIPv4 | charHex | charDec
		if ch <= '7' {
			t[ch] |= charOct
		}
	}
	for ch := 'a'; ch <= 'z'; ch++ {
		t[ch] |= charUserinfo | charComponent
		t[ch-'a'+'A'] |= charUserinfo | charComponent
		if ch <= 'f' {
			t[ch] |= charIPv4 | charHex
			t[ch-'a'+'A'] |= charIPv4 | charHex
		}
	}
	t['.'] |= charIPv4
	t['x'] |= charIPv4
	t['X'] |= charIPv4
	return t
}()

func isCharOfType(ch byte, typ charType) bool { return sharedCharTypes[ch]&typ != 0 }

func isHexChar(ch byte) bool { return isCharOfType(ch, charHex) }

func isIPv4Char(ch byte) bool { return isCharOfType(ch, charIPv4) }

func isASCIIAlpha(ch byte) bool { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }

const upperhex = "0123456789ABCDEF"

func hexValue(ch byte) byte {
	switch {
	case '0' <= ch && ch <= '9':
		return ch - '0'
	case 'a' <= ch && ch <= 'f':
		return ch - 'a' + 10
	case 'A' <= ch && ch <= 'F':
		return ch - 'A' + 10
	}
	return 0
}

func appendEscapedChar(out *Buffer, ch byte) {
	out.Push('%')
	out.Push(upperhex[ch>>4])
	out.Push(upperhex[ch&15])
}

// decodeEscaped decodes the "%XX" sequence starting at spec[i].
func decodeEscaped[T constraints.Byteseq](spec T, i, end int) (byte, bool) {
	if i+3 > end || !isHexChar(spec[i+1]) || !isHexChar(spec[i+2]) {
		return 0, false
	}
	return hexValue(spec[i+1])<<4 | hexValue(spec[i+2]), true
}

// isValidCodepoint excludes surrogates, noncharacters and values above U+10FFFF.
func isValidCodepoint(r rune) bool {
	if r < 0xD800 {
		return true
	}
	if r <= 0xDFFF || r > utf8.MaxRune {
		return false
	}
	if r >= 0xFDD0 && r <= 0xFDEF {
		return false
	}
	return r&0xFFFE != 0xFFFE
}

// readUTFChar decodes one character at spec[i]. On failure it returns
// [utf8.RuneError] and consumes the bytes of the broken sequence.
func readUTFChar[T constraints.Byteseq](spec T, i, end int) (r rune, next int, ok bool) {
	var size int
	switch s := any(spec).(type) {
	case string:
		r, size = utf8.DecodeRuneInString(s[i:end])
	case []byte:
		r, size = utf8.DecodeRune(s[i:end])
	default:
		r, size = utf8.DecodeRuneInString(string(spec[i:end]))
	}
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, i + max(size, 1), false
	}
	if !isValidCodepoint(r) {
		return utf8.RuneError, i + size, false
	}
	return r, i + size, true
}

func appendUTF8Value(out *Buffer, r rune) {
	out.buf = utf8.AppendRune(out.buf, r)
}

func appendUTF8EscapedValue(out *Buffer, r rune) {
	var b [utf8.UTFMax]byte
	n := utf8.EncodeRune(b[:], r)
	for _, ch := range b[:n] {
		appendEscapedChar(out, ch)
	}
}

// appendUTF8EscapedChar escapes the character at spec[i] as UTF-8 and
// returns the offset of the next character.
func appendUTF8EscapedChar[T constraints.Byteseq](spec T, i, end int, out *Buffer) (int, bool) {
	r, next, ok := readUTFChar(spec, i, end)
	appendUTF8EscapedValue(out, r)
	return next, ok
}

// appendStringOfType copies comp escaping every byte that is not of type typ.
// Non-ASCII characters are escaped as UTF-8.
func appendStringOfType[T constraints.Byteseq](spec T, comp parse.Component, typ charType, out *Buffer) bool {
	success := true
	for i := comp.Begin; i < comp.End(); {
		ch := spec[i]
		if ch >= 0x80 {
			var ok bool
			i, ok = appendUTF8EscapedChar(spec, i, comp.End(), out)
			success = success && ok
			continue
		}
		if isCharOfType(ch, typ) {
			out.Push(ch)
		} else {
			appendEscapedChar(out, ch)
		}
		i++
	}
	return success
}

// appendInvalidNarrowString writes spec[begin:end] for display after an error:
// spaces and controls are escaped, the rest is copied.
func appendInvalidNarrowString[T constraints.Byteseq](spec T, begin, end int, out *Buffer) {
	for i := begin; i < end; {
		ch := spec[i]
		switch {
		case ch >= 0x80:
			i, _ = appendUTF8EscapedChar(spec, i, end, out)
			continue
		case ch <= ' ' || ch == 0x7f:
			appendEscapedChar(out, ch)
		default:
			out.Push(ch)
		}
		i++
	}
}

// convertUTF8ToUTF16 converts spec[begin:end], replacing invalid sequences with U+FFFD.
func convertUTF8ToUTF16[T constraints.Byteseq](spec T, begin, end int) ([]uint16, bool) {
	units := make([]uint16, 0, end-begin)
	success := true
	for i := begin; i < end; {
		r, next, ok := readUTFChar(spec, i, end)
		success = success && ok
		units = utf16.AppendRune(units, r)
		i = next
	}
	return units, success
}
