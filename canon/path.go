package canon

import (
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

const (
	pathSpecial uint8 = 1 << iota
	pathEscapeBit
	pathUnescape
	pathInvalidBit
)

const (
	pathEscape  = pathEscapeBit | pathSpecial
	pathInvalid = pathInvalidBit | pathSpecial
)

// pathChars tells how each byte is written into a path; zero means copy as is.
// Unescape marks characters decoded back from "%XX".
var pathChars = func() (t [256]uint8) {
	t[0] = pathInvalid
	for ch := 1; ch <= ' '; ch++ {
		t[ch] = pathEscape
	}
	for ch := 0x7f; ch < 0x100; ch++ {
		t[ch] = pathEscape
	}
	for _, ch := range []byte("\"#<>?`^{}") {
		t[ch] = pathEscape
	}
	for _, ch := range []byte(`%.\`) {
		t[ch] = pathSpecial
	}
	for _, ch := range []byte("-_~0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		t[ch] = pathUnescape
	}
	return t
}()

// isDot returns the length of the dot at spec[i]: 1 for '.', 3 for "%2e", 0 otherwise.
func isDot[T constraints.Byteseq](spec T, i, end int) int {
	if spec[i] == '.' {
		return 1
	}
	if spec[i] == '%' && i+3 <= end && spec[i+1] == '2' && (spec[i+2] == 'e' || spec[i+2] == 'E') {
		return 3
	}
	return 0
}

type dotDisposition int

const (
	notADirectory dotDisposition = iota
	directoryCur
	directoryUp
)

// classifyAfterDot looks at what follows a dot segment start and returns
// how many more bytes it consumes.
func classifyAfterDot[T constraints.Byteseq](spec T, afterDot, end int) (dotDisposition, int) {
	if afterDot == end {
		return directoryCur, 0
	}
	if parse.IsURLSlash(spec[afterDot]) {
		return directoryCur, 1
	}
	if n := isDot(spec, afterDot, end); n > 0 {
		afterSecond := afterDot + n
		if afterSecond == end {
			return directoryUp, n
		}
		if parse.IsURLSlash(spec[afterSecond]) {
			return directoryUp, n + 1
		}
	}
	return notADirectory, 0
}

// backUpToPreviousSlash removes the last segment of the output, which ends
// with a slash, never going before pathBegin.
func backUpToPreviousSlash(pathBegin int, out *Buffer) {
	i := out.Len() - 1
	if i <= pathBegin {
		return
	}
	i--
	for i > pathBegin && out.At(i) != '/' {
		i--
	}
	out.Truncate(i + 1)
}

// CanonicalizePath writes an absolute path: a leading slash is added when
// missing, an absent or empty path becomes "/". Dot segments are resolved.
func CanonicalizePath[T constraints.Byteseq](spec T, path parse.Component, out *Buffer) (parse.Component, bool) {
	begin := out.Len()
	success := true
	if path.Len > 0 {
		if !parse.IsURLSlash(spec[path.Begin]) {
			out.Push('/')
		}
		success = CanonicalizePartialPath(spec, path, begin, out)
	} else {
		out.Push('/')
	}
	return parse.MakeRange(begin, out.Len()), success
}

// CanonicalizePartialPath appends path to the output, resolving "." and ".."
// against what was already written after pathBegin.
// Backslashes become slashes. Escapes of unreserved characters are decoded,
// other escapes are kept as written.
func CanonicalizePartialPath[T constraints.Byteseq](spec T, path parse.Component, pathBegin int, out *Buffer) bool {
	success := true
	end := path.End()
	for i := path.Begin; i < end; i++ {
		ch := spec[i]
		flags := pathChars[ch]
		if flags&pathSpecial == 0 {
			out.Push(ch)
			continue
		}

		if dotLen := isDot(spec, i, end); dotLen > 0 {
			if out.Len() > pathBegin && out.At(out.Len()-1) == '/' {
				switch disp, consumed := classifyAfterDot(spec, i+dotLen, end); disp {
				case notADirectory:
					out.Push('.')
					i += dotLen - 1
				case directoryCur:
					i += dotLen + consumed - 1
				case directoryUp:
					backUpToPreviousSlash(pathBegin, out)
					i += dotLen + consumed - 1
				}
			} else {
				// a dot inside a file name
				out.Push('.')
				i += dotLen - 1
			}
			continue
		}

		switch {
		case ch == '\\':
			out.Push('/')
		case ch == '%':
			v, ok := decodeEscaped(spec, i, end)
			if !ok {
				// lone percent is passed through
				out.Push('%')
				continue
			}
			i += 2
			switch vflags := pathChars[v]; {
			case vflags&pathUnescape != 0:
				out.Push(v)
			case vflags&pathInvalidBit != 0:
				out.Push('%')
				out.Push(spec[i-1])
				out.Push(spec[i])
				success = false
			default:
				// keep the original hex case
				out.Push('%')
				out.Push(spec[i-1])
				out.Push(spec[i])
			}
		case flags&pathInvalidBit != 0:
			appendEscapedChar(out, ch)
			success = false
		case flags&pathEscapeBit != 0:
			appendEscapedChar(out, ch)
		}
	}
	return success
}
