package parse

import "github.com/ghettovoice/urlcanon/internal/constraints"

func isASCIIAlpha(ch byte) bool { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }

// DoesBeginWindowsDriveSpec reports whether spec[begin:] starts with a drive
// letter, like "c:" or "C|", followed by a slash or the end of spec.
func DoesBeginWindowsDriveSpec[T constraints.Byteseq](spec T, begin int) bool {
	if len(spec)-begin < 2 {
		return false
	}
	if !isASCIIAlpha(spec[begin]) || (spec[begin+1] != ':' && spec[begin+1] != '|') {
		return false
	}
	return len(spec)-begin == 2 || IsURLSlash(spec[begin+2])
}

// DoesBeginUNCPath reports whether spec[begin:] starts with two slashes.
// With strictSlashes only backslashes are accepted.
func DoesBeginUNCPath[T constraints.Byteseq](spec T, begin int, strictSlashes bool) bool {
	if len(spec)-begin < 2 {
		return false
	}
	if strictSlashes {
		return spec[begin] == '\\' && spec[begin+1] == '\\'
	}
	return IsURLSlash(spec[begin]) && IsURLSlash(spec[begin+1])
}

// ParseFileURL parses a file URL.
//
// Drive letters are recognized on every platform, so "c:/x", "file:c|/x" and
// "file:///c:/x" all have the path of the drive. Two slashes after the scheme,
// or four and more, introduce an UNC host ("file://server/share"). File URLs
// never have a username, password or port.
func ParseFileURL[T constraints.Byteseq](spec T) Parsed {
	p := NewParsed()
	begin, end := TrimURL(spec)
	spec = spec[:end]

	var afterScheme int
	numSlashes := CountConsecutiveSlashes(spec, begin)
	switch afterSlashes := begin + numSlashes; {
	case DoesBeginWindowsDriveSpec(spec, afterSlashes):
		// "c:\foo" is a path, not the scheme "c"
		afterScheme = afterSlashes
	case DoesBeginUNCPath(spec, begin, false):
		afterScheme = begin
	default:
		// "/foo.c:5" is a file while "foo.c:5" has the scheme "foo.c"
		scheme, ok := Component{}, false
		if numSlashes == 0 {
			scheme, ok = ExtractScheme(spec)
		}
		if ok {
			p.Scheme = scheme
			afterScheme = scheme.End() + 1
		} else {
			afterScheme = begin
		}
	}

	if afterScheme == end {
		return p
	}

	numSlashes = CountConsecutiveSlashes(spec, afterScheme)
	afterSlashes := afterScheme + numSlashes
	switch {
	case DoesBeginWindowsDriveSpec(spec, afterSlashes):
		parseLocalFile(spec, afterSlashes, &p)
	case numSlashes == 2 || numSlashes >= 4:
		parseUNC(spec, afterSlashes, &p)
	case numSlashes > 0:
		// keep one slash as the start of the path
		parseLocalFile(spec, afterScheme+numSlashes-1, &p)
	default:
		parseLocalFile(spec, afterScheme, &p)
	}
	return p
}

func parseLocalFile[T constraints.Byteseq](spec T, pathBegin int, p *Parsed) {
	p.Host.Reset()
	p.Path, p.Query, p.Ref = ParsePath(spec, MakeRange(pathBegin, len(spec)))
}

func parseUNC[T constraints.Byteseq](spec T, afterSlashes int, p *Parsed) {
	nextSlash := afterSlashes
	for nextSlash < len(spec) && !IsURLSlash(spec[nextSlash]) {
		nextSlash++
	}

	if nextSlash == len(spec) {
		// "file://server" is the server with no path
		if afterSlashes < len(spec) {
			p.Host = MakeRange(afterSlashes, len(spec))
		} else {
			p.Host.Reset()
		}
		p.Path.Reset()
		return
	}

	if DoesBeginWindowsDriveSpec(spec, nextSlash+1) {
		// "file://localhost/c:/" is a local drive path
		p.Host.Reset()
		p.Path, p.Query, p.Ref = ParsePath(spec, MakeRange(nextSlash, len(spec)))
		return
	}

	p.Host = MakeRange(afterSlashes, nextSlash)
	p.Path, p.Query, p.Ref = ParsePath(spec, MakeRange(nextSlash, len(spec)))
}
