// Package parse splits URL strings into components.
//
// The parsers never escape or validate: they only locate the scheme, userinfo,
// host, port, path, query and ref of an input and record their offsets in a
// [Parsed]. Canonicalization happens in package canon.
package parse

import (
	"iter"

	"github.com/ghettovoice/urlcanon/internal/constraints"
)

// ShouldTrimFromURL reports whether ch is stripped from both ends of an input.
func ShouldTrimFromURL(ch byte) bool { return ch <= ' ' }

// IsURLSlash reports whether ch separates path segments.
// Backslash is treated as a slash for compatibility with Windows paths.
func IsURLSlash(ch byte) bool { return ch == '/' || ch == '\\' }

// TrimURL returns the bounds of spec with leading and trailing control
// characters and spaces removed.
func TrimURL[T constraints.Byteseq](spec T) (begin, end int) {
	end = len(spec)
	for begin < end && ShouldTrimFromURL(spec[begin]) {
		begin++
	}
	for end > begin && ShouldTrimFromURL(spec[end-1]) {
		end--
	}
	return begin, end
}

// CountConsecutiveSlashes counts the slashes of spec starting at begin.
func CountConsecutiveSlashes[T constraints.Byteseq](spec T, begin int) int {
	n := 0
	for begin+n < len(spec) && IsURLSlash(spec[begin+n]) {
		n++
	}
	return n
}

// ExtractScheme finds the scheme of spec: everything between the first
// non-trimmed character and the first colon. The characters are not validated.
func ExtractScheme[T constraints.Byteseq](spec T) (Component, bool) {
	begin := 0
	for begin < len(spec) && ShouldTrimFromURL(spec[begin]) {
		begin++
	}
	if begin == len(spec) {
		return Absent(), false
	}
	for i := begin; i < len(spec); i++ {
		if spec[i] == ':' {
			return MakeRange(begin, i), true
		}
	}
	return Absent(), false
}

// ParseStandardURL parses an URL with an authority, like http or ftp.
// Whatever follows the scheme and its slashes is taken as the authority,
// so "http:host" and "http:////host" both have the host "host".
func ParseStandardURL[T constraints.Byteseq](spec T) Parsed {
	p := NewParsed()
	begin, end := TrimURL(spec)
	spec = spec[:end]

	afterScheme := begin
	if scheme, ok := ExtractScheme(spec); ok {
		p.Scheme = scheme
		afterScheme = scheme.End() + 1
	}
	ParseAfterScheme(spec, afterScheme, &p)
	return p
}

// ParseAfterScheme fills the authority and path fields of p from spec[afterScheme:].
func ParseAfterScheme[T constraints.Byteseq](spec T, afterScheme int, p *Parsed) {
	afterSlashes := afterScheme + CountConsecutiveSlashes(spec, afterScheme)
	endAuth := findNextAuthorityTerminator(spec, afterSlashes)

	fullPath := Absent()
	if endAuth != len(spec) {
		fullPath = MakeRange(endAuth, len(spec))
	}
	p.Username, p.Password, p.Host, p.Port = ParseAuthority(spec, MakeRange(afterSlashes, endAuth))
	p.Path, p.Query, p.Ref = ParsePath(spec, fullPath)
}

func findNextAuthorityTerminator[T constraints.Byteseq](spec T, begin int) int {
	for i := begin; i < len(spec); i++ {
		switch spec[i] {
		case '/', '\\', '?', '#':
			return i
		}
	}
	return len(spec)
}

// ParseAuthority splits the authority component auth into userinfo and server info.
// The last '@' separates them, so "a@b@host" has the username "a@b".
func ParseAuthority[T constraints.Byteseq](spec T, auth Component) (username, password, host, port Component) {
	if auth.Len <= 0 {
		return Absent(), Absent(), Absent(), Absent()
	}

	i := auth.End() - 1
	for i > auth.Begin && spec[i] != '@' {
		i--
	}
	if spec[i] == '@' {
		username, password = parseUserInfo(spec, MakeRange(auth.Begin, i))
		host, port = parseServerInfo(spec, MakeRange(i+1, auth.End()))
		return username, password, host, port
	}
	host, port = parseServerInfo(spec, auth)
	return Absent(), Absent(), host, port
}

func parseUserInfo[T constraints.Byteseq](spec T, user Component) (username, password Component) {
	colon := user.Begin
	for colon < user.End() && spec[colon] != ':' {
		colon++
	}
	if colon < user.End() {
		return MakeRange(user.Begin, colon), MakeRange(colon+1, user.End())
	}
	return user, Absent()
}

func parseServerInfo[T constraints.Byteseq](spec T, info Component) (host, port Component) {
	if info.Len <= 0 {
		return Absent(), Absent()
	}

	// a colon inside an IPv6 literal is not a port separator
	ipv6End := -1
	if spec[info.Begin] == '[' {
		ipv6End = info.End()
	}
	colon := -1
	for i := info.Begin; i < info.End(); i++ {
		switch spec[i] {
		case ']':
			ipv6End = i
		case ':':
			colon = i
		}
	}

	if colon > ipv6End {
		host = MakeRange(info.Begin, colon)
		if host.Len == 0 {
			host.Reset()
		}
		return host, MakeRange(colon+1, info.End())
	}
	return info, Absent()
}

// ParsePath splits path into the file path, query and ref.
// The first '?' before any '#' starts the query, the first '#' starts the ref.
func ParsePath[T constraints.Byteseq](spec T, path Component) (filepath, query, ref Component) {
	if !path.IsValid() {
		return Absent(), Absent(), Absent()
	}

	querySep, refSep := -1, -1
	for i := path.Begin; i < path.End(); i++ {
		switch spec[i] {
		case '?':
			if refSep < 0 && querySep < 0 {
				querySep = i
			}
		case '#':
			if refSep < 0 {
				refSep = i
			}
		}
	}

	fileEnd, queryEnd := path.End(), path.End()
	ref = Absent()
	if refSep >= 0 {
		fileEnd, queryEnd = refSep, refSep
		ref = MakeRange(refSep+1, path.End())
	}
	query = Absent()
	if querySep >= 0 {
		fileEnd = querySep
		query = MakeRange(querySep+1, queryEnd)
	}
	filepath = Absent()
	if fileEnd != path.Begin {
		filepath = MakeRange(path.Begin, fileEnd)
	}
	return filepath, query, ref
}

// ParsePathURL parses an URL without an authority, like data or javascript.
// Everything after the scheme is the path, optionally followed by a query and a ref.
func ParsePathURL[T constraints.Byteseq](spec T) Parsed {
	p := NewParsed()
	begin, end := TrimURL(spec)
	spec = spec[:end]
	if begin == end {
		return p
	}

	pathBegin := begin
	if scheme, ok := ExtractScheme(spec); ok {
		p.Scheme = scheme
		pathBegin = scheme.End() + 1
	}
	if pathBegin == end {
		return p
	}
	p.Path, p.Query, p.Ref = ParsePath(spec, MakeRange(pathBegin, end))
	return p
}

// ParseMailtoURL parses a mailto URL: the path runs up to the first '?',
// the rest is the query. Mailto URLs have no ref.
func ParseMailtoURL[T constraints.Byteseq](spec T) Parsed {
	p := NewParsed()
	begin, end := TrimURL(spec)
	spec = spec[:end]
	if begin == end {
		return p
	}

	pathBegin, pathEnd := begin, end
	if scheme, ok := ExtractScheme(spec); ok {
		p.Scheme = scheme
		pathBegin = scheme.End() + 1
	}
	for i := pathBegin; i < pathEnd; i++ {
		if spec[i] == '?' {
			p.Query = MakeRange(i+1, pathEnd)
			pathEnd = i
			break
		}
	}
	if pathBegin != pathEnd {
		p.Path = MakeRange(pathBegin, pathEnd)
	}
	return p
}

// ParsePort converts the port component into a number.
// It returns [PortUnspecified] for an absent or empty port and [PortInvalid]
// for non-digits or values above 65535. Leading zeros are ignored.
func ParsePort[T constraints.Byteseq](spec T, port Component) int {
	const maxDigits = 5

	if !port.IsNonEmpty() {
		return PortUnspecified
	}

	digits := MakeRange(port.End(), port.End())
	for i := port.Begin; i < port.End(); i++ {
		if spec[i] != '0' {
			digits = MakeRange(i, port.End())
			break
		}
	}
	if digits.Len == 0 {
		return 0
	}
	if digits.Len > maxDigits {
		return PortInvalid
	}

	n := 0
	for i := digits.Begin; i < digits.End(); i++ {
		ch := spec[i]
		if ch < '0' || ch > '9' {
			return PortInvalid
		}
		n = n*10 + int(ch-'0')
	}
	if n > 65535 {
		return PortInvalid
	}
	return n
}

// ExtractFileName returns the last segment of path, without any ";params".
func ExtractFileName[T constraints.Byteseq](spec T, path Component) Component {
	if !path.IsNonEmpty() {
		return Absent()
	}

	fileEnd := path.End()
	for i := path.End() - 1; i >= path.Begin; i-- {
		if spec[i] == ';' {
			fileEnd = i
		} else if IsURLSlash(spec[i]) {
			return MakeRange(i+1, fileEnd)
		}
	}
	return MakeRange(path.Begin, fileEnd)
}

// QueryPairs iterates over the "key=value" pairs of the query component.
// Pairs are separated by '&'; a pair without '=' has an empty value.
// Keys and values are yielded unescaped as they appear in spec.
func QueryPairs[T constraints.Byteseq](spec T, query Component) iter.Seq2[Component, Component] {
	return func(yield func(Component, Component) bool) {
		if !query.IsNonEmpty() {
			return
		}

		cur, end := query.Begin, query.End()
		for cur < end {
			key := Component{Begin: cur}
			for cur < end && spec[cur] != '&' && spec[cur] != '=' {
				cur++
			}
			key.Len = cur - key.Begin
			if cur < end && spec[cur] == '=' {
				cur++
			}

			val := Component{Begin: cur}
			for cur < end && spec[cur] != '&' {
				cur++
			}
			val.Len = cur - val.Begin
			if cur < end && spec[cur] == '&' {
				cur++
			}

			if !yield(key, val) {
				return
			}
		}
	}
}
