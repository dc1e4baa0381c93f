package canon

import (
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

// hostEsc marks characters allowed in hosts but written escaped.
const hostEsc = 0xff

// hostChars maps ASCII to its canonical host form. Zero means invalid.
var hostChars = func() (t [0x80]byte) {
	for _, ch := range []byte(" !\"#$&'()*,<=>@^`{|}") {
		t[ch] = hostEsc
	}
	for _, ch := range []byte("+-.0123456789:[]_abcdefghijklmnopqrstuvwxyz") {
		t[ch] = ch
	}
	for ch := byte('A'); ch <= 'Z'; ch++ {
		t[ch] = ch + 'a' - 'A'
	}
	return t
}()

// simpleHost writes host[begin:end] lower-cased, decoding escapes and escaping
// the characters that need it. Non-ASCII bytes are copied and reported.
func simpleHost[T constraints.Byteseq](host T, begin, end int, out *Buffer) (ok, hasNonASCII bool) {
	ok = true
	for i := begin; i < end; i++ {
		ch := host[i]
		if ch == '%' {
			v, decoded := decodeEscaped(host, i, end)
			if !decoded {
				// nothing can make this host valid
				appendEscapedChar(out, '%')
				ok = false
				continue
			}
			ch = v
			i += 2
		}

		if ch >= 0x80 {
			out.Push(ch)
			hasNonASCII = true
			continue
		}
		switch repl := hostChars[ch]; repl {
		case 0:
			appendEscapedChar(out, ch)
			ok = false
		case hostEsc:
			appendEscapedChar(out, ch)
		default:
			out.Push(repl)
		}
	}
	return ok, hasNonASCII
}

// idnHost converts a valid UTF-8 host into ASCII with idn.
func idnHost(host string, idn HostTranscoder, out *Buffer) bool {
	// escape first since punycode can't be escaped afterwards
	var escaped Buffer
	simpleHost(host, 0, len(host), &escaped)

	ascii, err := idn.ToASCII(escaped.String())
	if err != nil {
		appendInvalidNarrowString(host, 0, len(host), out)
		return false
	}
	ok, hasNonASCII := simpleHost(ascii, 0, len(ascii), out)
	return ok && !hasNonASCII
}

func complexHost[T constraints.Byteseq](spec T, host parse.Component, hasNonASCII, hasEscaped bool, idn HostTranscoder, out *Buffer) bool {
	begin := out.Len()

	var src string
	if hasEscaped {
		var ok bool
		if ok, hasNonASCII = simpleHost(spec, host.Begin, host.End(), out); !ok {
			return false
		}
		if !hasNonASCII {
			return true
		}
		src = string(out.Bytes()[begin:])
	} else {
		src = string(spec[host.Begin:host.End()])
	}
	out.Truncate(begin)

	if !isValidUTF8(src) {
		appendInvalidNarrowString(src, 0, len(src), out)
		return false
	}
	return idnHost(src, idn, out)
}

func isValidUTF8(s string) bool {
	for i := 0; i < len(s); {
		_, next, ok := readUTFChar(s, i, len(s))
		if !ok {
			return false
		}
		i = next
	}
	return true
}

// CanonicalizeHostVerbose writes the canonical host and describes it.
// Escapes are decoded, letters lower-cased, non-ASCII names converted with
// idn (nil selects [IDNALookup]) and IP addresses normalized.
// An absent or empty host writes nothing and is [HostNeutral].
func CanonicalizeHostVerbose[T constraints.Byteseq](spec T, host parse.Component, idn HostTranscoder, out *Buffer) HostInfo {
	if host.Len <= 0 {
		return HostInfo{Family: HostNeutral, OutHost: parse.Absent()}
	}
	if idn == nil {
		idn = IDNALookup
	}

	var hasNonASCII, hasEscaped bool
	for i := host.Begin; i < host.End(); i++ {
		if spec[i] >= 0x80 {
			hasNonASCII = true
		} else if spec[i] == '%' {
			hasEscaped = true
		}
	}

	begin := out.Len()
	var ok bool
	if !hasNonASCII && !hasEscaped {
		ok, _ = simpleHost(spec, host.Begin, host.End(), out)
	} else {
		ok = complexHost(spec, host, hasNonASCII, hasEscaped, idn, out)
	}

	var info HostInfo
	if !ok {
		info.Family = HostBroken
	} else {
		var ip Buffer
		info = CanonicalizeIPAddress(out.Bytes(), parse.MakeRange(begin, out.Len()), &ip)
		if info.IsIPAddress() {
			out.Truncate(begin)
			out.Append(ip.Bytes())
		}
	}
	info.OutHost = parse.MakeRange(begin, out.Len())
	return info
}

// CanonicalizeHost is [CanonicalizeHostVerbose] that only reports whether the host is usable.
func CanonicalizeHost[T constraints.Byteseq](spec T, host parse.Component, idn HostTranscoder, out *Buffer) (parse.Component, bool) {
	info := CanonicalizeHostVerbose(spec, host, idn, out)
	return info.OutHost, info.Family != HostBroken
}
