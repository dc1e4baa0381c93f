package canon

import (
	"strconv"

	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

// HostFamily classifies a canonicalized host.
type HostFamily int

const (
	// HostNeutral is a host name, or a host that doesn't look like an IP address.
	HostNeutral HostFamily = iota
	// HostBroken is an invalid host or an IP address that can't be used.
	HostBroken
	// HostIPv4 is an IPv4 address.
	HostIPv4
	// HostIPv6 is an IPv6 address.
	HostIPv6
)

func (f HostFamily) String() string {
	switch f {
	case HostNeutral:
		return "neutral"
	case HostBroken:
		return "broken"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	default:
		return "HostFamily(" + strconv.Itoa(int(f)) + ")"
	}
}

// HostInfo describes the result of host canonicalization.
type HostInfo struct {
	Family HostFamily
	// NumIPv4Components is the number of dotted components of an IPv4 address as written.
	NumIPv4Components int
	// Address holds the address in network order: 4 bytes for IPv4, 16 for IPv6.
	Address [16]byte
	// OutHost is the host in the output buffer.
	OutHost parse.Component
}

// IsIPAddress reports whether the host is an IPv4 or IPv6 address.
func (h *HostInfo) IsIPAddress() bool { return h.Family == HostIPv4 || h.Family == HostIPv6 }

// AddressLength returns the number of meaningful bytes of Address.
func (h *HostInfo) AddressLength() int {
	switch h.Family {
	case HostIPv4:
		return 4
	case HostIPv6:
		return 16
	}
	return 0
}

// findIPv4Components splits host on dots. Up to four non-empty components
// are allowed, plus a single trailing dot.
func findIPv4Components[T constraints.Byteseq](spec T, host parse.Component) ([4]parse.Component, bool) {
	var comps [4]parse.Component
	if !host.IsNonEmpty() {
		return comps, false
	}

	cur, curBegin, end := 0, host.Begin, host.End()
	for i := host.Begin; ; i++ {
		if i >= end || spec[i] == '.' {
			n := i - curBegin
			comps[cur] = parse.Component{Begin: curBegin, Len: n}
			curBegin = i + 1
			cur++

			// only the component after a trailing dot may be empty
			if n == 0 && (i < end || cur == 1) {
				return comps, false
			}
			if i >= end {
				break
			}
			if cur == 4 {
				if spec[i] == '.' && i+1 == end {
					break
				}
				return comps, false
			}
		} else if spec[i] >= 0x80 || !isIPv4Char(spec[i]) {
			return comps, false
		}
	}
	for ; cur < 4; cur++ {
		comps[cur] = parse.Absent()
	}
	return comps, true
}

// ipv4ComponentToNumber parses one component in hex ("0x"), octal (leading "0")
// or decimal. Characters outside of the base make it neutral, values above
// 32 bits make it broken.
func ipv4ComponentToNumber[T constraints.Byteseq](spec T, comp parse.Component) (uint32, HostFamily) {
	const maxComponentLen = 16

	base, typ, prefix := 10, charDec, 0
	if spec[comp.Begin] == '0' && comp.Len > 1 {
		if next := spec[comp.Begin+1]; next == 'x' || next == 'X' {
			base, typ, prefix = 16, charHex, 2
		} else {
			base, typ, prefix = 8, charOct, 1
		}
	}
	for prefix < comp.Len && spec[comp.Begin+prefix] == '0' {
		prefix++
	}

	// 16 digits of any base fit into 64 bits, so more of them means overflow
	var num uint64
	digits := 0
	for i := comp.Begin + prefix; i < comp.End(); i++ {
		ch := spec[i]
		if !isCharOfType(ch, typ) {
			return 0, HostNeutral
		}
		if digits < maxComponentLen {
			num = num*uint64(base) + uint64(hexValue(ch))
		}
		digits++
	}
	if digits > maxComponentLen || num > 0xFFFFFFFF {
		return 0, HostBroken
	}
	return uint32(num), HostIPv4
}

// IPv4AddressToNumber converts host into an IPv4 address.
// Like inet_aton it accepts 1 to 4 components where the last one fills the
// remaining bytes, so "0x7f.1" is 127.0.0.1.
// The family is [HostNeutral] when host is not an IPv4 address at all and
// [HostBroken] when it looks like one but is out of range.
func IPv4AddressToNumber[T constraints.Byteseq](spec T, host parse.Component) (addr [4]byte, numComponents int, family HostFamily) {
	comps, ok := findIPv4Components(spec, host)
	if !ok {
		return addr, 0, HostNeutral
	}

	var values [4]uint32
	broken := false
	for _, comp := range comps {
		if comp.Len <= 0 {
			continue
		}
		v, fam := ipv4ComponentToNumber(spec, comp)
		switch fam {
		case HostBroken:
			broken = true
		case HostIPv4:
		default:
			return addr, 0, fam
		}
		values[numComponents] = v
		numComponents++
	}
	if broken {
		return addr, 0, HostBroken
	}

	for i := range numComponents - 1 {
		if values[i] > 0xFF {
			return addr, 0, HostBroken
		}
		addr[i] = byte(values[i])
	}
	last := values[numComponents-1]
	for i := 3; i >= numComponents-1; i-- {
		addr[i] = byte(last)
		last >>= 8
	}
	if last != 0 {
		return addr, 0, HostBroken
	}
	return addr, numComponents, HostIPv4
}

type ipv6Parsed struct {
	hexComponents    [8]parse.Component
	numHexComponents int
	contractionIndex int
	ipv4Component    parse.Component
}

func parseIPv6[T constraints.Byteseq](spec T, host parse.Component) (ipv6Parsed, bool) {
	p := ipv6Parsed{contractionIndex: -1, ipv4Component: parse.Absent()}
	if !host.IsNonEmpty() {
		return p, false
	}

	begin, end := host.Begin, host.End()
	curBegin := begin
	for i := begin; ; i++ {
		isColon := i < end && spec[i] == ':'
		isContraction := isColon && i < end-1 && spec[i+1] == ':'

		if isColon || i == end {
			n := i - curBegin
			if n > 4 {
				return p, false
			}
			// empty components only come with a leading or trailing "::"
			if n == 0 && !((isContraction && i == begin) || (i == end && p.contractionIndex == p.numHexComponents)) {
				return p, false
			}
			if n > 0 {
				if p.numHexComponents >= 8 {
					return p, false
				}
				p.hexComponents[p.numHexComponents] = parse.Component{Begin: curBegin, Len: n}
				p.numHexComponents++
			}
		}
		if i == end {
			break
		}

		if isContraction {
			if p.contractionIndex != -1 {
				return p, false
			}
			p.contractionIndex = p.numHexComponents
			i++
		}

		if isColon {
			curBegin = i + 1
			continue
		}
		if ch := spec[i]; ch >= 0x80 || !isHexChar(ch) {
			if ch < 0x80 && isIPv4Char(ch) {
				// an embedded IPv4 address takes the rest of the literal
				p.ipv4Component = parse.MakeRange(curBegin, end)
				break
			}
			return p, false
		}
	}
	return p, true
}

// ipv6ContractionSize returns how many bytes "::" stands for.
func ipv6ContractionSize(p *ipv6Parsed) (int, bool) {
	n := p.numHexComponents * 2
	if p.ipv4Component.IsValid() {
		n += 4
	}
	contraction := 0
	if p.contractionIndex != -1 {
		contraction = max(16-n, 2)
	}
	return contraction, n+contraction == 16
}

// IPv6AddressToNumber converts a bracketed IPv6 literal into an address.
func IPv6AddressToNumber[T constraints.Byteseq](spec T, host parse.Component) ([16]byte, bool) {
	var addr [16]byte
	if !host.IsNonEmpty() || spec[host.Begin] != '[' || spec[host.End()-1] != ']' {
		return addr, false
	}

	p, ok := parseIPv6(spec, parse.Component{Begin: host.Begin + 1, Len: host.Len - 2})
	if !ok {
		return addr, false
	}
	contraction, ok := ipv6ContractionSize(&p)
	if !ok {
		return addr, false
	}

	cur := 0
	for i := 0; i <= p.numHexComponents; i++ {
		if i == p.contractionIndex {
			cur += contraction
		}
		if i == p.numHexComponents {
			break
		}
		var v uint16
		comp := p.hexComponents[i]
		for j := comp.Begin; j < comp.End(); j++ {
			v = v<<4 | uint16(hexValue(spec[j]))
		}
		addr[cur] = byte(v >> 8)
		addr[cur+1] = byte(v)
		cur += 2
	}

	if p.ipv4Component.IsValid() {
		v4, n, fam := IPv4AddressToNumber(spec, p.ipv4Component)
		if fam != HostIPv4 || n != 4 {
			return addr, false
		}
		copy(addr[cur:], v4[:])
	}
	return addr, true
}

func appendIPv4Address(out *Buffer, addr []byte) {
	for i, b := range addr[:4] {
		if i > 0 {
			out.Push('.')
		}
		out.buf = strconv.AppendUint(out.buf, uint64(b), 10)
	}
}

// chooseIPv6ContractionRange finds the longest run of zero groups, at least
// two groups long. The first one wins a tie.
func chooseIPv6ContractionRange(addr *[16]byte) parse.Component {
	best, cur := parse.Absent(), parse.Absent()
	for i := 0; i < 16; i += 2 {
		isZero := addr[i] == 0 && addr[i+1] == 0
		if isZero {
			if !cur.IsValid() {
				cur = parse.Component{Begin: i}
			}
			cur.Len += 2
		}
		if !isZero || i == 14 {
			if cur.Len > 2 && cur.Len > best.Len {
				best = cur
			}
			cur = parse.Absent()
		}
	}
	return best
}

func appendIPv6Address(out *Buffer, addr *[16]byte) {
	contraction := chooseIPv6ContractionRange(addr)
	for i := 0; i <= 14; {
		if i == contraction.Begin && contraction.Len > 0 {
			if i == 0 {
				out.Push(':')
			}
			out.Push(':')
			i = contraction.End()
			continue
		}
		out.buf = strconv.AppendUint(out.buf, uint64(addr[i])<<8|uint64(addr[i+1]), 16)
		i += 2
		if i < 16 {
			out.Push(':')
		}
	}
}

// CanonicalizeIPAddress checks whether host is an IP address and if so writes
// its canonical form: dotted decimal for IPv4, bracketed compressed lower-case
// hex for IPv6. Nothing is written for other hosts. Hosts containing '[', ']'
// or ':' that are not IPv6 literals are broken.
func CanonicalizeIPAddress[T constraints.Byteseq](spec T, host parse.Component, out *Buffer) HostInfo {
	info := HostInfo{OutHost: parse.Absent()}

	v4, n, fam := IPv4AddressToNumber(spec, host)
	switch fam {
	case HostIPv4:
		info.Family = HostIPv4
		info.NumIPv4Components = n
		copy(info.Address[:], v4[:])
		begin := out.Len()
		appendIPv4Address(out, info.Address[:])
		info.OutHost = parse.MakeRange(begin, out.Len())
		return info
	case HostBroken:
		info.Family = HostBroken
		return info
	}

	v6, ok := IPv6AddressToNumber(spec, host)
	if !ok {
		for i := host.Begin; i < host.End(); i++ {
			switch spec[i] {
			case '[', ']', ':':
				info.Family = HostBroken
				return info
			}
		}
		info.Family = HostNeutral
		return info
	}

	info.Family = HostIPv6
	info.Address = v6
	begin := out.Len()
	out.Push('[')
	appendIPv6Address(out, &info.Address)
	out.Push(']')
	info.OutHost = parse.MakeRange(begin, out.Len())
	return info
}
