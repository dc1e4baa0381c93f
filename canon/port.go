package canon

import (
	"strconv"

	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

var defaultPorts = map[string]int{
	"http":   80,
	"https":  443,
	"ftp":    21,
	"gopher": 70,
	"ws":     80,
	"wss":    443,
}

// DefaultPortForScheme returns the well-known port of a lower-case scheme,
// or [parse.PortUnspecified].
func DefaultPortForScheme(scheme string) int {
	if p, ok := defaultPorts[scheme]; ok {
		return p
	}
	return parse.PortUnspecified
}

// CanonicalizePort writes ":port" in decimal without leading zeros.
// Nothing is written for an absent or empty port and for the default port.
// An invalid port is written as is, for display, and the result is false.
func CanonicalizePort[T constraints.Byteseq](spec T, port parse.Component, defaultPort int, out *Buffer) (parse.Component, bool) {
	num := parse.ParsePort(spec, port)
	if num == parse.PortUnspecified || num == defaultPort {
		return parse.Absent(), true
	}

	out.Push(':')
	begin := out.Len()
	if num == parse.PortInvalid {
		appendInvalidNarrowString(spec, port.Begin, port.End(), out)
		return parse.MakeRange(begin, out.Len()), false
	}
	out.buf = strconv.AppendInt(out.buf, int64(num), 10)
	return parse.MakeRange(begin, out.Len()), true
}
