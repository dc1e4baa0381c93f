package parse

import "fmt"

// Sentinel values returned by [ParsePort].
const (
	PortUnspecified = -1
	PortInvalid     = -2
)

// Component is a half-open byte range {Begin, Begin+Len} of a URL string.
// Len == -1 marks an absent component, which differs from a present empty one.
// The zero value is a present empty component at offset 0; use [Absent] or
// [Component.Reset] to get an absent one.
type Component struct {
	Begin int
	Len   int
}

// Absent returns an absent component.
func Absent() Component { return Component{Len: -1} }

// MakeRange returns the component covering [begin, end).
func MakeRange(begin, end int) Component { return Component{Begin: begin, Len: end - begin} }

// End returns the offset right after the component.
func (c Component) End() int { return c.Begin + c.Len }

// IsValid reports whether the component is present.
func (c Component) IsValid() bool { return c.Len != -1 }

// IsNonEmpty reports whether the component is present and has at least one byte.
func (c Component) IsNonEmpty() bool { return c.Len > 0 }

// Reset marks the component absent.
func (c *Component) Reset() { *c = Component{Len: -1} }

func (c Component) String() string {
	if !c.IsValid() {
		return "{absent}"
	}
	return fmt.Sprintf("{%d, %d}", c.Begin, c.Len)
}

// Substr returns the part of s covered by c, or an empty value when c is absent.
func Substr[T ~string | ~[]byte](s T, c Component) T {
	if c.Len <= 0 {
		return s[:0]
	}
	return s[c.Begin:c.End()]
}

// ComponentType identifies a field of [Parsed].
type ComponentType int

const (
	Scheme ComponentType = iota
	Username
	Password
	Host
	Port
	Path
	Query
	Ref
)

var componentNames = [...]string{"scheme", "username", "password", "host", "port", "path", "query", "ref"}

func (t ComponentType) String() string {
	if t < Scheme || t > Ref {
		return fmt.Sprintf("ComponentType(%d)", int(t))
	}
	return componentNames[t]
}

// Parsed holds the component offsets of a URL string.
// Offsets are only meaningful against the string they were produced from.
type Parsed struct {
	Scheme   Component
	Username Component
	Password Component
	Host     Component
	Port     Component
	Path     Component
	Query    Component
	Ref      Component
}

// NewParsed returns a Parsed with every component absent.
func NewParsed() Parsed {
	var p Parsed
	p.Reset()
	return p
}

// Reset marks every component absent.
func (p *Parsed) Reset() {
	for t := Scheme; t <= Ref; t++ {
		p.Get(t).Reset()
	}
}

// Get returns a pointer to the component of type t.
func (p *Parsed) Get(t ComponentType) *Component {
	switch t {
	case Scheme:
		return &p.Scheme
	case Username:
		return &p.Username
	case Password:
		return &p.Password
	case Host:
		return &p.Host
	case Port:
		return &p.Port
	case Path:
		return &p.Path
	case Query:
		return &p.Query
	case Ref:
		return &p.Ref
	default:
		panic(fmt.Sprintf("parse: unknown component type %d", int(t)))
	}
}

// Length returns the length of the URL described by p.
func (p *Parsed) Length() int {
	if p.Ref.IsValid() {
		return p.Ref.End()
	}
	return p.CountCharactersBefore(Ref, false)
}

// CountCharactersBefore returns the offset where the component of type t starts,
// or would start if it was present. With includeDelimiter the offset of the
// delimiter preceding a port, query or ref is returned instead.
func (p *Parsed) CountCharactersBefore(t ComponentType, includeDelimiter bool) int {
	if t == Scheme {
		return p.Scheme.Begin
	}

	cur := 0
	if p.Scheme.IsValid() {
		cur = p.Scheme.End() + 1 // ':'
	}
	if p.Username.IsValid() {
		if t <= Username {
			return p.Username.Begin
		}
		cur = p.Username.End() + 1 // ':' or '@'
	}
	if p.Password.IsValid() {
		if t <= Password {
			return p.Password.Begin
		}
		cur = p.Password.End() + 1 // '@'
	}
	if p.Host.IsValid() {
		if t <= Host {
			return p.Host.Begin
		}
		cur = p.Host.End()
	}
	if p.Port.IsValid() {
		if t < Port || (t == Port && includeDelimiter) {
			return p.Port.Begin - 1
		}
		if t == Port {
			return p.Port.Begin
		}
		cur = p.Port.End()
	}
	if p.Path.IsValid() {
		if t <= Path {
			return p.Path.Begin
		}
		cur = p.Path.End()
	}
	if p.Query.IsValid() {
		if t < Query || (t == Query && includeDelimiter) {
			return p.Query.Begin - 1
		}
		if t == Query {
			return p.Query.Begin
		}
		cur = p.Query.End()
	}
	if p.Ref.IsValid() {
		if t < Ref || (t == Ref && includeDelimiter) {
			return p.Ref.Begin - 1
		}
		if t == Ref {
			return p.Ref.Begin
		}
		cur = p.Ref.End()
	}
	return cur
}
