package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlcanon/canon"
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/internal/errorutil"
	"github.com/ghettovoice/urlcanon/internal/log"
	"github.com/ghettovoice/urlcanon/internal/util"
	"github.com/ghettovoice/urlcanon/parse"
)

// Options configures parsing and resolution of URLs.
// A nil *Options selects the defaults.
type Options struct {
	canon.Options
	// Log receives diagnostics, such as reading the spec of an invalid URL.
	// If nil, the process default logger is used.
	Log *slog.Logger
}

func (o *Options) canon() *canon.Options {
	if o == nil {
		return nil
	}
	return &o.Options
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// URL is an immutable canonical URL.
//
// A URL is built once by [New], [Parse] or [URL.Resolve] and never changes.
// Invalid URLs keep a best-effort canonical string that is safe to print,
// see [URL.PossiblyInvalidSpec]. The zero value is the empty invalid URL.
type URL struct {
	spec   string
	parsed parse.Parsed
	valid  bool
	opts   *Options
}

func newURL(spec string, parsed parse.Parsed, valid bool, opts *Options) URL {
	return URL{spec: spec, parsed: parsed, valid: valid, opts: opts}
}

// New canonicalizes spec. The result may be invalid, check [URL.IsValid].
func New[T constraints.Byteseq](spec T, opts *Options) URL {
	var out canon.Buffer
	parsed, ok := canon.Canonicalize(spec, opts.canon(), &out)
	return newURL(out.String(), parsed, ok, opts)
}

// Parse canonicalizes spec and reports invalid input as an error.
//
// Blank input fails with [ErrEmptyInput]. Input that canonicalizes into an
// invalid URL fails with [ErrInvalidURL]; the returned URL is still the
// best-effort result and can be shown to users.
func Parse[T constraints.Byteseq](spec T, opts *Options) (URL, error) {
	if begin, end := parse.TrimURL(spec); begin == end {
		return URL{opts: opts}, errtrace.Wrap(ErrEmptyInput)
	}

	u := New(spec, opts)
	if !u.valid {
		opts.log().Debug("invalid URL parsed", "input", log.StringValue(spec), "url", u)
		return u, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidURL, "%q", u.spec))
	}
	return u, nil
}

// MustParse is like [Parse] with default options but panics on error.
func MustParse(spec string) URL {
	u, err := Parse(spec, nil)
	if err != nil {
		panic(err)
	}
	return u
}

// IsValid reports whether the URL can be used to load a resource.
func (u URL) IsValid() bool { return u.valid }

// IsEmpty reports whether the URL has no spec at all.
func (u URL) IsEmpty() bool { return u.spec == "" }

// Spec returns the canonical string of a valid URL.
// Asking for the spec of an invalid URL is a programming error:
// it is logged and an empty string is returned.
// Use [URL.PossiblyInvalidSpec] to display any URL.
func (u URL) Spec() string {
	if u.valid || u.spec == "" {
		return u.spec
	}
	u.opts.log().Error("spec of an invalid URL requested", "url", u)
	return ""
}

// PossiblyInvalidSpec returns the canonical string, valid or not.
func (u URL) PossiblyInvalidSpec() string { return u.spec }

// Parsed returns the component offsets into [URL.PossiblyInvalidSpec].
func (u URL) Parsed() parse.Parsed {
	if u.spec == "" {
		return parse.NewParsed()
	}
	return u.parsed
}

func (u URL) component(t parse.ComponentType) parse.Component {
	if u.spec == "" {
		return parse.Absent()
	}
	return *u.parsed.Get(t)
}

func (u URL) componentString(t parse.ComponentType) string {
	comp := u.component(t)
	if comp.Len <= 0 {
		return ""
	}
	return parse.Substr(u.spec, comp)
}

// Scheme returns the lower-case scheme, without the colon.
func (u URL) Scheme() string { return u.componentString(parse.Scheme) }

// Username returns the escaped username.
func (u URL) Username() string { return u.componentString(parse.Username) }

// Password returns the escaped password.
func (u URL) Password() string { return u.componentString(parse.Password) }

// Host returns the canonical host. IPv6 addresses keep their brackets.
func (u URL) Host() string { return u.componentString(parse.Host) }

// Port returns the port as written in the canonical URL.
// Default ports are never written, see [URL.EffectiveIntPort].
func (u URL) Port() string { return u.componentString(parse.Port) }

// Path returns the path including the leading slash.
func (u URL) Path() string { return u.componentString(parse.Path) }

// Query returns the query without the leading '?'.
func (u URL) Query() string { return u.componentString(parse.Query) }

// Ref returns the fragment without the leading '#'.
func (u URL) Ref() string { return u.componentString(parse.Ref) }

// HasScheme reports whether the URL has a scheme, even an empty one.
func (u URL) HasScheme() bool { return u.component(parse.Scheme).IsValid() }

// HasUsername reports whether the URL has a username.
func (u URL) HasUsername() bool { return u.component(parse.Username).IsValid() }

// HasPassword reports whether the URL has a password, even an empty one.
func (u URL) HasPassword() bool { return u.component(parse.Password).IsValid() }

// HasHost reports whether the URL has a host.
func (u URL) HasHost() bool { return u.component(parse.Host).IsValid() }

// HasPort reports whether the URL has an explicit non-default port.
func (u URL) HasPort() bool { return u.component(parse.Port).IsValid() }

// HasPath reports whether the URL has a path.
func (u URL) HasPath() bool { return u.component(parse.Path).IsValid() }

// HasQuery reports whether the URL has a query, even an empty one.
func (u URL) HasQuery() bool { return u.component(parse.Query).IsValid() }

// HasRef reports whether the URL has a fragment, even an empty one.
func (u URL) HasRef() bool { return u.component(parse.Ref).IsValid() }

// HostNoBrackets is [URL.Host] with the brackets of an IPv6 address removed.
func (u URL) HostNoBrackets() string {
	h := u.Host()
	if len(h) >= 2 && h[0] == '[' && h[len(h)-1] == ']' {
		return h[1 : len(h)-1]
	}
	return h
}

// SchemeIs reports whether the URL has the given scheme, ignoring ASCII case.
func (u URL) SchemeIs(scheme string) bool {
	return canon.CompareSchemeComponent(u.spec, u.component(parse.Scheme), util.LCase(scheme))
}

// SchemeIsHTTPOrHTTPS reports whether the scheme is http or https.
func (u URL) SchemeIsHTTPOrHTTPS() bool { return u.SchemeIs("http") || u.SchemeIs("https") }

// SchemeIsWSOrWSS reports whether the scheme is ws or wss.
func (u URL) SchemeIsWSOrWSS() bool { return u.SchemeIs("ws") || u.SchemeIs("wss") }

// SchemeIsSecure reports whether the scheme is https or wss.
func (u URL) SchemeIsSecure() bool { return u.SchemeIs("https") || u.SchemeIs("wss") }

// SchemeIsFile reports whether the scheme is file.
func (u URL) SchemeIsFile() bool { return u.SchemeIs("file") }

// IsStandard reports whether the scheme is a standard one in the registry of the URL options.
func (u URL) IsStandard() bool {
	scheme := u.component(parse.Scheme)
	if !scheme.IsNonEmpty() {
		return false
	}
	return canon.IsStandard(u.spec[:scheme.End()+1], u.opts.canon())
}

// IntPort returns the explicit port number, [parse.PortUnspecified] when
// there is none or [parse.PortInvalid].
func (u URL) IntPort() int { return parse.ParsePort(u.spec, u.component(parse.Port)) }

// EffectiveIntPort is [URL.IntPort] that falls back to the default port of
// standard schemes.
func (u URL) EffectiveIntPort() int {
	port := u.IntPort()
	if port == parse.PortUnspecified && u.IsStandard() {
		return canon.DefaultPortForScheme(u.Scheme())
	}
	return port
}

// HostIsIPAddress reports whether the host of a valid URL is an IPv4 or IPv6 address.
func (u URL) HostIsIPAddress() bool {
	host := u.component(parse.Host)
	if !u.valid || !host.IsNonEmpty() {
		return false
	}
	var out canon.Buffer
	info := canon.CanonicalizeIPAddress(u.spec, host, &out)
	return info.IsIPAddress()
}

// ExtractFileName returns the last path segment without ";params".
func (u URL) ExtractFileName() string {
	comp := parse.ExtractFileName(u.spec, u.component(parse.Path))
	if comp.Len <= 0 {
		return ""
	}
	return parse.Substr(u.spec, comp)
}

// Resolve resolves the reference ref against u with the options of u.
// It fails with [ErrResolveFailed] and returns the empty invalid URL when u
// is invalid or ref can't be used with it.
func (u URL) Resolve(ref string) (URL, error) {
	if !u.valid {
		return URL{opts: u.opts}, errtrace.Wrap(errorutil.NewWrapperError(ErrResolveFailed, "invalid base %q", u.spec))
	}

	var out canon.Buffer
	parsed, ok := canon.ResolveRelative(u.spec, u.parsed, ref, u.opts.canon(), &out)
	if !ok {
		u.opts.log().Debug("URL resolve failed", "base", u, "ref", ref, "result", out.String())
		return URL{opts: u.opts}, errtrace.Wrap(errorutil.NewWrapperError(ErrResolveFailed, "%q against %q", ref, u.spec))
	}
	return newURL(out.String(), parsed, true, u.opts), nil
}

// RenderTo writes the possibly invalid spec to w.
func (u URL) RenderTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, u.spec))
}

// Render returns the possibly invalid spec.
func (u URL) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the possibly invalid spec.
func (u URL) String() string { return u.spec }

// Format implements [fmt.Formatter].
// The '+' flag of the "s" and "v" verbs marks invalid URLs,
// "%#v" prints the Go representation.
func (u URL) Format(f fmt.State, verb rune) {
	switch {
	case verb == 's', verb == 'v' && !f.Flag('#'):
		if f.Flag('+') && !u.valid && u.spec != "" {
			fmt.Fprint(f, "(invalid) ")
		}
		u.RenderTo(f) //nolint:errcheck
		return
	case verb == 'q':
		fmt.Fprint(f, strconv.Quote(u.spec))
		return
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), URL(u))
		return
	}
}

// LogValue implements [slog.LogValuer].
func (u URL) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("spec", u.spec),
		slog.Bool("valid", u.valid),
	)
}

// Equal reports whether val is a URL, or a pointer to one, with the same
// spec and validity.
func (u URL) Equal(val any) bool {
	var other URL
	switch v := val.(type) {
	case URL:
		other = v
	case *URL:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return u.valid == other.valid && u.spec == other.spec
}

// Compare orders URLs by their specs.
func (u URL) Compare(other URL) int { return strings.Compare(u.spec, other.spec) }

// MarshalText implements [encoding.TextMarshaler].
func (u URL) MarshalText() ([]byte, error) { return []byte(u.spec), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
// Empty text produces the empty URL.
func (u *URL) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*u = URL{}
		return nil
	}
	u1, err := Parse(text, nil)
	if err != nil {
		*u = URL{}
		return errtrace.Wrap(err)
	}
	*u = u1
	return nil
}
