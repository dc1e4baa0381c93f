package canon

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/internal/errorutil"
	"github.com/ghettovoice/urlcanon/internal/log"
	"github.com/ghettovoice/urlcanon/internal/util"
	"github.com/ghettovoice/urlcanon/parse"
)

// builtinStandardSchemes are always registered.
var builtinStandardSchemes = []string{"http", "https", "file", "ftp", "gopher", "ws", "wss"}

const (
	registryOpen   = "open"
	registryLocked = "locked"

	triggerAdd  = "add"
	triggerLock = "lock"
)

// RegistryOptions configures a [SchemeRegistry].
type RegistryOptions struct {
	// Log is used to report registrations.
	// If nil, the process default logger is used.
	Log *slog.Logger
}

func (o *RegistryOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// SchemeRegistry is the set of schemes parsed as standard URLs.
//
// A registry goes through two phases: while open, schemes can be added;
// after [SchemeRegistry.Lock] it is read-only. Lookups are lock-free and
// safe for concurrent use in both phases.
type SchemeRegistry struct {
	sm      *stateless.StateMachine
	mu      sync.Mutex
	schemes atomic.Pointer[[]string]
	log     *slog.Logger
}

// NewSchemeRegistry returns an open registry with the built-in standard schemes.
func NewSchemeRegistry(opts *RegistryOptions) *SchemeRegistry {
	r := &SchemeRegistry{log: opts.log()}
	schemes := slices.Clone(builtinStandardSchemes)
	r.schemes.Store(&schemes)

	r.sm = stateless.NewStateMachine(registryOpen)
	r.sm.Configure(registryOpen).
		InternalTransition(triggerAdd, r.add).
		Permit(triggerLock, registryLocked)
	r.sm.Configure(registryLocked).
		OnEntry(func(context.Context, ...any) error {
			r.log.Debug("standard scheme registry locked", "schemes", log.FmtValue(*r.schemes.Load()))
			return nil
		}).
		Ignore(triggerLock)
	return r
}

// DefaultRegistry is used when no registry is given in [Options].
var DefaultRegistry = NewSchemeRegistry(nil)

// AddStandardScheme registers name as a standard scheme.
// The name is lower-cased; adding a known scheme is a no-op.
// It fails with [ErrSchemesLocked] after [SchemeRegistry.Lock].
func (r *SchemeRegistry) AddStandardScheme(name string) error {
	if !isValidSchemeName(name) {
		r.log.Warn("rejected standard scheme", "scheme", name)
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme, "%q", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if ok, _ := r.sm.IsInState(registryLocked); ok {
		r.log.Warn("rejected standard scheme", "scheme", name, "error", ErrSchemesLocked)
		return errtrace.Wrap(errorutil.NewWrapperError(ErrSchemesLocked, "add %q", name))
	}
	return errtrace.Wrap(r.sm.Fire(triggerAdd, util.LCase(name)))
}

func (r *SchemeRegistry) add(_ context.Context, args ...any) error {
	name := args[0].(string) //nolint:forcetypeassert
	cur := *r.schemes.Load()
	if slices.Contains(cur, name) {
		return nil
	}
	next := append(slices.Clip(cur), name)
	r.schemes.Store(&next)
	r.log.Debug("standard scheme added", "scheme", name)
	return nil
}

// Lock makes the registry read-only. Calling it again does nothing.
func (r *SchemeRegistry) Lock() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sm.Fire(triggerLock) //nolint:errcheck
}

// IsLocked reports whether [SchemeRegistry.Lock] was called.
func (r *SchemeRegistry) IsLocked() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ok, _ := r.sm.IsInState(registryLocked)
	return ok
}

// Schemes returns a copy of the registered schemes in registration order.
func (r *SchemeRegistry) Schemes() []string { return slices.Clone(*r.schemes.Load()) }

// IsStandard reports whether scheme is registered, ignoring ASCII case.
func (r *SchemeRegistry) IsStandard(scheme string) bool {
	return isStandardScheme(r, scheme, parse.MakeRange(0, len(scheme)))
}

func isStandardScheme[T constraints.Byteseq](r *SchemeRegistry, spec T, scheme parse.Component) bool {
	if !scheme.IsNonEmpty() {
		return false
	}
	for _, s := range *r.schemes.Load() {
		if CompareSchemeComponent(spec, scheme, s) {
			return true
		}
	}
	return false
}

// CompareSchemeComponent reports whether the scheme component of spec equals
// the lower-case name cmp, ignoring ASCII case.
func CompareSchemeComponent[T constraints.Byteseq](spec T, scheme parse.Component, cmp string) bool {
	if !scheme.IsValid() || scheme.Len != len(cmp) {
		return false
	}
	for i := range scheme.Len {
		ch := spec[scheme.Begin+i]
		if 'A' <= ch && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		if ch != cmp[i] {
			return false
		}
	}
	return true
}

// FindAndCompareScheme extracts the scheme of spec and compares it with the
// lower-case name cmp. Tabs and newlines are removed from spec first, and the
// returned component, absent if spec has no scheme, points into that cleaned input.
func FindAndCompareScheme[T constraints.Byteseq](spec T, cmp string) (parse.Component, bool) {
	spec = RemoveURLWhitespace(spec)
	scheme, ok := parse.ExtractScheme(spec)
	if !ok {
		return parse.Absent(), false
	}
	return scheme, CompareSchemeComponent(spec, scheme, cmp)
}

func isValidSchemeName(name string) bool {
	if name == "" || !isASCIIAlpha(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if CanonicalSchemeChar(name[i]) == 0 {
			return false
		}
	}
	return true
}
