package canon

import (
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

func isRemovableURLWhitespace(ch byte) bool { return ch == '\t' || ch == '\r' || ch == '\n' }

// RemoveURLWhitespace drops tabs, CRs and LFs from anywhere in spec.
// Spaces are kept. spec is returned unchanged when there is nothing to remove.
func RemoveURLWhitespace[T constraints.Byteseq](spec T) T {
	found := false
	for i := 0; i < len(spec); i++ {
		if isRemovableURLWhitespace(spec[i]) {
			found = true
			break
		}
	}
	if !found {
		return spec
	}

	b := make([]byte, 0, len(spec))
	for i := 0; i < len(spec); i++ {
		if !isRemovableURLWhitespace(spec[i]) {
			b = append(b, spec[i])
		}
	}
	return T(b)
}

// Canonicalize writes the canonical form of spec to out.
//
// The scheme selects the URL class: "file", the standard schemes of the
// registry, "mailto", and path URLs for everything else. Input without a
// scheme can't be canonicalized on its own: nothing is written and the
// result is false.
func Canonicalize[T constraints.Byteseq](spec T, opts *Options, out *Buffer) (parse.Parsed, bool) {
	spec = RemoveURLWhitespace(spec)

	scheme, ok := parse.ExtractScheme(spec)
	if !ok {
		return parse.NewParsed(), false
	}

	switch {
	case CompareSchemeComponent(spec, scheme, "file"):
		return CanonicalizeFileURL(spec, parse.ParseFileURL(spec), opts, out)
	case isStandardScheme(opts.schemes(), spec, scheme):
		return CanonicalizeStandardURL(spec, parse.ParseStandardURL(spec), opts, out)
	case CompareSchemeComponent(spec, scheme, "mailto"):
		return CanonicalizeMailtoURL(spec, parse.ParseMailtoURL(spec), out)
	default:
		return CanonicalizePathURL(spec, parse.ParsePathURL(spec), out)
	}
}

// IsStandard reports whether the scheme of spec is standard per opts.
func IsStandard[T constraints.Byteseq](spec T, opts *Options) bool {
	spec = RemoveURLWhitespace(spec)
	scheme, ok := parse.ExtractScheme(spec)
	return ok && isStandardScheme(opts.schemes(), spec, scheme)
}
