package canon

import (
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

// areSchemesEqual compares the canonical base scheme with the raw scheme of ref.
func areSchemesEqual[T constraints.Byteseq](base string, baseScheme parse.Component, ref T, refScheme parse.Component) bool {
	if baseScheme.Len != refScheme.Len {
		return false
	}
	for i := range baseScheme.Len {
		if CanonicalSchemeChar(ref[refScheme.Begin+i]) != base[baseScheme.Begin+i] {
			return false
		}
	}
	return true
}

// IsRelativeURL decides whether ref is relative to the canonical URL base.
// When it is, relComp is the part of ref to resolve. The result is false when
// ref can't be used with base at all: a reference without a scheme against a
// base that is not hierarchical.
//
// A reference is relative when it has no scheme, an invalid scheme, or the
// scheme of base followed by less than two slashes ("http:foo.html").
func IsRelativeURL[T constraints.Byteseq](
	base string,
	baseParsed parse.Parsed,
	ref T,
	isBaseHierarchical bool,
) (isRelative bool, relComp parse.Component, ok bool) {
	begin, end := parse.TrimURL(ref)
	ref = ref[:end]
	if begin >= end {
		return true, parse.Component{Begin: begin}, true
	}

	// a bare fragment resolves against any base
	if ref[begin] == '#' {
		return true, parse.MakeRange(begin, end), true
	}

	scheme, found := parse.ExtractScheme(ref)
	if !found || scheme.Len == 0 {
		if !isBaseHierarchical {
			return false, parse.Absent(), false
		}
		return true, parse.MakeRange(begin, end), true
	}

	for i := scheme.Begin; i < scheme.End(); i++ {
		if CanonicalSchemeChar(ref[i]) == 0 {
			if !isBaseHierarchical {
				return false, parse.Absent(), false
			}
			return true, parse.MakeRange(begin, end), true
		}
	}

	if !areSchemesEqual(base, baseParsed.Scheme, ref, scheme) {
		return false, parse.Absent(), true
	}
	// "data:foo" against "data:bar" is absolute
	if !isBaseHierarchical {
		return false, parse.Absent(), true
	}

	afterColon := scheme.End() + 1
	if n := parse.CountConsecutiveSlashes(ref, afterColon); n < 2 {
		// "http:foo.html" is a relative path, "http:/foo.html" an absolute one
		return true, parse.MakeRange(afterColon, end), true
	}
	return false, parse.Absent(), true
}

func copyToLastSlash(spec string, begin, end int, out *Buffer) {
	for i := end - 1; i >= begin; i-- {
		if spec[i] == '/' {
			out.AppendString(spec[begin : i+1])
			return
		}
	}
}

func copyOneComponent(spec string, comp parse.Component, out *Buffer) parse.Component {
	if !comp.IsValid() {
		return parse.Absent()
	}
	begin := out.Len()
	out.AppendString(parse.Substr(spec, comp))
	return parse.MakeRange(begin, out.Len())
}

// copyBaseDriveSpecIfNecessary keeps the drive of a file base for a reference
// that has none. It returns where the rest of the base path starts.
func copyBaseDriveSpecIfNecessary[T constraints.Byteseq](base string, basePathBegin, basePathEnd int, ref T, refBegin, refEnd int, out *Buffer) int {
	if basePathBegin >= basePathEnd {
		return basePathBegin
	}
	if parse.DoesBeginWindowsDriveSpec(ref[:refEnd], refBegin) {
		return basePathBegin
	}

	path := base[:basePathEnd]
	if parse.IsURLSlash(path[basePathBegin]) && parse.DoesBeginWindowsDriveSpec(path, basePathBegin+1) {
		out.Push('/')
		out.Push(path[basePathBegin+1])
		out.Push(path[basePathBegin+2])
		return basePathBegin + 3
	}
	return basePathBegin
}

func resolveRelativePath[T constraints.Byteseq](
	base string,
	baseParsed parse.Parsed,
	baseIsFile bool,
	ref T,
	relComp parse.Component,
	opts *Options,
	out *Buffer,
) (parse.Parsed, bool) {
	res := baseParsed
	success := true
	path, query, refComp := parse.ParsePath(ref, relComp)

	// the authority is unchanged
	out.AppendString(base[:baseParsed.Path.Begin])

	if path.Len > 0 {
		truePathBegin := out.Len()
		basePathBegin := baseParsed.Path.Begin
		if baseIsFile {
			basePathBegin = copyBaseDriveSpecIfNecessary(base, baseParsed.Path.Begin, baseParsed.Path.End(),
				ref, relComp.Begin, relComp.End(), out)
		}

		if parse.IsURLSlash(ref[path.Begin]) {
			res.Path, success = CanonicalizePath(ref, path, out)
		} else {
			pathBegin := out.Len()
			copyToLastSlash(base, basePathBegin, baseParsed.Path.End(), out)
			success = CanonicalizePartialPath(ref, path, pathBegin, out)
			res.Path = parse.MakeRange(pathBegin, out.Len())
		}

		res.Query = CanonicalizeQuery(ref, query, opts.charset(), out)
		res.Ref = CanonicalizeRef(ref, refComp, out)
		// the drive written above belongs to the path
		res.Path = parse.MakeRange(truePathBegin, res.Path.End())
		return res, success
	}

	res.Path = copyOneComponent(base, baseParsed.Path, out)
	if query.IsValid() {
		res.Query = CanonicalizeQuery(ref, query, opts.charset(), out)
		res.Ref = CanonicalizeRef(ref, refComp, out)
		return res, success
	}

	if baseParsed.Query.IsValid() {
		out.Push('?')
	}
	res.Query = copyOneComponent(base, baseParsed.Query, out)
	res.Ref = CanonicalizeRef(ref, refComp, out)
	return res, success
}

// ResolveRelativeURL resolves relComp of ref against the canonical URL base.
// It is used after [IsRelativeURL] has reported ref as relative. The output
// buffer must be empty since base offsets are copied into the result.
//
// A base without a path can't be resolved against: base itself is written
// and the result is false.
func ResolveRelativeURL[T constraints.Byteseq](
	base string,
	baseParsed parse.Parsed,
	baseIsFile bool,
	ref T,
	relComp parse.Component,
	opts *Options,
	out *Buffer,
) (parse.Parsed, bool) {
	if baseParsed.Path.Len <= 0 {
		out.AppendString(base[:baseParsed.Length()])
		return baseParsed, false
	}

	if relComp.Len <= 0 {
		// only the ref of base goes away
		res := baseParsed
		n := baseParsed.Length()
		if baseParsed.Ref.IsValid() {
			n -= baseParsed.Ref.Len + 1
		}
		res.Ref.Reset()
		out.AppendString(base[:n])
		return res, true
	}

	numSlashes := parse.CountConsecutiveSlashes(ref[:relComp.End()], relComp.Begin)
	afterSlashes := relComp.Begin + numSlashes
	if baseIsFile && (numSlashes >= 2 || numSlashes == relComp.Len ||
		parse.DoesBeginWindowsDriveSpec(ref[:relComp.End()], afterSlashes)) {
		// UNC hosts, drive letters and bare slashes are parsed as file URLs on their own
		sub := ref[relComp.Begin:relComp.End()]
		return CanonicalizeFileURL(sub, parse.ParseFileURL(sub), opts, out)
	}

	if numSlashes >= 2 {
		// "//host/path" keeps only the scheme of base
		spec := make([]byte, 0, baseParsed.Scheme.Len+1+relComp.Len)
		spec = append(spec, parse.Substr(base, baseParsed.Scheme)...)
		spec = append(spec, ':')
		spec = append(spec, ref[relComp.Begin:relComp.End()]...)
		return Canonicalize(spec, opts, out)
	}

	return resolveRelativePath(base, baseParsed, baseIsFile, ref, relComp, opts, out)
}

// ResolveRelative resolves the reference ref against the canonical URL base
// and writes the canonical result to out, which must be empty.
//
// Absolute references are canonicalized on their own. On failure the output
// holds a best-effort string, usually base itself, and the result is false.
func ResolveRelative[T constraints.Byteseq](base string, baseParsed parse.Parsed, ref T, opts *Options, out *Buffer) (parse.Parsed, bool) {
	ref = RemoveURLWhitespace(ref)

	isHierarchical := false
	if baseParsed.Scheme.IsNonEmpty() {
		isHierarchical = parse.CountConsecutiveSlashes(base, baseParsed.Scheme.End()+1) > 0
	}
	isStandard := isStandardScheme(opts.schemes(), base, baseParsed.Scheme)

	isRelative, relComp, ok := IsRelativeURL(base, baseParsed, ref, isHierarchical || isStandard)
	if !ok {
		out.AppendString(base[:baseParsed.Length()])
		return baseParsed, false
	}
	if isRelative {
		isFile := CompareSchemeComponent(base, baseParsed.Scheme, "file")
		if !CompareSchemeComponent(base, baseParsed.Scheme, "mailto") {
			return ResolveRelativeURL(base, baseParsed, isFile, ref, relComp, opts, out)
		}

		// mailto URLs have no ref, the merged string is parsed again as a whole
		var merged Buffer
		res, ok := ResolveRelativeURL(base, baseParsed, isFile, ref, relComp, opts, &merged)
		if !ok {
			out.Append(merged.Bytes())
			return res, false
		}
		return Canonicalize(merged.Bytes(), opts, out)
	}
	return Canonicalize(ref, opts, out)
}
