package canon

import (
	"github.com/ghettovoice/urlcanon/internal/constraints"
	"github.com/ghettovoice/urlcanon/parse"
)

// fileDoDriveSpec writes "/X:" for a drive letter at the start of the path,
// after any slashes, and returns where the rest of the path begins.
func fileDoDriveSpec[T constraints.Byteseq](spec T, begin, end int, out *Buffer) int {
	afterSlashes := begin + parse.CountConsecutiveSlashes(spec[:end], begin)
	if !parse.DoesBeginWindowsDriveSpec(spec[:end], afterSlashes) {
		return begin
	}

	out.Push('/')
	drive := spec[afterSlashes]
	if 'a' <= drive && drive <= 'z' {
		drive -= 'a' - 'A'
	}
	out.Push(drive)
	out.Push(':')
	return afterSlashes + 2
}

func fileCanonicalizePath[T constraints.Byteseq](spec T, path parse.Component, out *Buffer) (parse.Component, bool) {
	begin := out.Len()
	if path.Len <= 0 {
		out.Push('/')
		return parse.MakeRange(begin, out.Len()), true
	}

	success := true
	afterDrive := fileDoDriveSpec(spec, path.Begin, path.End(), out)
	if afterDrive < path.End() {
		_, success = CanonicalizePath(spec, parse.MakeRange(afterDrive, path.End()), out)
	} else {
		out.Push('/')
	}
	return parse.MakeRange(begin, out.Len()), success
}

// CanonicalizeFileURL writes a file URL parsed with [parse.ParseFileURL].
// The scheme is always "file"; username, password and port are dropped.
// Drive letters are upper-cased and "|" after them becomes ':'.
func CanonicalizeFileURL[T constraints.Byteseq](spec T, parsed parse.Parsed, opts *Options, out *Buffer) (parse.Parsed, bool) {
	res := parse.NewParsed()

	res.Scheme = parse.Component{Begin: out.Len(), Len: 4}
	out.AppendString("file://")

	var success, ok bool
	res.Host, success = CanonicalizeHost(spec, parsed.Host, opts.idna(), out)
	res.Path, ok = fileCanonicalizePath(spec, parsed.Path, out)
	success = success && ok

	res.Query = CanonicalizeQuery(spec, parsed.Query, opts.charset(), out)
	res.Ref = CanonicalizeRef(spec, parsed.Ref, out)
	return res, success
}
