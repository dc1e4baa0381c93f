// Package canon canonicalizes URLs and resolves relative references.
//
// # Overview
//
// Every URL is dispatched by its scheme to one of four classes:
//
//   - standard URLs (http, https, ftp, ws, wss, gopher and any scheme added
//     to a [SchemeRegistry]) have an authority and a hierarchical path;
//   - file URLs have an optional UNC host and a path that may start with a drive letter;
//   - mailto URLs have only a path and a query;
//   - every other scheme is a path URL: the content after the colon is kept
//     almost verbatim.
//
// Canonicalization never stops at the first error. Invalid input still produces
// a deterministic, escaped output string, and the boolean result reports whether
// the URL is valid. The produced [parse.Parsed] always describes the output,
// never the input.
//
//	var out canon.Buffer
//	parsed, ok := canon.Canonicalize("HTTP://Example.COM:80/a/./b/../c", nil, &out)
//	// out.String() == "http://example.com/a/c", ok == true
//
// # Collaborators
//
// Non-ASCII host names are converted with a [HostTranscoder], by default
// the IDNA lookup profile of golang.org/x/net/idna. Query strings may be
// converted to a legacy charset with a [CharsetConverter]; without one
// they are encoded as UTF-8.
package canon

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -source=collab.go -destination=canonmock/mocks.go -package=canonmock
