// Package uri provides the URL value type built on top of packages parse and canon.
//
// # Overview
//
// A [URL] holds a canonical URL string, the offsets of its components and a
// validity flag. It is immutable: every operation returns a new value.
//
//	u, err := uri.Parse("HTTP://User@Example.COM:80/a/../b?q#frag", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// u.Spec() == "http://User@example.com/b?q#frag"
//	// u.Host() == "example.com", u.EffectiveIntPort() == 80
//
// Input that can't form a valid URL still produces a value. Such a value is
// safe to print with [URL.PossiblyInvalidSpec] or [URL.String], but
// [URL.Spec] refuses to return it.
//
// # Resolving references
//
// [URL.Resolve] resolves a relative reference against a valid base URL:
//
//	base := uri.MustParse("http://www.google.com/foo/")
//	u, _ := base.Resolve("../../../hello/./world.html?a#b")
//	// u.Spec() == "http://www.google.com/hello/world.html?a#b"
//
// # Options
//
// [Options] selects the scheme registry, the query charset and the IDNA
// transcoder used by canonicalization, and the logger for diagnostics.
// The options of a URL are reused by [URL.Resolve] and the other operations
// producing new URLs.
package uri
