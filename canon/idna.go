package canon

import "golang.org/x/net/idna"

// IDNALookup is the default [HostTranscoder]. It maps host names for lookup
// with transitional processing and tolerates characters outside of STD3,
// since escaping has already been applied to them.
var IDNALookup HostTranscoder = idna.New(
	idna.MapForLookup(),
	idna.Transitional(true),
	idna.StrictDomainName(false),
	idna.VerifyDNSLength(false),
)
