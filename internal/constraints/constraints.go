// Package constraints provides type constraints shared by the URL packages.
package constraints

// Byteseq is an input accepted by the parsers: a string or a byte slice.
type Byteseq interface {
	~string | ~[]byte
}
