// Package constraints provides type constraints shared by generic helpers.
package constraints

// Byteseq is a string or a byte slice holding URL or path text.
type Byteseq interface {
	~string | ~[]byte
}
