// Package domain contains the core types for the embedded-GraphQL
// parsing pipeline.
package domain

// File identifies a source file by its path relative to a base directory.
// A File is immutable once handed to the pipeline for a parse pass.
type File struct {
	// RelPath is the path relative to the base directory.
	RelPath string

	// Signature optionally carries a precomputed content signature.
	// When empty, consumers compute it from the file content on demand.
	Signature string
}

// NewFile creates a File for the given relative path.
func NewFile(relPath string) File {
	return File{RelPath: relPath}
}

// WithSignature returns a copy of the file carrying a precomputed signature.
func (f File) WithSignature(sig string) File {
	f.Signature = sig
	return f
}
