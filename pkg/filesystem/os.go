package filesystem

import "github.com/spf13/afero"

// NewOS returns a Writer backed by the real filesystem
func NewOS() *Writer {
	return NewWriter(afero.NewOsFs())
}

// NewMemory returns a Writer backed by an in-memory filesystem
func NewMemory() *Writer {
	return NewWriter(afero.NewMemMapFs())
}
