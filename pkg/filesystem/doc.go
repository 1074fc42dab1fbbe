// Package filesystem writes rendered fragments to disk.
//
// Writes go through an afero.Fs so the real filesystem and in-memory test
// filesystems behave the same.
package filesystem
