// Package types defines the records rendered into make fragments.
// This includes BlobEntry and Symlink, as well as the per-fragment inputs
// ModulesMakefile, ProductMakefile and BoardMakefile.
//
// Optional list fields use nil for "absent"; a non-nil empty slice is present.
// Optional scalar fields are pointers.
package types
