package types

import "github.com/arthur-debert/devmk/pkg/props"

// Symlink describes a synthetic module that creates a symlink at
// LinkPartition:LinkSubpath pointing at TargetPath when built.
type Symlink struct {
	ModuleName    string
	LinkPartition string
	LinkSubpath   string
	TargetPath    string
}

// ModulesMakefile is the input of the device-scoped modules fragment (Android.mk)
type ModulesMakefile struct {
	Device string
	Vendor string

	RadioFiles []string

	Symlinks []Symlink
}

// ProductMakefile is the input of the product fragment (<device>-vendor.mk)
type ProductMakefile struct {
	Namespaces []string
	CopyFiles  []string
	Packages   []string

	Props       *props.PartitionProps
	Fingerprint *string
}

// BoardMakefile is the input of the board fragment (BoardConfigVendor.mk)
type BoardMakefile struct {
	AbOtaPartitions []string
	BoardInfo       *string
}

// StringPtr returns a pointer to s, for optional fields
func StringPtr(s string) *string {
	return &s
}
