package types

// BlobEntry is one file copied from the proprietary source tree into a
// partition's output tree.
type BlobEntry struct {
	// Partition the file is installed to, e.g. "vendor"
	Partition string
	// Path inside the partition
	Path string
	// SrcPath relative to the proprietary directory
	SrcPath string
}
