package makefile

import (
	"strings"

	"github.com/arthur-debert/devmk/pkg/types"
)

// PartitionPath maps a path inside a partition to the make variable of that
// partition's output directory: $(PRODUCT_OUT) for system, otherwise
// $(TARGET_COPY_OUT_<PARTITION>).
func PartitionPath(partition, subpath string) string {
	copyPart := "PRODUCT_OUT"
	if partition != "system" {
		copyPart = "TARGET_COPY_OUT_" + strings.ToUpper(partition)
	}
	return "$(" + copyPart + ")/" + subpath
}

// FileCopy renders a PRODUCT_COPY_FILES entry for a blob: "src:dest".
func FileCopy(entry types.BlobEntry, proprietaryDir string) string {
	return proprietaryDir + "/" + entry.SrcPath + ":" + PartitionPath(entry.Partition, entry.Path)
}

// FileCopies renders FileCopy for every entry, keeping order
func FileCopies(entries []types.BlobEntry, proprietaryDir string) []string {
	copies := make([]string, 0, len(entries))
	for _, entry := range entries {
		copies = append(copies, FileCopy(entry, proprietaryDir))
	}
	return copies
}
