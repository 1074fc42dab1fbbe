package makefile

import "github.com/arthur-debert/devmk/pkg/types"

// SerializeBoard renders the board fragment
func SerializeBoard(mk types.BoardMakefile) string {
	blocks := []string{Header}

	blocks = appendContBlock(blocks, "AB_OTA_PARTITIONS", mk.AbOtaPartitions)

	if mk.BoardInfo != nil {
		blocks = append(blocks, "TARGET_BOARD_INFO_FILE := "+*mk.BoardInfo)
	}

	return joinBlocks(blocks)
}
