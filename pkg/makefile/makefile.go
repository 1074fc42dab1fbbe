package makefile

import "strings"

// Header opens every generated fragment
const Header = `# Generated by adevtool; do not edit
# For more info, see https://github.com/kdrag0n/adevtool`

const (
	contSeparator  = " \\\n    "
	blockSeparator = "\n\n"
)

// appendContBlock appends a continuation-style list assignment:
//
//	VARIABLE += \
//	    item1 \
//	    item2
//
// A nil list appends nothing. An empty, non-nil list still appends the
// assignment with no items.
func appendContBlock(blocks []string, variable string, items []string) []string {
	if items == nil {
		return blocks
	}
	return append(blocks, variable+" +="+contSeparator+strings.Join(items, contSeparator))
}

func joinBlocks(blocks []string) string {
	return strings.Join(blocks, blockSeparator)
}
