package makefile

import (
	"strings"

	"github.com/arthur-debert/devmk/pkg/types"
)

// SerializeProduct renders the product fragment: namespaces, copied files,
// packages, per-partition properties and the fingerprint override, in that
// order. Partitions without properties are skipped.
func SerializeProduct(mk types.ProductMakefile) string {
	blocks := []string{Header}

	blocks = appendContBlock(blocks, "PRODUCT_SOONG_NAMESPACES", mk.Namespaces)
	blocks = appendContBlock(blocks, "PRODUCT_COPY_FILES", mk.CopyFiles)
	blocks = appendContBlock(blocks, "PRODUCT_PACKAGES", mk.Packages)

	if mk.Props != nil {
		for _, partition := range mk.Props.Partitions() {
			props, _ := mk.Props.Lookup(partition)
			if props.Len() == 0 {
				continue
			}
			blocks = appendContBlock(blocks, propertiesVariable(partition), props.Lines())
		}
	}

	if mk.Fingerprint != nil {
		blocks = append(blocks, "PRODUCT_OVERRIDE_FINGERPRINT += "+*mk.Fingerprint)
	}

	return joinBlocks(blocks)
}

func propertiesVariable(partition string) string {
	return "PRODUCT_" + strings.ToUpper(partition) + "_PROPERTIES"
}
