package makefile

import (
	"testing"

	"github.com/arthur-debert/devmk/pkg/props"
	"github.com/arthur-debert/devmk/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestSerializeProductFull(t *testing.T) {
	pp := props.New()
	pp.Set("system", "ro.a", "1")
	pp.Set("system", "ro.b", "two words")
	pp.Partition("odm")
	pp.Set("vendor", "ro.vendor.x", "y")

	mk := types.ProductMakefile{
		Namespaces:  []string{"vendor/google/oriole"},
		CopyFiles:   []string{"p/a:$(PRODUCT_OUT)/a", "p/b:$(TARGET_COPY_OUT_VENDOR)/b"},
		Packages:    []string{"libfoo", "Bar"},
		Props:       pp,
		Fingerprint: types.StringPtr("google/oriole/oriole:14/UP1A/1:user/release-keys"),
	}

	want := Header + "\n\n" +
		"PRODUCT_SOONG_NAMESPACES += \\\n    vendor/google/oriole\n\n" +
		"PRODUCT_COPY_FILES += \\\n    p/a:$(PRODUCT_OUT)/a \\\n    p/b:$(TARGET_COPY_OUT_VENDOR)/b\n\n" +
		"PRODUCT_PACKAGES += \\\n    libfoo \\\n    Bar\n\n" +
		"PRODUCT_SYSTEM_PROPERTIES += \\\n    ro.a=1 \\\n    ro.b=two words\n\n" +
		"PRODUCT_VENDOR_PROPERTIES += \\\n    ro.vendor.x=y\n\n" +
		"PRODUCT_OVERRIDE_FINGERPRINT += google/oriole/oriole:14/UP1A/1:user/release-keys"

	assert.Equal(t, want, SerializeProduct(mk))
}

func TestSerializeProductAbsentFields(t *testing.T) {
	got := SerializeProduct(types.ProductMakefile{})
	assert.Equal(t, Header, got)

	for _, name := range []string{
		"PRODUCT_SOONG_NAMESPACES", "PRODUCT_COPY_FILES", "PRODUCT_PACKAGES",
		"_PROPERTIES", "PRODUCT_OVERRIDE_FINGERPRINT",
	} {
		assert.NotContains(t, got, name)
	}
}

func TestSerializeProductSkipsEmptyPartitions(t *testing.T) {
	pp := props.New()
	pp.Partition("vendor")

	got := SerializeProduct(types.ProductMakefile{Props: pp})
	assert.NotContains(t, got, "PRODUCT_VENDOR_PROPERTIES")
	assert.Equal(t, Header, got)
}

func TestSerializeProductEmptyListsStillEmit(t *testing.T) {
	got := SerializeProduct(types.ProductMakefile{Packages: []string{}})
	assert.Equal(t, Header+"\n\nPRODUCT_PACKAGES += \\\n    ", got)
}

func TestSerializeProductKeepsPartitionCase(t *testing.T) {
	pp := props.New()
	pp.Set("system_ext", "ro.x", "1")

	got := SerializeProduct(types.ProductMakefile{Props: pp})
	assert.Contains(t, got, "PRODUCT_SYSTEM_EXT_PROPERTIES += \\\n    ro.x=1")
}

func TestSerializeProductEmptyFingerprint(t *testing.T) {
	got := SerializeProduct(types.ProductMakefile{Fingerprint: types.StringPtr("")})
	assert.Equal(t, Header+"\n\nPRODUCT_OVERRIDE_FINGERPRINT += ", got)
}
