package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/devmk/pkg/errors"
	"github.com/arthur-debert/devmk/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orioleTOML = `
device = "oriole"
vendor = "google_devices"

[modules]
radio_files = ["bootloader.img", "radio.img"]

[[modules.symlinks]]
module = "libfoo_link"
partition = "vendor"
subpath = "lib64/libfoo.so"
target = "/vendor/lib64/egl/libfoo.so"

[[modules.symlinks]]
module = "libbar_link"
partition = "system"
subpath = "lib/libbar.so"
target = "/system/lib64/libbar.so"

[product]
namespaces = ["vendor/google_devices/oriole"]
packages = []
copy_files = ["extra/a.txt:$(PRODUCT_OUT)/a.txt"]
fingerprint = "google/oriole/oriole:14/UP1A/1:user/release-keys"

[[product.blobs]]
partition = "vendor"
path = "etc/foo.xml"
src_path = "vendor/etc/foo.xml"

[[product.props]]
partition = "vendor"
properties = ["ro.z=1", "ro.a=2"]

[[product.props]]
partition = "odm"

[board]
ab_ota_partitions = ["boot", "vendor"]
`

func TestLoadTOML(t *testing.T) {
	testutil.IsolateEnv(t)
	path := testutil.CreateFile(t, t.TempDir(), "devmk.toml", orioleTOML)

	desc, err := Load(path)
	require.NoError(t, err)

	t.Run("defaults_are_applied_and_expanded", func(t *testing.T) {
		assert.Equal(t, "vendor/google_devices/oriole/proprietary", desc.ProprietaryDir)
		assert.Equal(t, "Android.mk", desc.Output.Modules)
		assert.Equal(t, "oriole-vendor.mk", desc.Output.Product)
		assert.Equal(t, "BoardConfigVendor.mk", desc.Output.Board)
		assert.Equal(t, ".", desc.OutputDir)
		assert.Equal(t, filepath.Dir(path), desc.BaseDir())
	})

	t.Run("modules", func(t *testing.T) {
		mk := desc.ModulesMakefile()
		assert.Equal(t, "oriole", mk.Device)
		assert.Equal(t, "google_devices", mk.Vendor)
		assert.Equal(t, []string{"bootloader.img", "radio.img"}, mk.RadioFiles)
		require.Len(t, mk.Symlinks, 2)
		assert.Equal(t, "libfoo_link", mk.Symlinks[0].ModuleName)
		assert.Equal(t, "vendor", mk.Symlinks[0].LinkPartition)
		assert.Equal(t, "lib64/libfoo.so", mk.Symlinks[0].LinkSubpath)
		assert.Equal(t, "/vendor/lib64/egl/libfoo.so", mk.Symlinks[0].TargetPath)
		assert.Equal(t, "libbar_link", mk.Symlinks[1].ModuleName)
	})

	t.Run("product", func(t *testing.T) {
		mk, err := desc.ProductMakefile()
		require.NoError(t, err)

		assert.Equal(t, []string{"vendor/google_devices/oriole"}, mk.Namespaces)
		assert.NotNil(t, mk.Packages, "an explicitly empty list stays present")
		assert.Empty(t, mk.Packages)
		assert.Equal(t, []string{
			"extra/a.txt:$(PRODUCT_OUT)/a.txt",
			"vendor/google_devices/oriole/proprietary/vendor/etc/foo.xml:$(TARGET_COPY_OUT_VENDOR)/etc/foo.xml",
		}, mk.CopyFiles)
		require.NotNil(t, mk.Fingerprint)
		assert.Equal(t, "google/oriole/oriole:14/UP1A/1:user/release-keys", *mk.Fingerprint)

		require.NotNil(t, mk.Props)
		assert.Equal(t, []string{"vendor", "odm"}, mk.Props.Partitions())
		vendor, ok := mk.Props.Lookup("vendor")
		require.True(t, ok)
		assert.Equal(t, []string{"ro.z=1", "ro.a=2"}, vendor.Lines())
	})

	t.Run("board", func(t *testing.T) {
		mk := desc.BoardMakefile()
		assert.Equal(t, []string{"boot", "vendor"}, mk.AbOtaPartitions)
		assert.Nil(t, mk.BoardInfo)
	})
}

func TestLoadYAML(t *testing.T) {
	testutil.IsolateEnv(t)
	path := testutil.CreateFile(t, t.TempDir(), "devmk.yaml", `
device: raven
vendor: google_devices
product:
  packages: [a, b]
board:
  board_info: vendor/google_devices/raven/board-info.txt
`)

	desc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "raven", desc.Device)
	assert.Nil(t, desc.Modules)

	mk, err := desc.ProductMakefile()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, mk.Packages)
	assert.Nil(t, mk.Namespaces)
	assert.Nil(t, mk.CopyFiles)
	assert.Nil(t, mk.Props)
	assert.Nil(t, mk.Fingerprint)

	board := desc.BoardMakefile()
	assert.Nil(t, board.AbOtaPartitions)
	require.NotNil(t, board.BoardInfo)
	assert.Equal(t, "vendor/google_devices/raven/board-info.txt", *board.BoardInfo)
}

func TestLoadLayers(t *testing.T) {
	t.Run("user_config_then_description", func(t *testing.T) {
		testutil.IsolateEnv(t)
		userDir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "devmk")
		require.NoError(t, os.MkdirAll(userDir, 0755))
		testutil.CreateFile(t, userDir, "config.toml", `
vendor = "from_user"
output_dir = "out/user"
`)
		path := testutil.CreateFile(t, t.TempDir(), "devmk.toml", `
device = "oriole"
vendor = "from_description"
`)

		desc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from_description", desc.Vendor)
		assert.Equal(t, "out/user", desc.OutputDir)
	})

	t.Run("skip_user_config", func(t *testing.T) {
		testutil.IsolateEnv(t)
		userDir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "devmk")
		require.NoError(t, os.MkdirAll(userDir, 0755))
		testutil.CreateFile(t, userDir, "config.toml", `output_dir = "out/user"`)
		path := testutil.CreateFile(t, t.TempDir(), "devmk.toml", `device = "oriole"`)

		desc, err := LoadWithOptions(LoadOptions{Path: path, SkipUserConfig: true})
		require.NoError(t, err)
		assert.Equal(t, ".", desc.OutputDir)
	})

	t.Run("environment_overrides_description", func(t *testing.T) {
		testutil.IsolateEnv(t)
		t.Setenv("DEVMK_VENDOR", "from_env")
		t.Setenv("DEVMK_PRODUCT__FINGERPRINT", "env/fingerprint")
		t.Setenv("DEVMK_PRODUCT__PACKAGES", "x,y")
		path := testutil.CreateFile(t, t.TempDir(), "devmk.toml", `
device = "oriole"
vendor = "from_description"
`)

		desc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from_env", desc.Vendor)
		require.NotNil(t, desc.Product.Fingerprint)
		assert.Equal(t, "env/fingerprint", *desc.Product.Fingerprint)
		assert.Equal(t, []string{"x", "y"}, desc.Product.Packages)
	})

	t.Run("overrides_win", func(t *testing.T) {
		testutil.IsolateEnv(t)
		t.Setenv("DEVMK_OUTPUT_DIR", "out/env")
		path := testutil.CreateFile(t, t.TempDir(), "devmk.toml", `device = "oriole"`)

		desc, err := LoadWithOptions(LoadOptions{
			Path:      path,
			Overrides: map[string]interface{}{"output_dir": "out/flag", "output.board": "Board.mk"},
		})
		require.NoError(t, err)
		assert.Equal(t, "out/flag", desc.OutputDir)
		assert.Equal(t, "Board.mk", desc.Output.Board)
	})
}

func TestLoadErrors(t *testing.T) {
	testutil.IsolateEnv(t)

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		path := testutil.CreateFile(t, t.TempDir(), "devmk.json", `{}`)
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("malformed_toml", func(t *testing.T) {
		path := testutil.CreateFile(t, t.TempDir(), "devmk.toml", `device = [`)
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestBuildPropLoading(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := t.TempDir()
	testutil.CreateFile(t, dir, "vendor.prop", "# generated\nro.a=from_file\nro.b=file\n")
	path := testutil.CreateFile(t, dir, "devmk.toml", `
device = "oriole"

[[product.props]]
partition = "vendor"
build_prop = "vendor.prop"
properties = ["ro.b=inline", "ro.c=3"]
`)

	desc, err := Load(path)
	require.NoError(t, err)

	mk, err := desc.ProductMakefile()
	require.NoError(t, err)

	vendor, ok := mk.Props.Lookup("vendor")
	require.True(t, ok)
	assert.Equal(t, []string{"ro.a=from_file", "ro.b=inline", "ro.c=3"}, vendor.Lines())
}

func TestProductMakefileErrors(t *testing.T) {
	t.Run("missing_build_prop", func(t *testing.T) {
		desc := &Description{Product: ProductSection{Props: []PropsDef{{Partition: "vendor", BuildProp: "/does/not/exist.prop"}}}}
		_, err := desc.ProductMakefile()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("bad_inline_property", func(t *testing.T) {
		desc := &Description{Product: ProductSection{Props: []PropsDef{{Partition: "vendor", Properties: []string{"novalue"}}}}}
		_, err := desc.ProductMakefile()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "device", envKey("DEVMK_DEVICE"))
	assert.Equal(t, "output_dir", envKey("DEVMK_OUTPUT_DIR"))
	assert.Equal(t, "product.fingerprint", envKey("DEVMK_PRODUCT__FINGERPRINT"))
	assert.Equal(t, "board.ab_ota_partitions", envKey("DEVMK_BOARD__AB_OTA_PARTITIONS"))
}
