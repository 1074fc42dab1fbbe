package config

import (
	"io"
	"strings"

	"github.com/arthur-debert/devmk/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a description file format
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name; "yml" is accepted for YAML
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s)
	}
}

// Extension returns the file extension for the format, with the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// Sample returns an example description covering every section
func Sample() *Description {
	return &Description{
		Device:         "oriole",
		Vendor:         "google_devices",
		ProprietaryDir: "vendor/{vendor}/{device}/proprietary",
		OutputDir:      "vendor/google_devices/oriole",
		Output: OutputFiles{
			Modules: "Android.mk",
			Product: "{device}-vendor.mk",
			Board:   "BoardConfigVendor.mk",
		},
		Modules: &ModulesSection{
			RadioFiles: []string{"bootloader.img", "radio.img"},
			Symlinks: []SymlinkDef{
				{
					Module:    "libfoo_symlink",
					Partition: "vendor",
					Subpath:   "lib64/libfoo.so",
					Target:    "/vendor/lib64/egl/libfoo.so",
				},
			},
		},
		Product: ProductSection{
			Namespaces: []string{"vendor/google_devices/oriole"},
			Packages:   []string{"libfoo_symlink"},
			Blobs: []BlobDef{
				{
					Partition: "vendor",
					Path:      "etc/permissions/foo.xml",
					SrcPath:   "vendor/etc/permissions/foo.xml",
				},
			},
			Props: []PropsDef{
				{
					Partition:  "vendor",
					Properties: []string{"ro.vendor.camera.extensions=true"},
				},
			},
		},
		Board: &BoardSection{
			AbOtaPartitions: []string{"boot", "system", "vendor"},
			BoardInfo:       stringPtr("vendor/google_devices/oriole/board-info.txt"),
		},
	}
}

// Encode writes desc to w in the given format
func Encode(w io.Writer, desc *Description, format Format) error {
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(desc); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode TOML")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(desc); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown format: %s", format)
	}
	return nil
}

func stringPtr(s string) *string {
	return &s
}
