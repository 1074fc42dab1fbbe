package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/devmk/pkg/errors"
	"github.com/arthur-debert/devmk/pkg/makefile"
	"github.com/arthur-debert/devmk/pkg/props"
	"github.com/arthur-debert/devmk/pkg/types"
)

// Description is the full input of one device's vendor tree
type Description struct {
	Device         string          `koanf:"device" toml:"device" yaml:"device"`
	Vendor         string          `koanf:"vendor" toml:"vendor" yaml:"vendor"`
	ProprietaryDir string          `koanf:"proprietary_dir" toml:"proprietary_dir" yaml:"proprietary_dir"`
	OutputDir      string          `koanf:"output_dir" toml:"output_dir" yaml:"output_dir"`
	Output         OutputFiles     `koanf:"output" toml:"output" yaml:"output"`
	Modules        *ModulesSection `koanf:"modules" toml:"modules,omitempty" yaml:"modules,omitempty"`
	Product        ProductSection  `koanf:"product" toml:"product" yaml:"product"`
	Board          *BoardSection   `koanf:"board" toml:"board,omitempty" yaml:"board,omitempty"`

	// baseDir resolves relative build_prop paths; it is the description file's directory
	baseDir string
}

// OutputFiles names the generated fragment files
type OutputFiles struct {
	Modules string `koanf:"modules" toml:"modules" yaml:"modules"`
	Product string `koanf:"product" toml:"product" yaml:"product"`
	Board   string `koanf:"board" toml:"board" yaml:"board"`
}

// ModulesSection describes the modules fragment
type ModulesSection struct {
	RadioFiles []string     `koanf:"radio_files" toml:"radio_files,omitempty" yaml:"radio_files,omitempty"`
	Symlinks   []SymlinkDef `koanf:"symlinks" toml:"symlinks,omitempty" yaml:"symlinks,omitempty"`
}

// SymlinkDef is a symlink module as written in a description. Module may be
// left out; the name is then derived from the link's basename.
type SymlinkDef struct {
	Module    string `koanf:"module" toml:"module" yaml:"module"`
	Partition string `koanf:"partition" toml:"partition" yaml:"partition"`
	Subpath   string `koanf:"subpath" toml:"subpath" yaml:"subpath"`
	Target    string `koanf:"target" toml:"target" yaml:"target"`
}

// ModuleName returns the explicit module name or one derived from Subpath
func (s SymlinkDef) ModuleName() string {
	if s.Module != "" {
		return s.Module
	}
	return makefile.SanitizeBasename(s.Subpath)
}

// ProductSection describes the product fragment
type ProductSection struct {
	Namespaces  []string   `koanf:"namespaces" toml:"namespaces,omitempty" yaml:"namespaces,omitempty"`
	Packages    []string   `koanf:"packages" toml:"packages,omitempty" yaml:"packages,omitempty"`
	CopyFiles   []string   `koanf:"copy_files" toml:"copy_files,omitempty" yaml:"copy_files,omitempty"`
	Blobs       []BlobDef  `koanf:"blobs" toml:"blobs,omitempty" yaml:"blobs,omitempty"`
	Props       []PropsDef `koanf:"props" toml:"props,omitempty" yaml:"props,omitempty"`
	Fingerprint *string    `koanf:"fingerprint" toml:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}

// BlobDef is a file to copy, rendered into PRODUCT_COPY_FILES
type BlobDef struct {
	Partition string `koanf:"partition" toml:"partition" yaml:"partition"`
	Path      string `koanf:"path" toml:"path" yaml:"path"`
	SrcPath   string `koanf:"src_path" toml:"src_path" yaml:"src_path"`
}

// PropsDef holds the properties of one partition. Properties from BuildProp
// are loaded first; inline Properties are applied after and win.
type PropsDef struct {
	Partition  string   `koanf:"partition" toml:"partition" yaml:"partition"`
	BuildProp  string   `koanf:"build_prop" toml:"build_prop,omitempty" yaml:"build_prop,omitempty"`
	Properties []string `koanf:"properties" toml:"properties,omitempty" yaml:"properties,omitempty"`
}

// BoardSection describes the board fragment
type BoardSection struct {
	AbOtaPartitions []string `koanf:"ab_ota_partitions" toml:"ab_ota_partitions,omitempty" yaml:"ab_ota_partitions,omitempty"`
	BoardInfo       *string  `koanf:"board_info" toml:"board_info,omitempty" yaml:"board_info,omitempty"`
}

// BaseDir returns the directory relative paths are resolved against
func (d *Description) BaseDir() string {
	if d.baseDir == "" {
		return "."
	}
	return d.baseDir
}

// expandPlaceholders substitutes {device} and {vendor}
func (d *Description) expandPlaceholders(s string) string {
	return strings.NewReplacer("{device}", d.Device, "{vendor}", d.Vendor).Replace(s)
}

// Blobs returns the description's blobs as entries
func (d *Description) Blobs() []types.BlobEntry {
	if d.Product.Blobs == nil {
		return nil
	}
	entries := make([]types.BlobEntry, 0, len(d.Product.Blobs))
	for _, b := range d.Product.Blobs {
		entries = append(entries, types.BlobEntry{
			Partition: b.Partition,
			Path:      b.Path,
			SrcPath:   b.SrcPath,
		})
	}
	return entries
}

// ModulesMakefile builds the modules fragment input
func (d *Description) ModulesMakefile() types.ModulesMakefile {
	mk := types.ModulesMakefile{
		Device: d.Device,
		Vendor: d.Vendor,
	}
	if d.Modules == nil {
		return mk
	}

	mk.RadioFiles = d.Modules.RadioFiles
	for _, s := range d.Modules.Symlinks {
		mk.Symlinks = append(mk.Symlinks, types.Symlink{
			ModuleName:    s.ModuleName(),
			LinkPartition: s.Partition,
			LinkSubpath:   s.Subpath,
			TargetPath:    s.Target,
		})
	}
	return mk
}

// ProductMakefile builds the product fragment input. Explicit copy_files come
// first, followed by one entry per blob.
func (d *Description) ProductMakefile() (types.ProductMakefile, error) {
	p := d.Product
	mk := types.ProductMakefile{
		Namespaces:  p.Namespaces,
		Packages:    p.Packages,
		Fingerprint: p.Fingerprint,
	}

	if p.CopyFiles != nil || p.Blobs != nil {
		copies := make([]string, 0, len(p.CopyFiles)+len(p.Blobs))
		copies = append(copies, p.CopyFiles...)
		copies = append(copies, makefile.FileCopies(d.Blobs(), d.ProprietaryDir)...)
		mk.CopyFiles = copies
	}

	if p.Props != nil {
		pp, err := d.partitionProps()
		if err != nil {
			return types.ProductMakefile{}, err
		}
		mk.Props = pp
	}

	return mk, nil
}

func (d *Description) partitionProps() (*props.PartitionProps, error) {
	pp := props.New()

	for _, def := range d.Product.Props {
		set := pp.Partition(def.Partition)

		if def.BuildProp != "" {
			loaded, err := d.loadBuildProp(def.BuildProp)
			if err != nil {
				return nil, err
			}
			for _, prop := range loaded.Entries() {
				set.Set(prop.Key, prop.Value)
			}
		}

		for _, line := range def.Properties {
			prop, err := props.ParseProperty(line)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid property in partition %q", def.Partition).
					WithDetail("partition", def.Partition)
			}
			set.Set(prop.Key, prop.Value)
		}
	}

	return pp, nil
}

func (d *Description) loadBuildProp(path string) (*props.Properties, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(d.BaseDir(), path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to open build prop %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	loaded, err := props.ParseBuildProp(f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPropsParse, "failed to parse build prop %s", path).
			WithDetail("path", path)
	}
	return loaded, nil
}

// BoardMakefile builds the board fragment input
func (d *Description) BoardMakefile() types.BoardMakefile {
	if d.Board == nil {
		return types.BoardMakefile{}
	}
	return types.BoardMakefile{
		AbOtaPartitions: d.Board.AbOtaPartitions,
		BoardInfo:       d.Board.BoardInfo,
	}
}
