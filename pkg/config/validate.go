package config

import (
	"github.com/arthur-debert/devmk/pkg/errors"
	"github.com/arthur-debert/devmk/pkg/paths"
)

// Validate checks the preconditions the make serializers rely on but do not
// enforce themselves.
func (d *Description) Validate() error {
	if d.Modules != nil {
		if d.Device == "" {
			return errors.New(errors.ErrConfigValid, "device is required for the modules fragment")
		}
		if len(d.Modules.Symlinks) > 0 && d.Vendor == "" {
			return errors.New(errors.ErrConfigValid, "vendor is required for symlink modules")
		}

		seen := make(map[string]int, len(d.Modules.Symlinks))
		for i, s := range d.Modules.Symlinks {
			if s.Partition == "" || s.Subpath == "" || s.Target == "" {
				return errors.Newf(errors.ErrConfigValid, "symlink %d needs partition, subpath and target", i).
					WithDetail("index", i)
			}
			name := s.ModuleName()
			if err := validateLocation(s.Partition, s.Subpath); err != nil {
				return errors.Wrapf(err, errors.ErrConfigValid, "symlink %q", name).
					WithDetail("index", i)
			}
			if prev, ok := seen[name]; ok {
				return errors.Newf(errors.ErrConfigValid, "duplicate symlink module %q", name).
					WithDetail("module", name).
					WithDetail("first", prev).
					WithDetail("index", i)
			}
			seen[name] = i
		}
	}

	for i, b := range d.Product.Blobs {
		if b.Partition == "" || b.Path == "" || b.SrcPath == "" {
			return errors.Newf(errors.ErrConfigValid, "blob %d needs partition, path and src_path", i).
				WithDetail("index", i)
		}
		if err := validateLocation(b.Partition, b.Path); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "blob %d", i).
				WithDetail("index", i)
		}
	}

	for i, p := range d.Product.Props {
		if p.Partition == "" {
			return errors.Newf(errors.ErrConfigValid, "props entry %d has no partition", i).
				WithDetail("index", i)
		}
		if err := paths.ValidatePartition(p.Partition); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "props entry %d", i).
				WithDetail("index", i)
		}
	}

	return nil
}

// validateLocation checks a file installed at subpath inside partition
func validateLocation(partition, subpath string) error {
	if err := paths.ValidatePartition(partition); err != nil {
		return err
	}
	return paths.ValidatePartitionPath(subpath)
}
