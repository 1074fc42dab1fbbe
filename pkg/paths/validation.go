package paths

import (
	"path"
	"strings"

	"github.com/arthur-debert/devmk/pkg/errors"
)

// maxPathLength is a common filesystem limit
const maxPathLength = 4096

// ValidatePath rejects empty paths, null bytes and overlong paths
func ValidatePath(p string) error {
	if p == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(p, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	if len(p) > maxPathLength {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidatePartition ensures a partition name can be used both as a path
// element and, uppercased, inside a make variable name.
func ValidatePartition(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "partition cannot be empty")
	}

	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return errors.Newf(errors.ErrInvalidInput,
				"partition %q may only contain lowercase letters, digits and underscores", name).
				WithDetail("partition", name)
		}
	}

	return nil
}

// ValidatePartitionPath checks a path that is joined onto a partition's
// install directory: it must be relative and stay inside the partition.
func ValidatePartitionPath(p string) error {
	if err := ValidatePath(p); err != nil {
		return err
	}

	if strings.HasPrefix(p, "/") {
		return errors.Newf(errors.ErrInvalidInput, "path %q must be relative to its partition", p).
			WithDetail("path", p)
	}

	for _, elem := range strings.Split(path.Clean(p), "/") {
		if elem == ".." {
			return errors.Newf(errors.ErrInvalidInput, "path %q escapes its partition", p).
				WithDetail("path", p)
		}
	}

	// Hidden Unicode characters that might be used to deceive
	for _, r := range p {
		if r == '\u202e' || r == '\u200b' || r == '\u00ad' {
			return errors.Newf(errors.ErrInvalidInput, "path %q contains suspicious Unicode characters", p).
				WithDetail("path", p)
		}
	}

	return nil
}
