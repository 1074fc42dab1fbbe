package filesystem

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/devmk/pkg/errors"
	"github.com/arthur-debert/devmk/pkg/generate"
	"github.com/arthur-debert/devmk/pkg/logging"
	"github.com/arthur-debert/devmk/pkg/makefile"
	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// WriteOptions controls WriteFragments
type WriteOptions struct {
	// DryRun plans the writes without touching the filesystem
	DryRun bool

	// Force overwrites files that were not generated by devmk
	Force bool
}

// WriteResult lists what happened to each fragment file
type WriteResult struct {
	// Written files, or files that would be written in dry-run mode
	Written []string
	// Unchanged files already had the rendered content
	Unchanged []string
}

// Writer saves fragments through an afero filesystem
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a Writer on fs
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// Fs returns the underlying filesystem
func (w *Writer) Fs() afero.Fs {
	return w.fs
}

// WriteFragments saves every output under dir. A file that exists and does
// not start with the generated header is only replaced with opts.Force.
// Every target is checked before anything is written, so a conflict leaves
// dir untouched.
func (w *Writer) WriteFragments(dir string, outputs []generate.Output, opts WriteOptions) (*WriteResult, error) {
	logger := logging.GetLogger("filesystem")
	result := &WriteResult{}

	var pending []generate.Output
	for _, out := range outputs {
		path := filepath.Join(dir, out.FileName)

		existing, err := afero.ReadFile(w.fs, path)
		switch {
		case err == nil && bytes.Equal(existing, []byte(out.Content)):
			logger.Debug().Str("path", path).Msg("Fragment unchanged")
			result.Unchanged = append(result.Unchanged, path)
			continue
		case err == nil && !opts.Force && !bytes.HasPrefix(existing, []byte(makefile.Header)):
			return nil, errors.Newf(errors.ErrFileExists, "%s exists and was not generated by devmk (use --force to overwrite)", path).
				WithDetail("path", path)
		}
		pending = append(pending, out)
	}

	if opts.DryRun {
		for _, out := range pending {
			path := filepath.Join(dir, out.FileName)
			logger.Info().Str("path", path).Msg("Would write fragment")
			result.Written = append(result.Written, path)
		}
		return result, nil
	}

	if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create output directory %s", dir).
			WithDetail("path", dir)
	}

	for _, out := range pending {
		path := filepath.Join(dir, out.FileName)
		if err := afero.WriteFile(w.fs, path, []byte(out.Content), filePerm); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
				WithDetail("path", path).
				WithDetail("fragment", string(out.Fragment))
		}

		logger.Info().
			Str("path", path).
			Str("fragment", string(out.Fragment)).
			Msg("Wrote fragment")
		result.Written = append(result.Written, path)
	}

	return result, nil
}
