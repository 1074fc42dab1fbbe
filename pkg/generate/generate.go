// Package generate renders the fragments of a device description.
package generate

import (
	"strings"

	"github.com/arthur-debert/devmk/pkg/config"
	"github.com/arthur-debert/devmk/pkg/errors"
	"github.com/arthur-debert/devmk/pkg/logging"
	"github.com/arthur-debert/devmk/pkg/makefile"
)

// Fragment identifies one generated make file
type Fragment string

const (
	FragmentModules Fragment = "modules"
	FragmentProduct Fragment = "product"
	FragmentBoard   Fragment = "board"
)

// Fragments lists every fragment in render order
var Fragments = []Fragment{FragmentModules, FragmentProduct, FragmentBoard}

// ParseFragment parses a fragment name
func ParseFragment(s string) (Fragment, error) {
	for _, f := range Fragments {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", errors.Newf(errors.ErrFragmentUnknown, "unknown fragment %q (want modules, product or board)", s).
		WithDetail("fragment", s)
}

// Output is one rendered fragment with the file name it should be saved as
type Output struct {
	Fragment Fragment
	FileName string
	Content  string
}

// Render renders a single fragment. The content ends with a newline.
func Render(desc *config.Description, fragment Fragment) (Output, error) {
	var content string

	switch fragment {
	case FragmentModules:
		content = makefile.SerializeModules(desc.ModulesMakefile())
	case FragmentProduct:
		mk, err := desc.ProductMakefile()
		if err != nil {
			return Output{}, err
		}
		content = makefile.SerializeProduct(mk)
	case FragmentBoard:
		content = makefile.SerializeBoard(desc.BoardMakefile())
	default:
		return Output{}, errors.Newf(errors.ErrFragmentUnknown, "unknown fragment %q", fragment).
			WithDetail("fragment", string(fragment))
	}

	return Output{
		Fragment: fragment,
		FileName: FileName(desc, fragment),
		Content:  content + "\n",
	}, nil
}

// FileName returns the configured output file name of a fragment
func FileName(desc *config.Description, fragment Fragment) string {
	switch fragment {
	case FragmentModules:
		return desc.Output.Modules
	case FragmentProduct:
		return desc.Output.Product
	case FragmentBoard:
		return desc.Output.Board
	}
	return ""
}

// Selected reports which fragments a description produces: modules when a
// device is set, product always, board when a board section exists.
func Selected(desc *config.Description) []Fragment {
	var selected []Fragment
	if desc.Device != "" {
		selected = append(selected, FragmentModules)
	}
	selected = append(selected, FragmentProduct)
	if desc.Board != nil {
		selected = append(selected, FragmentBoard)
	}
	return selected
}

// RenderAll validates the description and renders every selected fragment
func RenderAll(desc *config.Description) ([]Output, error) {
	logger := logging.GetLogger("generate")
	done := logging.LogOperationStart(logger, "render_all")
	defer done()

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	var outputs []Output
	for _, fragment := range Selected(desc) {
		out, err := Render(desc, fragment)
		if err != nil {
			return nil, err
		}
		logger.Debug().
			Str("fragment", string(fragment)).
			Str("file", out.FileName).
			Int("bytes", len(out.Content)).
			Msg("Rendered fragment")
		outputs = append(outputs, out)
	}

	return outputs, nil
}
