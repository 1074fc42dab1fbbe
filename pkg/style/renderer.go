package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/devmk/pkg/filesystem"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer formats command results for the terminal
type Renderer struct {
	plain bool
}

// NewRenderer creates a renderer; plain disables all styling
func NewRenderer(plain bool) *Renderer {
	return &Renderer{plain: plain}
}

// DetectRenderer picks plain output when NO_COLOR is set, output is not a
// terminal, or the terminal has no color support.
func DetectRenderer(output *os.File) *Renderer {
	return NewRenderer(!supportsStyling(output))
}

func supportsStyling(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}
	return termenv.NewOutput(output).ColorProfile() != termenv.Ascii
}

// Plain reports whether styling is disabled
func (r *Renderer) Plain() bool {
	return r.plain
}

func (r *Renderer) render(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

// RenderWriteResult summarizes a generate run
func (r *Renderer) RenderWriteResult(result *filesystem.WriteResult, dryRun bool) string {
	var b strings.Builder

	title := "Generated fragments"
	if dryRun {
		title = "Fragments that would be written"
	}
	b.WriteString(r.render(TitleStyle, title) + "\n")

	for _, path := range result.Written {
		b.WriteString(r.render(ListItemStyle, fmt.Sprintf("%s %s", r.render(SuccessStyle, "✓"), r.render(PathStyle, path))) + "\n")
	}
	for _, path := range result.Unchanged {
		b.WriteString(r.render(ListItemStyle, fmt.Sprintf("%s %s", r.render(MutedStyle, "="), r.render(MutedStyle, path+" (unchanged)"))) + "\n")
	}

	if len(result.Written) == 0 && len(result.Unchanged) == 0 {
		b.WriteString(r.render(MutedStyle, "Nothing to write.") + "\n")
	}

	if dryRun {
		b.WriteString("\n" + r.render(WarningStyle, "DRY RUN MODE - No changes were made") + "\n")
	}

	return b.String()
}

// RenderError formats an error for stderr
func (r *Renderer) RenderError(err error) string {
	return r.render(ErrorStyle, fmt.Sprintf("Error: %v", err))
}
