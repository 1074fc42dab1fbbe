package devmk

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate Android vendor make fragments"
	MsgRenderShort     = "Print one fragment to stdout"
	MsgGenerateShort   = "Write all fragments to the output directory"
	MsgInitShort       = "Print an example device description"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgDescriptionWritten = "Wrote example description to %s\n"
	MsgVersionFormat      = "devmk version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoad       = "failed to load description: %w"
	MsgErrRender     = "failed to render fragments: %w"
	MsgErrWrite      = "failed to write fragments: %w"
	MsgErrInitExists = "%s already exists (use --force to overwrite)"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Device description file (default: first of devmk.toml, .devmk.toml, devmk.yaml, devmk.yml in the current directory)"
	MsgFlagDryRun  = "Preview changes without writing files"
	MsgFlagForce   = "Overwrite files that were not generated by devmk"
	MsgFlagOutput  = "Output directory (overrides output_dir)"
	MsgFlagFormat  = "Description format: toml or yaml"
	MsgFlagWrite   = "Write the description to a file instead of stdout"
	MsgFlagManDir  = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
