package devmk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/devmk/internal/version"
	"github.com/arthur-debert/devmk/pkg/config"
	"github.com/arthur-debert/devmk/pkg/filesystem"
	"github.com/arthur-debert/devmk/pkg/generate"
	"github.com/arthur-debert/devmk/pkg/logging"
	"github.com/arthur-debert/devmk/pkg/style"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// loadDescription loads and validates the description named by --config
func loadDescription(opts *rootOptions, overrides map[string]interface{}) (*config.Description, error) {
	desc, err := config.LoadWithOptions(config.LoadOptions{
		Path:      opts.configPath,
		Overrides: overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoad, err)
	}
	return desc, nil
}

// rendererFor styles output only when it goes to a terminal
func rendererFor(cmd *cobra.Command) *style.Renderer {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return style.DetectRenderer(f)
	}
	return style.NewRenderer(true)
}

// fragmentCompletion completes fragment names
func fragmentCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, f := range generate.Fragments {
		if strings.HasPrefix(string(f), toComplete) {
			names = append(names, string(f))
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "render <fragment>",
		Short:             MsgRenderShort,
		Long:              MsgRenderLong,
		Example:           MsgRenderExample,
		Args:              cobra.ExactArgs(1),
		GroupID:           "core",
		ValidArgsFunction: fragmentCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			fragment, err := generate.ParseFragment(args[0])
			if err != nil {
				return err
			}

			desc, err := loadDescription(opts, nil)
			if err != nil {
				return err
			}
			if err := desc.Validate(); err != nil {
				return err
			}

			out, err := generate.Render(desc, fragment)
			if err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return err
		},
	}
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.generate")

			var overrides map[string]interface{}
			if outputDir != "" {
				overrides = map[string]interface{}{"output_dir": outputDir}
			}

			desc, err := loadDescription(opts, overrides)
			if err != nil {
				return err
			}

			outputs, err := generate.RenderAll(desc)
			if err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}

			logger.Info().
				Str("outputDir", desc.OutputDir).
				Int("fragments", len(outputs)).
				Bool("dryRun", opts.dryRun).
				Bool("force", opts.force).
				Msg("Writing fragments")

			result, err := filesystem.NewOS().WriteFragments(desc.OutputDir, outputs, filesystem.WriteOptions{
				DryRun: opts.dryRun,
				Force:  opts.force,
			})
			if err != nil {
				return fmt.Errorf(MsgErrWrite, err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), rendererFor(cmd).RenderWriteResult(result, opts.dryRun))
			return err
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", MsgFlagOutput)

	return cmd
}

func newInitCmd(opts *rootOptions) *cobra.Command {
	var (
		formatName string
		write      bool
	)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.ParseFormat(formatName)
			if err != nil {
				return err
			}

			if !write {
				return config.Encode(cmd.OutOrStdout(), config.Sample(), format)
			}

			path := opts.configPath
			if path == "" {
				path = "devmk" + format.Extension()
			}
			if _, err := os.Stat(path); err == nil && !opts.force {
				return fmt.Errorf(MsgErrInitExists, path)
			}
			if opts.dryRun {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgDescriptionWritten, path)
				return err
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := config.Encode(f, config.Sample(), format); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgDescriptionWritten, path)
			return err
		},
	}

	cmd.Flags().StringVar(&formatName, "format", string(config.FormatTOML), MsgFlagFormat)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "DEVMK",
				Section: "1",
				Source:  "devmk " + version.Version,
				Manual:  "devmk manual",
			}
			if dir == "" {
				return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			return doc.GenManTree(cmd.Root(), header, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagManDir)

	return cmd
}
