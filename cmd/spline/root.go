package spline

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/spline/internal/version"
	"github.com/arthur-debert/spline/pkg/compiler"
	"github.com/arthur-debert/spline/pkg/config"
	"github.com/arthur-debert/spline/pkg/executor"
	"github.com/arthur-debert/spline/pkg/logging"
	"github.com/arthur-debert/spline/pkg/operations"
	"github.com/arthur-debert/spline/pkg/render"
	"github.com/arthur-debert/spline/pkg/style"
)

// rootOptions holds the flag values of one invocation
type rootOptions struct {
	verbosity  int
	configPath string
	format     string
	list       bool
	explain    bool
	showConfig bool
}

// NewRootCmd creates and returns the root command. Every positional
// argument is an operation token.
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		opts rootOptions
		cfg  *config.Config
	)

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,

		ValidArgsFunction: completeOperations,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("format") {
				overrides["render.format"] = opts.format
			}

			loaded, err := config.Load(config.Options{
				Path:      opts.configPath,
				Overrides: overrides,
			})
			if err != nil {
				return err
			}
			cfg = loaded

			logging.Setup(logging.Options{
				Verbosity: max(opts.verbosity, cfg.Logging.Verbosity),
				File:      cfg.Logging.File,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Strs("args", args).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, cfg, opts, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	flags.StringVarP(&opts.format, "format", "f", string(render.FormatText), MsgFlagFormat)
	flags.BoolVar(&opts.list, "list", false, MsgFlagList)
	flags.BoolVar(&opts.explain, "explain", false, MsgFlagExplain)
	flags.BoolVar(&opts.showConfig, "show-config", false, MsgFlagShowConfig)
	rootCmd.MarkFlagsMutuallyExclusive("list", "explain", "show-config")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))

	return rootCmd
}

// runRoot compiles args and then describes or runs the pipeline. Input is
// only read once compilation has succeeded.
func runRoot(cmd *cobra.Command, cfg *config.Config, opts rootOptions, args []string) error {
	out := cmd.OutOrStdout()

	format, err := render.ParseFormat(cfg.Render.Format)
	if err != nil {
		return err
	}
	renderer := render.New(format, styled(out))
	comp := compiler.New(compiler.WithDisabled(cfg.Capabilities.Disabled...))

	switch {
	case opts.showConfig:
		return renderer.Value(out, cfg.View())
	case opts.list:
		return renderer.Catalog(out, comp.Operations(), comp.Capabilities())
	}

	code, err := comp.Compile(args)
	if err != nil {
		return err
	}
	pipeline, err := code.Build()
	if err != nil {
		return err
	}

	if opts.explain {
		return renderer.Pipeline(out, pipeline)
	}

	result, err := executor.Run(pipeline, cmd.InOrStdin())
	if err != nil {
		return err
	}
	_, err = result.WriteTo(out)
	return err
}

// styled reports whether w is a terminal that accepts styled output
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && style.Enabled(f)
}

// completeOperations offers operation tokens. Nothing is offered after a
// reduction since it must be last.
func completeOperations(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	catalog := operations.Default()
	if len(args) > 0 {
		if last, err := catalog.Get(args[len(args)-1]); err == nil && last.Kind.Terminal() {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	}
	return catalog.List(), cobra.ShellCompDirectiveNoFileComp
}
