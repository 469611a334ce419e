package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/webicons/cmd/webicons/cmd/resolve"
	"github.com/agentstation/webicons/cmd/webicons/cmd/serve"
	"github.com/agentstation/webicons/cmd/webicons/cmd/vendors"
	"github.com/agentstation/webicons/cmd/webicons/cmd/version"
	"github.com/agentstation/webicons/pkg/constants"
)

// Execute runs the webicons CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "webicons",
		Short:   "Attribution pages for emoji and icon sets",
		Version: a.version,
		Long: `Webicons resolves an emoji or icon identifier to the attribution page
of the vendor that drew it.

Identifiers may be hex codepoints (1f600), literal glyphs or emoji
shortcodes (grinning). When no vendor is named, the vendor defined last
for the family in the metadata document is used.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/"+constants.DefaultConfigFile+")")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Format, "format", "o", "", "output format (depends on the command)")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().StringVar(&a.config.MetadataPath, "metadata", a.config.MetadataPath, "vendor metadata document (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVar(&a.config.UseEmbeddedMetadata, "embedded", a.config.UseEmbeddedMetadata, "use the metadata document built into the binary")

	rootCmd.SetVersionTemplate("webicons {{.Version}}\n")

	rootCmd.AddCommand(
		resolve.NewCommand(a),
		vendors.NewCommand(a),
		serve.NewCommand(a),
		version.NewCommand(a),
	)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	// An explicit --config file replaces the values read at startup
	if flags.Changed("config") {
		cfg, err := LoadConfig(a.config.ConfigFile)
		if err != nil {
			return err
		}
		if flags.Changed("metadata") {
			cfg.MetadataPath = a.config.MetadataPath
		}
		if flags.Changed("embedded") {
			cfg.UseEmbeddedMetadata = a.config.UseEmbeddedMetadata
		}
		cfg.UpdateFromFlags(a.config.Verbose, a.config.Quiet, a.config.NoColor, a.config.Format, a.config.LogLevel)
		*a.config = *cfg
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	// The cached client was built from the startup configuration
	if flags.Changed("config") || flags.Changed("metadata") || flags.Changed("embedded") {
		a.mu.Lock()
		a.client = nil
		a.mu.Unlock()
	}

	return nil
}

// ExitOnError prints an error and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
