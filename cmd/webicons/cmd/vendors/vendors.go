// Package vendors provides the vendors command, which lists the vendor
// tables of the metadata document.
package vendors

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/webicons/cmd/application"
	"github.com/agentstation/webicons/internal/cmd/output"
	"github.com/agentstation/webicons/pkg/metadata"
)

// NewCommand creates the vendors command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "vendors [family]",
		Short: "List vendors and default vendors",
		Long: `Without arguments, list every family with its vendors and default vendor.
With a family, list that family's vendor records in document order; the
default vendor, the one defined last, is marked with *.`,
		Example: `  webicons vendors
  webicons vendors emojis --format yaml`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{metadata.Emojis.String(), metadata.Icons.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(app.OutputFormat(),
				output.FormatTable, output.FormatJSON, output.FormatYAML)
			if err != nil {
				return err
			}
			format = output.DetectFormat(string(format))

			client, err := app.Webicons()
			if err != nil {
				return err
			}
			cfg, err := client.Config(cmd.Context())
			if err != nil {
				return err
			}

			var data any
			if len(args) == 0 {
				summaries := cfg.Summaries()
				data = summaries
				if format == output.FormatTable {
					data = output.SummariesToTableData(summaries)
				}
			} else {
				family, err := metadata.ParseFamily(args[0])
				if err != nil {
					return err
				}
				entries, err := cfg.Entries(family)
				if err != nil {
					return err
				}
				data = entries
				if format == output.FormatTable {
					data = output.EntriesToTableData(entries)
				}
			}

			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}
}
