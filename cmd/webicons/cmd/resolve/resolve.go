// Package resolve provides the resolve command, which prints the attribution
// page of a single webicon.
package resolve

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/webicons"
	"github.com/agentstation/webicons/cmd/application"
	"github.com/agentstation/webicons/internal/cmd/output"
)

// NewCommand creates the resolve command.
func NewCommand(app application.Application) *cobra.Command {
	var vendor string

	cmd := &cobra.Command{
		Use:   "resolve <family> <id>",
		Short: "Print the attribution page of an emoji or icon",
		Long: `Resolve an identifier and print the vendor's attribution page.

The family is "emojis" or "icons". Emoji identifiers may be hex codepoints,
literal glyphs or shortcodes. Output is HTML unless --format selects
table, json or yaml.`,
		Example: `  webicons resolve emojis 1f600
  webicons resolve emojis grinning --vendor Noto
  webicons resolve icons arrow-left --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(app.OutputFormat(),
				output.FormatHTML, output.FormatTable, output.FormatJSON, output.FormatYAML)
			if err != nil {
				return err
			}

			client, err := app.Webicons()
			if err != nil {
				return err
			}

			p, err := client.Resolve(cmd.Context(), webicons.Request{
				Family: args[0],
				ID:     args[1],
				Vendor: vendor,
			})
			if err != nil {
				return err
			}

			app.Logger().Debug().
				Str("family", p.Family.String()).
				Str("id", p.ID).
				Str("vendor", p.Vendor).
				Msg("Resolved webicon")

			var data any = p
			switch format {
			case "", output.FormatHTML:
				format = output.FormatHTML
				data = p.Document()
			case output.FormatTable:
				data = output.PageToTableData(p)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor name (default: the family's last vendor)")

	return cmd
}
