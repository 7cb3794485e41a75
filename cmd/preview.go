package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/sells-group/xbrl-cli/internal/sample"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the static XBRL sample as code or as a report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		view, _ := cmd.Flags().GetString("view")
		locale, _ := cmd.Flags().GetString("locale")

		out := cmd.OutOrStdout()
		switch view {
		case "code":
			fmt.Fprintf(out, "# %s\n%s\n", sample.SnippetFileName, sample.CodeView())
		case "visual":
			tag, err := language.Parse(locale)
			if err != nil {
				return eris.Wrapf(err, "preview: parse --locale %q", locale)
			}
			fmt.Fprint(out, sample.VisualView(tag))
		default:
			return eris.Errorf("preview: --view must be code or visual (got %q)", view)
		}
		return nil
	},
}

func init() {
	f := previewCmd.Flags()
	f.String("view", "code", "view to show: code or visual")
	f.String("locale", "en", "locale for number formatting in the visual view")
	rootCmd.AddCommand(previewCmd)
}
