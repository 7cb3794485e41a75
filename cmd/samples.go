package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/xbrl-cli/internal/sample"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List sample iXBRL filings that can be fetched by name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "table" && format != "yaml" {
			return eris.Errorf("samples: --format must be table or yaml (got %q)", format)
		}

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		if format == "yaml" {
			return formatSamplesYAML(cmd.OutOrStdout(), catalog.Documents())
		}
		formatSamplesTable(cmd.OutOrStdout(), catalog.Documents())
		return nil
	},
}

func init() {
	samplesCmd.Flags().String("format", "table", "output format: table or yaml")
	rootCmd.AddCommand(samplesCmd)
}

func formatSamplesTable(out io.Writer, docs []sample.Document) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDESCRIPTION\tURL")
	_, _ = fmt.Fprintln(w, "----\t-----------\t---")
	for _, d := range docs {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, d.Description, d.SourceURL)
	}
	_ = w.Flush()
}

func formatSamplesYAML(out io.Writer, docs []sample.Document) error {
	data, err := yaml.Marshal(map[string][]sample.Document{"documents": docs})
	if err != nil {
		return eris.Wrap(err, "samples: encode yaml")
	}
	_, err = out.Write(data)
	return eris.Wrap(err, "samples: write")
}
