package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/xbrl-cli/internal/gateway"
	"github.com/sells-group/xbrl-cli/pkg/firecrawl"
)

var fetchFormats = []string{"summary", "html", "raw", "markdown", "json", "yaml"}

var fetchCmd = &cobra.Command{
	Use:   "fetch <url|sample-name>",
	Short: "Fetch a rendered iXBRL document via Firecrawl",
	Long: `Scrapes the target as rendered and raw HTML using the stored Firecrawl API key.

The target is either a URL or the name of a sample document (see "xbrl-cli samples").

Examples:
  # Summary of the Apple 10-K sample
  fetch apple-10k-2023

  # Save the rendered HTML of any filing
  fetch https://www.sec.gov/.../aapl-20230930.htm --format html --output aapl.html`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	f := fetchCmd.Flags()
	f.String("format", "summary", "output format: summary, html, raw, markdown, json or yaml")
	f.String("output", "", "output file path (default: stdout)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	if !validFetchFormat(format) {
		return eris.Errorf("fetch: --format must be one of %v (got %q)", fetchFormats, format)
	}

	if err := cfg.Validate("firecrawl"); err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	target := catalog.Resolve(args[0])

	st, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	gw := gateway.New(st, firecrawlFactory(), gateway.WithUserAgent(cfg.Firecrawl.UserAgent))
	res := gw.Fetch(ctx, target)
	doc, ok := res.Content()
	if !ok {
		return eris.New(res.Message())
	}

	if outputPath == "" {
		return writeDocument(cmd.OutOrStdout(), doc, format)
	}
	if err := writeDocumentFile(outputPath, doc, format); err != nil {
		return err
	}
	zap.L().Info("fetch: document written", zap.String("path", outputPath), zap.String("format", format))
	return nil
}

// writeDocumentFile writes doc to path. The file is removed if any write fails.
func writeDocumentFile(path string, doc firecrawl.Document, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "fetch: create output %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = eris.Wrapf(cerr, "fetch: close output %s", path)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return writeDocument(f, doc, format)
}

func validFetchFormat(format string) bool {
	for _, f := range fetchFormats {
		if f == format {
			return true
		}
	}
	return false
}

func writeDocument(w io.Writer, doc firecrawl.Document, format string) error {
	switch format {
	case "summary":
		formatSummary(w, doc)
		return nil
	case "html":
		_, err := io.WriteString(w, doc.HTML)
		return eris.Wrap(err, "fetch: write html")
	case "raw":
		_, err := io.WriteString(w, doc.RawHTML)
		return eris.Wrap(err, "fetch: write raw html")
	case "markdown":
		_, err := io.WriteString(w, doc.Markdown)
		return eris.Wrap(err, "fetch: write markdown")
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return eris.Wrap(enc.Encode(doc), "fetch: encode json")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return eris.Wrap(err, "fetch: encode yaml")
		}
		return eris.Wrap(enc.Close(), "fetch: encode yaml")
	default:
		return eris.Errorf("fetch: unknown format %q", format)
	}
}

func formatSummary(w io.Writer, doc firecrawl.Document) {
	m := doc.Metadata
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Title:\t%s\n", orDash(m.Title))
	_, _ = fmt.Fprintf(tw, "Description:\t%s\n", orDash(m.Description))
	_, _ = fmt.Fprintf(tw, "Language:\t%s\n", languageName(m))
	_, _ = fmt.Fprintf(tw, "Source URL:\t%s\n", orDash(m.SourceURL))
	if m.StatusCode != 0 {
		_, _ = fmt.Fprintf(tw, "Status:\t%d\n", m.StatusCode)
	}
	_, _ = fmt.Fprintf(tw, "HTML:\t%d bytes\n", len(doc.HTML))
	_, _ = fmt.Fprintf(tw, "Raw HTML:\t%d bytes\n", len(doc.RawHTML))
	if doc.Markdown != "" {
		_, _ = fmt.Fprintf(tw, "Markdown:\t%d bytes\n", len(doc.Markdown))
	}
	_ = tw.Flush()
}

func languageName(m firecrawl.Metadata) string {
	tag, err := m.LanguageTag()
	if err != nil {
		return orDash(m.Language)
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		return tag.String()
	}
	return fmt.Sprintf("%s (%s)", name, tag)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
