package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a Firecrawl API key is stored",
	Long:  "Reads the local credential store only; no request is made to Firecrawl.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		key, ok, err := st.Load(ctx)
		if err != nil {
			return eris.Wrap(err, "status")
		}
		formatStatus(cmd.OutOrStdout(), key, ok, cfg.Store.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func formatStatus(w io.Writer, key string, ok bool, path string) {
	if !ok {
		fmt.Fprintln(w, "Firecrawl API not connected. Run `xbrl-cli connect <api-key>`.")
		return
	}
	fmt.Fprintf(w, "Firecrawl API connected (%s)\n", maskKey(key))
	fmt.Fprintf(w, "Store: %s\n", path)
}

// maskKey keeps the last four characters of longer keys.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
