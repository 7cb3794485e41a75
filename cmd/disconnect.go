package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Remove the stored Firecrawl API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.Clear(ctx); err != nil {
			return eris.Wrap(err, "disconnect")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Firecrawl API disconnected.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(disconnectCmd)
}
