package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/xbrl-cli/internal/waitlist"
)

var waitlistCmd = &cobra.Command{
	Use:   "waitlist",
	Short: "Join the XBRL Master launch waitlist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("waitlist"); err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		if err := waitlist.NewClient(cfg.Waitlist.URL).Join(cmd.Context(), email); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "You're on the list! We'll notify you when XBRL Master launches.")
		return nil
	},
}

func init() {
	waitlistCmd.Flags().String("email", "", "email address to add (required)")
	_ = waitlistCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(waitlistCmd)
}
