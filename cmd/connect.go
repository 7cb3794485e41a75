package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/xbrl-cli/internal/credential"
)

var connectCmd = &cobra.Command{
	Use:   "connect [api-key]",
	Short: "Validate and store a Firecrawl API key",
	Long: `Validates the key with a probe scrape and stores it locally on success.

The key is read from the argument, from stdin when the argument is "-", or from
firecrawl.key (XBRL_FIRECRAWL_KEY) when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
}

func runConnect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := cfg.Validate("firecrawl"); err != nil {
		return err
	}

	apiKey, err := readAPIKey(cmd.InOrStdin(), args, cfg.Firecrawl.Key)
	if err != nil {
		return err
	}

	st, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Validating...")

	v := credential.NewValidator(firecrawlFactory(), cfg.Firecrawl.ProbeURL)
	switch v.Check(ctx, apiKey) {
	case credential.StatusValid:
		if err := st.Save(ctx, apiKey); err != nil {
			return eris.Wrap(err, "connect: save api key")
		}
		fmt.Fprintln(out, "API key validated successfully!")
		return nil
	case credential.StatusInvalid:
		return eris.New("connect: invalid API key, please check your Firecrawl API key and try again")
	default:
		return eris.New("connect: failed to validate API key, please try again")
	}
}

func readAPIKey(in io.Reader, args []string, fallback string) (string, error) {
	key := fallback
	if len(args) > 0 {
		key = args[0]
	}
	if key == "-" {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", eris.Wrap(err, "connect: read api key from stdin")
		}
		key = line
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", eris.New("connect: please enter your Firecrawl API key")
	}
	return key, nil
}
