package cmd

import (
	"github.com/spf13/cobra"

	"broker-bridge/internal/params"
)

var quotesCmd = &cobra.Command{
	Use:   "quotes SYMBOL [SYMBOL...]",
	Short: "Fetch market quotes for one or more symbols",
	Long: `Fetch quotes for the given symbols from the selected broker.

Example:
  brokerctl quotes -b upstox RELIANCE TCS INFY`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuotes,
}

var quotesExchange string

func init() {
	rootCmd.AddCommand(quotesCmd)
	quotesCmd.Flags().StringVar(&quotesExchange, "exchange", "", "exchange (default NSE)")
}

func runQuotes(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	resp, err := newExecutor().Quotes(cmd.Context(), sess, params.QuoteParams{
		Symbols:  args,
		Exchange: quotesExchange,
	})
	if err != nil {
		return err
	}
	return printResponse(resp)
}
