package cmd

import (
	"github.com/spf13/cobra"

	"broker-bridge/internal/params"
)

var historyCmd = &cobra.Command{
	Use:   "history SYMBOL",
	Short: "Fetch historical candles for a symbol",
	Long: `Fetch historical OHLC data for a symbol from the selected broker.

Example:
  brokerctl history -b upstox RELIANCE --interval day --from 2026-01-01 --to 2026-02-01`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

var (
	histExchange string
	histInterval string
	histFrom     string
	histTo       string
	histLimit    int
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&histExchange, "exchange", "", "exchange (default NSE)")
	historyCmd.Flags().StringVar(&histInterval, "interval", "day", "candle interval")
	historyCmd.Flags().StringVar(&histFrom, "from", "", "start date (YYYY-MM-DD) (required)")
	historyCmd.Flags().StringVar(&histTo, "to", "", "end date (YYYY-MM-DD)")
	historyCmd.Flags().IntVar(&histLimit, "limit", 0, "maximum number of candles")

	historyCmd.MarkFlagRequired("from")
}

func runHistory(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	resp, err := newExecutor().Historical(cmd.Context(), sess, params.HistoricalParams{
		Symbol:   args[0],
		Exchange: histExchange,
		Interval: histInterval,
		FromDate: histFrom,
		ToDate:   histTo,
		Limit:    histLimit,
	})
	if err != nil {
		return err
	}
	return printResponse(resp)
}
