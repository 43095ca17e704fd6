package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"broker-bridge/internal/params"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place an order through the selected broker",
	Long: `Place an order using the standard parameter vocabulary. The request is
validated, lowered into the broker's payload shape and dispatched to
the broker's order placement endpoint.

Example:
  brokerctl order -b upstox --symbol RELIANCE --qty 10 --side BUY \
      --type LIMIT --product INTRADAY --price 2500.50`,
	RunE: runOrder,
}

var (
	ordSymbol    string
	ordExchange  string
	ordQty       int
	ordSide      string
	ordType      string
	ordProduct   string
	ordPrice     string
	ordTrigger   string
	ordDisclosed int
	ordValidity  string
	ordTag       string
	ordAMO       bool
	ordExtras    []string
)

func init() {
	rootCmd.AddCommand(orderCmd)

	orderCmd.Flags().StringVar(&ordSymbol, "symbol", "", "trading symbol (required)")
	orderCmd.Flags().StringVar(&ordExchange, "exchange", "", "exchange (default NSE)")
	orderCmd.Flags().IntVar(&ordQty, "qty", 0, "order quantity (required)")
	orderCmd.Flags().StringVar(&ordSide, "side", "BUY", "order side (BUY, SELL)")
	orderCmd.Flags().StringVar(&ordType, "type", "MARKET", "order type (MARKET, LIMIT, STOP_LOSS, STOP_LOSS_MARKET)")
	orderCmd.Flags().StringVar(&ordProduct, "product", "INTRADAY", "product type (INTRADAY, DELIVERY, MARGIN)")
	orderCmd.Flags().StringVar(&ordPrice, "price", "", "limit price")
	orderCmd.Flags().StringVar(&ordTrigger, "trigger", "", "trigger price")
	orderCmd.Flags().IntVar(&ordDisclosed, "disclosed", 0, "disclosed quantity")
	orderCmd.Flags().StringVar(&ordValidity, "validity", "DAY", "order validity (DAY, IOC, GTD)")
	orderCmd.Flags().StringVar(&ordTag, "tag", "", "order tag")
	orderCmd.Flags().BoolVar(&ordAMO, "amo", false, "place as after-market order")
	orderCmd.Flags().StringArrayVar(&ordExtras, "extra", nil, "broker-specific field as key=value (repeatable)")

	orderCmd.MarkFlagRequired("symbol")
	orderCmd.MarkFlagRequired("qty")
}

func runOrder(cmd *cobra.Command, args []string) error {
	side, err := params.ParseSide(ordSide)
	if err != nil {
		return err
	}
	otype, err := params.ParseOrderType(ordType)
	if err != nil {
		return err
	}
	product, err := params.ParseProduct(ordProduct)
	if err != nil {
		return err
	}
	validity, err := params.ParseValidity(ordValidity)
	if err != nil {
		return err
	}

	p := params.OrderParams{
		Symbol:       ordSymbol,
		Exchange:     ordExchange,
		Quantity:     ordQty,
		Side:         side,
		Type:         otype,
		Product:      product,
		DisclosedQty: ordDisclosed,
		Validity:     validity,
		Tag:          ordTag,
		AMO:          ordAMO,
	}
	if ordPrice != "" {
		if p.Price, err = decimal.NewFromString(ordPrice); err != nil {
			return fmt.Errorf("invalid price %q: %w", ordPrice, err)
		}
	}
	if ordTrigger != "" {
		if p.TriggerPrice, err = decimal.NewFromString(ordTrigger); err != nil {
			return fmt.Errorf("invalid trigger price %q: %w", ordTrigger, err)
		}
	}
	if p.Extras, err = parseExtras(ordExtras); err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}
	resp, err := newExecutor().PlaceOrder(cmd.Context(), sess, p)
	if err != nil {
		return err
	}
	return printResponse(resp)
}

func parseExtras(kvs []string) (map[string]any, error) {
	if len(kvs) == 0 {
		return nil, nil
	}
	extras := make(map[string]any, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --extra %q: expected key=value", kv)
		}
		extras[k] = v
	}
	return extras, nil
}
