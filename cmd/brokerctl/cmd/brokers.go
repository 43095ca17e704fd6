package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"broker-bridge/internal/catalog"
	"broker-bridge/internal/transform"
)

var brokersCmd = &cobra.Command{
	Use:   "brokers",
	Short: "List supported brokers and their operations",
	RunE:  runBrokers,
}

func init() {
	rootCmd.AddCommand(brokersCmd)
}

func runBrokers(cmd *cobra.Command, args []string) error {
	reg := catalog.Default()
	factory := transform.DefaultFactory()

	for _, broker := range factory.Brokers() {
		ops := reg.Operations(broker)
		names := make([]string, 0, len(ops))
		for _, op := range ops {
			names = append(names, op.String())
		}
		fmt.Printf("%s: %s\n", broker, strings.Join(names, ", "))
	}
	return nil
}
