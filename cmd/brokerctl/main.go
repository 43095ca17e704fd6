package main

import (
	"os"

	"broker-bridge/cmd/brokerctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
