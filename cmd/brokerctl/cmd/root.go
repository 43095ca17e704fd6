package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"broker-bridge/internal/executor"
	"broker-bridge/internal/executor/executorobs"
	"broker-bridge/internal/interfaces"
	"broker-bridge/internal/logger"
	"broker-bridge/internal/metrics"
	"broker-bridge/internal/session"
	"broker-bridge/internal/store"
	"broker-bridge/internal/trace"
	"broker-bridge/internal/types"
)

var rootCmd = &cobra.Command{
	Use:   "brokerctl",
	Short: "Translate standard trading requests into broker-specific API calls",
	Long: `Brokerctl speaks one standard parameter vocabulary and lowers it into
the payloads and endpoints of each supported broker (Upstox, XTS,
Groww, Kite).

Every command prints a uniform JSON envelope with success, data, error
code, broker, operation and latency.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	cfgFile    string
	brokerName string
	dryRun     bool

	cfg *store.Config
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer trace.Shutdown(context.Background())
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&brokerName, "broker", "b", "", "broker to dispatch to (defaults to config default_broker)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "use a simulated session instead of calling the broker")
}

func setup(cmd *cobra.Command, args []string) error {
	// Optional; credentials usually arrive via .env in development.
	_ = godotenv.Load()

	var err error
	cfg, err = store.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := logger.InitWithConfig(logger.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}); err != nil {
		return err
	}
	return trace.Init()
}

// resolveBroker picks the broker for this invocation.
func resolveBroker() string {
	if brokerName != "" {
		return brokerName
	}
	return cfg.DefaultBroker
}

// newSession builds the session for the resolved broker. --dry-run or
// mock:true in the config yields a simulated session.
func newSession() (session.Session, error) {
	broker := resolveBroker()
	if dryRun || cfg.Mock {
		return session.NewMock(broker), nil
	}

	bc, ok := cfg.Brokers[broker]
	if !ok {
		return nil, fmt.Errorf("broker '%s' not configured", broker)
	}

	var auth session.AuthFunc
	if bc.AuthEnv != "" {
		token := os.Getenv(bc.AuthEnv)
		if token == "" {
			return nil, fmt.Errorf("broker '%s' requires %s to be set", broker, bc.AuthEnv)
		}
		auth = session.BearerToken(token)
	}

	return session.NewHTTP(session.Params{
		Broker:  broker,
		BaseURL: bc.BaseURL,
		Timeout: bc.Timeout(),
		Auth:    auth,
	}), nil
}

func newExecutor() interfaces.Executor {
	return executorobs.Wrap(executor.Default(), metrics.New())
}

func printResponse(resp types.Response) error {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if !resp.Success {
		return fmt.Errorf("%s: %s", resp.ErrorCode, resp.Error)
	}
	return nil
}
