// Package cli provides the Cobra-based CLI for inventory-cli.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"inventory_manager/inventory"
)

// app carries what every command of one process shares. The session is
// created once and reused by every command typed into the shell.
type app struct {
	v           *viper.Viper
	logger      *zap.Logger
	session     *inventory.Session
	in          *bufio.Reader
	interactive bool
}

func newApp() *app {
	return &app{v: viper.New()}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "inventory-cli",
		Short:         "A product inventory management system",
		Long:          "Track products, record sales and purchases, and print inventory, sales and purchase reports.\nRun without a command to start the interactive shell.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// tests and the shell hand in an existing session
			if a.session != nil {
				return nil
			}
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("log-level", "warn", "log level: debug|info|warn|error")
	cmd.PersistentFlags().String("log-format", "console", "log format: console|json")
	cmd.PersistentFlags().String("seed", "", "product file (JSON, NDJSON or YAML) loaded at startup")
	for _, key := range []string{"config", "log-level", "log-format", "seed"} {
		_ = a.v.BindPFlag(key, cmd.PersistentFlags().Lookup(key))
	}
	a.v.SetEnvPrefix("INVENTORY")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newEditCmd(a))
	cmd.AddCommand(newDeleteCmd(a))
	cmd.AddCommand(newRecordSaleCmd(a))
	cmd.AddCommand(newRecordPurchaseCmd(a))
	cmd.AddCommand(newInventoryReportCmd(a))
	cmd.AddCommand(newSalesReportCmd(a))
	cmd.AddCommand(newPurchaseReportCmd(a))
	cmd.AddCommand(newImportCmd(a))
	cmd.AddCommand(newShellCmd(a))
	return cmd
}

// setup reads configuration, builds the logger and opens a fresh session.
func (a *app) setup(cmd *cobra.Command) error {
	if cfg := a.v.GetString("config"); cfg != "" {
		a.v.SetConfigFile(cfg)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfg, err)
		}
	}

	logger, err := newLogger(a.v.GetString("log-level"), a.v.GetString("log-format"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	a.session = inventory.NewSession(logger)

	if seed := a.v.GetString("seed"); seed != "" {
		products, err := readProductFile(seed)
		if err != nil {
			return fmt.Errorf("seed %s: %w", seed, err)
		}
		if _, err := a.session.ImportProducts(cmd.Context(), products); err != nil {
			return fmt.Errorf("seed %s: %w", seed, err)
		}
		logger.Debug("catalog seeded", zap.String("file", seed), zap.Int("count", len(products)))
	}
	return nil
}

func Execute() error {
	a := newApp()
	err := newRootCmd(a).Execute()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
