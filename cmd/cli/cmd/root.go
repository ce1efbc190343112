// Package cmd provides the quotectl commands.
package cmd

import (
	"context"
	"fmt"
	"property_quote/internal/infrastructure/config"
	"property_quote/internal/infrastructure/datasource"
	"property_quote/internal/infrastructure/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by subcommands once the root pre-run has loaded
// configuration.
type app struct {
	verbose bool
	cfg     config.Config
	log     *zap.Logger
}

func (a *app) openRepositories(ctx context.Context) (*datasource.Repositories, error) {
	return datasource.Open(ctx, a.cfg, a.log)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "quotectl",
		Short: "Price properties and inspect quote data",
		Long: `quotectl runs the instant quote engine against the configured data source.

The data source is selected with QUOTE_DATA_SOURCE (file, dynamodb or postgres)
and the same environment variables the API reads.

Examples:
  quotectl quote --street "123 Main St" --city Austin --state TX --zip 78701 --sqft 2000 --coverage 300000
  quotectl quote --output text ...
  quotectl data check`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			level := cfg.Log.Level
			if a.verbose {
				level = "debug"
			} else if level == "info" {
				level = "warn"
			}
			a.log = logging.NewWithWriter(logging.Config{Level: level, Format: "console"}, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newQuoteCmd(a))
	root.AddCommand(newDataCmd(a))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "quotectl version 1.0.0")
		},
	})
	return root
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}
