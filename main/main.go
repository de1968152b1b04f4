// Command scalarcheck inspects element layouts and profiles staged fills.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rawbytedev/scalar"
	"github.com/rawbytedev/scalar/storage"
)

var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "scalarcheck",
	Short:         "Inspect element layouts and staged buffers",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = scalar.Logger().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(fillCmd)
}

func initLogger() error {
	var (
		l   *zap.Logger
		err error
	)
	if verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	scalar.SetLogger(l)
	storage.SetLogger(l)
	return nil
}
