// etfview prints the bundled ETF analysis from the command line, using the
// same loader and view builder as the server. It keeps no state: the premium
// tier is chosen with a flag.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/data"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/logger"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/service"
)

var (
	dataPath string
	logLevel string

	log *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "etfview",
		Short: "Browse the dividend ETF analysis",
		Long: `etfview reads the dividend ETF analysis document (the bundled one,
or the file given with --data) and prints the sorted, filtered list, the
ex-dividend calendar or the load status.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			log, err = logger.New(logLevel)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&dataPath, "data", "", "analysis document to read (default: bundled)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	root.AddCommand(newListCmd(), newCalendarCmd(), newStatusCmd())
	return root
}

// loadSnapshot runs one load cycle and returns the snapshot or the failure reason.
func loadSnapshot() (*model.Snapshot, error) {
	loader := service.NewDataLoaderService(data.NewSource(dataPath), log)
	result := loader.Load()
	if result.Status != model.LoadStatusLoaded {
		return nil, fmt.Errorf("error loading data: %s", result.Error)
	}
	return result.Snapshot, nil
}
