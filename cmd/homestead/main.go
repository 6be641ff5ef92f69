// Command homestead evaluates homestead plans and browses the crop catalog
// from the terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mamadbah2/homestead/internal/catalog"
	"github.com/mamadbah2/homestead/pkg/logger"
)

type app struct {
	out     io.Writer
	verbose bool
	logger  *zap.Logger
	catalog *catalog.Catalog
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "homestead",
		Short:         "Estimate what a homestead garden and livestock produce",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			base, err := logger.NewConsole(a.verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.logger = logger.Named(base, cmd.Name())

			cat, err := catalog.Load()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			a.catalog = cat
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCalcCmd(a), newCatalogCmd(a))
	return root
}
