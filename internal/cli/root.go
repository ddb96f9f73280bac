// Package cli is the timetracker command line tool.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/app"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/config"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/logger"
	"github.com/spf13/cobra"
)

type state struct {
	cfg *config.Config
	app *app.App
}

// NewRootCmd builds the command tree. Each invocation opens the configured
// store before the subcommand runs and closes it afterwards.
func NewRootCmd() *cobra.Command {
	s := &state{}

	rootCmd := &cobra.Command{
		Use:           "timetracker",
		Short:         "Time tracking and invoicing for contract shifts",
		Long:          `A command-line tool for recording shifts at client locations, locking and archiving them, and building invoices.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			s.cfg = cfg

			logger.Install(logger.NewText(cmd.ErrOrStderr(), cfg.App.LogLevel), cfg.App.LogLevel)

			a, err := app.Open(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			s.app = a
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.app != nil {
				s.app.Close()
			}
		},
	}

	rootCmd.AddCommand(newLocationCmd(s))
	rootCmd.AddCommand(newEntryCmd(s))
	rootCmd.AddCommand(newInvoiceCmd(s))

	return rootCmd
}

func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
