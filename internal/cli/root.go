package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/booking-core/internal/config"
	"github.com/BruksfildServices01/booking-core/internal/logging"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "booking-core",
		Short:         "Appointment booking API: availability, booking and lifecycle",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newCancelProviderCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bootstrap() (*config.Config, zerolog.Logger) {
	cfg := config.Load()
	return cfg, logging.New(cfg.LogLevel, cfg.LogPretty)
}
