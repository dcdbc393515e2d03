package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/booking-core/internal/db"
	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/booking-core/internal/infra/repository"
	"github.com/BruksfildServices01/booking-core/internal/routes"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/booking-core/internal/usecase/appointment"
)

func newCancelProviderCmd() *cobra.Command {
	var providerID string
	var deactivate bool

	cmd := &cobra.Command{
		Use:   "cancel-provider",
		Short: "Cancel every future appointment of a provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(providerID)
			if err != nil {
				return fmt.Errorf("invalid --provider-id: %w", err)
			}

			cfg, logger := bootstrap()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}

			deps, cleanup, err := routes.NewDependencies(ctx, db, cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			directory := infraRepo.NewDirectoryGormRepository(db)
			env := ucAppointment.Env{
				Location: timezone.Location(cfg.Timezone),
				Logger:   logger,
			}
			uc := ucAppointment.NewCancelProviderFutureAppointments(
				directory,
				infraRepo.NewAppointmentGormRepository(db),
				deps.Locker,
				deps.Audit,
				env,
			)

			var n int64
			if deactivate {
				n, err = ucAppointment.NewDeactivateProvider(directory, uc).Execute(ctx, domain.System, id)
			} else {
				n, err = uc.Execute(ctx, domain.System, id)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d appointment(s) canceled\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&providerID, "provider-id", "", "provider user id")
	cmd.Flags().BoolVar(&deactivate, "deactivate", false, "also mark the provider inactive")
	_ = cmd.MarkFlagRequired("provider-id")
	return cmd
}
