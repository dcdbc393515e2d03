package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/booking-core/internal/db"
	"github.com/BruksfildServices01/booking-core/internal/routes"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := bootstrap()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}

			if migrateUp {
				if err := dbpkg.Migrate(db); err != nil {
					return err
				}
			}

			deps, cleanup, err := routes.NewDependencies(ctx, db, cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			if !cfg.LogPretty {
				gin.SetMode(gin.ReleaseMode)
			}
			r := gin.New()
			routes.RegisterRoutes(r, deps)

			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info().Str("addr", cfg.Addr()).Msg("server running")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info().Msg("shutting down")
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancelShutdown()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run database migrations on startup")
	return cmd
}
