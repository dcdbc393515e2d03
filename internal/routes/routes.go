package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-core/internal/audit"
	"github.com/BruksfildServices01/booking-core/internal/config"
	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/handlers"
	"github.com/BruksfildServices01/booking-core/internal/infra/payment"
	"github.com/BruksfildServices01/booking-core/internal/infra/receipt"
	infraRepo "github.com/BruksfildServices01/booking-core/internal/infra/repository"
	"github.com/BruksfildServices01/booking-core/internal/lock"
	"github.com/BruksfildServices01/booking-core/internal/middleware"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/booking-core/internal/usecase/appointment"
)

// Dependencies are the long lived collaborators shared by every route.
type Dependencies struct {
	DB     *gorm.DB
	Config *config.Config
	Logger zerolog.Logger

	Audit    *audit.Dispatcher
	Locker   lock.Locker
	Verifier domain.PaymentVerifier
	Receipts domain.ReceiptArchiver

	// Now is time.Now when nil.
	Now func() time.Time
}

// NewDependencies builds the optional integrations enabled by cfg. The
// returned func flushes the audit queue and closes connections.
func NewDependencies(
	ctx context.Context,
	db *gorm.DB,
	cfg *config.Config,
	logger zerolog.Logger,
) (Dependencies, func(), error) {

	deps := Dependencies{
		DB:     db,
		Config: cfg,
		Logger: logger,
		Audit:  audit.NewDispatcher(audit.New(db), logger),
		Locker: lock.NewLocal(),
	}
	closers := []func(){deps.Audit.Close}

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.RedisURL != "" {
		client, err := lock.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			cleanup()
			return Dependencies{}, nil, err
		}
		closers = append(closers, func() { _ = client.Close() })
		deps.Locker = lock.NewRedis(client, cfg.LockTTL, logger)
		logger.Info().Msg("using redis provider lock")
	}

	if cfg.PaymentsEnabled() {
		verifier, err := payment.NewMercadoPagoVerifier(cfg.MercadoPagoAccessToken, logger)
		if err != nil {
			cleanup()
			return Dependencies{}, nil, err
		}
		deps.Verifier = verifier
		logger.Info().Msg("mercadopago payment verification enabled")
	}

	if cfg.ReceiptsEnabled() {
		deps.Receipts = receipt.NewS3Archiver(cfg)
		logger.Info().Str("bucket", cfg.ReceiptsBucket).Msg("receipt archive enabled")
	}

	return deps, cleanup, nil
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	cfg := deps.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.Config.CORSAllowedOrigins),
		middleware.Timeout(cfg.RequestTimeout),
	)

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(deps.DB)
	directoryRepo := infraRepo.NewDirectoryGormRepository(deps.DB)
	auditLogger := audit.New(deps.DB)

	env := ucAppointment.Env{
		Location: timezone.Location(cfg.Timezone),
		Now:      deps.Now,
		Logger:   deps.Logger,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		directoryRepo,
		directoryRepo,
		appointmentRepo,
		deps.Locker,
		deps.Audit,
		env,
	)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, deps.Audit, env)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, deps.Audit, env)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo, deps.Audit, env)
	confirmPaymentUC := ucAppointment.NewConfirmPayment(
		appointmentRepo,
		deps.Verifier,
		deps.Receipts,
		deps.Audit,
		env,
	)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	historyUC := ucAppointment.NewAppointmentHistory(getAppointmentUC, auditLogger)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo, env)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo, env)

	availabilityUC := ucAppointment.NewGetProviderAvailability(directoryRepo, appointmentRepo, env)

	cancelFutureUC := ucAppointment.NewCancelProviderFutureAppointments(
		directoryRepo,
		appointmentRepo,
		deps.Locker,
		deps.Audit,
		env,
	)
	deactivateUC := ucAppointment.NewDeactivateProvider(directoryRepo, cancelFutureUC)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		confirmPaymentUC,
		getAppointmentUC,
		historyUC,
		listByDateUC,
		listByMonthUC,
		env.Location,
	)
	publicHandler := handlers.NewPublicHandler(availabilityUC, env.Location)
	adminHandler := handlers.NewAdminHandler(deactivateUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, env.Location)

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := deps.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/providers/:id/availability", publicHandler.Availability)
		}

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.GET("/appointments/:id/history", appointmentHandler.History)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/payment", appointmentHandler.ConfirmPayment)
			secured.PATCH(
				"/appointments/:id/status",
				middleware.RequireRole(models.RoleProvider, models.RoleAdmin),
				appointmentHandler.UpdateStatus,
			)

			me := secured.Group("/me")
			me.Use(middleware.RequireRole(models.RoleProvider))
			{
				me.GET("/appointments", appointmentHandler.ListByDate)
				me.GET("/appointments/month", appointmentHandler.ListByMonth)
			}

			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/providers/:id/deactivate", adminHandler.DeactivateProvider)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
