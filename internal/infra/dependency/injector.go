// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/debtnet/backend/config"
	"github.com/debtnet/backend/internal/application/usecase/auth"
	"github.com/debtnet/backend/internal/application/usecase/debt"
	"github.com/debtnet/backend/internal/application/usecase/reminder"
	"github.com/debtnet/backend/internal/infra/server/router"
	"github.com/debtnet/backend/internal/integration/adapters"
	"github.com/debtnet/backend/internal/integration/email"
	"github.com/debtnet/backend/internal/integration/entrypoint/controller"
	"github.com/debtnet/backend/internal/integration/entrypoint/middleware"
	"github.com/debtnet/backend/internal/integration/notification"
	"github.com/debtnet/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config     *config.Config
	DB         *gorm.DB
	Router     *router.Router
	Dispatcher *notification.Dispatcher
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	debtRepo := persistence.NewDebtRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	// Reminder scheduling and dispatch
	notificationPort := notification.NewRedisPort(redisClient, cfg.Reminder.Enabled)
	scheduler := reminder.NewScheduler(notificationPort)
	reminderSender := email.NewResendClient(
		cfg.Email.ResendAPIKey,
		cfg.Email.FromName,
		cfg.Email.FromEmail,
	)
	dispatcher := notification.NewDispatcher(notificationPort, reminderSender, userRepo, notification.DispatcherConfig{
		PollInterval: cfg.Reminder.PollInterval,
		BatchSize:    cfg.Reminder.DispatchBatchSize,
	})

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Debt use cases
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	getDebtUseCase := debt.NewGetDebtUseCase(debtRepo)
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo, scheduler)
	updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo, scheduler)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo, scheduler)
	deleteAllDebtsUseCase := debt.NewDeleteAllDebtsUseCase(debtRepo, scheduler)
	recordPaymentUseCase := debt.NewRecordPaymentUseCase(debtRepo, scheduler)
	setPaidStatusUseCase := debt.NewSetPaidStatusUseCase(debtRepo, scheduler)
	getStatisticsUseCase := debt.NewGetStatisticsUseCase(debtRepo)

	// Controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	debtController := controller.NewDebtController(
		listDebtsUseCase,
		getDebtUseCase,
		createDebtUseCase,
		updateDebtUseCase,
		deleteDebtUseCase,
		deleteAllDebtsUseCase,
		recordPaymentUseCase,
		setPaidStatusUseCase,
	)

	statisticsController := controller.NewStatisticsController(getStatisticsUseCase)

	// Middleware
	// Higher login rate limits in test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		debtController,
		statisticsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:     cfg,
		DB:         db,
		Router:     r,
		Dispatcher: dispatcher,
	}
}
