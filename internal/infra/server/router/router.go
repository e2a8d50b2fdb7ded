// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/debtnet/backend/internal/integration/entrypoint/controller"
	"github.com/debtnet/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	debtController       *controller.DebtController
	statisticsController *controller.StatisticsController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	debtController *controller.DebtController,
	statisticsController *controller.StatisticsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		debtController:       debtController,
		statisticsController: statisticsController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.debtController != nil && r.authMiddleware != nil {
			debts := v1.Group("/debts")
			debts.Use(r.authMiddleware.Authenticate())
			{
				debts.GET("", r.debtController.List)
				debts.POST("", r.debtController.Create)
				debts.DELETE("", r.debtController.DeleteAll)
				debts.GET("/:id", r.debtController.Get)
				debts.PATCH("/:id", r.debtController.Update)
				debts.DELETE("/:id", r.debtController.Delete)
				debts.POST("/:id/payments", r.debtController.RecordPayment)
				debts.PUT("/:id/paid", r.debtController.SetPaid)
			}
		}

		if r.statisticsController != nil && r.authMiddleware != nil {
			statistics := v1.Group("/statistics")
			statistics.Use(r.authMiddleware.Authenticate())
			{
				statistics.GET("", r.statisticsController.Get)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
