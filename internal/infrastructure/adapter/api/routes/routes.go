package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups the API handlers mounted by SetupRoutes
type Handlers struct {
	Ledger *handler.LedgerHandler
	Access *handler.AccessHandler
	Health *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	gate usecase.AccessUseCase,
	loginLimiter *middleware.RateLimiter,
) {
	router.GET("/health", handlers.Health.Health)
	router.POST("/login", loginLimiter.Middleware(), handlers.Access.Login)

	authorized := router.Group("/")
	authorized.Use(middleware.RequireSession(gate))
	{
		authorized.POST("/logout", handlers.Access.Logout)

		// Ledger routes
		transactions := authorized.Group("/transactions")
		{
			// GET /transactions
			transactions.GET("", handlers.Ledger.GetLedger)

			// GET /transactions/options
			transactions.GET("/options", handlers.Ledger.ListOptions)

			// GET /transactions/:id
			transactions.GET("/:id", handlers.Ledger.GetEditForm)

			// POST /transactions
			transactions.POST("", handlers.Ledger.CreateTransaction)

			// PUT /transactions/:id
			transactions.PUT("/:id", handlers.Ledger.UpdateTransaction)

			// DELETE /transactions/:id
			transactions.DELETE("/:id", handlers.Ledger.DeleteTransaction)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
