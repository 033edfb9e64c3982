package routes

import (
	"net/http"

	"github.com/blueverse/blueverse-api/internal/config"
	"github.com/blueverse/blueverse-api/internal/presentation/http/handler"
	"github.com/blueverse/blueverse-api/internal/presentation/http/middleware"
	"github.com/blueverse/blueverse-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups all HTTP handlers
type Handlers struct {
	Auth     *handler.AuthHandler
	Customer *handler.CustomerHandler
	Invoice  *handler.InvoiceHandler
}

// Deps groups the cross-cutting dependencies the router needs
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Logger     *zap.Logger
}

// SetupRouter configures all application routes
func SetupRouter(h Handlers, deps Deps) *gin.Engine {
	if deps.Cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Welcome to the BlueVerse API",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": deps.Cfg.App.Name,
		})
	})

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   middleware.DefaultRateLimiterConfig().CleanupInterval,
		EntryTTL:          middleware.DefaultRateLimiterConfig().EntryTTL,
	})

	api := router.Group("/api")
	api.Use(rateLimiter.Middleware())
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", middleware.AuthMiddleware(deps.JWTManager), h.Auth.Me)
		}

		customers := api.Group("/customers")
		{
			customers.POST("/create", h.Customer.Create)
			customers.GET("/all", h.Customer.List)
			customers.GET("/get/:customerId", h.Customer.Get)
			customers.PUT("/update/:customerId", h.Customer.Update)
			customers.DELETE("/delete/:customerId", h.Customer.Delete)
		}

		invoices := api.Group("/invoices")
		{
			invoices.POST("/create", h.Invoice.Create)
			invoices.GET("/get/:id", h.Invoice.Get)
			invoices.GET("/customer/:customerId", h.Invoice.ListByCustomer)
		}
	}

	return router
}
