// Package api wires services, middleware and routes into the HTTP surface.
package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/finboardhq/finboard/internal/api/handlers"
	"github.com/finboardhq/finboard/internal/auth"
	"github.com/finboardhq/finboard/internal/config"
	"github.com/finboardhq/finboard/internal/repository"
	"github.com/finboardhq/finboard/internal/services"
)

// SetupRouter configures and returns the main API router with all routes and middleware.
func SetupRouter(db *sqlx.DB, cfg *config.Config) *gin.Engine {
	// Repositories
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	invoiceSvc := services.NewInvoiceService(invoiceRepo)
	customerSvc := services.NewCustomerService(customerRepo)
	dashboardSvc := services.NewDashboardService(invoiceRepo, customerRepo, revenueRepo)
	authSvc := auth.NewService(cfg.Auth, cfg.Environment, userRepo)

	h := handlers.NewHandlers(invoiceSvc, customerSvc, dashboardSvc, authSvc)

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.Default()

	// Session middleware - must be first
	r.Use(authSvc.SessionMiddleware())

	// CORS middleware
	r.Use(corsMiddleware(cfg))

	// Request tracing
	r.Use(traceMiddleware())

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/session/login", h.Login)

		// Protected routes
		protected := v1.Group("")
		protected.Use(authSvc.Middleware())
		{
			protected.DELETE("/session", h.Logout)

			// Invoice routes
			protected.GET("/invoices", h.ListInvoices)
			protected.GET("/invoices/latest", h.LatestInvoices)
			protected.GET("/invoices/:id", h.GetInvoice)
			protected.POST("/invoices", h.CreateInvoice)
			protected.PUT("/invoices/:id", h.UpdateInvoice)
			protected.DELETE("/invoices/:id", h.DeleteInvoice)

			// Customer routes
			protected.GET("/customers", h.ListCustomers)
			protected.GET("/customers/names", h.ListCustomerNames)

			// Dashboard routes
			protected.GET("/dashboard/cards", h.DashboardCards)
			protected.GET("/revenue", h.RevenueChart)
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "finboard-api",
		})
	})

	return r
}

// traceMiddleware assigns each request a trace id that error responses echo back.
func traceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Request-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set("trace_id", traceID)
		c.Header("X-Request-ID", traceID)
		c.Next()
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// If no allowed origins are configured, disable CORS (secure by default)
		if cfg.Server.AllowedOrigins == "" {
			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}
			c.Next()
			return
		}

		// Check if the origin is in the allowed list
		if isAllowedOrigin(origin, cfg.Server.AllowedOrigins) {
			// Delete any existing CORS headers that might be set by proxies
			c.Writer.Header().Del("Access-Control-Allow-Origin")
			c.Writer.Header().Del("Access-Control-Allow-Credentials")
			c.Writer.Header().Del("Access-Control-Allow-Headers")
			c.Writer.Header().Del("Access-Control-Allow-Methods")

			// Set our CORS headers
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// isAllowedOrigin checks if the origin is in the comma-separated list of allowed origins
func isAllowedOrigin(origin string, allowedOrigins string) bool {
	if origin == "" {
		return false
	}

	origins := strings.Split(allowedOrigins, ",")
	for _, allowed := range origins {
		if strings.TrimSpace(allowed) == origin {
			return true
		}
	}

	return false
}
