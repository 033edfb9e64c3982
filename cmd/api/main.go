package main

import (
	"log"
	"os"

	"github.com/blueverse/blueverse-api/internal/application/service"
	"github.com/blueverse/blueverse-api/internal/config"
	"github.com/blueverse/blueverse-api/internal/infrastructure/database"
	"github.com/blueverse/blueverse-api/internal/infrastructure/repository"
	"github.com/blueverse/blueverse-api/internal/presentation/http/handler"
	"github.com/blueverse/blueverse-api/internal/presentation/http/routes"
	"github.com/blueverse/blueverse-api/pkg/email"
	"github.com/blueverse/blueverse-api/pkg/logger"
	"github.com/blueverse/blueverse-api/pkg/pdf"
	"github.com/blueverse/blueverse-api/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger := logger.New(cfg.App.Env)
	defer zapLogger.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:      cfg.SMTP.Host,
		SMTPPort:      cfg.SMTP.Port,
		SMTPUsername:  cfg.SMTP.Username,
		SMTPPassword:  cfg.SMTP.Password,
		FromName:      cfg.SMTP.FromName,
		OperatorEmail: cfg.Invoice.OperatorEmail,
	})

	// Initialize PDF renderer
	renderer := pdf.NewRenderer(pdf.Issuer{
		Name:     cfg.Invoice.IssuerName,
		Address:  cfg.Invoice.IssuerAddress,
		Phone:    cfg.Invoice.IssuerPhone,
		TRN:      cfg.Invoice.IssuerTRN,
		Currency: cfg.Invoice.Currency,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, customerRepo, renderer, emailService, os.TempDir(), zapLogger)

	// Initialize handlers
	handlers := routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, cfg.App.Env, cfg.JWT.ExpiryHours),
		Customer: handler.NewCustomerHandler(customerService),
		Invoice:  handler.NewInvoiceHandler(invoiceService),
	}

	// Setup routes
	router := routes.SetupRouter(handlers, routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Logger:     zapLogger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	zapLogger.Info("starting server",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", port),
	)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
