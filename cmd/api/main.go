package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/FilmsDust/agency-os/internal/ai"
	"github.com/FilmsDust/agency-os/internal/config"
	"github.com/FilmsDust/agency-os/internal/database"
	"github.com/FilmsDust/agency-os/internal/handlers"
	"github.com/FilmsDust/agency-os/internal/jobs"
	"github.com/FilmsDust/agency-os/internal/middleware"
	"github.com/FilmsDust/agency-os/internal/repository"
	"github.com/FilmsDust/agency-os/internal/services"
	"github.com/FilmsDust/agency-os/internal/storage"
	"github.com/FilmsDust/agency-os/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Environment)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.ResendAPIKey == "" {
		logger.Warn("Email delivery disabled: RESEND_API_KEY not set")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage")

	repos := repository.NewRepositories(db)

	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	var generator ai.TextGenerator
	if cfg.AIAPIKey != "" {
		generator = ai.NewOpenAIClient(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
		logger.Info("Text generation enabled", "model", cfg.AIModel)
	} else {
		generator = ai.Disabled{}
		logger.Warn("Text generation disabled: AI_API_KEY not set")
	}

	svcs := services.NewServices(repos, worker, store, generator, cfg)

	scheduleJobs(worker, svcs)

	h := handlers.NewHandlers(svcs, store, worker)
	router := setupRouter(h, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	worker.Shutdown()
	logger.Info("Background worker stopped")

	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

// scheduleJobs registers the recurring background work.
func scheduleJobs(worker *jobs.Worker, svcs *services.Services) {
	// Sweep sent invoices past their due date into OVERDUE. Runs at startup
	// and then hourly; lapsing is idempotent per invoice.
	worker.ScheduleEveryImmediate(time.Hour, func(ctx context.Context) error {
		return svcs.Invoice.MarkOverdueInvoices(ctx)
	})
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	v1 := router.Group("/api/v1")
	{
		// Public
		v1.GET("/health", h.Health.Index)
		v1.POST("/auth/login", h.Auth.Login)

		// Everything else requires the operator token
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			// Ledger
			protected.GET("/transactions", h.Transaction.Index)
			protected.POST("/transactions", h.Transaction.Create)
			protected.GET("/transactions/:id", h.Transaction.Show)
			protected.DELETE("/transactions/:id", h.Transaction.Destroy)
			protected.POST("/transactions/:id/receipt", h.Transaction.UploadReceipt)
			protected.GET("/transactions/:id/receipt", h.Transaction.DownloadReceipt)

			// Invoicing
			protected.GET("/invoices", h.Invoice.Index)
			protected.POST("/invoices", h.Invoice.Create)
			protected.GET("/invoices/:id", h.Invoice.Show)
			protected.POST("/invoices/:id/pay", h.Invoice.MarkAsPaid)
			protected.POST("/invoices/:id/cancel", h.Invoice.Cancel)
			protected.DELETE("/invoices/:id", h.Invoice.Destroy)
			protected.GET("/invoices/:id/pdf", h.Invoice.DownloadPDF)

			// Clients
			protected.GET("/clients", h.Client.Index)
			protected.POST("/clients", h.Client.Create)
			protected.GET("/clients/:id", h.Client.Show)
			protected.PUT("/clients/:id", h.Client.Update)
			protected.GET("/clients/:id/stats", h.Client.Stats)
			protected.DELETE("/clients/:id", h.Client.Destroy)

			// Staff and payroll
			protected.GET("/staff", h.Staff.Index)
			protected.POST("/staff", h.Staff.Create)
			protected.GET("/staff/:id", h.Staff.Show)
			protected.PATCH("/staff/:id/status", h.Staff.UpdateStatus)
			protected.DELETE("/staff/:id", h.Staff.Destroy)
			protected.POST("/payroll/run", h.Staff.RunPayroll)

			// Projects
			protected.GET("/projects", h.Project.Index)
			protected.POST("/projects", h.Project.Create)
			protected.GET("/projects/:id", h.Project.Show)
			protected.PATCH("/projects/:id/progress", h.Project.UpdateProgress)
			protected.POST("/projects/:id/hold", h.Project.Hold)
			protected.DELETE("/projects/:id", h.Project.Destroy)

			// Sales pipeline
			protected.GET("/leads", h.Lead.Index)
			protected.POST("/leads", h.Lead.Create)
			protected.GET("/leads/:id", h.Lead.Show)
			protected.PATCH("/leads/:id/stage", h.Lead.MoveStage)
			protected.POST("/leads/:id/convert", h.Lead.Convert)
			protected.DELETE("/leads/:id", h.Lead.Destroy)

			// Proposals
			protected.GET("/proposals", h.Proposal.Index)
			protected.POST("/proposals", h.Proposal.Create)
			protected.GET("/proposals/:id", h.Proposal.Show)
			protected.POST("/proposals/:id/convert", h.Proposal.ConvertToInvoice)
			protected.GET("/proposals/:id/pdf", h.Proposal.DownloadPDF)
			protected.DELETE("/proposals/:id", h.Proposal.Destroy)

			// Service catalog
			protected.GET("/products", h.Product.Index)
			protected.POST("/products", h.Product.Create)
			protected.PUT("/products/:id", h.Product.Update)
			protected.DELETE("/products/:id", h.Product.Destroy)

			// Vendor purchases
			protected.GET("/purchases", h.Purchase.Index)
			protected.POST("/purchases", h.Purchase.Create)
			protected.DELETE("/purchases/:id", h.Purchase.Destroy)
			protected.GET("/purchases/export", h.Purchase.ExportCSV)

			// Settings
			protected.GET("/settings", h.Settings.Show)
			protected.PUT("/settings", h.Settings.Update)

			// Assistant
			protected.GET("/assistant/audit", h.Assistant.AuditReport)
			protected.POST("/assistant/chat", h.Assistant.Chat)

			// Dashboard and exports
			protected.GET("/dashboard", h.Dashboard.Snapshot)
			protected.GET("/dashboard/ledger_xlsx", h.Dashboard.ExportLedgerXLSX)
			protected.GET("/jobs/stats", h.Dashboard.WorkerStats)
		}
	}

	return router
}
