package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DevSaude360/saude360-backend/config"
	deliveryHttp "github.com/DevSaude360/saude360-backend/internal/delivery/http"
	"github.com/DevSaude360/saude360-backend/internal/delivery/http/handler"
	"github.com/DevSaude360/saude360-backend/internal/delivery/http/middleware"
	"github.com/DevSaude360/saude360-backend/internal/infrastructure/cache"
	"github.com/DevSaude360/saude360-backend/internal/infrastructure/database"
	"github.com/DevSaude360/saude360-backend/internal/infrastructure/storage"
	"github.com/DevSaude360/saude360-backend/internal/repository"
	"github.com/DevSaude360/saude360-backend/internal/service"
	"github.com/DevSaude360/saude360-backend/internal/usecase"
	"github.com/DevSaude360/saude360-backend/pkg/jwt"
	"github.com/DevSaude360/saude360-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply pending migrations
	if err := database.RunMigrations(db, cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize storage client
	storageClient := storage.NewClient(cfg.Storage)

	// Initialize repositories
	credentialRepo := repository.NewCredentialRepository()
	patientRepo := repository.NewPatientRepository()
	professionalRepo := repository.NewProfessionalRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	examRepo := repository.NewExamRepository()
	documentRepo := repository.NewDocumentRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	timelineRepo := repository.NewTimelineRepository()
	categoryRepo := repository.NewCategoryRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	assistantService := service.NewAssistantService(log, cfg.Assistant)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, credentialRepo, patientRepo, professionalRepo, auditService, jwtService, redisClient)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, professionalRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	professionalUsecase := usecase.NewProfessionalUsecase(db, log, professionalRepo)
	examUsecase := usecase.NewExamUsecase(db, log, examRepo, patientRepo, appointmentRepo)
	documentUsecase := usecase.NewDocumentUsecase(db, log, documentRepo, patientRepo, categoryRepo, storageClient, auditService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, appointmentRepo, patientRepo)
	timelineUsecase := usecase.NewTimelineUsecase(db, log, timelineRepo, appointmentRepo)
	categoryUsecase := usecase.NewCategoryUsecase(db, log, categoryRepo, patientRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	professionalHandler := handler.NewProfessionalHandler(professionalUsecase, customValidator)
	examHandler := handler.NewExamHandler(examUsecase, customValidator)
	documentHandler := handler.NewDocumentHandler(documentUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	timelineHandler := handler.NewTimelineHandler(timelineUsecase, customValidator)
	categoryHandler := handler.NewCategoryHandler(categoryUsecase, customValidator)
	assistantHandler := handler.NewAssistantHandler(assistantService, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		patientHandler,
		professionalHandler,
		examHandler,
		documentHandler,
		prescriptionHandler,
		timelineHandler,
		categoryHandler,
		assistantHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
