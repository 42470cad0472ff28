package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-barber-booking/config"
	deliveryHttp "go-barber-booking/internal/delivery/http"
	"go-barber-booking/internal/delivery/http/handler"
	"go-barber-booking/internal/delivery/http/middleware"
	"go-barber-booking/internal/infrastructure/cache"
	"go-barber-booking/internal/infrastructure/database"
	"go-barber-booking/internal/repository"
	"go-barber-booking/internal/service"
	"go-barber-booking/internal/usecase"
	"go-barber-booking/pkg/jwt"
	"go-barber-booking/pkg/response"
	"go-barber-booking/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ratingCacheTTL bounds how stale a barber's aggregate rating can get
// when cache invalidation is missed.
const ratingCacheTTL = 5 * time.Minute

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

	// Error detail in responses only outside production
	response.SetDebug(!cfg.App.IsProduction())

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

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

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	serviceRepo := repository.NewServiceRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	reviewRepo := repository.NewReviewRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Rating aggregate cache
	ratingCache := service.NewRatingCache(redisClient, ratingCacheTTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, redisClient)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, userRepo, serviceRepo)
	bookingUsecase := usecase.NewCustomerBookingUsecase(db, log, appointmentRepo, serviceRepo, userRepo)
	lifecycleUsecase := usecase.NewAppointmentLifecycleUsecase(db, log, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo)
	adminAppointmentUsecase := usecase.NewAdminAppointmentUsecase(db, log, appointmentRepo, serviceRepo)
	reviewUsecase := usecase.NewReviewUsecase(db, log, appointmentRepo, reviewRepo, ratingCache)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	barberHandler := handler.NewBarberHandler(catalogUsecase)
	serviceHandler := handler.NewServiceHandler(catalogUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(bookingUsecase, lifecycleUsecase, appointmentUsecase, customValidator)
	adminAppointmentHandler := handler.NewAdminAppointmentHandler(adminAppointmentUsecase, customValidator)
	reviewHandler := handler.NewReviewHandler(reviewUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		barberHandler,
		serviceHandler,
		appointmentHandler,
		adminAppointmentHandler,
		reviewHandler,
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
