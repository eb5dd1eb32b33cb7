package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-management/config"
	deliveryHttp "hospital-management/internal/delivery/http"
	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/infrastructure/cache"
	"hospital-management/internal/infrastructure/database"
	"hospital-management/internal/infrastructure/metrics"
	"hospital-management/internal/repository"
	"hospital-management/internal/service"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/jwt"
	"hospital-management/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := NewLogger(cfg.App)
	app.Log = log
	log.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if cfg.DB.Migrate {
		if err := migrate(cfg.DB, log); err != nil {
			return nil, err
		}
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	server, err := initializeServer(cfg, log, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// NewLogger builds the JSON logger used by every layer. Unknown levels
// fall back to info.
func NewLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func migrate(cfg config.DBConfig, log *logrus.Logger) error {
	migrator, err := database.NewMigrator(cfg, log)
	if err != nil {
		return err
	}
	defer migrator.Close()
	return migrator.Up()
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	uow := database.NewUnitOfWork(db, log)
	tokenStore := cache.NewRedisTokenStore(redisClient)

	// Initialize repositories
	adminRepo := repository.NewAdminRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	specializationRepo := repository.NewSpecializationRepository()
	doctorSpecializationRepo := repository.NewDoctorSpecializationRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	accountRepo := repository.NewAccountRepository()
	identityUserRepo := repository.NewIdentityUserRepository()
	roleRepo := repository.NewRoleRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	identity := service.NewIdentityProvider(log, identityUserRepo, roleRepo, cfg.Identity.PasswordPolicy)
	if err := identity.EnsureRoles(context.Background(), db, cfg.Identity.Roles()...); err != nil {
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}
	accountService := service.NewAccountService(log, accountRepo, identity, tokenStore, appMetrics)
	emailGenerator := service.NewEmailGenerator(log, identity)
	linker := service.NewSpecializationLinker(log, doctorSpecializationRepo)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	adminUsecase := usecase.NewAdminUsecase(uow, log, customValidator, cfg.Identity, adminRepo, emailGenerator, accountService, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(uow, log, customValidator, cfg.Identity, doctorRepo, specializationRepo, doctorSpecializationRepo, linker, emailGenerator, accountService, auditService)
	patientUsecase := usecase.NewPatientUsecase(uow, log, customValidator, cfg.Identity, patientRepo, emailGenerator, accountService, auditService)
	specializationUsecase := usecase.NewSpecializationUsecase(uow, log, customValidator, specializationRepo, doctorSpecializationRepo, auditService)
	attendanceUsecase := usecase.NewAttendanceUsecase(uow, log, customValidator, attendanceRepo, patientRepo, doctorRepo, auditService)
	authUsecase := usecase.NewAuthUsecase(uow, log, identity, accountService, auditService, jwtService, tokenStore)
	auditLogUsecase := usecase.NewAuditLogUsecase(uow, log, auditLogRepo)

	// Initialize router
	router := deliveryHttp.NewRouter(
		cfg.Identity,
		registry,
		handler.NewAuthHandler(authUsecase, customValidator, jwtService),
		handler.NewAdminHandler(adminUsecase),
		handler.NewDoctorHandler(doctorUsecase),
		handler.NewPatientHandler(patientUsecase),
		handler.NewSpecializationHandler(specializationUsecase),
		handler.NewAttendanceHandler(attendanceUsecase, cfg.Identity.PatientRole),
		handler.NewAuditLogHandler(auditLogUsecase),
		middleware.NewAuthMiddleware(log, jwtService, tokenStore),
		middleware.NewCORSMiddleware(cfg.App.CORSOrigin),
		middleware.NewMetricsMiddleware(appMetrics),
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
