package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/scholarstream/scholarstream/docs" // Import generated swagger docs
	appControllers "github.com/scholarstream/scholarstream/internal/app/controllers"
	appMigrations "github.com/scholarstream/scholarstream/internal/app/migrations"
	appRepos "github.com/scholarstream/scholarstream/internal/app/repositories"
	appRoutes "github.com/scholarstream/scholarstream/internal/app/routes"
	appServices "github.com/scholarstream/scholarstream/internal/app/services"
	"github.com/scholarstream/scholarstream/internal/config"
	"github.com/scholarstream/scholarstream/internal/db"
	appMiddleware "github.com/scholarstream/scholarstream/internal/middleware"
	"github.com/scholarstream/scholarstream/internal/pkg/identity"
	"github.com/scholarstream/scholarstream/internal/pkg/logger"
	"github.com/scholarstream/scholarstream/internal/pkg/payments"
	"github.com/scholarstream/scholarstream/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService           appServices.UserService
	ScholarshipService    appServices.ScholarshipService
	ApplicationService    appServices.ApplicationService
	ReviewService         appServices.ReviewService
	DashboardService      appServices.DashboardService
	UserController        *appControllers.UserController
	ScholarshipController *appControllers.ScholarshipController
	ApplicationController *appControllers.ApplicationController
	ReviewController      *appControllers.ReviewController
	DashboardController   *appControllers.DashboardController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	IdentityVerifier      identity.Verifier
	PaymentClient         *payments.Client
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed a bootstrap admin after migrations
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Identity provider client and token verifier
	profileClient := identity.NewClient(identity.ClientConfig{
		BaseURL: cfg.Identity.BaseURL,
		APIKey:  cfg.Identity.APIKey,
	})
	deps.IdentityVerifier = identity.NewService(identity.Config{
		Secret:   cfg.Identity.Secret,
		Issuer:   cfg.Identity.Issuer,
		Audience: cfg.Identity.Audience,
	}, profileClient)

	// Payment provider client
	deps.PaymentClient = payments.NewClient(payments.Config{
		BaseURL:    cfg.Payments.BaseURL,
		SecretKey:  cfg.Payments.SecretKey,
		Currency:   cfg.Payments.Currency,
		SuccessURL: cfg.Payments.SuccessURL,
		CancelURL:  cfg.Payments.CancelURL,
	})

	// Initialize services
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, lgr)
	deps.ScholarshipService = appServices.NewScholarshipService(deps.Repos.ScholarshipRepository)
	deps.ApplicationService = appServices.NewApplicationService(deps.Repos.ApplicationRepository, deps.PaymentClient, lgr)
	deps.ReviewService = appServices.NewReviewService(deps.Repos.ReviewRepository)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos.StatsRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.IdentityVerifier, deps.Repos.UserRepository)

	// Initialize controllers
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ScholarshipController = appControllers.NewScholarshipController(deps.ScholarshipService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService)
	deps.ReviewController = appControllers.NewReviewController(deps.ReviewService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// CORS for the browser client
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.Origins
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.ScholarshipController,
		deps.ApplicationController,
		deps.ReviewController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
