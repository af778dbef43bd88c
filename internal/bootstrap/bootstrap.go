package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/yigit/egresados/internal/app/auth"
	appControllers "github.com/yigit/egresados/internal/app/controllers"
	appMigrations "github.com/yigit/egresados/internal/app/migrations"
	appReports "github.com/yigit/egresados/internal/app/reports"
	appRepos "github.com/yigit/egresados/internal/app/repositories"
	appRoutes "github.com/yigit/egresados/internal/app/routes"
	appServices "github.com/yigit/egresados/internal/app/services"
	"github.com/yigit/egresados/internal/config"
	"github.com/yigit/egresados/internal/db"
	appMiddleware "github.com/yigit/egresados/internal/middleware"
	pkgAuth "github.com/yigit/egresados/internal/pkg/auth"
	"github.com/yigit/egresados/internal/pkg/filestorage"
	"github.com/yigit/egresados/internal/pkg/helpers"
	"github.com/yigit/egresados/internal/pkg/logger"
	"github.com/yigit/egresados/internal/pkg/pdf"
	"github.com/yigit/egresados/internal/pkg/validation"
	"github.com/yigit/egresados/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	FileStorage    *filestorage.LocalStorage
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	AuthMiddleware *appMiddleware.AuthMiddleware
	ReportEngine   *appReports.Engine
	Renderer       *appReports.Renderer
	Controllers    *appRoutes.Controllers
	Logger         zerolog.Logger
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
	if len(cfg.EnvOverrides) > 0 {
		lgr.Info().Strs("keys", cfg.EnvOverrides).Msg("Configuration overridden from environment")
	}
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, applies migrations and seeds the default admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Str("dir", cfg.Database.MigrationsDir).Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(dbPool).MigrateFromDirectory(ctx, cfg.Database.MigrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	users := appRepos.NewUserRepository(dbPool)
	if err := seed.CreateDefaultAdmin(ctx, users, seed.AdminAccount{
		Name:     cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
	}, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	if err := validation.RegisterWithGin(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(
		cfg.Server.StoragePath,
		cfg.PublicBaseURL()+"/uploads",
		filestorage.DefaultPolicies(cfg.Uploads.CertificateMaxBytes, cfg.Uploads.PhotoMaxBytes, cfg.Uploads.PhotoMaxWidth),
	)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 8*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthzService = appAuth.NewAuthorizationService(
		deps.Repos.UserRepository,
		deps.Repos.AcademicRepository,
		deps.Repos.EmploymentRepository,
	)

	repos := deps.Repos
	authService := appServices.NewAuthService(repos.UserRepository, deps.JWTService, logger.Component("auth"))
	userService := appServices.NewUserService(repos.UserRepository, repos.GraduateRepository, deps.FileStorage, logger.Component("users"))
	basicService := appServices.NewBasicInformationService(repos.BasicInfoRepository, logger.Component("basic_information"))
	academicService := appServices.NewAcademicInformationService(repos.AcademicRepository, deps.AuthzService, deps.FileStorage, logger.Component("academic_information"))
	employmentService := appServices.NewEmploymentInformationService(repos.EmploymentRepository, deps.AuthzService, logger.Component("employment_information"))
	profileService := appServices.NewProfileService(repos.ProfileRepository, repos.UserRepository, deps.FileStorage, logger.Component("profile"))
	newsService := appServices.NewNewsService(repos.NewsRepository, deps.FileStorage, logger.Component("news"))
	locationService := appServices.NewLocationService(repos.LocationRepository, logger.Component("location"))

	deps.ReportEngine = appReports.NewEngine(repos.GraduateRepository, appReports.EngineConfig{
		RecentDays: cfg.Reports.RecentDays,
		TopLimit:   cfg.Reports.TopLimit,
	})
	converter := pdf.NewPlaywrightConverter(cfg.Reports.Headless, helpers.ParseDuration(cfg.Reports.RenderTimeout, time.Minute))
	deps.Renderer, err = appReports.NewRenderer(deps.ReportEngine, converter, cfg.Reports.InstitutionName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report renderer: %w", err)
	}

	deps.Controllers = &appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(authService, lgr),
		Users:      appControllers.NewUserController(userService, lgr),
		Basic:      appControllers.NewBasicInformationController(basicService, lgr),
		Academic:   appControllers.NewAcademicInformationController(academicService, lgr),
		Employment: appControllers.NewEmploymentInformationController(employmentService, lgr),
		Profile:    appControllers.NewProfileController(profileService, lgr),
		News:       appControllers.NewNewsController(newsService, lgr),
		Location:   appControllers.NewLocationController(locationService, lgr),
		Reports:    appControllers.NewReportController(deps.ReportEngine, deps.Renderer, lgr),
	}

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(logger.Component("http")), appMiddleware.Recovery(lgr))
	router.MaxMultipartMemory = cfg.Uploads.CertificateMaxBytes + (1 << 20)
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		lgr.Warn().Err(err).Strs("proxies", cfg.Server.TrustedProxies).Msg("Ignoring invalid trusted proxies")
	}

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
