package api

import (
	"fmt"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/coverwise/risk-profile-api/docs"
	"github.com/coverwise/risk-profile-api/internal/api/handler"
	"github.com/coverwise/risk-profile-api/internal/api/middleware"
	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/service"
	"github.com/coverwise/risk-profile-api/internal/infrastructure/config"
	mongodb "github.com/coverwise/risk-profile-api/internal/infrastructure/db/mongo"
	redisdb "github.com/coverwise/risk-profile-api/internal/infrastructure/db/redis"
	"github.com/coverwise/risk-profile-api/internal/infrastructure/engine"
	"github.com/coverwise/risk-profile-api/internal/infrastructure/queue"
	"github.com/coverwise/risk-profile-api/internal/infrastructure/session"
)

// NewRouter builds the Echo instance with all routes registered, and the
// dispatcher that executes simulation runs. The caller owns starting the
// dispatcher and the server.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("riskprofile"))

	// --- Repositories ---
	profileRepo := mongodb.NewProfileRepository(db)
	simulationRepo := mongodb.NewSimulationRepository(db)
	documentRepo := mongodb.NewDocumentRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	insuranceRepo := mongodb.NewInsuranceDataRepository(db)
	authRepo := mongodb.NewAuthRepository(db)

	blobStore, err := mongodb.NewGridFSStore(db)
	if err != nil {
		return nil, nil, fmt.Errorf("router: gridfs store: %w", err)
	}

	// --- Services ---
	sessions := session.NewContextProvider()
	bounds := domain.ProfileBounds{MaxAge: cfg.Profile.MaxAge, MaxAmount: cfg.Profile.MaxAmount}

	intakeService := service.NewIntakeService(profileRepo, sessions, bounds, log)
	simulationService := service.NewSimulationService(
		profileRepo,
		simulationRepo,
		engine.NewBaselineEngine(),
		redisdb.NewRunGuard(rdb),
		log,
	)
	documentService := service.NewDocumentService(documentRepo, blobStore, cfg.Upload.MaxBytes, log)
	reportService := service.NewReportService(simulationRepo, reportRepo, log)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)

	dispatcher := queue.NewDispatcher(cfg.Workers, simulationService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(intakeService)
	simulationHandler := handler.NewSimulationHandler(simulationService, dispatcher)
	documentHandler := handler.NewDocumentHandler(documentService)
	reportHandler := handler.NewReportHandler(reportService)
	insuranceHandler := handler.NewInsuranceHandler(insuranceRepo)
	dashboardHandler := handler.NewDashboardHandler(intakeService, simulationService, documentService)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	v1 := e.Group("/v1",
		middleware.Auth(cfg.JWTSecret),
		middleware.RBAC(domain.RoleMember, domain.RoleAdmin),
	)

	v1.PUT("/profile", profileHandler.Submit)
	v1.GET("/profile", profileHandler.Get)

	v1.POST("/simulations", simulationHandler.Run)
	v1.GET("/simulations", simulationHandler.List)
	v1.GET("/simulations/latest-cost", simulationHandler.LatestCost)

	v1.POST("/documents", documentHandler.Upload)
	v1.GET("/documents", documentHandler.List)

	v1.POST("/reports", reportHandler.Generate)
	v1.GET("/reports", reportHandler.List)

	v1.GET("/insurance-data", insuranceHandler.List)
	v1.GET("/dashboard", dashboardHandler.Get)

	return e, dispatcher, nil
}
