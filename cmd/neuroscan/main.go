package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/neuroscan-id/neuroscan/internal/pkg/config"
	"github.com/neuroscan-id/neuroscan/internal/pkg/database"
	"github.com/neuroscan-id/neuroscan/internal/pkg/health"
	"github.com/neuroscan-id/neuroscan/internal/pkg/inference"
	"github.com/neuroscan-id/neuroscan/internal/pkg/logger"
	"github.com/neuroscan-id/neuroscan/internal/pkg/middleware"
	natspkg "github.com/neuroscan-id/neuroscan/internal/pkg/nats"
	"github.com/neuroscan-id/neuroscan/internal/pkg/server"
	authGateway "github.com/neuroscan-id/neuroscan/services/auth/gateway"
	authHandler "github.com/neuroscan-id/neuroscan/services/auth/handler"
	authHTTP "github.com/neuroscan-id/neuroscan/services/auth/handler/http"
	authRepository "github.com/neuroscan-id/neuroscan/services/auth/repository"
	authUsecase "github.com/neuroscan-id/neuroscan/services/auth/usecase"
	diagGateway "github.com/neuroscan-id/neuroscan/services/diagnosis/gateway"
	diagHandler "github.com/neuroscan-id/neuroscan/services/diagnosis/handler"
	diagHTTP "github.com/neuroscan-id/neuroscan/services/diagnosis/handler/http"
	diagUsecase "github.com/neuroscan-id/neuroscan/services/diagnosis/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "neuroscan"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/neuroscan.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("second_factor", configs.Auth.SecondFactor),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Load ONNX models; the service cannot start without them
	runtime, err := inference.NewRuntime(configs.Inference)
	if err != nil {
		zapLogger.Fatal("Failed to load models", zap.Error(err))
	}
	defer runtime.Close()

	zapLogger.Info("Models loaded",
		zap.Int("count", len(runtime.Predictors())),
		zap.Strings("paths", configs.Inference.ModelPaths),
	)

	// Initialize repositories
	userRepo := authRepository.NewUserRepo(postgresClient.GetDB())
	challengeRepo := authRepository.NewChallengeRepo(configs, redisClient)

	// Initialize gateways
	authGW := authGateway.NewAuthGW(configs.SMTP, natsClient)
	diagnosisGW := diagGateway.NewDiagnosisGW(natsClient)

	// Initialize usecases
	authUC := authUsecase.NewAuthUC(userRepo, challengeRepo, authGW, configs)
	diagnosisUC := diagUsecase.NewDiagnosisUC(runtime.Predictors(), diagnosisGW)

	// Initialize handlers
	authH := authHandler.NewHandler(authHTTP.NewAuthHandler(authUC), redisClient, configs)
	diagnosisH := diagHandler.NewHandler(diagHTTP.NewDiagnosisHandler(diagnosisUC))

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	authH.RegisterRoutes(e)
	diagnosisH.RegisterRoutes(e, authH.GetJWTMiddleware())

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}
}
