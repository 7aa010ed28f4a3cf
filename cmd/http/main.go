package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/delivery/http/controllers"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/delivery/http/routers"
	"arogya-service/internal/app/drivers/database"
	"arogya-service/internal/app/drivers/logger"
	"arogya-service/internal/app/drivers/messaging"
	"arogya-service/internal/app/drivers/storage"
	"arogya-service/internal/app/services/core/audit"
	"arogya-service/internal/app/services/core/auth"
	"arogya-service/internal/app/services/core/migrants"
	"arogya-service/internal/app/services/core/records"
	"arogya-service/internal/app/services/core/sharelinks"
	"arogya-service/internal/app/services/core/users"
	"arogya-service/internal/app/services/shared/assertion"
	"arogya-service/internal/app/services/shared/auditqueue"
	"arogya-service/internal/app/services/shared/ratelimiter"
	"arogya-service/internal/app/services/shared/redis"
	sharedstorage "arogya-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		bootLog.Infof("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	bootLog.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Error while closing dependencies: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	internalConfig := bootstrap.InternalConfig
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	loginLimiter := ratelimiter.NewLoginLimiter(
		redisRepository,
		bootstrap.Logger,
		internalConfig.App.LoginMaxAttemptsPerWindow,
		internalConfig.App.LoginAttemptWindowInMinutes,
	)
	minioStorage := sharedstorage.NewMinioStorage(minioClient, internalConfig.App.MinioBucketName)
	assertionVerifier := assertion.NewHMACVerifier(internalConfig.JWT.AssertionSecret)

	auditPublisher, err := auditqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, internalConfig.App.RabbitMQAuditQueue)
	if err != nil {
		bootstrap.Logger.Fatal("failed to initialize audit queue", zap.Error(err))
	}

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	recordRepository := records.NewHealthRecordMongoRepository(bootstrap.MongoClient, dbName)
	shareLinkRepository := sharelinks.NewShareLinkMongoRepository(bootstrap.MongoClient, dbName)
	auditRepository := audit.NewAuditMongoRepository(bootstrap.MongoClient, dbName)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := userRepository.EnsureIndexes(indexCtx); err != nil {
		bootstrap.Logger.Fatal("failed to ensure user indexes", zap.Error(err))
	}
	if err := shareLinkRepository.EnsureIndexes(indexCtx); err != nil {
		bootstrap.Logger.Fatal("failed to ensure share link indexes", zap.Error(err))
	}

	// Usecases
	auditRecorder := audit.NewRecorder(auditRepository, auditPublisher, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(userRepository, assertionVerifier, loginLimiter, auditRecorder, internalConfig)
	recordUsecase := records.NewHealthRecordUsecase(recordRepository, minioStorage, auditRecorder, internalConfig)
	shareLinkUsecase := sharelinks.NewShareLinkUsecase(shareLinkRepository, recordRepository, userRepository, minioStorage, auditRecorder, internalConfig)
	auditUsecase := audit.NewAuditUsecase(auditRepository)
	migrantUsecase := migrants.NewMigrantUsecase(userRepository, recordRepository)

	// Delivery
	mw := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, internalConfig)
	recordController := controllers.NewHealthRecordController(bootstrap.Logger, recordUsecase, shareLinkUsecase, internalConfig.App.AttachmentMaxUploadSizeInMB)
	shareLinkController := controllers.NewShareLinkController(bootstrap.Logger, shareLinkUsecase)
	auditController := controllers.NewAuditController(bootstrap.Logger, auditUsecase)
	migrantController := controllers.NewMigrantController(bootstrap.Logger, migrantUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		mw,
		authController,
		recordController,
		shareLinkController,
		auditController,
		migrantController,
	)
}
