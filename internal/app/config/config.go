package config

import (
	"arogya-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "arogya"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                utils.GetEnvString("APP_ENV", "development"),
			Port:                               utils.GetEnvString("APP_PORT", "8080"),
			Version:                            utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                            utils.GetEnvString("APP_ADDRESS", "localhost"),
			BaseUrl:                            utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			EndpointPrefix:                     utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:                        utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:          utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			RequestBodyLimitInMegabyte:         utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			LoginMaxAttemptsPerWindow:          utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS_PER_WINDOW", 10),
			LoginAttemptWindowInMinutes:        utils.GetEnvInt("APP_LOGIN_ATTEMPT_WINDOW_IN_MINUTES", 15),
			ShareLinkExpiryTimeInHours:         utils.GetEnvInt("APP_SHARE_LINK_EXPIRY_TIME_IN_HOURS", 1),
			ShareResolveRequestsPerSecond:      utils.GetEnvInt("APP_SHARE_RESOLVE_REQUESTS_PER_SECOND", 5),
			AttachmentMaxUploadSizeInMB:        utils.GetEnvInt("APP_ATTACHMENT_MAX_UPLOAD_SIZE_IN_MB", 6),
			RabbitMQAuditQueue:                 utils.GetEnvString("APP_RABBITMQ_AUDIT_QUEUE", "audit_events"),
			MinioBucketName:                    utils.GetEnvString("APP_MINIO_BUCKET_NAME", "health-record-attachments"),
			MinioPresignedURLExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRESIGNED_URL_EXPIRY_TIME_IN_HOURS", 1),
		},
		JWT: JWT{
			Secret:          utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour:   utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
			AssertionSecret: utils.GetEnvString("JWT_ASSERTION_SECRET", "anyassertion"),
		},
	}
}
