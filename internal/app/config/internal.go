package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                                string
	Port                               string
	Version                            string
	Address                            string
	BaseUrl                            string
	EndpointPrefix                     string
	MaxRequests                        int
	ShutdownTimeoutInSeconds           int
	MaxTimeRequestsPerSeconds          int
	RequestBodyLimitInMegabyte         int
	LoginMaxAttemptsPerWindow          int
	LoginAttemptWindowInMinutes        int
	ShareLinkExpiryTimeInHours         int
	ShareResolveRequestsPerSecond      int
	AttachmentMaxUploadSizeInMB        int
	RabbitMQAuditQueue                 string
	MinioBucketName                    string
	MinioPresignedURLExpiryTimeInHours int
}

type JWT struct {
	Secret          string
	ExpTimeInHour   int
	AssertionSecret string
}
