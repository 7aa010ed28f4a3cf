package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"alphanum":    "must contain only alphanumeric characters",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"oneof":       "must be one of [%s]",
	"len":         "must be %s characters long",
	"password":    "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"user_role":   "must be one of migrant, doctor, govt or admin",
	"record_type": "must be one of doctor_visit, lab_report, vaccination or prescription",
	"phone_number": "must be a valid international phone number " +
		"starting with a plus sign",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidCredentials            = "invalid email/phone or password"
	ErrClientIdentityAlreadyRegistered     = "user with this email or phone already exists"
	ErrClientMissingSignupFields           = "name, role, email/phone, and password are required"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientRecordNotFound                = "health record not found"
	ErrClientUserNotFound                  = "user not found"
	ErrClientShareLinkNotFound             = "invalid or expired link"
	ErrClientShareLinkExpired              = "link has expired"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
	ErrClientMissingAssertion              = "ID token is required"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevUnknownUpdateField       = "update payload contains a field outside the allow list"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevMissingSessionData       = "session data missing from context"

	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevIdentityAlreadyExists    = "email or phone already exists"
	ErrDevUserNotExists            = "user not exists in our system"
	ErrDevRecordNotExists          = "health record not exists in our system"
	ErrDevShareLinkNotExists       = "no share link associated with the given token"
	ErrDevShareLinkExpired         = "share link is past its expiry timestamp"
	ErrDevRecordOwnershipMismatch  = "record is owned by a different user"
	ErrDevRoleNotPermitted         = "role is not permitted for this operation"
	ErrDevLoginRateLimited         = "login attempts exceeded the fixed window quota"
	ErrDevAssertionMissingPhone    = "phone number not found in assertion token"
	ErrDevInvalidHealthRecordType  = "unknown health record type"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"

	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"

	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCountDocuments   = "failed when counting documents on database"
	ErrDevDBFailedToAggregate        = "failed when running aggregation on database"
	ErrDevDBDuplicateKey             = "unique index rejected the document"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue = "failed to INCR data in redis"

	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq queue %s"

	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevServerProcess          = "internal server error while processing the request"
)
