package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_USER_ROLE_KEY            ContextKey = "user_role"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionHealthRecords = "health_records"
	MongoCollectionShareLinks    = "share_links"
	MongoCollectionAuditLogs     = "audit_logs"
)

// Audit action labels. Free-form in the store, but handlers only ever write
// values from this set.
const (
	AuditActionRegisterUser         = "REGISTER_USER"
	AuditActionLogin                = "LOGIN"
	AuditActionPhoneLogin           = "PHONE_LOGIN"
	AuditActionPhoneLoginNewAccount = "PHONE_LOGIN_NEW_ACCOUNT"
	AuditActionCreateRecord         = "CREATE_RECORD"
	AuditActionUpdateRecord         = "UPDATE_RECORD"
	AuditActionDeleteRecord         = "DELETE_RECORD"
	AuditActionShareRecord          = "SHARE_RECORD"
)

const (
	HealthIDPrefix = "MIG-"
	HealthIDLength = 8
)

const (
	ShareTokenByteLength = 16
)

const (
	LoginLimiterGroupName = "LOGIN"

	AppPaginationURLFormat = "%s?page=%d&pageSize=%d"
)
