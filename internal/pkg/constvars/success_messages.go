package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	UserCreatedSuccess = "user registered successfully"
	LoginSuccess       = "login successful"
	LogoutSuccess      = "logout successful"

	// Health record messages
	RecordCreatedSuccess  = "health record created successfully"
	RecordFetchedSuccess  = "health records fetched successfully"
	RecordUpdatedSuccess  = "health record updated successfully"
	RecordDeletedSuccess  = "health record deleted successfully"
	ShareLinkIssueSuccess = "share link created successfully"
	ShareLinkFetchSuccess = "shared record fetched successfully"

	// Audit messages
	AuditFetchedSuccess = "audit log entries fetched successfully"

	// Dashboard messages
	MigrantsFetchedSuccess  = "migrants fetched successfully"
	StatsFetchedSuccess     = "statistics fetched successfully"
	AnalyticsFetchedSuccess = "analytics fetched successfully"
	HealthIDFetchedSuccess  = "health id fetched successfully"
)
