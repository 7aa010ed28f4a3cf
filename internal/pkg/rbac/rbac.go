// Package rbac holds the static role policy for the API. Every guarded
// operation must be listed here, unknown operations and roles are denied.
package rbac

type Operation string

const (
	OpRecordCreate Operation = "records:create"
	OpRecordRead   Operation = "records:read"
	OpRecordUpdate Operation = "records:update"
	OpRecordDelete Operation = "records:delete"
	OpRecordShare  Operation = "records:share"

	OpAuditReadSelf Operation = "audit:read_self"
	OpAuditReadAll  Operation = "audit:read_all"

	OpMigrantsRead      Operation = "migrants:read"
	OpMigrantsAnalytics Operation = "migrants:analytics"

	OpHealthIDRead Operation = "users:health_id"
)

var policy = map[Operation]map[string]bool{
	OpRecordCreate: {"migrant": true, "doctor": true, "admin": true},
	OpRecordRead:   {"migrant": true, "doctor": true, "govt": true, "admin": true},
	OpRecordUpdate: {"migrant": true, "doctor": true, "admin": true},
	OpRecordDelete: {"migrant": true, "doctor": true, "admin": true},
	OpRecordShare:  {"migrant": true, "doctor": true, "govt": true, "admin": true},

	OpAuditReadSelf: {"migrant": true, "doctor": true, "govt": true, "admin": true},
	OpAuditReadAll:  {"admin": true},

	OpMigrantsRead:      {"doctor": true, "govt": true, "admin": true},
	OpMigrantsAnalytics: {"doctor": true, "govt": true, "admin": true},

	OpHealthIDRead: {"migrant": true, "doctor": true, "govt": true, "admin": true},
}

// IsAllowed reports whether the given role may perform the operation.
// Anything not explicitly granted is denied.
func IsAllowed(role string, operation Operation) bool {
	roles, ok := policy[operation]
	if !ok {
		return false
	}
	return roles[role]
}
