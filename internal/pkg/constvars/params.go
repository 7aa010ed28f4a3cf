package constvars

const (
	URLParamUserID    = "user_id"
	URLParamRecordID  = "record_id"
	URLParamMigrantID = "migrant_id"
	URLParamToken     = "token"
	URLParamQuery     = "query"
)

const (
	URLQueryParamType     = "type"
	URLQueryParamDoctor   = "doctor"
	URLQueryParamHospital = "hospital"
	URLQueryParamTag      = "tag"
	URLQueryParamFrom     = "from"
	URLQueryParamTo       = "to"
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "pageSize"
)
