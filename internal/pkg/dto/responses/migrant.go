package responses

import "time"

type MigrantSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	HealthID    string     `json:"health_id,omitempty"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	RecordCount int64      `json:"record_count"`
	LastVisit   *time.Time `json:"last_visit,omitempty"`
}

type MigrantDetail struct {
	User    *User           `json:"user"`
	Records []*HealthRecord `json:"records"`
}

type MigrantStats struct {
	TotalMigrants   int64            `json:"total_migrants"`
	TotalRecords    int64            `json:"total_records"`
	RecordsByType   map[string]int64 `json:"records_by_type"`
	RecordsPerMonth []MonthlyCount   `json:"records_per_month"`
	TopHospitals    []NamedCount     `json:"top_hospitals"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type MigrantAnalytics struct {
	RecordsByType       map[string]int64 `json:"records_by_type"`
	RecentRegistrations int64            `json:"recent_registrations"`
	MigrantsByLanguage  map[string]int64 `json:"migrants_by_language"`
}
