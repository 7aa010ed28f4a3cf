package contracts

import (
	"context"

	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
)

type HealthRecordFilter struct {
	OwnerID  string
	Type     models.RecordType
	Doctor   string
	Hospital string
	Tag      string
	From     string
	To       string
}

type HealthRecordRepository interface {
	CreateHealthRecord(ctx context.Context, record *models.HealthRecord) (string, error)
	FindHealthRecordByID(ctx context.Context, recordID string) (*models.HealthRecord, error)
	FindHealthRecords(ctx context.Context, filter HealthRecordFilter) ([]*models.HealthRecord, error)
	UpdateHealthRecord(ctx context.Context, record *models.HealthRecord) error
	DeleteHealthRecord(ctx context.Context, recordID string) error
	CountHealthRecords(ctx context.Context) (int64, error)
	CountHealthRecordsByOwner(ctx context.Context, ownerIDs []string) (map[string]int64, error)
	AggregateRecordCountsByType(ctx context.Context) (map[string]int64, error)
	AggregateRecordCountsByMonth(ctx context.Context) ([]responses.MonthlyCount, error)
	AggregateTopHospitals(ctx context.Context, limit int) ([]responses.NamedCount, error)
}

type HealthRecordUsecase interface {
	CreateRecord(ctx context.Context, session *Session, request *requests.CreateHealthRecord) (*responses.HealthRecord, error)
	GetOwnRecords(ctx context.Context, session *Session, request *requests.SearchHealthRecords) ([]*responses.HealthRecord, error)
	GetRecordsForUser(ctx context.Context, session *Session, ownerID string, request *requests.SearchHealthRecords) ([]*responses.HealthRecord, error)
	UpdateRecord(ctx context.Context, session *Session, recordID string, request *requests.UpdateHealthRecord) (*responses.HealthRecord, error)
	DeleteRecord(ctx context.Context, session *Session, recordID string) error
}
