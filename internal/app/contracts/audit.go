package contracts

import (
	"context"

	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/responses"
)

type AuditLogRepository interface {
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) error
	FindAuditLogsByUser(ctx context.Context, userID string, page, pageSize int) ([]*models.AuditLog, int64, error)
	FindAllAuditLogs(ctx context.Context, page, pageSize int) ([]*models.AuditLog, int64, error)
}

// AuditRecorder writes audit entries on a best effort basis. Record
// never fails the calling operation.
type AuditRecorder interface {
	Record(ctx context.Context, userID, action, recordID string)
}

// AuditQueuePublisher fans audit events out to the message broker for
// downstream consumers.
type AuditQueuePublisher interface {
	PublishAuditEvent(ctx context.Context, entry *models.AuditLog) error
}

type AuditUsecase interface {
	GetOwnAuditLogs(ctx context.Context, session *Session, page, pageSize int) ([]*responses.AuditLog, int64, error)
	GetAuditLogsForUser(ctx context.Context, session *Session, userID string, page, pageSize int) ([]*responses.AuditLog, int64, error)
	GetAllAuditLogs(ctx context.Context, session *Session, page, pageSize int) ([]*responses.AuditLog, int64, error)
}
