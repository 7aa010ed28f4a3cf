package audit

import (
	"context"
	"time"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Recorder writes audit entries without ever failing the caller. A
// failed write is logged and dropped, an audit outage must not block
// patient facing operations.
type Recorder struct {
	repository contracts.AuditLogRepository
	publisher  contracts.AuditQueuePublisher
	log        *zap.Logger
}

func NewRecorder(repository contracts.AuditLogRepository, publisher contracts.AuditQueuePublisher, log *zap.Logger) contracts.AuditRecorder {
	return &Recorder{
		repository: repository,
		publisher:  publisher,
		log:        log,
	}
}

func (r *Recorder) Record(ctx context.Context, userID, action, recordID string) {
	entry := &models.AuditLog{
		UserID:    userID,
		Action:    action,
		RecordID:  recordID,
		Timestamp: time.Now(),
	}

	if err := r.repository.CreateAuditLog(ctx, entry); err != nil {
		r.log.Warn("audit entry write failed",
			zap.String(constvars.LoggingActionKey, action),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err))
	}

	if r.publisher == nil {
		return
	}
	if err := r.publisher.PublishAuditEvent(ctx, entry); err != nil {
		r.log.Warn("audit event publish failed",
			zap.String(constvars.LoggingActionKey, action),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err))
	}
}
