package audit

import (
	"context"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/rbac"
)

type AuditUsecase struct {
	Repository contracts.AuditLogRepository
}

func NewAuditUsecase(repository contracts.AuditLogRepository) contracts.AuditUsecase {
	return &AuditUsecase{Repository: repository}
}

func (uc *AuditUsecase) GetOwnAuditLogs(ctx context.Context, session *contracts.Session, page, pageSize int) ([]*responses.AuditLog, int64, error) {
	return uc.GetAuditLogsForUser(ctx, session, session.UserID, page, pageSize)
}

// GetAuditLogsForUser returns the trail of one user. Everyone may read
// their own trail, other users' trails need the full-trail grant.
func (uc *AuditUsecase) GetAuditLogsForUser(ctx context.Context, session *contracts.Session, userID string, page, pageSize int) ([]*responses.AuditLog, int64, error) {
	if userID != session.UserID && !rbac.IsAllowed(session.Role, rbac.OpAuditReadAll) {
		return nil, 0, exceptions.ErrRoleNotPermitted(nil)
	}

	entries, total, err := uc.Repository.FindAuditLogsByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return buildAuditResponses(entries), total, nil
}

func (uc *AuditUsecase) GetAllAuditLogs(ctx context.Context, session *contracts.Session, page, pageSize int) ([]*responses.AuditLog, int64, error) {
	if !rbac.IsAllowed(session.Role, rbac.OpAuditReadAll) {
		return nil, 0, exceptions.ErrRoleNotPermitted(nil)
	}

	entries, total, err := uc.Repository.FindAllAuditLogs(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return buildAuditResponses(entries), total, nil
}

func buildAuditResponses(entries []*models.AuditLog) []*responses.AuditLog {
	result := make([]*responses.AuditLog, 0, len(entries))
	for _, entry := range entries {
		result = append(result, &responses.AuditLog{
			ID:        entry.ID,
			UserID:    entry.UserID,
			Action:    entry.Action,
			RecordID:  entry.RecordID,
			Timestamp: entry.Timestamp,
		})
	}
	return result
}
