package contracts

import (
	"context"

	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/responses"
)

type ShareLinkRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateShareLink(ctx context.Context, link *models.ShareLink) (string, error)
	FindShareLinkByToken(ctx context.Context, token string) (*models.ShareLink, error)
}

type ShareLinkUsecase interface {
	IssueShareLink(ctx context.Context, session *Session, recordID string) (*responses.ShareLink, error)
	ResolveShareLink(ctx context.Context, token string) (*responses.SharedRecord, error)
}
