package contracts

import (
	"context"

	"arogya-service/internal/pkg/dto/responses"
)

type MigrantUsecase interface {
	ListMigrants(ctx context.Context, page, pageSize int) ([]*responses.MigrantSummary, int64, error)
	SearchMigrants(ctx context.Context, nameQuery string, page, pageSize int) ([]*responses.MigrantSummary, int64, error)
	GetMigrantDetail(ctx context.Context, migrantID string) (*responses.MigrantDetail, error)
	GetStats(ctx context.Context) (*responses.MigrantStats, error)
	GetAnalytics(ctx context.Context) (*responses.MigrantAnalytics, error)
}
