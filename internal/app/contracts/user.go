package contracts

import (
	"context"
	"time"

	"arogya-service/internal/app/models"
)

type UserRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByPhone(ctx context.Context, phone string) (*models.User, error)
	FindUsersByRole(ctx context.Context, role models.Role, nameQuery string, page, pageSize int) ([]*models.User, int64, error)
	CountUsersByRole(ctx context.Context, role models.Role) (int64, error)
	CountUsersByRoleSince(ctx context.Context, role models.Role, since time.Time) (int64, error)
	AggregateUsersByLanguage(ctx context.Context, role models.Role) (map[string]int64, error)
}
