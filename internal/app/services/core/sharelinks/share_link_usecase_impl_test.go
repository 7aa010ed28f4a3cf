package sharelinks

import (
	"context"
	"io"
	"mime/multipart"
	"regexp"
	"testing"
	"time"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

type fakeShareLinkRepository struct {
	links []*models.ShareLink
}

func (f *fakeShareLinkRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeShareLinkRepository) CreateShareLink(ctx context.Context, link *models.ShareLink) (string, error) {
	f.links = append(f.links, link)
	return link.Token, nil
}

func (f *fakeShareLinkRepository) FindShareLinkByToken(ctx context.Context, token string) (*models.ShareLink, error) {
	for _, link := range f.links {
		if link.Token == token {
			return link, nil
		}
	}
	return nil, nil
}

type fakeRecordRepository struct {
	records map[string]*models.HealthRecord
}

func (f *fakeRecordRepository) CreateHealthRecord(ctx context.Context, record *models.HealthRecord) (string, error) {
	return record.ID, nil
}

func (f *fakeRecordRepository) FindHealthRecordByID(ctx context.Context, recordID string) (*models.HealthRecord, error) {
	return f.records[recordID], nil
}

func (f *fakeRecordRepository) FindHealthRecords(ctx context.Context, filter contracts.HealthRecordFilter) ([]*models.HealthRecord, error) {
	return nil, nil
}

func (f *fakeRecordRepository) UpdateHealthRecord(ctx context.Context, record *models.HealthRecord) error {
	return nil
}

func (f *fakeRecordRepository) DeleteHealthRecord(ctx context.Context, recordID string) error {
	return nil
}

func (f *fakeRecordRepository) CountHealthRecords(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeRecordRepository) CountHealthRecordsByOwner(ctx context.Context, ownerIDs []string) (map[string]int64, error) {
	return nil, nil
}

func (f *fakeRecordRepository) AggregateRecordCountsByType(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func (f *fakeRecordRepository) AggregateRecordCountsByMonth(ctx context.Context) ([]responses.MonthlyCount, error) {
	return nil, nil
}

func (f *fakeRecordRepository) AggregateTopHospitals(ctx context.Context, limit int) ([]responses.NamedCount, error) {
	return nil, nil
}

type fakeUserRepository struct {
	users map[string]*models.User
}

func (f *fakeUserRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return user.ID, nil
}

func (f *fakeUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) FindUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) FindUsersByRole(ctx context.Context, role models.Role, nameQuery string, page, pageSize int) ([]*models.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepository) CountUsersByRole(ctx context.Context, role models.Role) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepository) CountUsersByRoleSince(ctx context.Context, role models.Role, since time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepository) AggregateUsersByLanguage(ctx context.Context, role models.Role) (map[string]int64, error) {
	return nil, nil
}

type fakeStorage struct{}

func (f *fakeStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) (string, error) {
	return objectName, nil
}

func (f *fakeStorage) GetObjectURLWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	return "https://storage.example.com/" + objectName, nil
}

type fakeAuditRecorder struct {
	actions []string
}

func (f *fakeAuditRecorder) Record(ctx context.Context, userID, action, recordID string) {
	f.actions = append(f.actions, action)
}

func newShareTestUsecase() (*fakeShareLinkRepository, *fakeRecordRepository, *fakeUserRepository, *fakeAuditRecorder, contracts.ShareLinkUsecase) {
	shareRepo := &fakeShareLinkRepository{}
	recordRepo := &fakeRecordRepository{records: map[string]*models.HealthRecord{}}
	userRepo := &fakeUserRepository{users: map[string]*models.User{}}
	auditRecorder := &fakeAuditRecorder{}
	internalConfig := &config.InternalConfig{
		App: config.App{
			BaseUrl:                            "https://api.example.com",
			EndpointPrefix:                     "/api/v1",
			ShareLinkExpiryTimeInHours:         1,
			MinioPresignedURLExpiryTimeInHours: 1,
		},
	}
	usecase := NewShareLinkUsecase(shareRepo, recordRepo, userRepo, &fakeStorage{}, auditRecorder, internalConfig)
	return shareRepo, recordRepo, userRepo, auditRecorder, usecase
}

func seedRecordAndOwner(recordRepo *fakeRecordRepository, userRepo *fakeUserRepository) {
	userRepo.users["user-1"] = &models.User{
		ID:       "user-1",
		Name:     "Siti Rahma",
		Email:    "siti@example.com",
		Phone:    "+6281234567890",
		Password: "$2a$10$secret",
		Role:     models.RoleMigrant,
		HealthID: "MIG-0a1b2c3d",
	}
	recordRepo.records["record-1"] = &models.HealthRecord{
		ID:      "record-1",
		OwnerID: "user-1",
		Type:    models.RecordTypeLabReport,
		Title:   "Blood panel",
	}
}

func TestShareLinkUsecase_IssueShareLink(t *testing.T) {
	session := &contracts.Session{UserID: "user-1", Role: "migrant"}
	tokenPattern := regexp.MustCompile(constvars.RegexShareToken)

	t.Run("Issues Opaque Token With Expiry", func(t *testing.T) {
		shareRepo, recordRepo, userRepo, auditRecorder, usecase := newShareTestUsecase()
		seedRecordAndOwner(recordRepo, userRepo)

		before := time.Now()
		result, err := usecase.IssueShareLink(context.Background(), session, "record-1")

		assert.NoError(t, err)
		assert.True(t, tokenPattern.MatchString(result.Token), "token %q should be 32 hex characters", result.Token)
		assert.Equal(t, "https://api.example.com/api/v1/share/"+result.Token, result.ShareURL)
		assert.WithinDuration(t, before.Add(time.Hour), result.ExpiresAt, 5*time.Second, "link should expire about one hour out")
		assert.Len(t, shareRepo.links, 1)
		assert.Contains(t, auditRecorder.actions, constvars.AuditActionShareRecord)
	})

	t.Run("Distinct Tokens Per Issue", func(t *testing.T) {
		_, recordRepo, userRepo, _, usecase := newShareTestUsecase()
		seedRecordAndOwner(recordRepo, userRepo)

		first, err := usecase.IssueShareLink(context.Background(), session, "record-1")
		assert.NoError(t, err)
		second, err := usecase.IssueShareLink(context.Background(), session, "record-1")
		assert.NoError(t, err)
		assert.NotEqual(t, first.Token, second.Token, "each issued link gets its own token")
	})

	t.Run("Unknown Record", func(t *testing.T) {
		_, _, _, _, usecase := newShareTestUsecase()

		_, err := usecase.IssueShareLink(context.Background(), session, "record-404")
		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestShareLinkUsecase_ResolveShareLink(t *testing.T) {
	session := &contracts.Session{UserID: "user-1", Role: "migrant"}

	t.Run("Resolves With Redacted Owner", func(t *testing.T) {
		_, recordRepo, userRepo, _, usecase := newShareTestUsecase()
		seedRecordAndOwner(recordRepo, userRepo)

		issued, err := usecase.IssueShareLink(context.Background(), session, "record-1")
		assert.NoError(t, err)

		shared, err := usecase.ResolveShareLink(context.Background(), issued.Token)
		assert.NoError(t, err)
		assert.Equal(t, "record-1", shared.Record.ID)
		assert.Equal(t, "Blood panel", shared.Record.Title)
		assert.Equal(t, "user-1", shared.Owner.ID)
		assert.Equal(t, "Siti Rahma", shared.Owner.Name)
		assert.Equal(t, "siti@example.com", shared.Owner.Email)
	})

	t.Run("Repeat Resolution Within Window", func(t *testing.T) {
		_, recordRepo, userRepo, _, usecase := newShareTestUsecase()
		seedRecordAndOwner(recordRepo, userRepo)

		issued, err := usecase.IssueShareLink(context.Background(), session, "record-1")
		assert.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, err := usecase.ResolveShareLink(context.Background(), issued.Token)
			assert.NoError(t, err, "resolution %d should still succeed", i+1)
		}
	})

	t.Run("Unknown Token", func(t *testing.T) {
		_, _, _, _, usecase := newShareTestUsecase()

		_, err := usecase.ResolveShareLink(context.Background(), "0123456789abcdef0123456789abcdef")
		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Malformed Token Treated As Unknown", func(t *testing.T) {
		_, _, _, _, usecase := newShareTestUsecase()

		_, err := usecase.ResolveShareLink(context.Background(), "../etc/passwd")
		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode, "token format errors must not leak anything beyond not found")
	})

	t.Run("Expired Token Gone", func(t *testing.T) {
		shareRepo, recordRepo, userRepo, _, usecase := newShareTestUsecase()
		seedRecordAndOwner(recordRepo, userRepo)

		expired := &models.ShareLink{
			Token:     "0123456789abcdef0123456789abcdef",
			RecordID:  "record-1",
			CreatedBy: "user-1",
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		shareRepo.links = append(shareRepo.links, expired)

		_, err := usecase.ResolveShareLink(context.Background(), expired.Token)
		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusGone, customErr.StatusCode, "expired links answer 410, distinct from unknown tokens")
	})
}
