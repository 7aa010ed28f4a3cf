package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
)

type fakeUserRepository struct {
	users     []*models.User
	nextID    int
	createErr error
	findErr   error
}

func (f *fakeUserRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users = append(f.users, user)
	return user.ID, nil
}

func (f *fakeUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, f.findErr
}

func (f *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.Phone == phone {
			return user, nil
		}
	}
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

type recordedAudit struct {
	UserID   string
	Action   string
	RecordID string
}

type fakeAuditRecorder struct {
	entries []recordedAudit
}

func (f *fakeAuditRecorder) Record(ctx context.Context, userID, action, recordID string) {
	f.entries = append(f.entries, recordedAudit{UserID: userID, Action: action, RecordID: recordID})
}

func (f *fakeAuditRecorder) lastAction() string {
	if len(f.entries) == 0 {
		return ""
	}
	return f.entries[len(f.entries)-1].Action
}

type fakeLoginLimiter struct {
	allowed bool
	err     error
	calls   int
	lastKey string
}

func (f *fakeLoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	f.calls++
	f.lastKey = key
	return f.allowed, f.err
}

type fakeAssertionVerifier struct {
	phone string
	err   error
}

func (f *fakeAssertionVerifier) VerifyPhoneAssertion(ctx context.Context, assertion string) (string, error) {
	return f.phone, f.err
}

func newTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{
			Secret:        "test-session-secret",
			ExpTimeInHour: 1,
		},
	}
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok, "error should be a CustomError, got %T", err)
	if !ok {
		return 0
	}
	return customErr.StatusCode
}

func TestAuthUsecase_Signup(t *testing.T) {
	healthIDPattern := regexp.MustCompile(constvars.RegexHealthID)

	t.Run("Migrant Gets Health ID", func(t *testing.T) {
		userRepo := &fakeUserRepository{}
		auditRecorder := &fakeAuditRecorder{}
		usecase := NewAuthUsecase(userRepo, &fakeAssertionVerifier{}, &fakeLoginLimiter{allowed: true}, auditRecorder, newTestConfig())

		result, err := usecase.Signup(context.Background(), &requests.SignupUser{
			Name:     "Siti Rahma",
			Role:     "migrant",
			Email:    "siti@example.com",
			Password: "Str0ng!Pass",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.User.ID)
		assert.True(t, healthIDPattern.MatchString(result.User.HealthID), "migrant health ID %q should match the public format", result.User.HealthID)
		assert.Equal(t, constvars.AuditActionRegisterUser, auditRecorder.lastAction())
	})

	t.Run("Non Migrant Has No Health ID", func(t *testing.T) {
		userRepo := &fakeUserRepository{}
		usecase := NewAuthUsecase(userRepo, &fakeAssertionVerifier{}, &fakeLoginLimiter{allowed: true}, &fakeAuditRecorder{}, newTestConfig())

		result, err := usecase.Signup(context.Background(), &requests.SignupUser{
			Name:     "Dr Budi",
			Role:     "doctor",
			Email:    "budi@example.com",
			Password: "Str0ng!Pass",
		})

		assert.NoError(t, err)
		assert.Empty(t, result.User.HealthID, "staff accounts do not get a health ID")
	})

	t.Run("Duplicate Email Conflicts", func(t *testing.T) {
		userRepo := &fakeUserRepository{}
		usecase := NewAuthUsecase(userRepo, &fakeAssertionVerifier{}, &fakeLoginLimiter{allowed: true}, &fakeAuditRecorder{}, newTestConfig())

		_, err := usecase.Signup(context.Background(), &requests.SignupUser{
			Name:     "Siti Rahma",
			Role:     "migrant",
			Email:    "siti@example.com",
			Password: "Str0ng!Pass",
		})
		assert.NoError(t, err)

		_, err = usecase.Signup(context.Background(), &requests.SignupUser{
			Name:     "Other Person",
			Role:     "migrant",
			Email:    "siti@example.com",
			Password: "Str0ng!Pass",
		})
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err), "reusing an email should conflict")
	})

	t.Run("Weak Password Rejected", func(t *testing.T) {
		usecase := NewAuthUsecase(&fakeUserRepository{}, &fakeAssertionVerifier{}, &fakeLoginLimiter{allowed: true}, &fakeAuditRecorder{}, newTestConfig())

		_, err := usecase.Signup(context.Background(), &requests.SignupUser{
			Name:     "Siti Rahma",
			Role:     "migrant",
			Email:    "siti@example.com",
			Password: "weakpass",
		})
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
	})

	t.Run("Password Not Echoed", func(t *testing.T) {
		userRepo := &fakeUserRepository{}
		usecase := NewAuthUsecase(userRepo, &fakeAssertionVerifier{}, &fakeLoginLimiter{allowed: true}, &fakeAuditRecorder{}, newTestConfig())

		_, err := usecase.Signup(context.Background(), &requests.SignupUser{
			Name:     "Siti Rahma",
			Role:     "migrant",
			Email:    "siti@example.com",
			Password: "Str0ng!Pass",
		})
		assert.NoError(t, err)
		assert.NotEqual(t, "Str0ng!Pass", userRepo.users[0].Password, "stored password must be hashed")
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	seedUser := func(t *testing.T, repo *fakeUserRepository) *models.User {
		t.Helper()
		hash, err := utils.HashPassword("Str0ng!Pass")
		assert.NoError(t, err)
		user := &models.User{
			ID:       "user-1",
			Name:     "Siti Rahma",
			Email:    "siti@example.com",
			Password: hash,
			Role:     models.RoleMigrant,
			HealthID: "MIG-0a1b2c3d",
		}
		repo.users = append(repo.users, user)
		return user
	}

	t.Run("Success Issues Token", func(t *testing.T) {
		userRepo := &fakeUserRepository{}
		seedUser(t, userRepo)
		auditRecorder := &fakeAuditRecorder{}
		internalConfig := newTestConfig()
		usecase := NewAuthUsecase(userRepo, &fakeAssertionVerifier{}, &fakeLoginLimiter{allowed: true}, auditRecorder, internalConfig)

		result, err := usecase.Login(context.Background(), "203.0.113.7", &requests.LoginUser{
			Email:    "siti@example.com",
			Password: "Str0ng!Pass",
		})

		assert.NoError(t, err)
		userID, role, err := utils.ParseSessionJWT(result.Token, internalConfig.JWT.Secret)
		assert.NoError(t, err, "issued token should parse with the configured secret")
		assert.Equal(t, "user-1", userID)
		assert.Equal(t, "migrant", role)
		assert.Equal(t, constvars.AuditActionLogin, auditRecorder.lastAction())
	})

	t.Run("Unknown Identity And Wrong Password Are Indistinguishable", func(t *testing.T) {
		userRepo := &fakeUserRepository{}
		seedUser(t, userRepo)
		usecase := NewAuthUsecase(userRepo, &fakeAssertionVerifier{}, &fakeLoginLimiter{allowed: true}, &fakeAuditRecorder{}, newTestConfig())

		_, unknownErr := usecase.Login(context.Background(), "203.0.113.7", &requests.LoginUser{
			Email:    "nobody@example.com",
			Password: "Str0ng!Pass",
		})
		_, wrongPassErr := usecase.Login(context.Background(), "203.0.113.7", &requests.LoginUser{
			Email:    "siti@example.com",
			Password: "Wr0ng!Pass1",
		})

		assert.Error(t, unknownErr)
		assert.Error(t, wrongPassErr)
		unknownCustom := unknownErr.(*exceptions.CustomError)
		wrongPassCustom := wrongPassErr.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusUnauthorized, unknownCustom.StatusCode)
		assert.Equal(t, constvars.StatusUnauthorized, wrongPassCustom.StatusCode)
		assert.Equal(t, unknownCustom.ClientMessage, wrongPassCustom.ClientMessage, "the client must not learn which part of the credentials failed")
	})

	t.Run("Rate Limited", func(t *testing.T) {
		userRepo := &fakeUserRepository{}
		seedUser(t, userRepo)
		usecase := NewAuthUsecase(userRepo, &fakeAssertionVerifier{}, &fakeLoginLimiter{allowed: false}, &fakeAuditRecorder{}, newTestConfig())

		_, err := usecase.Login(context.Background(), "203.0.113.7", &requests.LoginUser{
			Email:    "siti@example.com",
			Password: "Str0ng!Pass",
		})
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusTooManyRequests, statusCodeOf(t, err))
	})

	t.Run("Limiter Keyed By Identity", func(t *testing.T) {
		userRepo := &fakeUserRepository{}
		seedUser(t, userRepo)
		limiter := &fakeLoginLimiter{allowed: true}
		usecase := NewAuthUsecase(userRepo, &fakeAssertionVerifier{}, limiter, &fakeAuditRecorder{}, newTestConfig())

		_, err := usecase.Login(context.Background(), "203.0.113.7", &requests.LoginUser{
			Email:    "siti@example.com",
			Password: "Str0ng!Pass",
		})
		assert.NoError(t, err)
		assert.Equal(t, "siti@example.com", limiter.lastKey, "attempts count against the submitted identity, not the address")

		_, err = usecase.Login(context.Background(), "198.51.100.9", &requests.LoginUser{
			Phone:    "+6281234567890",
			Password: "Str0ng!Pass",
		})
		assert.Error(t, err, "unknown phone still fails authentication")
		assert.Equal(t, "+6281234567890", limiter.lastKey, "phone logins are keyed on the phone number")
	})

	t.Run("Limiter Outage Does Not Block Login", func(t *testing.T) {
		userRepo := &fakeUserRepository{}
		seedUser(t, userRepo)
		limiter := &fakeLoginLimiter{allowed: false, err: errors.New("redis down")}
		usecase := NewAuthUsecase(userRepo, &fakeAssertionVerifier{}, limiter, &fakeAuditRecorder{}, newTestConfig())

		_, err := usecase.Login(context.Background(), "203.0.113.7", &requests.LoginUser{
			Email:    "siti@example.com",
			Password: "Str0ng!Pass",
		})
		assert.NoError(t, err, "a limiter outage should not lock everyone out")
	})
}

func TestAuthUsecase_PhoneLogin(t *testing.T) {
	t.Run("New Phone Creates Migrant Account", func(t *testing.T) {
		userRepo := &fakeUserRepository{}
		auditRecorder := &fakeAuditRecorder{}
		verifier := &fakeAssertionVerifier{phone: "+6281234567890"}
		usecase := NewAuthUsecase(userRepo, verifier, &fakeLoginLimiter{allowed: true}, auditRecorder, newTestConfig())

		result, err := usecase.PhoneLogin(context.Background(), "203.0.113.7", &requests.PhoneLogin{
			Assertion: "signed-assertion",
			Name:      "Siti Rahma",
		})

		assert.NoError(t, err)
		assert.Equal(t, "migrant", result.User.Role)
		assert.NotEmpty(t, result.User.HealthID, "auto provisioned migrants get a health ID")
		assert.Equal(t, constvars.AuditActionPhoneLoginNewAccount, auditRecorder.lastAction())
	})

	t.Run("Returning Phone Reuses Account", func(t *testing.T) {
		userRepo := &fakeUserRepository{}
		userRepo.users = append(userRepo.users, &models.User{
			ID:       "user-9",
			Name:     "Siti Rahma",
			Phone:    "+6281234567890",
			Role:     models.RoleMigrant,
			HealthID: "MIG-0a1b2c3d",
		})
		auditRecorder := &fakeAuditRecorder{}
		verifier := &fakeAssertionVerifier{phone: "+6281234567890"}
		usecase := NewAuthUsecase(userRepo, verifier, &fakeLoginLimiter{allowed: true}, auditRecorder, newTestConfig())

		result, err := usecase.PhoneLogin(context.Background(), "203.0.113.7", &requests.PhoneLogin{
			Assertion: "signed-assertion",
		})

		assert.NoError(t, err)
		assert.Equal(t, "user-9", result.User.ID)
		assert.Len(t, userRepo.users, 1, "no second account should be created")
		assert.Equal(t, constvars.AuditActionPhoneLogin, auditRecorder.lastAction())
	})

	t.Run("Name Defaults To Phone", func(t *testing.T) {
		userRepo := &fakeUserRepository{}
		verifier := &fakeAssertionVerifier{phone: "+6281234567890"}
		usecase := NewAuthUsecase(userRepo, verifier, &fakeLoginLimiter{allowed: true}, &fakeAuditRecorder{}, newTestConfig())

		result, err := usecase.PhoneLogin(context.Background(), "203.0.113.7", &requests.PhoneLogin{
			Assertion: "signed-assertion",
		})

		assert.NoError(t, err)
		assert.Equal(t, "+6281234567890", result.User.Name)
	})

	t.Run("Missing Assertion Rejected", func(t *testing.T) {
		usecase := NewAuthUsecase(&fakeUserRepository{}, &fakeAssertionVerifier{}, &fakeLoginLimiter{allowed: true}, &fakeAuditRecorder{}, newTestConfig())

		_, err := usecase.PhoneLogin(context.Background(), "203.0.113.7", &requests.PhoneLogin{})
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
	})

	t.Run("Invalid Assertion Rejected", func(t *testing.T) {
		verifier := &fakeAssertionVerifier{err: exceptions.ErrAssertionMissingPhone(errors.New("bad signature"))}
		usecase := NewAuthUsecase(&fakeUserRepository{}, verifier, &fakeLoginLimiter{allowed: true}, &fakeAuditRecorder{}, newTestConfig())

		_, err := usecase.PhoneLogin(context.Background(), "203.0.113.7", &requests.PhoneLogin{
			Assertion: "tampered",
		})
		assert.Error(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, statusCodeOf(t, err))
	})
}

func TestAuthUsecase_GetHealthID(t *testing.T) {
	userRepo := &fakeUserRepository{
		users: []*models.User{
			{ID: "user-1", Name: "Siti Rahma", Role: models.RoleMigrant, HealthID: "MIG-0a1b2c3d"},
		},
	}
	usecase := NewAuthUsecase(userRepo, &fakeAssertionVerifier{}, &fakeLoginLimiter{allowed: true}, &fakeAuditRecorder{}, newTestConfig())

	t.Run("Empty ID Resolves To Session User", func(t *testing.T) {
		result, err := usecase.GetHealthID(context.Background(), &contracts.Session{UserID: "user-1", Role: "migrant"}, "")
		assert.NoError(t, err)
		assert.Equal(t, "MIG-0a1b2c3d", result.HealthID)
	})

	t.Run("Admin Reads Any Users Health ID", func(t *testing.T) {
		result, err := usecase.GetHealthID(context.Background(), &contracts.Session{UserID: "admin-1", Role: "admin"}, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, "MIG-0a1b2c3d", result.HealthID)
	})

	t.Run("Non Admin Cannot Read Others", func(t *testing.T) {
		for _, role := range []string{"migrant", "doctor", "govt"} {
			_, err := usecase.GetHealthID(context.Background(), &contracts.Session{UserID: "user-9", Role: role}, "user-1")
			assert.Error(t, err, "role %s must not read another user's health id", role)
			assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
		}
	})
}
