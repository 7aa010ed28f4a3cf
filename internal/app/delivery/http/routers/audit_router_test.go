package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/delivery/http/controllers"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAuditUsecase struct {
	lastUserID string
	allCalls   int
}

func (f *fakeAuditUsecase) GetOwnAuditLogs(ctx context.Context, session *contracts.Session, page, pageSize int) ([]*responses.AuditLog, int64, error) {
	f.lastUserID = session.UserID
	return nil, 0, nil
}

func (f *fakeAuditUsecase) GetAuditLogsForUser(ctx context.Context, session *contracts.Session, userID string, page, pageSize int) ([]*responses.AuditLog, int64, error) {
	f.lastUserID = userID
	return nil, 0, nil
}

func (f *fakeAuditUsecase) GetAllAuditLogs(ctx context.Context, session *contracts.Session, page, pageSize int) ([]*responses.AuditLog, int64, error) {
	f.allCalls++
	return nil, 0, nil
}

func newAuditTestRouter(usecase contracts.AuditUsecase) (chi.Router, *config.InternalConfig) {
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-session-secret", ExpTimeInHour: 1},
	}
	mw := middlewares.NewMiddlewares(zap.NewNop(), internalConfig)
	auditController := controllers.NewAuditController(zap.NewNop(), usecase)

	router := chi.NewRouter()
	router.Route("/audit", func(r chi.Router) {
		attachAuditRoutes(r, mw, auditController)
	})
	return router, internalConfig
}

func auditGet(t *testing.T, router chi.Router, path, userID, role, secret string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := utils.GenerateSessionJWT(userID, role, secret, 1)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestAuditRoutes(t *testing.T) {
	selfID := "64b1f0a2c3d4e5f6a7b8c9d0"
	otherID := "64b1f0a2c3d4e5f6a7b8c9d1"

	t.Run("User Trail By ID", func(t *testing.T) {
		usecase := &fakeAuditUsecase{}
		router, internalConfig := newAuditTestRouter(usecase)

		rr := auditGet(t, router, "/audit/"+selfID, selfID, "migrant", internalConfig.JWT.Secret)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, selfID, usecase.lastUserID, "the path parameter selects the trail")
	})

	t.Run("Full Trail Path", func(t *testing.T) {
		usecase := &fakeAuditUsecase{}
		router, internalConfig := newAuditTestRouter(usecase)

		rr := auditGet(t, router, "/audit/all", otherID, "admin", internalConfig.JWT.Secret)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, usecase.allCalls, "the literal all segment must not be treated as a user id")
	})

	t.Run("Full Trail Admin Only", func(t *testing.T) {
		usecase := &fakeAuditUsecase{}
		router, internalConfig := newAuditTestRouter(usecase)

		rr := auditGet(t, router, "/audit/all", selfID, "migrant", internalConfig.JWT.Secret)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Zero(t, usecase.allCalls)
	})

	t.Run("Own Trail Alias", func(t *testing.T) {
		usecase := &fakeAuditUsecase{}
		router, internalConfig := newAuditTestRouter(usecase)

		rr := auditGet(t, router, "/audit/me", selfID, "migrant", internalConfig.JWT.Secret)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, selfID, usecase.lastUserID, "the me alias resolves to the session user")
	})

	t.Run("No Session Rejected", func(t *testing.T) {
		router, _ := newAuditTestRouter(&fakeAuditUsecase{})

		req := httptest.NewRequest("GET", "/audit/"+selfID, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
