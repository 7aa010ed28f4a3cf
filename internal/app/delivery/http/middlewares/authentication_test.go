package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arogya-service/internal/app/config"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/rbac"
	"arogya-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		JWT: config.JWT{
			Secret:        "test-session-secret",
			ExpTimeInHour: 1,
		},
	})
}

func issueToken(t *testing.T, mw *Middlewares, userID, role string) string {
	t.Helper()
	token, err := utils.GenerateSessionJWT(userID, role, mw.InternalConfig.JWT.Secret, mw.InternalConfig.JWT.ExpTimeInHour)
	assert.NoError(t, err)
	return token
}

func TestAuthentication(t *testing.T) {
	mw := newTestMiddlewares()

	sessionEcho := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := SessionFromContext(r.Context())
		assert.NoError(t, err, "session should be on the context after authentication")
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, "migrant", session.Role)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid Cookie Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/records", nil)
		req.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: issueToken(t, mw, "user-1", "migrant")})

		rr := httptest.NewRecorder()
		mw.Authentication(sessionEcho).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Valid Bearer Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/records", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+issueToken(t, mw, "user-1", "migrant"))

		rr := httptest.NewRecorder()
		mw.Authentication(sessionEcho).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/records", nil)

		rr := httptest.NewRecorder()
		mw.Authentication(sessionEcho).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/records", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+"not.a.token")

		rr := httptest.NewRecorder()
		mw.Authentication(sessionEcho).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": "user-1",
			"role":    "migrant",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		tokenString, err := expired.SignedString([]byte(mw.InternalConfig.JWT.Secret))
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/records", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+tokenString)

		rr := httptest.NewRecorder()
		mw.Authentication(sessionEcho).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token Signed With Other Secret", func(t *testing.T) {
		forged, err := utils.GenerateSessionJWT("user-1", "admin", "attacker-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/records", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+forged)

		rr := httptest.NewRecorder()
		mw.Authentication(sessionEcho).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireOperation(t *testing.T) {
	mw := newTestMiddlewares()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	requestWithRole := func(t *testing.T, role string) *http.Request {
		t.Helper()
		req := httptest.NewRequest("GET", "/api/v1/migrants", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+issueToken(t, mw, "user-1", role))
		return req
	}

	t.Run("Permitted Role Passes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler := mw.Authentication(mw.RequireOperation(rbac.OpMigrantsRead)(okHandler))
		handler.ServeHTTP(rr, requestWithRole(t, "doctor"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Denied Role Forbidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler := mw.Authentication(mw.RequireOperation(rbac.OpMigrantsRead)(okHandler))
		handler.ServeHTTP(rr, requestWithRole(t, "migrant"))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("No Session Rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/migrants", nil)

		rr := httptest.NewRecorder()
		handler := mw.RequireOperation(rbac.OpMigrantsRead)(okHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
