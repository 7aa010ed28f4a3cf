package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAuthUsecase struct {
	loginResult *responses.Login
	loginErr    error
	lastIP      string
}

func (f *fakeAuthUsecase) Signup(ctx context.Context, request *requests.SignupUser) (*responses.Signup, error) {
	return &responses.Signup{User: &responses.User{ID: "user-1", Name: request.Name, Role: request.Role}}, nil
}

func (f *fakeAuthUsecase) Login(ctx context.Context, clientIP string, request *requests.LoginUser) (*responses.Login, error) {
	f.lastIP = clientIP
	return f.loginResult, f.loginErr
}

func (f *fakeAuthUsecase) PhoneLogin(ctx context.Context, clientIP string, request *requests.PhoneLogin) (*responses.Login, error) {
	f.lastIP = clientIP
	return f.loginResult, f.loginErr
}

func (f *fakeAuthUsecase) GetHealthID(ctx context.Context, session *contracts.Session, userID string) (*responses.HealthID, error) {
	return &responses.HealthID{HealthID: "MIG-0a1b2c3d"}, nil
}

func newAuthTestController(usecase contracts.AuthUsecase) *AuthController {
	return NewAuthController(zap.NewNop(), usecase, &config.InternalConfig{
		App: config.App{Env: "development"},
		JWT: config.JWT{ExpTimeInHour: 1},
	})
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == constvars.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthController_Login(t *testing.T) {
	t.Run("Sets Session Cookie", func(t *testing.T) {
		usecase := &fakeAuthUsecase{
			loginResult: &responses.Login{
				Token: "signed-session-token",
				User:  &responses.User{ID: "user-1", Role: "migrant"},
			},
		}
		controller := newAuthTestController(usecase)

		req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(`{"email":"siti@example.com","password":"Str0ng!Pass"}`))
		req.RemoteAddr = "203.0.113.7:51234"
		rr := httptest.NewRecorder()
		controller.Login(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "203.0.113.7", usecase.lastIP, "the bare client address is handed to the usecase")

		cookie := sessionCookie(t, rr)
		assert.NotNil(t, cookie, "login should set the session cookie")
		assert.Equal(t, "signed-session-token", cookie.Value)
		assert.True(t, cookie.HttpOnly, "the session cookie must not be readable from scripts")
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.Equal(t, 3600, cookie.MaxAge)
	})

	t.Run("Invalid Credentials Pass Through", func(t *testing.T) {
		usecase := &fakeAuthUsecase{loginErr: exceptions.ErrInvalidCredentials(nil)}
		controller := newAuthTestController(usecase)

		req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(`{"email":"siti@example.com","password":"Wr0ng!Pass"}`))
		req.RemoteAddr = "203.0.113.7:51234"
		rr := httptest.NewRecorder()
		controller.Login(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, sessionCookie(t, rr), "no cookie on a failed login")
	})

	t.Run("Malformed Body Rejected", func(t *testing.T) {
		controller := newAuthTestController(&fakeAuthUsecase{})

		req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(`{not json`))
		rr := httptest.NewRecorder()
		controller.Login(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthController_Signup(t *testing.T) {
	controller := newAuthTestController(&fakeAuthUsecase{})

	req := httptest.NewRequest("POST", "/api/v1/auth/signup", strings.NewReader(`{"name":"Siti Rahma","role":"migrant","email":"siti@example.com","password":"Str0ng!Pass"}`))
	rr := httptest.NewRecorder()
	controller.Signup(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestAuthController_Logout(t *testing.T) {
	controller := newAuthTestController(&fakeAuthUsecase{})

	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	rr := httptest.NewRecorder()
	controller.Logout(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	cookie := sessionCookie(t, rr)
	assert.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge, "logout expires the cookie immediately")
}
