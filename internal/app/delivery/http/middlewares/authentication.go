package middlewares

import (
	"context"
	"net/http"
	"strings"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"
)

// Authentication verifies the session token, taken from the session
// cookie or the Authorization header, and attaches the identity to the
// request context.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		userID, role, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_ID_KEY, userID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ROLE_KEY, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authHeader, constvars.BearerTokenPrefix) {
		return strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
	}
	return ""
}

// SessionFromContext rebuilds the authenticated identity placed on the
// context by Authentication.
func SessionFromContext(ctx context.Context) (*contracts.Session, error) {
	userID, ok := ctx.Value(constvars.CONTEXT_USER_ID_KEY).(string)
	if !ok || userID == "" {
		return nil, exceptions.ErrMissingSessionData(nil)
	}
	role, ok := ctx.Value(constvars.CONTEXT_USER_ROLE_KEY).(string)
	if !ok || role == "" {
		return nil, exceptions.ErrMissingSessionData(nil)
	}
	return &contracts.Session{UserID: userID, Role: role}, nil
}
