package middlewares

import (
	"net/http"

	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/rbac"
	"arogya-service/internal/pkg/utils"
)

// RequireOperation gates a route on the static role policy. Must run
// after Authentication.
func (m *Middlewares) RequireOperation(operation rbac.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := SessionFromContext(r.Context())
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			if !rbac.IsAllowed(session.Role, operation) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotPermitted(nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
