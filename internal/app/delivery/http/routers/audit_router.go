package routers

import (
	"arogya-service/internal/app/delivery/http/controllers"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/pkg/rbac"

	"github.com/go-chi/chi/v5"
)

func attachAuditRoutes(router chi.Router, mw *middlewares.Middlewares, auditController *controllers.AuditController) {
	router.Use(mw.Authentication)

	router.With(mw.RequireOperation(rbac.OpAuditReadSelf)).Get("/me", auditController.GetOwn)
	router.With(mw.RequireOperation(rbac.OpAuditReadAll)).Get("/all", auditController.GetAll)
	router.With(mw.RequireOperation(rbac.OpAuditReadSelf)).Get("/{user_id}", auditController.GetByUser)
}
