package routers

import (
	"arogya-service/internal/app/delivery/http/controllers"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/pkg/rbac"

	"github.com/go-chi/chi/v5"
)

func attachMigrantRoutes(router chi.Router, mw *middlewares.Middlewares, migrantController *controllers.MigrantController) {
	router.Use(mw.Authentication)
	router.Use(mw.RequireOperation(rbac.OpMigrantsRead))

	router.Get("/", migrantController.List)
	router.Get("/search", migrantController.Search)
	router.With(mw.RequireOperation(rbac.OpMigrantsAnalytics)).Get("/stats", migrantController.Stats)
	router.With(mw.RequireOperation(rbac.OpMigrantsAnalytics)).Get("/analytics/overview", migrantController.Analytics)
	router.Get("/{migrant_id}", migrantController.Detail)
}
