package routers

import (
	"arogya-service/internal/app/delivery/http/controllers"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/pkg/rbac"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, mw *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Use(mw.Authentication)

	router.With(mw.RequireOperation(rbac.OpHealthIDRead)).Get("/me/health-id", authController.GetHealthID)
	router.With(mw.RequireOperation(rbac.OpHealthIDRead)).Get("/{user_id}/health-id", authController.GetHealthID)
}
