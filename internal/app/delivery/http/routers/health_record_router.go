package routers

import (
	"arogya-service/internal/app/delivery/http/controllers"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/pkg/rbac"

	"github.com/go-chi/chi/v5"
)

func attachHealthRecordRoutes(router chi.Router, mw *middlewares.Middlewares, recordController *controllers.HealthRecordController) {
	router.Use(mw.Authentication)

	router.With(mw.RequireOperation(rbac.OpRecordCreate)).Post("/", recordController.Create)
	router.With(mw.RequireOperation(rbac.OpRecordRead)).Get("/", recordController.List)
	router.With(mw.RequireOperation(rbac.OpRecordRead)).Get("/search", recordController.List)
	router.With(mw.RequireOperation(rbac.OpRecordRead)).Get("/{user_id}", recordController.ListByUser)
	router.With(mw.RequireOperation(rbac.OpRecordUpdate)).Put("/{record_id}", recordController.Update)
	router.With(mw.RequireOperation(rbac.OpRecordDelete)).Delete("/{record_id}", recordController.Delete)
	router.With(mw.RequireOperation(rbac.OpRecordShare)).Post("/{record_id}/share", recordController.Share)
}
