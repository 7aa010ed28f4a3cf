package routers

import (
	"time"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/delivery/http/controllers"
	"arogya-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	authController *controllers.AuthController,
	recordController *controllers.HealthRecordController,
	shareLinkController *controllers.ShareLinkController,
	auditController *controllers.AuditController,
	migrantController *controllers.MigrantController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.ErrorHandler)

	shareResolveLimiter := middlewares.NewRateLimiter(
		internalConfig.App.ShareResolveRequestsPerSecond,
		time.Second,
		time.Minute,
	)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, mw, authController)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, mw, authController)
		})

		r.Route("/records", func(r chi.Router) {
			attachHealthRecordRoutes(r, mw, recordController)
		})

		r.With(shareResolveLimiter.Limit).Get("/share/{token}", shareLinkController.Resolve)

		r.Route("/audit", func(r chi.Router) {
			attachAuditRoutes(r, mw, auditController)
		})

		r.Route("/migrants", func(r chi.Router) {
			attachMigrantRoutes(r, mw, migrantController)
		})
	})
}
