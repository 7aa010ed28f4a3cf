package routers

import (
	"arogya-service/internal/app/delivery/http/controllers"
	"arogya-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, mw *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/signup", authController.Signup)
	router.Post("/login", authController.Login)
	router.Post("/phone-login", authController.PhoneLogin)
	router.With(mw.Authentication).Post("/logout", authController.Logout)
}
