package auth

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
)

// SetupRoutes регистрирует маршруты в Fiber
func (s *AuthService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1/auth")

	api.Post("/register", s.Register)
	api.Post("/login", s.Login)
	api.Post("/login-json", s.LoginJSON)

	// Защищенные маршруты
	protected := api.Group("", middleware.RequireToken())
	protected.Post("/logout", s.Logout)
	protected.Get("/me", s.Me)
	protected.Put("/me", s.UpdateMe)
	protected.Post("/refresh", s.Refresh)
	protected.Post("/resend-welcome", s.ResendWelcome)
	protected.Post("/test-welcome-email", s.TestWelcome)
}
