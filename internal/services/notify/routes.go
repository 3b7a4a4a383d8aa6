package notify

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
)

// SetupRoutes регистрирует маршруты в Fiber
func (s *NotifyService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1/notifications", middleware.RequireToken())

	api.Get("/", s.List)
	api.Get("/stream", s.Stream)
	api.Post("/connect", s.Connect)
	api.Delete("/connect", s.Disconnect)
}
