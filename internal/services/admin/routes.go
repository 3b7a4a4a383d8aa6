package admin

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
)

// SetupRoutes регистрирует маршруты в Fiber
func (s *AdminService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1/admin", middleware.RequireToken())

	api.Get("/dashboard", s.Dashboard)
	api.Get("/analytics", s.Analytics)

	api.Get("/users", s.Users)
	api.Put("/users/:id/toggle-active", s.ToggleUserActive)

	api.Get("/items", s.Items)
	api.Put("/items/:id/approve", s.ApproveItem)
	api.Put("/items/:id/reject", s.RejectItem)

	api.Get("/swaps", s.Swaps)

	api.Post("/categories", s.CreateCategory)
	api.Put("/categories/:id", s.UpdateCategory)

	api.Post("/send-test-notification", s.SendTestNotification)
	api.Get("/websocket-stats", s.WebSocketStats)
}
