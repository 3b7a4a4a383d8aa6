package swaps

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
)

// SetupRoutes регистрирует маршруты в Fiber
func (s *SwapService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1/swaps", middleware.RequireToken())

	api.Post("/", s.Create)
	api.Get("/", s.List)
	api.Get("/compatibility", s.Compatibility)
	api.Get("/stats/summary", s.Stats)
	api.Get("/:id", s.Get)
	api.Put("/:id/accept", s.Accept)
	api.Put("/:id/reject", s.Reject)
	api.Put("/:id/complete", s.Complete)
	api.Put("/:id/cancel", s.Cancel)
}
