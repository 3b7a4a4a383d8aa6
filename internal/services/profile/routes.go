package profile

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
)

// SetupRoutes регистрирует маршруты в Fiber
func (s *ProfileService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1/users")

	// Публичные профили
	api.Get("/:id", s.PublicProfile)
	api.Get("/:id/items", s.PublicItems)

	// Защищенные маршруты
	me := app.Group("/api/v1/users/me", middleware.RequireToken())
	me.Get("/dashboard", s.Dashboard)
	me.Get("/items", s.MyItems)
	me.Get("/swaps", s.MySwaps)
	me.Get("/points", s.PointHistory)
}
