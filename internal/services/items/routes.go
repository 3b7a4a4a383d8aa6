package items

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
)

// SetupRoutes регистрирует маршруты в Fiber
func (s *ItemsService) SetupRoutes(app *fiber.App) {
	// Страница каталога: комбинированная выдача
	app.Get("/api/v1/browse", s.Browse, middleware.OptionalToken())

	api := app.Group("/api/v1/items", middleware.OptionalToken())

	api.Get("/", s.List)
	api.Get("/trending", s.Trending)
	api.Get("/categories/", s.Categories)
	api.Get("/categories/:id/items", s.CategoryItems)
	api.Get("/:id", s.Get)
	api.Get("/:id/similar", s.Similar)

	// Защищенные маршруты
	protected := app.Group("/api/v1/items", middleware.RequireToken())
	protected.Post("/", s.Create)
	protected.Put("/:id", s.Update)
	protected.Delete("/:id", s.Delete)
}
