package search

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
)

// SetupRoutes регистрирует маршруты в Fiber
func (s *SearchService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1/search", middleware.OptionalToken())

	api.Get("/items", s.Items)
	api.Get("/suggestions", s.Suggestions)
	api.Get("/popular", s.Popular)
	api.Get("/filters/options", s.FilterOptions)

	app.Get("/api/v1/search/recommendations", s.Recommendations, middleware.RequireToken())
}
