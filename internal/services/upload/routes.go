package upload

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
)

// SetupRoutes регистрирует маршруты в Fiber
func (s *UploadService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1/upload", middleware.RequireToken())

	api.Post("/image", s.Image)
	api.Post("/images", s.Images)
	api.Post("/items/:id/images", s.ItemImages)
	api.Delete("/items/:id/images", s.RemoveItemImage)

	app.Get("/api/v1/upload/images/:filename", s.ImageURL)
}
