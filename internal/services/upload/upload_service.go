package upload

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
	"github.com/rajivgeraev/rewear-web/internal/rewear"
	"github.com/rajivgeraev/rewear-web/internal/utils"
	"github.com/rajivgeraev/rewear-web/internal/validate"
	"github.com/rajivgeraev/rewear-web/internal/web"
)

// UploadService проксирует загрузку изображений. Размер и тип файла
// проверяются до обращения к сети
type UploadService struct {
	api *rewear.Client
}

// NewUploadService создает новый экземпляр UploadService
func NewUploadService(api *rewear.Client) *UploadService {
	return &UploadService{api: api}
}

// Image загружает одно изображение
func (s *UploadService) Image(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Файл не передан"})
	}
	if msg := validate.UploadFile(fh.Size, fh.Header.Get("Content-Type")); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": msg})
	}

	src, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Не удалось прочитать файл"})
	}
	defer src.Close()

	raw, err := s.api.WithToken(middleware.Token(c)).
		UploadImage(c.Context(), rewear.File{Name: fh.Filename, Content: src})
	if err != nil {
		return web.Fail(c, "upload image", err)
	}
	return web.SendRaw(c, raw)
}

// Images загружает несколько изображений
func (s *UploadService) Images(c fiber.Ctx) error {
	files, cleanup, rerr := s.openFiles(c, "files")
	if rerr != nil {
		return c.Status(rerr.status).JSON(fiber.Map{"error": rerr.message})
	}
	defer cleanup()

	raw, err := s.api.WithToken(middleware.Token(c)).UploadImages(c.Context(), files)
	if err != nil {
		return web.Fail(c, "upload images", err)
	}
	return web.SendRaw(c, raw)
}

// ItemImages загружает изображения к вещи
func (s *UploadService) ItemImages(c fiber.Ctx) error {
	itemID := utils.ParseIntDefault(c.Params("id"), 0)
	if itemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID вещи"})
	}

	files, cleanup, rerr := s.openFiles(c, "files")
	if rerr != nil {
		return c.Status(rerr.status).JSON(fiber.Map{"error": rerr.message})
	}
	defer cleanup()

	setPrimary := utils.ParseIntDefault(c.Query("set_primary"), 0)
	raw, err := s.api.WithToken(middleware.Token(c)).
		UploadItemImages(c.Context(), itemID, files, setPrimary)
	if err != nil {
		return web.Fail(c, "upload item images", err)
	}
	return web.SendRaw(c, raw)
}

// RemoveItemImage удаляет изображение вещи по его URL
func (s *UploadService) RemoveItemImage(c fiber.Ctx) error {
	itemID := utils.ParseIntDefault(c.Params("id"), 0)
	if itemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID вещи"})
	}

	imageURL := c.Query("image_url")
	if imageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Параметр image_url обязателен"})
	}

	raw, err := s.api.WithToken(middleware.Token(c)).
		RemoveItemImage(c.Context(), itemID, imageURL)
	if err != nil {
		return web.Fail(c, "remove item image", err)
	}
	return web.SendRaw(c, raw)
}

// ImageURL возвращает абсолютный адрес изображения по имени файла
func (s *UploadService) ImageURL(c fiber.Ctx) error {
	filename := c.Params("filename")
	if filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Имя файла обязательно"})
	}
	return c.JSON(fiber.Map{"url": s.api.ImageURL(filename)})
}

// requestError представляет отказ до обращения к сети
type requestError struct {
	status  int
	message string
}

// openFiles читает multipart-поле и проверяет каждый файл.
// cleanup закрывает все открытые файлы
func (s *UploadService) openFiles(c fiber.Ctx, field string) ([]rewear.File, func(), *requestError) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File[field]) == 0 {
		return nil, nil, &requestError{fiber.StatusBadRequest, "Файлы не переданы"}
	}

	headers := form.File[field]
	if len(headers) > rewear.MaxUploadFiles {
		return nil, nil, &requestError{fiber.StatusUnprocessableEntity, rewear.ErrTooManyFiles.Error()}
	}

	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	files := make([]rewear.File, 0, len(headers))
	for _, fh := range headers {
		if msg := validate.UploadFile(fh.Size, fh.Header.Get("Content-Type")); msg != "" {
			cleanup()
			return nil, nil, &requestError{fiber.StatusUnprocessableEntity, msg}
		}
		src, err := fh.Open()
		if err != nil {
			cleanup()
			return nil, nil, &requestError{fiber.StatusBadRequest, "Не удалось прочитать файл"}
		}
		opened = append(opened, src)
		files = append(files, rewear.File{Name: fh.Filename, Content: src})
	}
	return files, cleanup, nil
}
