// Package web — общие помощники ответов шлюза: единая проекция
// таксономии ошибок API-клиента на HTTP-статусы страниц
package web

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/rewear"
	"github.com/rajivgeraev/rewear-web/internal/validate"
)

// Fail превращает ошибку API-клиента в JSON-ответ страницы.
// Ошибки валидации сохраняют детализацию по полям; сетевые сбои
// отдаются как общий "failed to <action>" без различения с 5xx,
// как в исходном интерфейсе. Автоматических повторов нет
func Fail(c fiber.Ctx, action string, err error) error {
	var verr *rewear.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  verr.Error(),
			"fields": verr.Fields,
		})
	}

	var herr *rewear.HTTPError
	if errors.As(err, &herr) {
		return c.Status(herr.Status).JSON(fiber.Map{"error": herr.Message})
	}

	var terr *rewear.TransportError
	if errors.As(err, &terr) {
		log.Printf("Ошибка сети при %s: %v", action, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "failed to " + action,
		})
	}

	log.Printf("Ошибка при %s: %v", action, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "failed to " + action,
	})
}

// FormErrors отдает клиентские ошибки валидации формы в форме detail
// бэкенда, чтобы браузер видел один формат ошибок
func FormErrors(c fiber.Ctx, errs validate.Errors) error {
	fields := make([]rewear.FieldError, 0, len(errs))
	for field, msg := range errs {
		fields = append(fields, rewear.FieldError{Field: field, Message: msg})
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"detail": fields,
	})
}

// SendRaw отдает непрозрачное JSON-тело бэкенда без перекодирования
func SendRaw(c fiber.Ctx, raw []byte) error {
	c.Set("Content-Type", "application/json")
	if len(raw) == 0 {
		raw = []byte("null")
	}
	return c.Send(raw)
}
