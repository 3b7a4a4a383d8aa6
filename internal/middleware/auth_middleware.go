package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// TokenKey задает ключ bearer-токена в Locals запроса
const TokenKey = "token"

// RequireToken извлекает bearer-токен из заголовка Authorization.
// Шлюз токен не проверяет — авторизацию выполняет бэкенд,
// здесь только контролируется формат заголовка
func RequireToken() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		c.Locals(TokenKey, parts[1])
		return c.Next()
	}
}

// OptionalToken извлекает токен, если он есть, не требуя его.
// Публичные страницы показывают больше данных авторизованным
func OptionalToken() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			c.Locals(TokenKey, parts[1])
		}
		return c.Next()
	}
}

// Token возвращает токен запроса (пустая строка для анонима)
func Token(c fiber.Ctx) string {
	if tok, ok := c.Locals(TokenKey).(string); ok {
		return tok
	}
	return ""
}
