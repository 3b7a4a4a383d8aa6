package auth

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/config"
	"github.com/rajivgeraev/rewear-web/internal/middleware"
	"github.com/rajivgeraev/rewear-web/internal/rewear"
	"github.com/rajivgeraev/rewear-web/internal/session"
	"github.com/rajivgeraev/rewear-web/internal/validate"
	"github.com/rajivgeraev/rewear-web/internal/web"
)

// AuthService обслуживает маршруты входа, регистрации и профиля
type AuthService struct {
	cfg      *config.Config
	api      *rewear.Client
	sessions *session.Manager
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(cfg *config.Config, api *rewear.Client, sessions *session.Manager) *AuthService {
	return &AuthService{cfg: cfg, api: api, sessions: sessions}
}

// Register регистрирует нового пользователя.
// Клиентская валидация блокирует запрос до любого сетевого вызова
func (s *AuthService) Register(c fiber.Ctx) error {
	var body struct {
		rewear.RegisterRequest
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	errs := validate.RegisterInput{
		Email:           body.Email,
		Username:        body.Username,
		Password:        body.Password,
		ConfirmPassword: body.ConfirmPassword,
		FirstName:       body.FirstName,
		LastName:        body.LastName,
	}.Validate()
	if !errs.Valid() {
		return web.FormErrors(c, errs)
	}

	user, err := s.sessions.Register(c.Context(), body.RegisterRequest)
	if err != nil {
		return web.Fail(c, "register", err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login выполняет вход через OAuth2-форму бэкенда
func (s *AuthService) Login(c fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	errs := validate.LoginInput{Username: body.Username, Password: body.Password}.Validate()
	if !errs.Valid() {
		return web.FormErrors(c, errs)
	}

	sess, err := s.sessions.Login(c.Context(), body.Username, body.Password)
	if err != nil {
		return web.Fail(c, "login", err)
	}

	return c.JSON(sessionPayload(sess))
}

// LoginJSON выполняет вход через JSON-эндпоинт бэкенда
func (s *AuthService) LoginJSON(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	errs := validate.LoginInput{Username: body.Email, Password: body.Password}.Validate()
	if !errs.Valid() {
		return web.FormErrors(c, errs)
	}

	sess, err := s.sessions.LoginJSON(c.Context(), body.Email, body.Password)
	if err != nil {
		return web.Fail(c, "login", err)
	}

	return c.JSON(sessionPayload(sess))
}

// Logout инвалидирует токен на бэкенде. Локальная сессия очищается
// независимо от результата, поэтому ответ всегда успешный
func (s *AuthService) Logout(c fiber.Ctx) error {
	err := s.sessions.Logout(c.Context(), middleware.Token(c))

	resp := fiber.Map{"success": true}
	if err != nil {
		resp["remote_error"] = err.Error()
	}
	return c.JSON(resp)
}

// Me возвращает снимок сессии владельца токена
func (s *AuthService) Me(c fiber.Ctx) error {
	sess, err := s.sessions.Attach(c.Context(), middleware.Token(c))
	if err != nil {
		return web.Fail(c, "fetch profile", err)
	}
	if !sess.IsAuthenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Не авторизован"})
	}
	return c.JSON(sessionPayload(sess))
}

// UpdateMe обновляет профиль и заново запрашивает авторитетное состояние
func (s *AuthService) UpdateMe(c fiber.Ctx) error {
	var upd rewear.ProfileUpdate
	if err := c.Bind().Body(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	token := middleware.Token(c)
	authed := s.api.WithToken(token)

	if _, err := authed.UpdateCurrentUser(c.Context(), upd); err != nil {
		return web.Fail(c, "update profile", err)
	}

	// Перечитываем профиль после мутации вместо доверия ответу
	sess, err := s.sessions.Attach(c.Context(), token)
	if err != nil {
		return web.Fail(c, "fetch profile", err)
	}
	fresh, err := authed.CurrentUser(c.Context())
	if err != nil {
		return web.Fail(c, "fetch profile", err)
	}
	s.sessions.UpdateUser(c.Context(), sess, fresh)
	return c.JSON(sessionPayload(sess))
}

// Refresh обменивает текущий токен на новый и переносит сессию
func (s *AuthService) Refresh(c fiber.Ctx) error {
	token := middleware.Token(c)

	tok, err := s.api.WithToken(token).RefreshToken(c.Context())
	if err != nil {
		return web.Fail(c, "refresh token", err)
	}

	sess, err := s.sessions.RotateToken(c.Context(), token, tok.AccessToken)
	if err != nil {
		return web.Fail(c, "refresh token", err)
	}

	payload := sessionPayload(sess)
	payload["access_token"] = tok.AccessToken
	return c.JSON(payload)
}

// ResendWelcome повторно отправляет приветственное письмо
func (s *AuthService) ResendWelcome(c fiber.Ctx) error {
	if err := s.api.WithToken(middleware.Token(c)).ResendWelcomeEmail(c.Context()); err != nil {
		return web.Fail(c, "resend welcome email", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// TestWelcome отправляет тестовое письмо. Доступно только вне production
func (s *AuthService) TestWelcome(c fiber.Ctx) error {
	if s.cfg.AppEnv == "production" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Недоступно в production"})
	}
	testEmail := c.Query("test_email")
	if testEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Не указан test_email"})
	}
	if err := s.api.WithToken(middleware.Token(c)).TestWelcomeEmail(c.Context(), testEmail); err != nil {
		return web.Fail(c, "send test email", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// sessionPayload собирает снимок сессии для браузера.
// points_stale делает мягкую деградацию баллов наблюдаемой
func sessionPayload(sess *session.Session) fiber.Map {
	return fiber.Map{
		"access_token": sess.Token,
		"token_type":   "bearer",
		"state":        sess.State,
		"user":         sess.User,
		"points":       sess.Points,
		"points_stale": sess.PointsStale,
	}
}
