package rewear

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rajivgeraev/rewear-web/internal/models"
)

// TokenResponse представляет ответ эндпоинтов логина и обновления токена
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
}

// RegisterRequest содержит данные регистрации нового пользователя
type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Bio       string `json:"bio,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Country   string `json:"country,omitempty"`
}

// ProfileUpdate содержит изменяемые поля профиля
type ProfileUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	Country   *string `json:"country,omitempty"`
}

// Status проверяет, что API запущен
func (c *Client) Status(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.getJSON(ctx, "/", nil, &raw)
	return raw, err
}

// Health возвращает подробный статус здоровья API
func (c *Client) Health(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.getJSON(ctx, "/health", nil, &raw)
	return raw, err
}

// Register создает новый аккаунт. Токен при этом не выдается
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/auth/register", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login обменивает учетные данные на токен через OAuth2-форму
// (username/password/grant_type=password)
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("grant_type", "password")

	var tok TokenResponse
	if err := c.postForm(ctx, "/api/v1/auth/login", form, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// LoginJSON выполняет альтернативный вход с JSON-телом {email, password}
func (c *Client) LoginJSON(ctx context.Context, email, password string) (*TokenResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var tok TokenResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/auth/login-json", nil, body, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// CurrentUser возвращает профиль владельца токена
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/api/v1/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateCurrentUser обновляет профиль владельца токена
func (c *Client) UpdateCurrentUser(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.sendJSON(ctx, http.MethodPut, "/api/v1/auth/me", nil, upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RefreshToken запрашивает новый токен по текущему
func (c *Client) RefreshToken(ctx context.Context) (*TokenResponse, error) {
	var tok TokenResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/auth/refresh", nil, nil, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Logout инвалидирует токен на бэкенде. Локальную очистку выполняет
// слой сессии независимо от результата этого вызова
func (c *Client) Logout(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil, nil)
}

// ResendWelcomeEmail повторно отправляет приветственное письмо
func (c *Client) ResendWelcomeEmail(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/v1/auth/resend-welcome", nil, nil, nil)
}

// TestWelcomeEmail отправляет тестовое приветственное письмо (только dev)
func (c *Client) TestWelcomeEmail(ctx context.Context, testEmail string) error {
	q := url.Values{}
	q.Set("test_email", testEmail)
	return c.do(ctx, http.MethodPost, "/api/v1/auth/test-welcome-email", q, nil, "", nil)
}
