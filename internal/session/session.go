// Package session владеет состоянием аутентификации: токеном и кэшем
// снимка пользователь/баллы. Снимок всегда получен от бэкенда и никогда
// не вычисляется локально; баллы обновляются только после явных
// мутирующих действий.
package session

import (
	"context"
	"log"

	"github.com/rajivgeraev/rewear-web/internal/models"
	"github.com/rajivgeraev/rewear-web/internal/rewear"
)

// State представляет фазу жизненного цикла сессии
type State string

const (
	StateUninitialized State = "uninitialized"
	StateChecking      State = "checking"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Session представляет снимок сессии одного токена
type Session struct {
	Token       string       `json:"token"`
	State       State        `json:"state"`
	User        *models.User `json:"user,omitempty"`
	Points      int          `json:"points"`
	PointsStale bool         `json:"points_stale"` // Баллы не удалось получить, значение устарело
}

// IsAuthenticated сообщает, что сессия подтверждена профилем пользователя
func (s *Session) IsAuthenticated() bool {
	return s.State == StateAuthenticated && s.User != nil
}

// Manager управляет сессиями поверх API-клиента и хранилища снимков.
// Конкурентные логины одного пользователя не координируются:
// последняя запись выигрывает, как и в исходном интерфейсе
type Manager struct {
	api   *rewear.Client
	store Store
}

// NewManager создает новый экземпляр Manager
func NewManager(api *rewear.Client, store Store) *Manager {
	return &Manager{api: api, store: store}
}

// Login обменивает учетные данные на токен через OAuth2-форму и собирает
// снимок сессии. Токен сохраняется до зависимых запросов и не
// откатывается при их сбое
func (m *Manager) Login(ctx context.Context, username, password string) (*Session, error) {
	tok, err := m.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, tok.AccessToken)
}

// LoginJSON выполняет вход через JSON-эндпоинт {email, password}
func (m *Manager) LoginJSON(ctx context.Context, email, password string) (*Session, error) {
	tok, err := m.api.LoginJSON(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, tok.AccessToken)
}

// Register создает аккаунт. Сессия при этом не открывается
func (m *Manager) Register(ctx context.Context, req rewear.RegisterRequest) (*models.User, error) {
	return m.api.Register(ctx, req)
}

// Attach восстанавливает сессию по сохраненному токену (путь старта
// приложения). Просроченный по exp токен отклоняется без сетевого
// вызова. Снимок из хранилища перепроверяется запросом профиля:
// отозванный на бэкенде токен не должен жить до истечения TTL
func (m *Manager) Attach(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return &Session{State: StateAnonymous}, nil
	}

	if sess, ok := m.store.Get(ctx, token); ok && sess.IsAuthenticated() {
		user, err := m.api.WithToken(token).CurrentUser(ctx)
		if err != nil {
			return sess, err
		}
		sess.User = user
		if perr := m.store.Put(ctx, sess); perr != nil {
			log.Printf("Ошибка сохранения сессии: %v", perr)
		}
		return sess, nil
	}

	if tokenExpired(token) {
		return &Session{State: StateAnonymous}, nil
	}

	return m.establish(ctx, token)
}

// establish сохраняет токен и достраивает снимок: профиль, затем баллы.
// Сбой запроса профиля оставляет сессию с токеном, но без снимка.
// Сбой запроса баллов не считается ошибкой — сессия помечается
// PointsStale и остается аутентифицированной
func (m *Manager) establish(ctx context.Context, token string) (*Session, error) {
	sess := &Session{Token: token, State: StateChecking}
	if err := m.store.Put(ctx, sess); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}

	authed := m.api.WithToken(token)

	user, err := authed.CurrentUser(ctx)
	if err != nil {
		return sess, err
	}
	sess.User = user
	sess.State = StateAuthenticated

	m.loadPoints(ctx, authed, sess)

	if err := m.store.Put(ctx, sess); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}
	return sess, nil
}

// Logout инвалидирует токен на бэкенде и безусловно удаляет локальный
// снимок: локальный выход никогда не блокируется сетевым сбоем.
// Ошибка бэкенда возвращается только для наблюдаемости
func (m *Manager) Logout(ctx context.Context, token string) error {
	err := m.api.WithToken(token).Logout(ctx)
	if err != nil {
		log.Printf("Ошибка удаленного выхода (локальная сессия все равно очищена): %v", err)
	}
	if derr := m.store.Delete(ctx, token); derr != nil {
		log.Printf("Ошибка удаления сессии: %v", derr)
	}
	return err
}

// RefreshPoints заново выводит баллы из сводки дашборда
func (m *Manager) RefreshPoints(ctx context.Context, sess *Session) {
	if sess == nil || !sess.IsAuthenticated() {
		return
	}
	m.loadPoints(ctx, m.api.WithToken(sess.Token), sess)
	if err := m.store.Put(ctx, sess); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}
}

// UpdateUser заменяет профиль в снимке сессии после изменения на бэкенде
func (m *Manager) UpdateUser(ctx context.Context, sess *Session, user *models.User) {
	sess.User = user
	if err := m.store.Put(ctx, sess); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}
}

// RotateToken сохраняет сессию под новым токеном после refresh
func (m *Manager) RotateToken(ctx context.Context, oldToken, newToken string) (*Session, error) {
	if derr := m.store.Delete(ctx, oldToken); derr != nil {
		log.Printf("Ошибка удаления старой сессии: %v", derr)
	}
	return m.establish(ctx, newToken)
}

func (m *Manager) loadPoints(ctx context.Context, authed *rewear.Client, sess *Session) {
	dash, err := authed.Dashboard(ctx)
	if err != nil {
		// Мягкая деградация из исходного интерфейса, но наблюдаемая
		sess.PointsStale = true
		return
	}
	sess.Points = dash.Statistics.PointsBalance
	sess.PointsStale = false
}
