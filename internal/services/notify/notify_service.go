package notify

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
	"github.com/rajivgeraev/rewear-web/internal/models"
	"github.com/rajivgeraev/rewear-web/internal/notifications"
	"github.com/rajivgeraev/rewear-web/internal/rewear"
	"github.com/rajivgeraev/rewear-web/internal/session"
	"github.com/rajivgeraev/rewear-web/internal/web"
)

// NotifyService обслуживает маршруты уведомлений: подключение читателя к
// WebSocket бэкенда и выдача накопленных уведомлений
type NotifyService struct {
	api      *rewear.Client
	sessions *session.Manager
	manager  *notifications.Manager
}

// NewNotifyService создает новый экземпляр NotifyService
func NewNotifyService(api *rewear.Client, sessions *session.Manager, manager *notifications.Manager) *NotifyService {
	return &NotifyService{api: api, sessions: sessions, manager: manager}
}

// Connect запускает читателя уведомлений для пользователя.
// Повторный вызов при живом соединении ничего не меняет
func (s *NotifyService) Connect(c fiber.Ctx) error {
	sess, err := s.authed(c)
	if err != nil {
		return web.Fail(c, "connect notifications", err)
	}
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Не авторизован"})
	}

	if s.manager.HasConsumer(sess.User.ID) {
		return c.JSON(fiber.Map{"connected": true})
	}

	consumer, err := notifications.Dial(c.Context(), s.api.WithToken(sess.Token), sess.User.ID, s.manager)
	if err != nil {
		log.Printf("Ошибка подключения к WebSocket для пользователя %d: %v", sess.User.ID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "failed to connect notifications",
		})
	}

	s.manager.SetConsumer(sess.User.ID, consumer)
	consumer.Start()
	return c.JSON(fiber.Map{"connected": true})
}

// Disconnect останавливает читателя уведомлений
func (s *NotifyService) Disconnect(c fiber.Ctx) error {
	sess, err := s.authed(c)
	if err != nil {
		return web.Fail(c, "disconnect notifications", err)
	}
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Не авторизован"})
	}

	s.manager.StopConsumer(sess.User.ID)
	return c.JSON(fiber.Map{"connected": false})
}

// streamWait задает максимум ожидания long-poll запроса
const streamWait = 25 * time.Second

// Stream выполняет long-poll: отдает накопленное сразу, иначе ждет первое
// уведомление или истечение таймаута
func (s *NotifyService) Stream(c fiber.Ctx) error {
	sess, err := s.authed(c)
	if err != nil {
		return web.Fail(c, "stream notifications", err)
	}
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Не авторизован"})
	}

	userID := sess.User.ID
	id, ch := s.manager.Subscribe(userID)
	defer s.manager.Unsubscribe(userID, id)

	if drained := s.manager.Drain(userID); len(drained) > 0 {
		return c.JSON(fiber.Map{"notifications": drained, "count": len(drained)})
	}

	select {
	case <-ch:
		// Канал только будит запрос; отдаем буфер, чтобы опрос
		// после не выдал то же уведомление второй раз
		drained := s.manager.Drain(userID)
		return c.JSON(fiber.Map{"notifications": drained, "count": len(drained)})
	case <-time.After(streamWait):
		return c.JSON(fiber.Map{"notifications": []models.Notification{}, "count": 0})
	case <-c.Context().Done():
		return nil
	}
}

// List отдает накопленные уведомления и очищает буфер
func (s *NotifyService) List(c fiber.Ctx) error {
	sess, err := s.authed(c)
	if err != nil {
		return web.Fail(c, "load notifications", err)
	}
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Не авторизован"})
	}

	drained := s.manager.Drain(sess.User.ID)
	return c.JSON(fiber.Map{
		"notifications": drained,
		"count":         len(drained),
		"connected":     s.manager.HasConsumer(sess.User.ID),
	})
}

// authed возвращает авторизованную сессию запроса либо nil
func (s *NotifyService) authed(c fiber.Ctx) (*session.Session, error) {
	sess, err := s.sessions.Attach(c.Context(), middleware.Token(c))
	if err != nil {
		return nil, err
	}
	if !sess.IsAuthenticated() || sess.User == nil {
		return nil, nil
	}
	return sess, nil
}
