package admin

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
	"github.com/rajivgeraev/rewear-web/internal/rewear"
	"github.com/rajivgeraev/rewear-web/internal/session"
	"github.com/rajivgeraev/rewear-web/internal/utils"
	"github.com/rajivgeraev/rewear-web/internal/web"
)

// AdminService обслуживает маршруты консоли администратора. Права
// проверяет бэкенд: шлюз пробрасывает токен и отдает его ответы как есть
type AdminService struct {
	api      *rewear.Client
	sessions *session.Manager
}

// NewAdminService создает новый экземпляр AdminService
func NewAdminService(api *rewear.Client, sessions *session.Manager) *AdminService {
	return &AdminService{api: api, sessions: sessions}
}

// Dashboard возвращает сводку платформы
func (s *AdminService) Dashboard(c fiber.Ctx) error {
	raw, err := s.api.WithToken(middleware.Token(c)).AdminDashboard(c.Context())
	if err != nil {
		return web.Fail(c, "load admin dashboard", err)
	}
	return web.SendRaw(c, raw)
}

// Users возвращает список пользователей с фильтрацией
func (s *AdminService) Users(c fiber.Ctx) error {
	p := rewear.AdminUsersParams{
		IsActive: boolQuery(c, "is_active"),
		IsAdmin:  boolQuery(c, "is_admin"),
		Search:   c.Query("search"),
		Page:     adminPageFromQuery(c),
	}

	users, err := s.api.WithToken(middleware.Token(c)).AdminUsers(c.Context(), p)
	if err != nil {
		return web.Fail(c, "load users", err)
	}
	return c.JSON(fiber.Map{"users": users, "count": len(users)})
}

// ToggleUserActive блокирует или разблокирует пользователя
func (s *AdminService) ToggleUserActive(c fiber.Ctx) error {
	userID := utils.ParseIntDefault(c.Params("id"), 0)
	if userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID пользователя"})
	}

	raw, err := s.api.WithToken(middleware.Token(c)).ToggleUserActive(c.Context(), userID)
	if err != nil {
		return web.Fail(c, "update user", err)
	}
	s.refreshPoints(c)
	return web.SendRaw(c, raw)
}

// Items возвращает список вещей для модерации
func (s *AdminService) Items(c fiber.Ctx) error {
	p := rewear.AdminItemsParams{
		StatusFilter: c.Query("status_filter"),
		CategoryID:   utils.ParseIntDefault(c.Query("category_id"), 0),
		Search:       c.Query("search"),
		Page:         adminPageFromQuery(c),
	}

	items, err := s.api.WithToken(middleware.Token(c)).AdminItems(c.Context(), p)
	if err != nil {
		return web.Fail(c, "load items", err)
	}
	return c.JSON(fiber.Map{"items": items, "count": len(items)})
}

// ApproveItem одобряет вещь и перечитывает ее состояние
func (s *AdminService) ApproveItem(c fiber.Ctx) error {
	itemID := utils.ParseIntDefault(c.Params("id"), 0)
	if itemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID вещи"})
	}

	authed := s.api.WithToken(middleware.Token(c))
	if _, err := authed.ApproveItem(c.Context(), itemID, c.Query("admin_notes")); err != nil {
		return web.Fail(c, "approve item", err)
	}

	fresh, err := authed.GetItem(c.Context(), itemID)
	if err != nil {
		return web.Fail(c, "load item", err)
	}
	s.refreshPoints(c)
	return c.JSON(fiber.Map{"success": true, "item": fresh})
}

// RejectItem отклоняет вещь. Без причины подставляется стандартная
func (s *AdminService) RejectItem(c fiber.Ctx) error {
	itemID := utils.ParseIntDefault(c.Params("id"), 0)
	if itemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID вещи"})
	}

	authed := s.api.WithToken(middleware.Token(c))
	if _, err := authed.RejectItem(c.Context(), itemID, c.Query("rejection_reason"), c.Query("admin_notes")); err != nil {
		return web.Fail(c, "reject item", err)
	}

	fresh, err := authed.GetItem(c.Context(), itemID)
	if err != nil {
		return web.Fail(c, "load item", err)
	}
	s.refreshPoints(c)
	return c.JSON(fiber.Map{"success": true, "item": fresh})
}

// Swaps возвращает все обмены платформы
func (s *AdminService) Swaps(c fiber.Ctx) error {
	swaps, err := s.api.WithToken(middleware.Token(c)).
		AdminSwaps(c.Context(), c.Query("status_filter"), c.Query("swap_type"), adminPageFromQuery(c))
	if err != nil {
		return web.Fail(c, "load swaps", err)
	}
	return c.JSON(fiber.Map{"swaps": swaps, "count": len(swaps)})
}

// CreateCategory создает категорию
func (s *AdminService) CreateCategory(c fiber.Ctx) error {
	var req rewear.CategoryCreate
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	cat, err := s.api.WithToken(middleware.Token(c)).CreateCategory(c.Context(), req)
	if err != nil {
		return web.Fail(c, "create category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// UpdateCategory изменяет категорию
func (s *AdminService) UpdateCategory(c fiber.Ctx) error {
	categoryID := utils.ParseIntDefault(c.Params("id"), 0)
	if categoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID категории"})
	}

	var upd rewear.CategoryUpdate
	if err := c.Bind().Body(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	cat, err := s.api.WithToken(middleware.Token(c)).UpdateCategory(c.Context(), categoryID, upd)
	if err != nil {
		return web.Fail(c, "update category", err)
	}
	return c.JSON(cat)
}

// Analytics возвращает аналитику платформы
func (s *AdminService) Analytics(c fiber.Ctx) error {
	raw, err := s.api.WithToken(middleware.Token(c)).Analytics(c.Context())
	if err != nil {
		return web.Fail(c, "load analytics", err)
	}
	return web.SendRaw(c, raw)
}

// SendTestNotification шлет тестовое уведомление пользователю
func (s *AdminService) SendTestNotification(c fiber.Ctx) error {
	userID := utils.ParseIntDefault(c.Query("user_id"), 0)
	if userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Параметр user_id обязателен"})
	}

	raw, err := s.api.WithToken(middleware.Token(c)).
		SendTestNotification(c.Context(), userID, c.Query("message"), c.Query("notification_type"))
	if err != nil {
		return web.Fail(c, "send test notification", err)
	}
	return web.SendRaw(c, raw)
}

// WebSocketStats возвращает статистику подключений бэкенда
func (s *AdminService) WebSocketStats(c fiber.Ctx) error {
	raw, err := s.api.WithToken(middleware.Token(c)).WebSocketStats(c.Context())
	if err != nil {
		return web.Fail(c, "load websocket stats", err)
	}
	return web.SendRaw(c, raw)
}

// refreshPoints обновляет баланс баллов после мутации. Сбой не
// мешает ответу — баланс просто помечается устаревшим
func (s *AdminService) refreshPoints(c fiber.Ctx) {
	sess, err := s.sessions.Attach(c.Context(), middleware.Token(c))
	if err != nil || !sess.IsAuthenticated() {
		return
	}
	s.sessions.RefreshPoints(c.Context(), sess)
}

// adminPageFromQuery читает пагинацию с админским дефолтом 50
func adminPageFromQuery(c fiber.Ctx) rewear.PageParams {
	return rewear.PageParams{
		Limit:  utils.ParseLimit(c.Query("limit"), utils.DefaultAdminLimit),
		Offset: utils.ParseOffset(c.Query("offset")),
	}
}

func boolQuery(c fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v := raw == "true"
	return &v
}
