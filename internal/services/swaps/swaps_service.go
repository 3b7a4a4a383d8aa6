package swaps

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rajivgeraev/rewear-web/internal/compat"
	"github.com/rajivgeraev/rewear-web/internal/middleware"
	"github.com/rajivgeraev/rewear-web/internal/models"
	"github.com/rajivgeraev/rewear-web/internal/rewear"
	"github.com/rajivgeraev/rewear-web/internal/session"
	"github.com/rajivgeraev/rewear-web/internal/utils"
	"github.com/rajivgeraev/rewear-web/internal/web"
)

// SwapService обслуживает маршруты обменов
type SwapService struct {
	api      *rewear.Client
	sessions *session.Manager
}

// NewSwapService создает новый экземпляр SwapService
func NewSwapService(api *rewear.Client, sessions *session.Manager) *SwapService {
	return &SwapService{api: api, sessions: sessions}
}

// Create создает запрос на обмен
func (s *SwapService) Create(c fiber.Ctx) error {
	var req rewear.SwapCreate
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	authed := s.api.WithToken(middleware.Token(c))
	created, err := authed.CreateSwap(c.Context(), req)
	if err != nil {
		return web.Fail(c, "create swap", err)
	}

	// Перечитываем после мутации
	fresh, err := authed.GetSwap(c.Context(), created.ID)
	if err != nil {
		return web.Fail(c, "load swap", err)
	}
	s.refreshPoints(c)
	return c.Status(fiber.StatusCreated).JSON(s.swapPayload(fresh))
}

// List возвращает обмены текущего пользователя
func (s *SwapService) List(c fiber.Ctx) error {
	p := rewear.SwapListParams{
		SwapType:     c.Query("swap_type"),
		StatusFilter: c.Query("status_filter"),
		Page: rewear.PageParams{
			Limit:  utils.ParseLimit(c.Query("limit"), utils.DefaultLimit),
			Offset: utils.ParseOffset(c.Query("offset")),
		},
	}

	swaps, err := s.api.WithToken(middleware.Token(c)).ListSwaps(c.Context(), p)
	if err != nil {
		return web.Fail(c, "load swaps", err)
	}
	return c.JSON(fiber.Map{"swaps": swaps, "count": len(swaps)})
}

// Get возвращает карточку обмена с доступными действиями
func (s *SwapService) Get(c fiber.Ctx) error {
	swapID := utils.ParseIntDefault(c.Params("id"), 0)
	if swapID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID обмена"})
	}

	swap, err := s.api.WithToken(middleware.Token(c)).GetSwap(c.Context(), swapID)
	if err != nil {
		return web.Fail(c, "load swap", err)
	}
	return c.JSON(s.swapPayload(swap))
}

// Accept принимает обмен
func (s *SwapService) Accept(c fiber.Ctx) error {
	return s.action(c, models.ActionAccept)
}

// Reject отклоняет обмен
func (s *SwapService) Reject(c fiber.Ctx) error {
	return s.action(c, models.ActionReject)
}

// Complete завершает обмен
func (s *SwapService) Complete(c fiber.Ctx) error {
	return s.action(c, models.ActionComplete)
}

// Cancel отменяет обмен
func (s *SwapService) Cancel(c fiber.Ctx) error {
	return s.action(c, models.ActionCancel)
}

// action выполняет переход статуса обмена. Допустимость перехода
// решает бэкенд, шлюз лишь перечитывает итоговое состояние
func (s *SwapService) action(c fiber.Ctx, act models.SwapAction) error {
	swapID := utils.ParseIntDefault(c.Params("id"), 0)
	if swapID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID обмена"})
	}

	authed := s.api.WithToken(middleware.Token(c))
	ownerResponse := c.Query("owner_response")

	var err error
	switch act {
	case models.ActionAccept:
		_, err = authed.AcceptSwap(c.Context(), swapID, ownerResponse)
	case models.ActionReject:
		_, err = authed.RejectSwap(c.Context(), swapID, ownerResponse)
	case models.ActionComplete:
		_, err = authed.CompleteSwap(c.Context(), swapID)
	case models.ActionCancel:
		_, err = authed.CancelSwap(c.Context(), swapID)
	}
	if err != nil {
		return web.Fail(c, string(act)+" swap", err)
	}

	fresh, err := authed.GetSwap(c.Context(), swapID)
	if err != nil {
		return web.Fail(c, "load swap", err)
	}
	s.refreshPoints(c)
	return c.JSON(s.swapPayload(fresh))
}

// Compatibility оценивает совместимость двух вещей по эвристике.
// Оценка справочная и на допустимость обмена не влияет
func (s *SwapService) Compatibility(c fiber.Ctx) error {
	itemID := utils.ParseIntDefault(c.Query("item_id"), 0)
	offeredID := utils.ParseIntDefault(c.Query("offered_item_id"), 0)
	if itemID <= 0 || offeredID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Параметры item_id и offered_item_id обязательны",
		})
	}

	authed := s.api.WithToken(middleware.Token(c))

	var target, offered *models.Item
	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		var err error
		target, err = authed.GetItem(ctx, itemID)
		return err
	})
	g.Go(func() error {
		var err error
		offered, err = authed.GetItem(ctx, offeredID)
		return err
	})
	if err := g.Wait(); err != nil {
		return web.Fail(c, "load items", err)
	}

	return c.JSON(fiber.Map{
		"item_id":         target.ID,
		"offered_item_id": offered.ID,
		"score":           compat.Score(*target, *offered),
	})
}

// Stats возвращает сводку обменов пользователя
func (s *SwapService) Stats(c fiber.Ctx) error {
	raw, err := s.api.WithToken(middleware.Token(c)).SwapStats(c.Context())
	if err != nil {
		return web.Fail(c, "load swap stats", err)
	}
	return web.SendRaw(c, raw)
}

// swapPayload собирает представление обмена: доступные действия,
// бейдж статуса и справочная оценка совместимости, когда в обмене
// участвует встречная вещь
func (s *SwapService) swapPayload(swap *models.Swap) fiber.Map {
	payload := fiber.Map{
		"swap":              swap,
		"available_actions": swap.AvailableActions(),
		"status_badge":      utils.SwapStatusBadge(swap.Status),
		"created_ago":       utils.FormatRelativeTime(swap.CreatedAt, time.Now()),
	}
	if swap.Item != nil && swap.OfferedItem != nil {
		payload["compatibility"] = compat.Score(*swap.Item, *swap.OfferedItem)
	}
	return payload
}

// refreshPoints обновляет баланс баллов после мутации. Сбой не
// мешает ответу — баланс просто помечается устаревшим
func (s *SwapService) refreshPoints(c fiber.Ctx) {
	sess, err := s.sessions.Attach(c.Context(), middleware.Token(c))
	if err != nil || !sess.IsAuthenticated() {
		return
	}
	s.sessions.RefreshPoints(c.Context(), sess)
}
