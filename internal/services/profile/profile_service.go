package profile

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
	"github.com/rajivgeraev/rewear-web/internal/rewear"
	"github.com/rajivgeraev/rewear-web/internal/utils"
	"github.com/rajivgeraev/rewear-web/internal/web"
)

// ProfileService обслуживает маршруты дашборда и публичных профилей
type ProfileService struct {
	api *rewear.Client
}

// NewProfileService создает новый экземпляр ProfileService
func NewProfileService(api *rewear.Client) *ProfileService {
	return &ProfileService{api: api}
}

// Dashboard возвращает сводку текущего пользователя
func (s *ProfileService) Dashboard(c fiber.Ctx) error {
	dash, err := s.api.WithToken(middleware.Token(c)).Dashboard(c.Context())
	if err != nil {
		return web.Fail(c, "load dashboard", err)
	}
	return c.JSON(fiber.Map{
		"dashboard":        dash,
		"points_formatted": utils.FormatPoints(dash.Statistics.PointsBalance),
	})
}

// MyItems возвращает вещи текущего пользователя
func (s *ProfileService) MyItems(c fiber.Ctx) error {
	p := rewear.MyItemsParams{
		StatusFilter: c.Query("status_filter"),
		Page:         pageFromQuery(c),
	}

	items, err := s.api.WithToken(middleware.Token(c)).MyItems(c.Context(), p)
	if err != nil {
		return web.Fail(c, "load your items", err)
	}
	return c.JSON(fiber.Map{"items": items, "count": len(items)})
}

// MySwaps возвращает обмены текущего пользователя
func (s *ProfileService) MySwaps(c fiber.Ctx) error {
	p := rewear.SwapListParams{
		SwapType:     c.Query("swap_type"),
		StatusFilter: c.Query("status_filter"),
		Page:         pageFromQuery(c),
	}

	swaps, err := s.api.WithToken(middleware.Token(c)).MySwaps(c.Context(), p)
	if err != nil {
		return web.Fail(c, "load your swaps", err)
	}
	return c.JSON(fiber.Map{"swaps": swaps, "count": len(swaps)})
}

// PointHistory возвращает журнал операций с баллами
func (s *ProfileService) PointHistory(c fiber.Ctx) error {
	p := rewear.PointHistoryParams{
		TransactionType: c.Query("transaction_type"),
		Page:            pageFromQuery(c),
	}

	history, err := s.api.WithToken(middleware.Token(c)).PointHistory(c.Context(), p)
	if err != nil {
		return web.Fail(c, "load point history", err)
	}
	return c.JSON(fiber.Map{"transactions": history, "count": len(history)})
}

// PublicProfile возвращает публичный профиль пользователя
func (s *ProfileService) PublicProfile(c fiber.Ctx) error {
	userID := utils.ParseIntDefault(c.Params("id"), 0)
	if userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID пользователя"})
	}

	user, err := s.api.PublicProfile(c.Context(), userID)
	if err != nil {
		return web.Fail(c, "load profile", err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// PublicItems возвращает доступные вещи пользователя
func (s *ProfileService) PublicItems(c fiber.Ctx) error {
	userID := utils.ParseIntDefault(c.Params("id"), 0)
	if userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID пользователя"})
	}

	items, err := s.api.PublicItems(c.Context(), userID, pageFromQuery(c))
	if err != nil {
		return web.Fail(c, "load user items", err)
	}
	return c.JSON(fiber.Map{"items": items, "count": len(items)})
}

func pageFromQuery(c fiber.Ctx) rewear.PageParams {
	return rewear.PageParams{
		Limit:  utils.ParseLimit(c.Query("limit"), utils.DefaultLimit),
		Offset: utils.ParseOffset(c.Query("offset")),
	}
}
