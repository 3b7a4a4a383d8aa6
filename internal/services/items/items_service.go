package items

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
	"github.com/rajivgeraev/rewear-web/internal/models"
	"github.com/rajivgeraev/rewear-web/internal/rewear"
	"github.com/rajivgeraev/rewear-web/internal/session"
	"github.com/rajivgeraev/rewear-web/internal/utils"
	"github.com/rajivgeraev/rewear-web/internal/web"
)

// Лимит блока трендовых вещей на странице каталога
const browseTrendingLimit = 10

// ItemsService обслуживает маршруты каталога и карточки вещи
type ItemsService struct {
	api      *rewear.Client
	sessions *session.Manager
}

// NewItemsService создает новый экземпляр ItemsService
func NewItemsService(api *rewear.Client, sessions *session.Manager) *ItemsService {
	return &ItemsService{api: api, sessions: sessions}
}

// Browse загружает страницу каталога: вещи, категории и тренды
// параллельно. Сбой любого из трех запросов делает неуспешной всю
// страницу — частичный рендер не отдается
func (s *ItemsService) Browse(c fiber.Ctx) error {
	authed := s.api.WithToken(middleware.Token(c))
	filter := itemFilterFromQuery(c)

	var (
		items      []models.Item
		categories []models.Category
		trending   []models.Item
	)

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		var err error
		items, err = authed.ListItems(ctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = authed.ListCategories(ctx, false, true)
		return err
	})
	g.Go(func() error {
		var err error
		trending, err = authed.TrendingItems(ctx, browseTrendingLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return web.Fail(c, "load items", err)
	}

	return c.JSON(fiber.Map{
		"items":      items,
		"categories": categories,
		"trending":   trending,
	})
}

// List возвращает список вещей с фильтрацией
func (s *ItemsService) List(c fiber.Ctx) error {
	items, err := s.api.WithToken(middleware.Token(c)).ListItems(c.Context(), itemFilterFromQuery(c))
	if err != nil {
		return web.Fail(c, "load items", err)
	}
	return c.JSON(fiber.Map{"items": items, "count": len(items)})
}

// Create создает вещь и перечитывает авторитетное состояние
func (s *ItemsService) Create(c fiber.Ctx) error {
	var req rewear.ItemCreate
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	authed := s.api.WithToken(middleware.Token(c))
	created, err := authed.CreateItem(c.Context(), req)
	if err != nil {
		return web.Fail(c, "create item", err)
	}

	// Перечитываем после мутации: статус присваивает бэкенд
	fresh, err := authed.GetItem(c.Context(), created.ID)
	if err != nil {
		return web.Fail(c, "load item", err)
	}
	s.refreshPoints(c)
	return c.Status(fiber.StatusCreated).JSON(fresh)
}

// Trending возвращает популярные вещи
func (s *ItemsService) Trending(c fiber.Ctx) error {
	limit := utils.ParseIntDefault(c.Query("limit"), browseTrendingLimit)
	items, err := s.api.WithToken(middleware.Token(c)).TrendingItems(c.Context(), limit)
	if err != nil {
		return web.Fail(c, "load trending items", err)
	}
	return c.JSON(fiber.Map{"items": items})
}

// Get возвращает карточку вещи с бейджем состояния
func (s *ItemsService) Get(c fiber.Ctx) error {
	itemID := utils.ParseIntDefault(c.Params("id"), 0)
	if itemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID вещи"})
	}

	item, err := s.api.WithToken(middleware.Token(c)).GetItem(c.Context(), itemID)
	if err != nil {
		return web.Fail(c, "load item", err)
	}
	return c.JSON(fiber.Map{
		"item":            item,
		"condition_badge": utils.ConditionBadge(item.Condition),
		"slug":            utils.Slug(item.Title),
		"listed_ago":      utils.FormatRelativeTime(item.CreatedAt, time.Now()),
	})
}

// Update обновляет вещь и перечитывает авторитетное состояние
func (s *ItemsService) Update(c fiber.Ctx) error {
	itemID := utils.ParseIntDefault(c.Params("id"), 0)
	if itemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID вещи"})
	}

	var upd rewear.ItemUpdate
	if err := c.Bind().Body(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	authed := s.api.WithToken(middleware.Token(c))
	if _, err := authed.UpdateItem(c.Context(), itemID, upd); err != nil {
		return web.Fail(c, "update item", err)
	}

	fresh, err := authed.GetItem(c.Context(), itemID)
	if err != nil {
		return web.Fail(c, "load item", err)
	}
	s.refreshPoints(c)
	return c.JSON(fresh)
}

// Delete удаляет вещь
func (s *ItemsService) Delete(c fiber.Ctx) error {
	itemID := utils.ParseIntDefault(c.Params("id"), 0)
	if itemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID вещи"})
	}

	if err := s.api.WithToken(middleware.Token(c)).DeleteItem(c.Context(), itemID); err != nil {
		return web.Fail(c, "delete item", err)
	}
	s.refreshPoints(c)
	return c.JSON(fiber.Map{"success": true})
}

// Similar возвращает похожие вещи
func (s *ItemsService) Similar(c fiber.Ctx) error {
	itemID := utils.ParseIntDefault(c.Params("id"), 0)
	if itemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID вещи"})
	}

	limit := utils.ParseIntDefault(c.Query("limit"), 5)
	items, err := s.api.WithToken(middleware.Token(c)).SimilarItems(c.Context(), itemID, limit)
	if err != nil {
		return web.Fail(c, "load similar items", err)
	}
	return c.JSON(fiber.Map{"items": items})
}

// Categories возвращает список категорий
func (s *ItemsService) Categories(c fiber.Ctx) error {
	includeInactive := c.Query("include_inactive") == "true"
	withCounts := c.Query("with_counts") == "true"

	cats, err := s.api.ListCategories(c.Context(), includeInactive, withCounts)
	if err != nil {
		return web.Fail(c, "load categories", err)
	}
	return c.JSON(fiber.Map{"categories": cats})
}

// CategoryItems возвращает вещи в категории
func (s *ItemsService) CategoryItems(c fiber.Ctx) error {
	categoryID := utils.ParseIntDefault(c.Params("id"), 0)
	if categoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный ID категории"})
	}

	page := pageFromQuery(c)
	items, err := s.api.WithToken(middleware.Token(c)).
		CategoryItems(c.Context(), categoryID, c.Query("sort_by"), page)
	if err != nil {
		return web.Fail(c, "load category items", err)
	}
	return c.JSON(fiber.Map{"items": items})
}

// refreshPoints обновляет баланс баллов после мутации. Сбой не
// мешает ответу — баланс просто помечается устаревшим
func (s *ItemsService) refreshPoints(c fiber.Ctx) {
	sess, err := s.sessions.Attach(c.Context(), middleware.Token(c))
	if err != nil || !sess.IsAuthenticated() {
		return
	}
	s.sessions.RefreshPoints(c.Context(), sess)
}

// itemFilterFromQuery переносит query-параметры страницы в фильтр API.
// Пустые значения опускаются при сборке строки запроса
func itemFilterFromQuery(c fiber.Ctx) rewear.ItemFilter {
	var includeShipping *bool
	if raw := c.Query("include_shipping"); raw != "" {
		v := raw == "true"
		includeShipping = &v
	}

	var tags []string
	if raw := c.Query("tags"); raw != "" {
		tags = []string{raw}
	}

	return rewear.ItemFilter{
		Query:           c.Query("q"),
		CategoryID:      utils.ParseIntDefault(c.Query("category_id"), 0),
		Size:            c.Query("size"),
		Condition:       c.Query("condition"),
		MinPoints:       utils.ParseIntDefault(c.Query("min_points"), 0),
		MaxPoints:       utils.ParseIntDefault(c.Query("max_points"), 0),
		Brand:           c.Query("brand"),
		Color:           c.Query("color"),
		Material:        c.Query("material"),
		Tags:            tags,
		Location:        c.Query("location"),
		SortBy:          c.Query("sort_by"),
		SortOrder:       c.Query("sort_order"),
		IncludeShipping: includeShipping,
		Page:            pageFromQuery(c),
	}
}

func pageFromQuery(c fiber.Ctx) rewear.PageParams {
	return rewear.PageParams{
		Limit:  utils.ParseLimit(c.Query("limit"), utils.DefaultLimit),
		Offset: utils.ParseOffset(c.Query("offset")),
	}
}
