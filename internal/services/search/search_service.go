package search

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/rewear-web/internal/middleware"
	"github.com/rajivgeraev/rewear-web/internal/rewear"
	"github.com/rajivgeraev/rewear-web/internal/utils"
	"github.com/rajivgeraev/rewear-web/internal/web"
)

// SearchService обслуживает маршруты поиска и рекомендаций
type SearchService struct {
	api *rewear.Client
}

// NewSearchService создает новый экземпляр SearchService
func NewSearchService(api *rewear.Client) *SearchService {
	return &SearchService{api: api}
}

// Items выполняет поиск по каталогу
func (s *SearchService) Items(c fiber.Ctx) error {
	f := rewear.ItemFilter{
		Query:      c.Query("q"),
		CategoryID: utils.ParseIntDefault(c.Query("category_id"), 0),
		Size:       c.Query("size"),
		Condition:  c.Query("condition"),
		MinPoints:  utils.ParseIntDefault(c.Query("min_points"), 0),
		MaxPoints:  utils.ParseIntDefault(c.Query("max_points"), 0),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
		Page: rewear.PageParams{
			Limit:  utils.ParseLimit(c.Query("limit"), utils.DefaultLimit),
			Offset: utils.ParseOffset(c.Query("offset")),
		},
	}

	raw, err := s.api.WithToken(middleware.Token(c)).SearchItems(c.Context(), f)
	if err != nil {
		return web.Fail(c, "search items", err)
	}
	return web.SendRaw(c, raw)
}

// Suggestions возвращает подсказки по префиксу запроса
func (s *SearchService) Suggestions(c fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.JSON(fiber.Map{"suggestions": []string{}})
	}

	raw, err := s.api.SearchSuggestions(c.Context(), q)
	if err != nil {
		return web.Fail(c, "load suggestions", err)
	}
	return web.SendRaw(c, raw)
}

// Popular возвращает популярные поисковые запросы
func (s *SearchService) Popular(c fiber.Ctx) error {
	limit := utils.ParseIntDefault(c.Query("limit"), 10)
	raw, err := s.api.PopularSearches(c.Context(), limit)
	if err != nil {
		return web.Fail(c, "load popular searches", err)
	}
	return web.SendRaw(c, raw)
}

// Recommendations возвращает персональные рекомендации
func (s *SearchService) Recommendations(c fiber.Ctx) error {
	limit := utils.ParseIntDefault(c.Query("limit"), 10)
	items, err := s.api.WithToken(middleware.Token(c)).Recommendations(c.Context(), limit)
	if err != nil {
		return web.Fail(c, "load recommendations", err)
	}
	return c.JSON(fiber.Map{"items": items})
}

// FilterOptions возвращает доступные значения фильтров каталога
func (s *SearchService) FilterOptions(c fiber.Ctx) error {
	raw, err := s.api.FilterOptions(c.Context())
	if err != nil {
		return web.Fail(c, "load filter options", err)
	}
	return web.SendRaw(c, raw)
}
