package rewear

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/rajivgeraev/rewear-web/internal/models"
)

// SearchItems выполняет расширенный поиск вещей.
// Форма ответа (результаты + метаданные) возвращается как есть
func (c *Client) SearchItems(ctx context.Context, f ItemFilter) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.getJSON(ctx, "/api/v1/search/items", buildValues(f.params()), &raw)
	return raw, err
}

// SearchSuggestions возвращает подсказки автодополнения (минимум 2 символа)
func (c *Client) SearchSuggestions(ctx context.Context, query string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("q", query)

	var raw json.RawMessage
	err := c.getJSON(ctx, "/api/v1/search/suggestions", q, &raw)
	return raw, err
}

// PopularSearches возвращает популярные запросы и трендовые вещи
func (c *Client) PopularSearches(ctx context.Context, limit int) (json.RawMessage, error) {
	q := Params{}
	if limit > 0 {
		q["limit"] = limit
	}
	var raw json.RawMessage
	err := c.getJSON(ctx, "/api/v1/search/popular", buildValues(q), &raw)
	return raw, err
}

// Recommendations возвращает персональные рекомендации
func (c *Client) Recommendations(ctx context.Context, limit int) ([]models.Item, error) {
	q := Params{}
	if limit > 0 {
		q["limit"] = limit
	}
	var items []models.Item
	if err := c.getJSON(ctx, "/api/v1/search/recommendations", buildValues(q), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FilterOptions возвращает доступные значения фильтров поиска
func (c *Client) FilterOptions(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.getJSON(ctx, "/api/v1/search/filters/options", nil, &raw)
	return raw, err
}
