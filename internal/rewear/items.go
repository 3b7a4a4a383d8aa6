package rewear

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rajivgeraev/rewear-web/internal/models"
)

// ItemCreate содержит данные создания вещи. Изображения загружаются отдельным
// multipart-запросом после создания
type ItemCreate struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Brand             string   `json:"brand,omitempty"`
	Size              string   `json:"size"`
	Condition         string   `json:"condition"`
	Color             string   `json:"color,omitempty"`
	Material          string   `json:"material,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	PickupLocation    string   `json:"pickup_location,omitempty"`
	ShippingAvailable *bool    `json:"shipping_available,omitempty"`
	OriginalPrice     *float64 `json:"original_price,omitempty"`
	CategoryID        int      `json:"category_id"`
	PointsValue       *int     `json:"points_value,omitempty"`
}

// ItemUpdate содержит изменяемые поля вещи (только для владельца)
type ItemUpdate struct {
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Brand          *string  `json:"brand,omitempty"`
	Size           *string  `json:"size,omitempty"`
	Condition      *string  `json:"condition,omitempty"`
	Color          *string  `json:"color,omitempty"`
	Material       *string  `json:"material,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	PickupLocation *string  `json:"pickup_location,omitempty"`
	PointsValue    *int     `json:"points_value,omitempty"`
}

// ItemFilter содержит фильтры списка и поиска вещей
type ItemFilter struct {
	Query           string
	CategoryID      int
	Size            string
	Condition       string
	MinPoints       int
	MaxPoints       int
	Brand           string
	Color           string
	Material        string
	Tags            []string // Передаются через запятую
	Location        string
	SortBy          string
	SortOrder       string
	IncludeShipping *bool
	Page            PageParams
}

func (f ItemFilter) params() Params {
	q := f.Page.params()
	q["q"] = f.Query
	q["size"] = f.Size
	q["condition"] = f.Condition
	q["brand"] = f.Brand
	q["color"] = f.Color
	q["material"] = f.Material
	q["location"] = f.Location
	q["sort_by"] = f.SortBy
	q["sort_order"] = f.SortOrder
	q["tags"] = strings.Join(f.Tags, ",")
	if f.CategoryID > 0 {
		q["category_id"] = f.CategoryID
	}
	if f.MinPoints > 0 {
		q["min_points"] = f.MinPoints
	}
	if f.MaxPoints > 0 {
		q["max_points"] = f.MaxPoints
	}
	q["include_shipping"] = f.IncludeShipping
	return q
}

// CreateItem создает новую вещь
func (c *Client) CreateItem(ctx context.Context, req ItemCreate) (*models.Item, error) {
	var item models.Item
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/items/", nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems возвращает список вещей с фильтрацией и поиском
func (c *Client) ListItems(ctx context.Context, f ItemFilter) ([]models.Item, error) {
	var items []models.Item
	if err := c.getJSON(ctx, "/api/v1/items/", buildValues(f.params()), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// TrendingItems возвращает популярные вещи
func (c *Client) TrendingItems(ctx context.Context, limit int) ([]models.Item, error) {
	q := Params{}
	if limit > 0 {
		q["limit"] = limit
	}
	var items []models.Item
	if err := c.getJSON(ctx, "/api/v1/items/trending", buildValues(q), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem возвращает одну вещь по ID
func (c *Client) GetItem(ctx context.Context, itemID int) (*models.Item, error) {
	var item models.Item
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/items/%d", itemID), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem обновляет вещь (только владелец)
func (c *Client) UpdateItem(ctx context.Context, itemID int, upd ItemUpdate) (*models.Item, error) {
	var item models.Item
	path := fmt.Sprintf("/api/v1/items/%d", itemID)
	if err := c.sendJSON(ctx, http.MethodPut, path, nil, upd, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem удаляет вещь (только владелец)
func (c *Client) DeleteItem(ctx context.Context, itemID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/items/%d", itemID), nil, nil, "", nil)
}

// SimilarItems возвращает похожие вещи
func (c *Client) SimilarItems(ctx context.Context, itemID, limit int) ([]models.Item, error) {
	q := Params{}
	if limit > 0 {
		q["limit"] = limit
	}
	var items []models.Item
	path := fmt.Sprintf("/api/v1/items/%d/similar", itemID)
	if err := c.getJSON(ctx, path, buildValues(q), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListCategories возвращает категории
func (c *Client) ListCategories(ctx context.Context, includeInactive, withCounts bool) ([]models.Category, error) {
	q := Params{}
	if includeInactive {
		q["include_inactive"] = true
	}
	if withCounts {
		q["with_counts"] = true
	}
	var cats []models.Category
	if err := c.getJSON(ctx, "/api/v1/items/categories/", buildValues(q), &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CategoryItems возвращает вещи в категории
func (c *Client) CategoryItems(ctx context.Context, categoryID int, sortBy string, p PageParams) ([]models.Item, error) {
	q := p.params()
	q["sort_by"] = sortBy

	var items []models.Item
	path := fmt.Sprintf("/api/v1/items/categories/%d/items", categoryID)
	if err := c.getJSON(ctx, path, buildValues(q), &items); err != nil {
		return nil, err
	}
	return items, nil
}
