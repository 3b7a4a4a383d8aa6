package rewear

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rajivgeraev/rewear-web/internal/models"
)

// DefaultRejectionReason подставляется, если админ не указал причину
const DefaultRejectionReason = "Item does not meet platform guidelines"

// AdminUsersParams содержит параметры админского списка пользователей
type AdminUsersParams struct {
	IsActive *bool
	IsAdmin  *bool
	Search   string
	Page     PageParams
}

// AdminItemsParams содержит параметры админского списка вещей
type AdminItemsParams struct {
	StatusFilter string
	CategoryID   int
	Search       string
	Page         PageParams
}

// CategoryCreate содержит данные новой категории
type CategoryCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconName    string `json:"icon_name,omitempty"`
	ColorCode   string `json:"color_code,omitempty"`
}

// CategoryUpdate содержит изменяемые поля категории
type CategoryUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IconName    *string `json:"icon_name,omitempty"`
	ColorCode   *string `json:"color_code,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// AdminDashboard возвращает админский дашборд
func (c *Client) AdminDashboard(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.getJSON(ctx, "/api/v1/admin/dashboard", nil, &raw)
	return raw, err
}

// AdminUsers возвращает список всех пользователей
func (c *Client) AdminUsers(ctx context.Context, p AdminUsersParams) ([]models.User, error) {
	q := p.Page.params()
	q["search"] = p.Search
	q["is_active"] = p.IsActive
	q["is_admin"] = p.IsAdmin

	var users []models.User
	if err := c.getJSON(ctx, "/api/v1/admin/users", buildValues(q), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ToggleUserActive переключает активность пользователя
func (c *Client) ToggleUserActive(ctx context.Context, userID int) (json.RawMessage, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/v1/admin/users/%d/toggle-active", userID)
	err := c.do(ctx, http.MethodPut, path, nil, nil, "", &raw)
	return raw, err
}

// AdminItems возвращает список всех вещей
func (c *Client) AdminItems(ctx context.Context, p AdminItemsParams) ([]models.Item, error) {
	q := p.Page.params()
	q["status_filter"] = p.StatusFilter
	q["search"] = p.Search
	if p.CategoryID > 0 {
		q["category_id"] = p.CategoryID
	}

	var items []models.Item
	if err := c.getJSON(ctx, "/api/v1/admin/items", buildValues(q), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ApproveItem одобряет вещь после модерации
func (c *Client) ApproveItem(ctx context.Context, itemID int, adminNotes string) (json.RawMessage, error) {
	var q url.Values
	if adminNotes != "" {
		q = url.Values{}
		q.Set("admin_notes", adminNotes)
	}

	var raw json.RawMessage
	path := fmt.Sprintf("/api/v1/admin/items/%d/approve", itemID)
	err := c.do(ctx, http.MethodPut, path, q, nil, "", &raw)
	return raw, err
}

// RejectItem отклоняет вещь после модерации
func (c *Client) RejectItem(ctx context.Context, itemID int, rejectionReason, adminNotes string) (json.RawMessage, error) {
	if rejectionReason == "" {
		rejectionReason = DefaultRejectionReason
	}
	q := url.Values{}
	q.Set("rejection_reason", rejectionReason)
	if adminNotes != "" {
		q.Set("admin_notes", adminNotes)
	}

	var raw json.RawMessage
	path := fmt.Sprintf("/api/v1/admin/items/%d/reject", itemID)
	err := c.do(ctx, http.MethodPut, path, q, nil, "", &raw)
	return raw, err
}

// AdminSwaps возвращает список всех обменов
func (c *Client) AdminSwaps(ctx context.Context, statusFilter, swapType string, p PageParams) ([]models.Swap, error) {
	q := p.params()
	q["status_filter"] = statusFilter
	q["swap_type"] = swapType

	var swaps []models.Swap
	if err := c.getJSON(ctx, "/api/v1/admin/swaps", buildValues(q), &swaps); err != nil {
		return nil, err
	}
	return swaps, nil
}

// CreateCategory создает новую категорию
func (c *Client) CreateCategory(ctx context.Context, req CategoryCreate) (*models.Category, error) {
	var cat models.Category
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/admin/categories", nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory обновляет категорию
func (c *Client) UpdateCategory(ctx context.Context, categoryID int, upd CategoryUpdate) (*models.Category, error) {
	var cat models.Category
	path := fmt.Sprintf("/api/v1/admin/categories/%d", categoryID)
	if err := c.sendJSON(ctx, http.MethodPut, path, nil, upd, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Analytics возвращает аналитику платформы
func (c *Client) Analytics(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.getJSON(ctx, "/api/v1/admin/analytics", nil, &raw)
	return raw, err
}
