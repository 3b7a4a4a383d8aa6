package rewear

import (
	"context"
	"fmt"

	"github.com/rajivgeraev/rewear-web/internal/models"
)

// PageParams задает limit/offset пагинацию. Нулевой limit не передается,
// бэкенд применяет свой дефолт (20, для админских списков 50)
type PageParams struct {
	Limit  int
	Offset int
}

func (p PageParams) params() Params {
	q := Params{}
	if p.Limit > 0 {
		q["limit"] = p.Limit
	}
	if p.Offset > 0 {
		q["offset"] = p.Offset
	}
	return q
}

// MyItemsParams содержит параметры списка своих вещей
type MyItemsParams struct {
	StatusFilter string
	Page         PageParams
}

// SwapListParams содержит параметры списка обменов
type SwapListParams struct {
	SwapType     string // sent или received
	StatusFilter string
	Page         PageParams
}

func (p SwapListParams) params() Params {
	q := p.Page.params()
	q["swap_type"] = p.SwapType
	q["status_filter"] = p.StatusFilter
	return q
}

// PointHistoryParams содержит параметры журнала баллов
type PointHistoryParams struct {
	TransactionType string
	Page            PageParams
}

// Dashboard возвращает сводку дашборда текущего пользователя
func (c *Client) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	var d models.Dashboard
	if err := c.getJSON(ctx, "/api/v1/users/me/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// MyItems возвращает вещи текущего пользователя
func (c *Client) MyItems(ctx context.Context, p MyItemsParams) ([]models.Item, error) {
	q := p.Page.params()
	q["status_filter"] = p.StatusFilter

	var items []models.Item
	if err := c.getJSON(ctx, "/api/v1/users/me/items", buildValues(q), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MySwaps возвращает обмены текущего пользователя
func (c *Client) MySwaps(ctx context.Context, p SwapListParams) ([]models.Swap, error) {
	var swaps []models.Swap
	if err := c.getJSON(ctx, "/api/v1/users/me/swaps", buildValues(p.params()), &swaps); err != nil {
		return nil, err
	}
	return swaps, nil
}

// PointHistory возвращает журнал движений баллов текущего пользователя
func (c *Client) PointHistory(ctx context.Context, p PointHistoryParams) ([]models.PointTransaction, error) {
	q := p.Page.params()
	q["transaction_type"] = p.TransactionType

	var txs []models.PointTransaction
	if err := c.getJSON(ctx, "/api/v1/users/me/points", buildValues(q), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// PublicProfile возвращает публичный профиль пользователя
func (c *Client) PublicProfile(ctx context.Context, userID int) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/users/%d", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// PublicItems возвращает публичные вещи пользователя
func (c *Client) PublicItems(ctx context.Context, userID int, p PageParams) ([]models.Item, error) {
	var items []models.Item
	path := fmt.Sprintf("/api/v1/users/%d/items", userID)
	if err := c.getJSON(ctx, path, buildValues(p.params()), &items); err != nil {
		return nil, err
	}
	return items, nil
}
