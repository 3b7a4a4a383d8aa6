package rewear

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rajivgeraev/rewear-web/internal/models"
)

// SwapCreate содержит данные предложения обмена
type SwapCreate struct {
	ItemID           int    `json:"item_id"`
	SwapType         string `json:"swap_type"`
	OfferedItemID    *int   `json:"offered_item_id,omitempty"`
	PointsOffered    *int   `json:"points_offered,omitempty"`
	RequesterMessage string `json:"requester_message,omitempty"`
}

// CreateSwap создает предложение обмена
func (c *Client) CreateSwap(ctx context.Context, req SwapCreate) (*models.Swap, error) {
	var swap models.Swap
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/swaps/", nil, req, &swap); err != nil {
		return nil, err
	}
	return &swap, nil
}

// ListSwaps возвращает обмены текущего пользователя
func (c *Client) ListSwaps(ctx context.Context, p SwapListParams) ([]models.Swap, error) {
	var swaps []models.Swap
	if err := c.getJSON(ctx, "/api/v1/swaps/", buildValues(p.params()), &swaps); err != nil {
		return nil, err
	}
	return swaps, nil
}

// GetSwap возвращает одно предложение обмена
func (c *Client) GetSwap(ctx context.Context, swapID int) (*models.Swap, error) {
	var swap models.Swap
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/swaps/%d", swapID), nil, &swap); err != nil {
		return nil, err
	}
	return &swap, nil
}

// AcceptSwap принимает предложение (только владелец вещи).
// ownerResponse передается query-параметром, пустая строка опускается
func (c *Client) AcceptSwap(ctx context.Context, swapID int, ownerResponse string) (*models.Swap, error) {
	return c.putSwapAction(ctx, swapID, "accept", ownerResponse)
}

// RejectSwap отклоняет предложение (только владелец вещи)
func (c *Client) RejectSwap(ctx context.Context, swapID int, ownerResponse string) (*models.Swap, error) {
	return c.putSwapAction(ctx, swapID, "reject", ownerResponse)
}

// CompleteSwap завершает принятый обмен
func (c *Client) CompleteSwap(ctx context.Context, swapID int) (*models.Swap, error) {
	return c.putSwapAction(ctx, swapID, "complete", "")
}

// CancelSwap отменяет предложение (только отправитель)
func (c *Client) CancelSwap(ctx context.Context, swapID int) (*models.Swap, error) {
	return c.putSwapAction(ctx, swapID, "cancel", "")
}

func (c *Client) putSwapAction(ctx context.Context, swapID int, action, ownerResponse string) (*models.Swap, error) {
	var q url.Values
	if ownerResponse != "" {
		q = url.Values{}
		q.Set("owner_response", ownerResponse)
	}

	var swap models.Swap
	path := fmt.Sprintf("/api/v1/swaps/%d/%s", swapID, action)
	if err := c.do(ctx, http.MethodPut, path, q, nil, "", &swap); err != nil {
		return nil, err
	}
	return &swap, nil
}

// SwapStats возвращает сводную статистику обменов
func (c *Client) SwapStats(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.getJSON(ctx, "/api/v1/swaps/stats/summary", nil, &raw)
	return raw, err
}
