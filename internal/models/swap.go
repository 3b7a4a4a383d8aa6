package models

import "time"

// SwapType представляет тип предложения обмена
type SwapType string

const (
	SwapTypeItem   SwapType = "item"
	SwapTypePoints SwapType = "points"
	SwapTypeMixed  SwapType = "mixed"
)

// SwapStatus представляет статус предложения обмена, переходы контролирует бэкенд
type SwapStatus string

const (
	SwapPending   SwapStatus = "pending"
	SwapAccepted  SwapStatus = "accepted"
	SwapRejected  SwapStatus = "rejected"
	SwapCompleted SwapStatus = "completed"
	SwapCancelled SwapStatus = "cancelled"
	SwapExpired   SwapStatus = "expired"
)

// SwapAction представляет действие, которое интерфейс может предложить для обмена
type SwapAction string

const (
	ActionAccept   SwapAction = "accept"
	ActionReject   SwapAction = "reject"
	ActionCancel   SwapAction = "cancel"
	ActionComplete SwapAction = "complete"
)

// Swap представляет предложение об обмене
type Swap struct {
	ID               int        `json:"id"`
	ItemID           int        `json:"item_id"`
	RequesterID      int        `json:"requester_id"`
	OwnerID          int        `json:"owner_id"`
	SwapType         SwapType   `json:"swap_type"`
	OfferedItemID    *int       `json:"offered_item_id,omitempty"`
	PointsOffered    int        `json:"points_offered,omitempty"`
	Status           SwapStatus `json:"status"`
	RequesterMessage string     `json:"requester_message,omitempty"`
	OwnerResponse    string     `json:"owner_response,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Дополнительные поля для API
	Item        *Item `json:"item,omitempty"`
	OfferedItem *Item `json:"offered_item,omitempty"`
	Requester   *User `json:"requester,omitempty"`
	Owner       *User `json:"owner,omitempty"`
}

// AvailableActions возвращает набор действий, доступных для текущего статуса.
// Набор зависит только от статуса; легальность перехода проверяет бэкенд,
// здесь лишь скрываются неприменимые кнопки.
func (s *Swap) AvailableActions() []SwapAction {
	switch s.Status {
	case SwapPending:
		return []SwapAction{ActionAccept, ActionReject, ActionCancel}
	case SwapAccepted:
		return []SwapAction{ActionComplete}
	default:
		// rejected, completed, cancelled, expired — терминальные
		return nil
	}
}
