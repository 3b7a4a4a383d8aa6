package models

import (
	"encoding/json"
	"time"
)

// NotificationType определяет тип push-уведомления от бэкенда
type NotificationType string

const (
	NotifySwapRequest        NotificationType = "swap_request"
	NotifySwapAccepted       NotificationType = "swap_accepted"
	NotifySwapRejected       NotificationType = "swap_rejected"
	NotifySwapCompleted      NotificationType = "swap_completed"
	NotifyItemApproved       NotificationType = "item_approved"
	NotifyItemRejected       NotificationType = "item_rejected"
	NotifySystemAnnouncement NotificationType = "system_announcement"
	NotifyPointsEarned       NotificationType = "points_earned"
	NotifyWelcome            NotificationType = "welcome"
)

// Notification представляет сообщение из WebSocket-канала уведомлений
type Notification struct {
	Type      NotificationType `json:"type"`
	Message   string           `json:"message,omitempty"`
	Payload   json.RawMessage  `json:"payload,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}
