package models

import "time"

// ItemCondition представляет порядковую оценку состояния вещи
type ItemCondition string

const (
	ConditionNew     ItemCondition = "new"
	ConditionLikeNew ItemCondition = "like_new"
	ConditionGood    ItemCondition = "good"
	ConditionFair    ItemCondition = "fair"
	ConditionPoor    ItemCondition = "poor"
)

// ConditionOrder задает фиксированный порядок от худшего к лучшему.
// Используется эвристикой совместимости обмена.
var ConditionOrder = []ItemCondition{
	ConditionPoor,
	ConditionFair,
	ConditionGood,
	ConditionLikeNew,
	ConditionNew,
}

// ConditionRank возвращает позицию состояния в ConditionOrder, -1 если неизвестно
func ConditionRank(c ItemCondition) int {
	for i, v := range ConditionOrder {
		if v == c {
			return i
		}
	}
	return -1
}

// ItemStatus представляет статус вещи, переходы контролирует бэкенд
type ItemStatus string

const (
	ItemDraft           ItemStatus = "draft"
	ItemPendingApproval ItemStatus = "pending_approval"
	ItemApproved        ItemStatus = "approved"
	ItemRejected        ItemStatus = "rejected"
	ItemAvailable       ItemStatus = "available"
	ItemInSwap          ItemStatus = "in_swap"
	ItemSwapped         ItemStatus = "swapped"
	ItemInactive        ItemStatus = "inactive"
)

// Item представляет вещь в системе
type Item struct {
	ID                int           `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Brand             string        `json:"brand,omitempty"`
	Size              string        `json:"size"`
	Condition         ItemCondition `json:"condition"`
	Color             string        `json:"color,omitempty"`
	Material          string        `json:"material,omitempty"`
	Tags              []string      `json:"tags,omitempty"`
	PickupLocation    string        `json:"pickup_location,omitempty"`
	ShippingAvailable bool          `json:"shipping_available"`
	OriginalPrice     float64       `json:"original_price,omitempty"`
	CategoryID        int           `json:"category_id"`
	PointsValue       int           `json:"points_value"`
	Status            ItemStatus    `json:"status"`
	OwnerID           int           `json:"owner_id"`
	Images            []string      `json:"images,omitempty"` // Упорядоченный список URL
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`

	// Дополнительные поля для API
	Owner    *User     `json:"owner,omitempty"`
	Category *Category `json:"category,omitempty"`
}

// Category представляет категорию вещей
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconName    string `json:"icon_name,omitempty"`
	ColorCode   string `json:"color_code,omitempty"`
	IsActive    bool   `json:"is_active"`
	ItemCount   int    `json:"item_count,omitempty"`
}
