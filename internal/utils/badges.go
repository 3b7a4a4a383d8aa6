package utils

import "github.com/rajivgeraev/rewear-web/internal/models"

// Badge представляет цвет и подпись статусного бейджа для интерфейса
type Badge struct {
	Color string `json:"color"`
	Text  string `json:"text"`
}

var swapStatusBadges = map[models.SwapStatus]Badge{
	models.SwapPending:   {Color: "yellow", Text: "Pending"},
	models.SwapAccepted:  {Color: "green", Text: "Accepted"},
	models.SwapRejected:  {Color: "red", Text: "Rejected"},
	models.SwapCompleted: {Color: "blue", Text: "Completed"},
	models.SwapCancelled: {Color: "gray", Text: "Cancelled"},
	models.SwapExpired:   {Color: "orange", Text: "Expired"},
}

// SwapStatusBadge возвращает бейдж статуса обмена
func SwapStatusBadge(status models.SwapStatus) Badge {
	if b, ok := swapStatusBadges[status]; ok {
		return b
	}
	return Badge{Color: "gray", Text: "Unknown"}
}

var conditionBadges = map[models.ItemCondition]Badge{
	models.ConditionNew:     {Color: "green", Text: "New"},
	models.ConditionLikeNew: {Color: "emerald", Text: "Like New"},
	models.ConditionGood:    {Color: "blue", Text: "Good"},
	models.ConditionFair:    {Color: "yellow", Text: "Fair"},
	models.ConditionPoor:    {Color: "red", Text: "Poor"},
}

// ConditionBadge возвращает бейдж состояния вещи
func ConditionBadge(condition models.ItemCondition) Badge {
	if b, ok := conditionBadges[condition]; ok {
		return b
	}
	return Badge{Color: "gray", Text: string(condition)}
}
