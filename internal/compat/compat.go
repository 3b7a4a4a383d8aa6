// Package compat вычисляет оценку совместимости двух вещей для обмена.
// Оценка чисто справочная: она нигде не участвует в принятии или
// отклонении обмена, это делает бэкенд.
package compat

import (
	"math"

	"github.com/rajivgeraev/rewear-web/internal/models"
)

// Веса слагаемых: близость по баллам, совпадение категории,
// совпадение размера, близость состояния
const (
	pointsWeight    = 40
	categoryWeight  = 30
	sizeWeight      = 20
	conditionWeight = 10
)

// Score возвращает оценку совместимости 0–100 для пары вещей
func Score(a, b models.Item) int {
	score := 0.0

	// Близость по баллам: линейный спад от относительной разницы.
	// Две вещи без баллов считаются идеально совпавшими
	diff := math.Abs(float64(a.PointsValue - b.PointsValue))
	maxPoints := math.Max(float64(a.PointsValue), float64(b.PointsValue))
	if maxPoints > 0 {
		score += (1 - diff/maxPoints) * pointsWeight
	} else {
		score += pointsWeight
	}

	if a.CategoryID == b.CategoryID {
		score += categoryWeight
	}

	if a.Size == b.Size {
		score += sizeWeight
	}

	// Близость состояния по фиксированному порядку poor..new
	ra := models.ConditionRank(a.Condition)
	rb := models.ConditionRank(b.Condition)
	if ra >= 0 && rb >= 0 {
		condDiff := math.Abs(float64(ra - rb))
		score += math.Max(0, (4-condDiff)/4) * conditionWeight
	}

	return int(math.Round(math.Max(0, math.Min(100, score))))
}
