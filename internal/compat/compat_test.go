package compat

import (
	"testing"

	"github.com/rajivgeraev/rewear-web/internal/models"
)

func item(points, categoryID int, size string, condition models.ItemCondition) models.Item {
	return models.Item{
		PointsValue: points,
		CategoryID:  categoryID,
		Size:        size,
		Condition:   condition,
	}
}

func TestScoreIdenticalItems(t *testing.T) {
	a := item(120, 3, "M", models.ConditionGood)
	if got := Score(a, a); got != 100 {
		t.Errorf("Score(a, a) = %d, want 100", got)
	}

	// Две вещи без баллов тоже полностью совпадают
	b := item(0, 7, "S", models.ConditionNew)
	if got := Score(b, b); got != 100 {
		t.Errorf("Score(zero-points, zero-points) = %d, want 100", got)
	}
}

func TestScoreMaximalMismatch(t *testing.T) {
	a := item(0, 1, "M", models.ConditionPoor)
	b := item(100, 2, "L", models.ConditionNew)
	if got := Score(a, b); got != 0 {
		t.Errorf("Score = %d, want 0", got)
	}
}

func TestScorePartialMatches(t *testing.T) {
	tests := []struct {
		name string
		a, b models.Item
		want int
	}{
		{
			name: "category and size only",
			a:    item(0, 5, "M", models.ConditionPoor),
			b:    item(200, 5, "M", models.ConditionNew),
			want: 50,
		},
		{
			name: "half point difference",
			a:    item(50, 1, "M", models.ConditionGood),
			b:    item(100, 2, "L", models.ConditionGood),
			// 40*(1-50/100) + 10 за равное состояние
			want: 30,
		},
		{
			name: "adjacent condition",
			a:    item(100, 1, "M", models.ConditionGood),
			b:    item(100, 1, "M", models.ConditionFair),
			// 40 + 30 + 20 + 10*(3/4)
			want: 98,
		},
		{
			name: "unknown condition skips condition term",
			a:    item(100, 1, "M", models.ItemCondition("vintage")),
			b:    item(100, 1, "M", models.ConditionNew),
			want: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.a, tt.b); got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreSymmetric(t *testing.T) {
	a := item(80, 2, "S", models.ConditionLikeNew)
	b := item(150, 2, "M", models.ConditionFair)
	if Score(a, b) != Score(b, a) {
		t.Errorf("Score is not symmetric: %d != %d", Score(a, b), Score(b, a))
	}
}
