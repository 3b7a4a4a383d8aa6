package models

import (
	"reflect"
	"testing"
)

func TestAvailableActions(t *testing.T) {
	tests := []struct {
		status SwapStatus
		want   []SwapAction
	}{
		{SwapPending, []SwapAction{ActionAccept, ActionReject, ActionCancel}},
		{SwapAccepted, []SwapAction{ActionComplete}},
		{SwapRejected, nil},
		{SwapCompleted, nil},
		{SwapCancelled, nil},
		{SwapExpired, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			s := &Swap{Status: tt.status}
			got := s.AvailableActions()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AvailableActions(%s) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestConditionRank(t *testing.T) {
	if r := ConditionRank(ConditionPoor); r != 0 {
		t.Errorf("ConditionRank(poor) = %d", r)
	}
	if r := ConditionRank(ConditionNew); r != 4 {
		t.Errorf("ConditionRank(new) = %d", r)
	}
	if r := ConditionRank(ItemCondition("vintage")); r != -1 {
		t.Errorf("ConditionRank(unknown) = %d", r)
	}
}
