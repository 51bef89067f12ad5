// file: internals/features/competency/development/service/development_plan_service_test.go
package service

import (
	"reflect"
	"testing"

	aservice "kompetensiku_backend/internals/features/competency/assessments/service"
)

func TestGeneratePlanMilestones(t *testing.T) {
	_, milestones, err := GeneratePlan(2, 4, "technical")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(milestones) != 2 {
		t.Fatalf("milestones = %d, want 2", len(milestones))
	}

	// step ke 3: 2 x (4-2) = 4 bulan; step ke 4: 2 x (4-3) = 2 bulan
	if milestones[0].TargetRating != 3 || milestones[0].TimelineMonths != 4 {
		t.Fatalf("milestones[0] = %+v", milestones[0])
	}
	if milestones[1].TargetRating != 4 || milestones[1].TimelineMonths != 2 {
		t.Fatalf("milestones[1] = %+v", milestones[1])
	}
}

func TestGeneratePlanRejectsNonImprovement(t *testing.T) {
	cases := []struct {
		name             string
		current, target  int
	}{
		{"equal", 3, 3},
		{"lower", 4, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := GeneratePlan(tc.current, tc.target, "technical")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if aservice.KindOf(err) != aservice.ErrValidation {
				t.Fatalf("kind = %s, want %s", aservice.KindOf(err), aservice.ErrValidation)
			}
		})
	}
}

func TestGeneratePlanDeterministicPerCategory(t *testing.T) {
	a1, m1, err := GeneratePlan(1, 3, "leadership")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a2, m2, err := GeneratePlan(1, 3, "Leadership") // kategori case-insensitive
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a1, a2) || !reflect.DeepEqual(m1, m2) {
		t.Fatal("same inputs must generate identical plans")
	}
	if len(a1) == 0 {
		t.Fatal("expected actions from leadership template")
	}
}

func TestGeneratePlanUnknownCategoryFallsBack(t *testing.T) {
	actions, _, err := GeneratePlan(1, 2, "alchemy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != len(genericActivityTemplate) {
		t.Fatalf("actions = %d, want %d (generic template)", len(actions), len(genericActivityTemplate))
	}
	for i, a := range actions {
		if a.Order != i+1 {
			t.Fatalf("actions[%d].Order = %d", i, a.Order)
		}
	}
}
