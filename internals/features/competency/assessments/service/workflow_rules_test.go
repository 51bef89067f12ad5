// file: internals/features/competency/assessments/service/workflow_rules_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	model "kompetensiku_backend/internals/features/competency/assessments/model"
	umodel "kompetensiku_backend/internals/features/users/employees/model"
)

type fakeRoles struct {
	roles map[uuid.UUID][]string
}

func (f fakeRoles) HasRole(id uuid.UUID, role string) bool {
	for _, r := range f.roles[id] {
		if r == role {
			return true
		}
	}
	return false
}

func (f fakeRoles) HasAnyRole(id uuid.UUID, roles ...string) bool {
	for _, r := range roles {
		if f.HasRole(id, r) {
			return true
		}
	}
	return false
}

func intPtr(v int) *int          { return &v }
func strPtr(v string) *string    { return &v }
func uuidPtr(v uuid.UUID) *uuid.UUID { return &v }

func TestCheckTransitionGraph(t *testing.T) {
	all := []model.AssessmentStatus{
		model.AssessmentStatusDraft,
		model.AssessmentStatusSubmitted,
		model.AssessmentStatusApproved,
		model.AssessmentStatusRejected,
	}

	// setiap pasangan harus konsisten dengan AllowedTransitions
	for _, from := range all {
		for _, to := range all {
			err := CheckTransitionGraph(from, to)
			allowed := false
			for _, a := range model.AllowedTransitions[from] {
				if a == to {
					allowed = true
				}
			}
			if allowed && err != nil {
				t.Errorf("%s -> %s: expected allowed, got %v", from, to, err)
			}
			if !allowed && err == nil {
				t.Errorf("%s -> %s: expected rejected, got nil", from, to)
			}
			if !allowed && KindOf(err) != ErrInvalidTransition {
				t.Errorf("%s -> %s: expected kind %s, got %s", from, to, ErrInvalidTransition, KindOf(err))
			}
		}
	}

	if err := CheckTransitionGraph(model.AssessmentStatusDraft, model.AssessmentStatus("archived")); err == nil {
		t.Fatal("unknown target status should be rejected")
	}
}

func TestCheckSubmitComments(t *testing.T) {
	cases := []struct {
		name     string
		rating   *int
		comments *string
		wantErr  bool
	}{
		{"nil rating", nil, strPtr("ok"), true},
		{"rating below scale", intPtr(0), strPtr("ok"), true},
		{"rating above scale", intPtr(6), strPtr("ok"), true},
		{"rating 2 without comments", intPtr(2), nil, true},
		{"rating 2 with blank comments", intPtr(2), strPtr("   "), true},
		{"rating 2 with comments", intPtr(2), strPtr("perlu perbaikan"), false},
		{"rating 3 without comments", intPtr(3), nil, false},
		{"rating 4 without comments", intPtr(4), nil, true},
		{"rating 5 with comments", intPtr(5), strPtr("luar biasa"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckSubmitComments(tc.rating, tc.comments)
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr && KindOf(err) != ErrValidation {
				t.Fatalf("expected kind %s, got %s", ErrValidation, KindOf(err))
			}
		})
	}
}

func TestCheckTransitionPermission(t *testing.T) {
	assessor := uuid.New()
	employee := uuid.New()
	manager := uuid.New()
	hr := uuid.New()
	stranger := uuid.New()
	notManagerRole := uuid.New() // tercatat sebagai atasan tapi tidak punya role manager

	roles := fakeRoles{roles: map[uuid.UUID][]string{
		assessor:       {umodel.RoleEmployee},
		manager:        {umodel.RoleManager},
		hr:             {umodel.RoleHR},
		notManagerRole: {umodel.RoleEmployee},
	}}

	a := &model.AssessmentModel{
		AssessmentEmployeeID: employee,
		AssessmentAssessorID: assessor,
	}

	cases := []struct {
		name      string
		target    model.AssessmentStatus
		actor     uuid.UUID
		managerID *uuid.UUID
		wantOK    bool
	}{
		{"submit by assessor", model.AssessmentStatusSubmitted, assessor, nil, true},
		{"submit by hr", model.AssessmentStatusSubmitted, hr, nil, false},
		{"approve by hr", model.AssessmentStatusApproved, hr, nil, true},
		{"approve by direct manager", model.AssessmentStatusApproved, manager, uuidPtr(manager), true},
		{"approve by manager of someone else", model.AssessmentStatusApproved, manager, uuidPtr(stranger), false},
		{"approve by listed manager without role", model.AssessmentStatusApproved, notManagerRole, uuidPtr(notManagerRole), false},
		{"approve by assessor", model.AssessmentStatusApproved, assessor, nil, false},
		{"reject by hr", model.AssessmentStatusRejected, hr, nil, true},
		{"reject by stranger", model.AssessmentStatusRejected, stranger, nil, false},
		{"return to draft by assessor", model.AssessmentStatusDraft, assessor, nil, true},
		{"return to draft by hr", model.AssessmentStatusDraft, hr, nil, true},
		{"return to draft by stranger", model.AssessmentStatusDraft, stranger, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckTransitionPermission(tc.target, a, tc.actor, tc.managerID, roles)
			if tc.wantOK && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.wantOK {
				if err == nil {
					t.Fatal("expected permission error, got nil")
				}
				if KindOf(err) != ErrPermissionDenied {
					t.Fatalf("expected kind %s, got %s", ErrPermissionDenied, KindOf(err))
				}
			}
		})
	}
}

func TestApplyTransitionEffects(t *testing.T) {
	actor := uuid.New()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("submit stamps submitted_at", func(t *testing.T) {
		a := &model.AssessmentModel{AssessmentStatus: model.AssessmentStatusDraft}
		ApplyTransitionEffects(a, model.AssessmentStatusSubmitted, actor, nil, now)

		if a.AssessmentStatus != model.AssessmentStatusSubmitted {
			t.Fatalf("status = %s", a.AssessmentStatus)
		}
		if a.AssessmentSubmittedAt == nil || !a.AssessmentSubmittedAt.Equal(now) {
			t.Fatalf("submitted_at = %v", a.AssessmentSubmittedAt)
		}
	})

	t.Run("approve clears reject bookkeeping", func(t *testing.T) {
		rejectedAt := now.Add(-time.Hour)
		rejectedBy := uuid.New()
		a := &model.AssessmentModel{
			AssessmentStatus:          model.AssessmentStatusSubmitted,
			AssessmentRejectedAt:      &rejectedAt,
			AssessmentRejectedBy:      &rejectedBy,
			AssessmentRejectionReason: strPtr("kurang bukti"),
		}
		ApplyTransitionEffects(a, model.AssessmentStatusApproved, actor, nil, now)

		if a.AssessmentApprovedBy == nil || *a.AssessmentApprovedBy != actor {
			t.Fatalf("approved_by = %v", a.AssessmentApprovedBy)
		}
		if a.AssessmentRejectedAt != nil || a.AssessmentRejectedBy != nil || a.AssessmentRejectionReason != nil {
			t.Fatal("reject bookkeeping should be cleared on approve")
		}
	})

	t.Run("reject records reason and clears approve bookkeeping", func(t *testing.T) {
		approvedAt := now.Add(-time.Hour)
		approvedBy := uuid.New()
		a := &model.AssessmentModel{
			AssessmentStatus:     model.AssessmentStatusSubmitted,
			AssessmentApprovedAt: &approvedAt,
			AssessmentApprovedBy: &approvedBy,
		}
		ApplyTransitionEffects(a, model.AssessmentStatusRejected, actor, strPtr("data tidak lengkap"), now)

		if a.AssessmentRejectedBy == nil || *a.AssessmentRejectedBy != actor {
			t.Fatalf("rejected_by = %v", a.AssessmentRejectedBy)
		}
		if a.AssessmentRejectionReason == nil || *a.AssessmentRejectionReason != "data tidak lengkap" {
			t.Fatalf("rejection_reason = %v", a.AssessmentRejectionReason)
		}
		if a.AssessmentApprovedAt != nil || a.AssessmentApprovedBy != nil {
			t.Fatal("approve bookkeeping should be cleared on reject")
		}
	})

	t.Run("return to draft clears everything", func(t *testing.T) {
		submittedAt := now.Add(-2 * time.Hour)
		approvedAt := now.Add(-time.Hour)
		approvedBy := uuid.New()
		a := &model.AssessmentModel{
			AssessmentStatus:      model.AssessmentStatusApproved,
			AssessmentSubmittedAt: &submittedAt,
			AssessmentApprovedAt:  &approvedAt,
			AssessmentApprovedBy:  &approvedBy,
		}
		ApplyTransitionEffects(a, model.AssessmentStatusDraft, actor, nil, now)

		if a.AssessmentStatus != model.AssessmentStatusDraft {
			t.Fatalf("status = %s", a.AssessmentStatus)
		}
		if a.AssessmentSubmittedAt != nil || a.AssessmentApprovedAt != nil || a.AssessmentRejectedAt != nil {
			t.Fatal("timestamps should be cleared on return to draft")
		}
		if a.AssessmentApprovedBy != nil || a.AssessmentRejectedBy != nil || a.AssessmentRejectionReason != nil {
			t.Fatal("actor bookkeeping should be cleared on return to draft")
		}
	})
}

func TestHTTPStatusOf(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want int
	}{
		{ErrInvalidTransition, 422},
		{ErrValidation, 422},
		{ErrPermissionDenied, 403},
		{ErrDuplicate, 409},
		{ErrNotFound, 404},
		{ErrPersistence, 500},
	}
	for _, tc := range cases {
		err := NewWorkflowError(tc.kind, "boom")
		if got := HTTPStatusOf(err); got != tc.want {
			t.Errorf("kind %s: status = %d, want %d", tc.kind, got, tc.want)
		}
	}
}
