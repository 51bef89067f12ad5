// file: internals/features/competency/assessments/service/bulk_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestRunBulkContinuesPastFailures(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	failing := ids[2]

	apply := func(_ context.Context, id uuid.UUID) error {
		if id == failing {
			return NewWorkflowError(ErrInvalidTransition, "cannot transition")
		}
		return nil
	}

	res := runBulk(context.Background(), ids, apply)

	if res.SuccessCount != 4 {
		t.Fatalf("success_count = %d, want 4", res.SuccessCount)
	}
	if res.FailedCount != 1 {
		t.Fatalf("failed_count = %d, want 1", res.FailedCount)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %d, want 1", len(res.Errors))
	}
	if res.Errors[0].AssessmentID != failing {
		t.Fatalf("failed id = %s, want %s", res.Errors[0].AssessmentID, failing)
	}
	if res.Errors[0].Kind != ErrInvalidTransition {
		t.Fatalf("kind = %s, want %s", res.Errors[0].Kind, ErrInvalidTransition)
	}
}

func TestRunBulkEmptyInput(t *testing.T) {
	res := runBulk(context.Background(), nil, func(_ context.Context, _ uuid.UUID) error {
		t.Fatal("apply should not be called")
		return nil
	})
	if res.SuccessCount != 0 || res.FailedCount != 0 || len(res.Errors) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestBulkApplierValidatesOptions(t *testing.T) {
	s := &WorkflowService{}
	actor := uuid.New()

	if _, err := s.bulkApplier(BulkActionExtendDeadline, actor, BulkOptions{}); KindOf(err) != ErrValidation {
		t.Fatalf("extend-deadline without new_deadline: kind = %s", KindOf(err))
	}
	if _, err := s.bulkApplier(BulkActionReassign, actor, BulkOptions{}); KindOf(err) != ErrValidation {
		t.Fatalf("reassign without new_assessor_id: kind = %s", KindOf(err))
	}
	if _, err := s.bulkApplier(BulkAction("archive"), actor, BulkOptions{}); KindOf(err) != ErrValidation {
		t.Fatalf("unknown action: kind = %s", KindOf(err))
	}
}
