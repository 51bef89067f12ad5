// file: internals/features/competency/assessments/service/bulk_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	model "kompetensiku_backend/internals/features/competency/assessments/model"
)

/* ==============================
   Bulk operations
   Tiap item transaksional sendiri; gagal satu tidak
   membatalkan yang lain.
============================== */

type BulkAction string

const (
	BulkActionApprove        BulkAction = "approve"
	BulkActionReject         BulkAction = "reject"
	BulkActionSubmit         BulkAction = "submit"
	BulkActionExtendDeadline BulkAction = "extend-deadline"
	BulkActionReassign       BulkAction = "reassign"
)

type BulkOptions struct {
	Reason        *string
	NewDeadline   *time.Time
	NewAssessorID *uuid.UUID
}

type BulkItemError struct {
	AssessmentID uuid.UUID `json:"assessment_id"`
	Error        string    `json:"error"`
	Kind         ErrorKind `json:"kind"`
}

type BulkResult struct {
	SuccessCount int             `json:"success_count"`
	FailedCount  int             `json:"failed_count"`
	Errors       []BulkItemError `json:"errors"`
}

// ProcessMany menjalankan satu action atas banyak assessment.
// Tidak pernah return error; kegagalan per item dilaporkan di result.
func (s *WorkflowService) ProcessMany(
	ctx context.Context,
	ids []uuid.UUID,
	action BulkAction,
	actorID uuid.UUID,
	opts BulkOptions,
) (BulkResult, error) {
	apply, err := s.bulkApplier(action, actorID, opts)
	if err != nil {
		return BulkResult{}, err
	}
	return runBulk(ctx, ids, apply), nil
}

func (s *WorkflowService) bulkApplier(action BulkAction, actorID uuid.UUID, opts BulkOptions) (func(context.Context, uuid.UUID) error, error) {
	switch action {
	case BulkActionApprove:
		return func(ctx context.Context, id uuid.UUID) error {
			_, err := s.Transition(ctx, id, model.AssessmentStatusApproved, actorID, opts.Reason)
			return err
		}, nil
	case BulkActionReject:
		return func(ctx context.Context, id uuid.UUID) error {
			_, err := s.Transition(ctx, id, model.AssessmentStatusRejected, actorID, opts.Reason)
			return err
		}, nil
	case BulkActionSubmit:
		return func(ctx context.Context, id uuid.UUID) error {
			_, err := s.Transition(ctx, id, model.AssessmentStatusSubmitted, actorID, opts.Reason)
			return err
		}, nil
	case BulkActionExtendDeadline:
		if opts.NewDeadline == nil {
			return nil, NewWorkflowError(ErrValidation, "new_deadline is required for extend-deadline")
		}
		return func(ctx context.Context, id uuid.UUID) error {
			_, err := s.ExtendDeadline(ctx, id, *opts.NewDeadline, actorID, opts.Reason)
			return err
		}, nil
	case BulkActionReassign:
		if opts.NewAssessorID == nil {
			return nil, NewWorkflowError(ErrValidation, "new_assessor_id is required for reassign")
		}
		return func(ctx context.Context, id uuid.UUID) error {
			_, err := s.Reassign(ctx, id, *opts.NewAssessorID, actorID, opts.Reason)
			return err
		}, nil
	default:
		return nil, NewWorkflowError(ErrValidation, "unknown bulk action %q", action)
	}
}

// runBulk: sequential, lanjut terus walau ada item gagal.
func runBulk(ctx context.Context, ids []uuid.UUID, apply func(context.Context, uuid.UUID) error) BulkResult {
	res := BulkResult{Errors: []BulkItemError{}}
	for _, id := range ids {
		if err := apply(ctx, id); err != nil {
			res.FailedCount++
			res.Errors = append(res.Errors, BulkItemError{
				AssessmentID: id,
				Error:        err.Error(),
				Kind:         KindOf(err),
			})
			continue
		}
		res.SuccessCount++
	}
	return res
}
