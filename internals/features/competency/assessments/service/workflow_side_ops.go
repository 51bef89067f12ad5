// file: internals/features/competency/assessments/service/workflow_side_ops.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "kompetensiku_backend/internals/features/competency/assessments/model"
)

// ExtendDeadline: hanya untuk assessment yang ikut cycle, deadline baru tidak
// boleh lampau. Status TIDAK berubah; jejak extension append-only.
func (s *WorkflowService) ExtendDeadline(
	ctx context.Context,
	assessmentID uuid.UUID,
	newDeadline time.Time,
	actorID uuid.UUID,
	reason *string,
) (*model.AssessmentModel, error) {
	if newDeadline.Before(s.Now()) {
		return nil, NewWorkflowError(ErrValidation, "new deadline %s is in the past", newDeadline.Format(time.RFC3339))
	}

	var a model.AssessmentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&a, "assessment_id = ?", assessmentID).Error; err != nil {
			return asWorkflowErr(err, assessmentID)
		}
		if a.AssessmentCycleID == nil {
			return NewWorkflowError(ErrValidation, "assessment %s does not belong to a cycle", assessmentID)
		}

		ext := model.DeadlineExtensionModel{
			DeadlineExtensionAssessmentID: a.AssessmentID,
			DeadlineExtensionOldDeadline:  a.AssessmentExtendedDeadline,
			DeadlineExtensionNewDeadline:  newDeadline,
			DeadlineExtensionActorID:      actorID,
			DeadlineExtensionReason:       reason,
		}
		if err := tx.Create(&ext).Error; err != nil {
			return NewWorkflowError(ErrPersistence, "append deadline extension: %v", err)
		}

		a.AssessmentExtendedDeadline = &newDeadline
		a.AssessmentUpdatedAt = s.Now()
		if err := tx.Save(&a).Error; err != nil {
			return NewWorkflowError(ErrPersistence, "save assessment: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Reassign menukar assessor; hanya sah selama draft.
// Assessor lama dan baru sama-sama dapat notifikasi.
func (s *WorkflowService) Reassign(
	ctx context.Context,
	assessmentID uuid.UUID,
	newAssessorID uuid.UUID,
	actorID uuid.UUID,
	reason *string,
) (*model.AssessmentModel, error) {
	if newAssessorID == uuid.Nil {
		return nil, NewWorkflowError(ErrValidation, "new assessor id is required")
	}

	var a model.AssessmentModel
	var oldAssessor uuid.UUID
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&a, "assessment_id = ?", assessmentID).Error; err != nil {
			return asWorkflowErr(err, assessmentID)
		}
		if a.AssessmentStatus != model.AssessmentStatusDraft {
			return NewWorkflowError(ErrValidation, "only draft assessments can be reassigned, current status is %s", a.AssessmentStatus)
		}
		if a.AssessmentAssessorID == newAssessorID {
			return NewWorkflowError(ErrValidation, "assessment is already assigned to %s", newAssessorID)
		}

		oldAssessor = a.AssessmentAssessorID
		rec := model.ReassignmentModel{
			ReassignmentAssessmentID:  a.AssessmentID,
			ReassignmentOldAssessorID: oldAssessor,
			ReassignmentNewAssessorID: newAssessorID,
			ReassignmentActorID:       actorID,
			ReassignmentReason:        reason,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return NewWorkflowError(ErrPersistence, "append reassignment: %v", err)
		}

		a.AssessmentAssessorID = newAssessorID
		a.AssessmentUpdatedAt = s.Now()
		if err := tx.Save(&a).Error; err != nil {
			return NewWorkflowError(ErrPersistence, "save assessment: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Dispatcher != nil {
		s.Dispatcher.Dispatch(model.NotificationEventReassigned, &a, dedupe([]uuid.UUID{oldAssessor, newAssessorID}))
	}
	return &a, nil
}

// CreateAssessment membuat draft baru; tuple (employee, competency, assessor,
// cycle) harus unik.
func (s *WorkflowService) CreateAssessment(
	ctx context.Context,
	a *model.AssessmentModel,
) (*model.AssessmentModel, error) {
	if a.AssessmentComments != nil && strings.TrimSpace(*a.AssessmentComments) == "" {
		a.AssessmentComments = nil
	}
	a.AssessmentStatus = model.AssessmentStatusDraft

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&model.AssessmentModel{}).
			Where("assessment_employee_id = ? AND assessment_competency_id = ? AND assessment_assessor_id = ?",
				a.AssessmentEmployeeID, a.AssessmentCompetencyID, a.AssessmentAssessorID)
		if a.AssessmentCycleID != nil {
			q = q.Where("assessment_cycle_id = ?", *a.AssessmentCycleID)
		} else {
			q = q.Where("assessment_cycle_id IS NULL")
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return NewWorkflowError(ErrPersistence, "duplicate check: %v", err)
		}
		if count > 0 {
			return NewWorkflowError(ErrDuplicate, "assessment already exists for this employee/competency/assessor/cycle")
		}
		if err := tx.Create(a).Error; err != nil {
			return NewWorkflowError(ErrPersistence, "create assessment: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateDraft: assessor mengisi rating/komentar selama masih draft.
func (s *WorkflowService) UpdateDraft(
	ctx context.Context,
	assessmentID uuid.UUID,
	actorID uuid.UUID,
	rating *int,
	comments *string,
) (*model.AssessmentModel, error) {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, NewWorkflowError(ErrValidation, "rating must be between 1 and 5, got %d", *rating)
	}

	var a model.AssessmentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&a, "assessment_id = ?", assessmentID).Error; err != nil {
			return asWorkflowErr(err, assessmentID)
		}
		if a.AssessmentStatus != model.AssessmentStatusDraft {
			return NewWorkflowError(ErrValidation, "only draft assessments can be edited, current status is %s", a.AssessmentStatus)
		}
		if a.AssessmentAssessorID != actorID {
			return NewWorkflowError(ErrPermissionDenied, "only the assigned assessor may edit this draft")
		}
		if rating != nil {
			a.AssessmentRating = rating
		}
		if comments != nil {
			c := strings.TrimSpace(*comments)
			if c == "" {
				a.AssessmentComments = nil
			} else {
				a.AssessmentComments = &c
			}
		}
		a.AssessmentUpdatedAt = s.Now()
		if err := tx.Save(&a).Error; err != nil {
			return NewWorkflowError(ErrPersistence, "save assessment: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}
