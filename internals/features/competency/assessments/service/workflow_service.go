// file: internals/features/competency/assessments/service/workflow_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "kompetensiku_backend/internals/features/competency/assessments/model"
	umodel "kompetensiku_backend/internals/features/users/employees/model"
)

// WorkflowService menjaga graph transisi + permission + audit trail.
// Satu-satunya jalur mutasi status assessment.
type WorkflowService struct {
	DB         *gorm.DB
	Roles      RoleResolver
	Dispatcher NotificationDispatcher
	Now        func() time.Time
}

func NewWorkflowService(db *gorm.DB, roles RoleResolver, dispatcher NotificationDispatcher) *WorkflowService {
	return &WorkflowService{
		DB:         db,
		Roles:      roles,
		Dispatcher: dispatcher,
		Now:        func() time.Time { return time.Now().UTC() },
	}
}

// Transition memindahkan satu assessment ke target status.
// Urutan: pre-check submit -> tx(lock row -> graph -> permission -> side effects
// -> save + audit) -> notifikasi best-effort setelah commit.
func (s *WorkflowService) Transition(
	ctx context.Context,
	assessmentID uuid.UUID,
	target model.AssessmentStatus,
	actorID uuid.UUID,
	reason *string,
) (*model.AssessmentModel, error) {
	// Pre-check submission: murah, tanpa lock, sebelum transaksi dibuka.
	if target == model.AssessmentStatusSubmitted {
		var pre model.AssessmentModel
		if err := s.DB.WithContext(ctx).
			First(&pre, "assessment_id = ?", assessmentID).Error; err != nil {
			return nil, asWorkflowErr(err, assessmentID)
		}
		if err := CheckSubmitComments(pre.AssessmentRating, pre.AssessmentComments); err != nil {
			return nil, err
		}
	}

	var a model.AssessmentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// SELECT ... FOR UPDATE: dua transisi paralel tidak boleh sama-sama lolos
		// dengan rule yang hanya valid untuk status sebelum transisi.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&a, "assessment_id = ?", assessmentID).Error; err != nil {
			return asWorkflowErr(err, assessmentID)
		}

		if err := CheckTransitionGraph(a.AssessmentStatus, target); err != nil {
			return err
		}

		var emp umodel.EmployeeModel
		if err := tx.First(&emp, "employee_id = ?", a.AssessmentEmployeeID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return NewWorkflowError(ErrPersistence, "load employee: %v", err)
		}
		if err := CheckTransitionPermission(target, &a, actorID, emp.EmployeeManagerID, s.Roles); err != nil {
			return err
		}

		oldStatus := a.AssessmentStatus
		ApplyTransitionEffects(&a, target, actorID, reason, s.Now())

		if err := tx.Save(&a).Error; err != nil {
			return NewWorkflowError(ErrPersistence, "save assessment: %v", err)
		}
		audit := model.AssessmentAuditModel{
			AssessmentAuditAssessmentID: a.AssessmentID,
			AssessmentAuditOldStatus:    oldStatus,
			AssessmentAuditNewStatus:    target,
			AssessmentAuditActorID:      actorID,
			AssessmentAuditReason:       reason,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return NewWorkflowError(ErrPersistence, "append audit: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Setelah commit: fire-and-forget. Gagal kirim tidak menggagalkan transisi.
	s.notifyAfterCommit(ctx, target, &a)
	return &a, nil
}

func (s *WorkflowService) notifyAfterCommit(ctx context.Context, target model.AssessmentStatus, a *model.AssessmentModel) {
	if s.Dispatcher == nil {
		return
	}
	var event model.NotificationEvent
	recipients := []uuid.UUID{}
	switch target {
	case model.AssessmentStatusSubmitted:
		event = model.NotificationEventSubmitted
		recipients = append(recipients, a.AssessmentEmployeeID)
		var emp umodel.EmployeeModel
		if err := s.DB.WithContext(ctx).First(&emp, "employee_id = ?", a.AssessmentEmployeeID).Error; err == nil && emp.EmployeeManagerID != nil {
			recipients = append(recipients, *emp.EmployeeManagerID)
		}
	case model.AssessmentStatusApproved:
		event = model.NotificationEventApproved
		recipients = append(recipients, a.AssessmentAssessorID, a.AssessmentEmployeeID)
	case model.AssessmentStatusRejected:
		event = model.NotificationEventRejected
		recipients = append(recipients, a.AssessmentAssessorID, a.AssessmentEmployeeID)
	default:
		return // back-to-draft tidak perlu notifikasi
	}
	s.Dispatcher.Dispatch(event, a, dedupe(recipients))
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// asWorkflowErr membungkus error gorm jadi typed error.
func asWorkflowErr(err error, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewWorkflowError(ErrNotFound, "assessment %s not found", id)
	}
	log.Printf("[WorkflowService] persistence error: %v", err)
	return NewWorkflowError(ErrPersistence, "storage failure: %v", err)
}
