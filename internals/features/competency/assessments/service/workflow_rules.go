// file: internals/features/competency/assessments/service/workflow_rules.go
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kompetensiku_backend/internals/features/competency/assessments/model"
	umodel "kompetensiku_backend/internals/features/users/employees/model"
)

/* ==============================
   Collaborator: RoleResolver
   Decouple cek role dari layer identity/persistence.
============================== */

type RoleResolver interface {
	HasRole(actorID uuid.UUID, role string) bool
	HasAnyRole(actorID uuid.UUID, roles ...string) bool
}

/* ==============================
   Pure rules
   Semua fungsi di bawah tidak menyentuh DB supaya gampang dites.
============================== */

// CheckTransitionGraph: target harus reachable dari status sekarang.
func CheckTransitionGraph(current, target model.AssessmentStatus) error {
	if !target.Valid() {
		return NewWorkflowError(ErrInvalidTransition, "unknown target status %q", target)
	}
	if !current.CanTransitionTo(target) {
		return NewWorkflowError(ErrInvalidTransition, "cannot transition from %s to %s", current, target)
	}
	return nil
}

// CheckSubmitComments: rating ekstrem (1,2) atau tinggi (4,5) wajib ada komentar.
// Dicek SEBELUM transaksi dibuka.
func CheckSubmitComments(rating *int, comments *string) error {
	if rating == nil {
		return NewWorkflowError(ErrValidation, "rating is required before submission")
	}
	if *rating < 1 || *rating > 5 {
		return NewWorkflowError(ErrValidation, "rating must be between 1 and 5, got %d", *rating)
	}
	if *rating == 3 {
		return nil
	}
	if comments == nil || strings.TrimSpace(*comments) == "" {
		return NewWorkflowError(ErrValidation, "comments are required for rating %d", *rating)
	}
	return nil
}

// CheckTransitionPermission menjalankan predicate per target status:
//   - submitted: hanya assessor pemilik
//   - approved/rejected: admin|hr, atau manager langsung dari employee
//   - draft: assessor atau salah satu role approver
func CheckTransitionPermission(
	target model.AssessmentStatus,
	a *model.AssessmentModel,
	actorID uuid.UUID,
	employeeManagerID *uuid.UUID,
	roles RoleResolver,
) error {
	isManagerOf := employeeManagerID != nil && *employeeManagerID == actorID &&
		roles.HasRole(actorID, umodel.RoleManager)
	isApprover := roles.HasAnyRole(actorID, umodel.RoleAdmin, umodel.RoleHR) || isManagerOf

	switch target {
	case model.AssessmentStatusSubmitted:
		if actorID == a.AssessmentAssessorID {
			return nil
		}
	case model.AssessmentStatusApproved, model.AssessmentStatusRejected:
		if isApprover {
			return nil
		}
	case model.AssessmentStatusDraft:
		if actorID == a.AssessmentAssessorID || isApprover {
			return nil
		}
	}
	return NewWorkflowError(ErrPermissionDenied, "actor %s may not move assessment to %s", actorID, target)
}

// ApplyTransitionEffects: side effect status di memori.
// Kembali ke draft meng-clear seluruh bookkeeping submit/approve/reject.
func ApplyTransitionEffects(a *model.AssessmentModel, target model.AssessmentStatus, actorID uuid.UUID, reason *string, now time.Time) {
	switch target {
	case model.AssessmentStatusSubmitted:
		a.AssessmentSubmittedAt = &now
	case model.AssessmentStatusApproved:
		a.AssessmentApprovedAt = &now
		a.AssessmentApprovedBy = &actorID
		// approve membatalkan jejak reject sebelumnya (maks satu yang terisi)
		a.AssessmentRejectedAt = nil
		a.AssessmentRejectedBy = nil
		a.AssessmentRejectionReason = nil
	case model.AssessmentStatusRejected:
		a.AssessmentRejectedAt = &now
		a.AssessmentRejectedBy = &actorID
		a.AssessmentApprovedAt = nil
		a.AssessmentApprovedBy = nil
		if reason != nil && strings.TrimSpace(*reason) != "" {
			a.AssessmentRejectionReason = reason
		}
	case model.AssessmentStatusDraft:
		a.AssessmentSubmittedAt = nil
		a.AssessmentApprovedAt = nil
		a.AssessmentRejectedAt = nil
		a.AssessmentApprovedBy = nil
		a.AssessmentRejectedBy = nil
		a.AssessmentRejectionReason = nil
	}
	a.AssessmentStatus = target
	a.AssessmentUpdatedAt = now
}
