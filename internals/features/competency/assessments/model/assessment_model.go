// file: internals/features/competency/assessments/model/assessment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================
// Enum: Assessment Status
// =========================

// Sesuai CHECK constraint: 'draft','submitted','approved','rejected'
type AssessmentStatus string

const (
	AssessmentStatusDraft     AssessmentStatus = "draft"
	AssessmentStatusSubmitted AssessmentStatus = "submitted"
	AssessmentStatusApproved  AssessmentStatus = "approved"
	AssessmentStatusRejected  AssessmentStatus = "rejected"
)

// AllowedTransitions memetakan status asal -> daftar status tujuan yang sah.
// Graph ini fixed; perubahan berarti migrasi proses bisnis, bukan config.
var AllowedTransitions = map[AssessmentStatus][]AssessmentStatus{
	AssessmentStatusDraft:     {AssessmentStatusSubmitted},
	AssessmentStatusSubmitted: {AssessmentStatusApproved, AssessmentStatusRejected, AssessmentStatusDraft},
	AssessmentStatusApproved:  {AssessmentStatusDraft},
	AssessmentStatusRejected:  {AssessmentStatusDraft, AssessmentStatusSubmitted},
}

func (s AssessmentStatus) CanTransitionTo(target AssessmentStatus) bool {
	for _, t := range AllowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s AssessmentStatus) Valid() bool {
	switch s {
	case AssessmentStatusDraft, AssessmentStatusSubmitted, AssessmentStatusApproved, AssessmentStatusRejected:
		return true
	}
	return false
}

type AssessmentModel struct {
	AssessmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assessment_id" json:"assessment_id"`

	AssessmentEmployeeID   uuid.UUID `gorm:"type:uuid;not null;column:assessment_employee_id" json:"assessment_employee_id"`
	AssessmentCompetencyID uuid.UUID `gorm:"type:uuid;not null;column:assessment_competency_id" json:"assessment_competency_id"`
	AssessmentAssessorID   uuid.UUID `gorm:"type:uuid;not null;column:assessment_assessor_id" json:"assessment_assessor_id"`

	// Opsional: assessment bisa berdiri sendiri di luar cycle
	AssessmentCycleID *uuid.UUID `gorm:"type:uuid;column:assessment_cycle_id" json:"assessment_cycle_id,omitempty"`

	// self | manager | peer | 360; diisi saat bulk-create dari cycle
	AssessmentType *string `gorm:"type:varchar(16);column:assessment_type" json:"assessment_type,omitempty"`

	// Rating 1..5; NULL hanya selama draft
	AssessmentRating *int `gorm:"type:smallint;column:assessment_rating" json:"assessment_rating,omitempty"`

	AssessmentStatus   AssessmentStatus `gorm:"type:varchar(16);not null;default:'draft';column:assessment_status" json:"assessment_status"`
	AssessmentComments *string          `gorm:"type:text;column:assessment_comments" json:"assessment_comments,omitempty"`

	AssessmentSubmittedAt *time.Time `gorm:"type:timestamptz;column:assessment_submitted_at" json:"assessment_submitted_at,omitempty"`
	AssessmentApprovedAt  *time.Time `gorm:"type:timestamptz;column:assessment_approved_at" json:"assessment_approved_at,omitempty"`
	AssessmentRejectedAt  *time.Time `gorm:"type:timestamptz;column:assessment_rejected_at" json:"assessment_rejected_at,omitempty"`

	AssessmentApprovedBy *uuid.UUID `gorm:"type:uuid;column:assessment_approved_by" json:"assessment_approved_by,omitempty"`
	AssessmentRejectedBy *uuid.UUID `gorm:"type:uuid;column:assessment_rejected_by" json:"assessment_rejected_by,omitempty"`

	AssessmentRejectionReason *string `gorm:"type:text;column:assessment_rejection_reason" json:"assessment_rejection_reason,omitempty"`

	// Diisi oleh extend-deadline; tidak pernah mengubah status
	AssessmentExtendedDeadline *time.Time `gorm:"type:timestamptz;column:assessment_extended_deadline" json:"assessment_extended_deadline,omitempty"`

	AssessmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:assessment_created_at" json:"assessment_created_at"`
	AssessmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:assessment_updated_at" json:"assessment_updated_at"`
	AssessmentDeletedAt gorm.DeletedAt `gorm:"column:assessment_deleted_at;index" json:"assessment_deleted_at,omitempty"`
}

func (AssessmentModel) TableName() string { return "assessments" }
