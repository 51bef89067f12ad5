// file: internals/features/competency/assessments/model/reassignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReassignmentModel mencatat perpindahan assessor, append-only.
type ReassignmentModel struct {
	ReassignmentID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:reassignment_id" json:"reassignment_id"`
	ReassignmentAssessmentID  uuid.UUID `gorm:"type:uuid;not null;index;column:reassignment_assessment_id" json:"reassignment_assessment_id"`
	ReassignmentOldAssessorID uuid.UUID `gorm:"type:uuid;not null;column:reassignment_old_assessor_id" json:"reassignment_old_assessor_id"`
	ReassignmentNewAssessorID uuid.UUID `gorm:"type:uuid;not null;column:reassignment_new_assessor_id" json:"reassignment_new_assessor_id"`
	ReassignmentActorID       uuid.UUID `gorm:"type:uuid;not null;column:reassignment_actor_id" json:"reassignment_actor_id"`
	ReassignmentReason        *string   `gorm:"type:text;column:reassignment_reason" json:"reassignment_reason,omitempty"`
	ReassignmentCreatedAt     time.Time `gorm:"type:timestamptz;not null;default:now();column:reassignment_created_at" json:"reassignment_created_at"`
}

func (ReassignmentModel) TableName() string { return "assessment_reassignments" }
