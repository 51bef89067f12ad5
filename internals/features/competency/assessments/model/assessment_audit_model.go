// file: internals/features/competency/assessments/model/assessment_audit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentAuditModel adalah jejak transisi status, append-only.
// Tidak ada soft delete dan tidak pernah di-UPDATE.
type AssessmentAuditModel struct {
	AssessmentAuditID           uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assessment_audit_id" json:"assessment_audit_id"`
	AssessmentAuditAssessmentID uuid.UUID        `gorm:"type:uuid;not null;index;column:assessment_audit_assessment_id" json:"assessment_audit_assessment_id"`
	AssessmentAuditOldStatus    AssessmentStatus `gorm:"type:varchar(16);not null;column:assessment_audit_old_status" json:"assessment_audit_old_status"`
	AssessmentAuditNewStatus    AssessmentStatus `gorm:"type:varchar(16);not null;column:assessment_audit_new_status" json:"assessment_audit_new_status"`
	AssessmentAuditActorID      uuid.UUID        `gorm:"type:uuid;not null;column:assessment_audit_actor_id" json:"assessment_audit_actor_id"`
	AssessmentAuditReason       *string          `gorm:"type:text;column:assessment_audit_reason" json:"assessment_audit_reason,omitempty"`
	AssessmentAuditCreatedAt    time.Time        `gorm:"type:timestamptz;not null;default:now();column:assessment_audit_created_at" json:"assessment_audit_created_at"`
}

func (AssessmentAuditModel) TableName() string { return "assessment_audits" }
