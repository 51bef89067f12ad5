// file: internals/features/competency/assessments/model/deadline_extension_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DeadlineExtensionModel mencatat setiap perpanjangan deadline, append-only.
type DeadlineExtensionModel struct {
	DeadlineExtensionID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:deadline_extension_id" json:"deadline_extension_id"`
	DeadlineExtensionAssessmentID uuid.UUID  `gorm:"type:uuid;not null;index;column:deadline_extension_assessment_id" json:"deadline_extension_assessment_id"`
	DeadlineExtensionOldDeadline  *time.Time `gorm:"type:timestamptz;column:deadline_extension_old_deadline" json:"deadline_extension_old_deadline,omitempty"`
	DeadlineExtensionNewDeadline  time.Time  `gorm:"type:timestamptz;not null;column:deadline_extension_new_deadline" json:"deadline_extension_new_deadline"`
	DeadlineExtensionActorID      uuid.UUID  `gorm:"type:uuid;not null;column:deadline_extension_actor_id" json:"deadline_extension_actor_id"`
	DeadlineExtensionReason       *string    `gorm:"type:text;column:deadline_extension_reason" json:"deadline_extension_reason,omitempty"`
	DeadlineExtensionCreatedAt    time.Time  `gorm:"type:timestamptz;not null;default:now();column:deadline_extension_created_at" json:"deadline_extension_created_at"`
}

func (DeadlineExtensionModel) TableName() string { return "assessment_deadline_extensions" }
