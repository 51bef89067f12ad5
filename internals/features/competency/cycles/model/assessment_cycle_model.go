// file: internals/features/competency/cycles/model/assessment_cycle_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// =========================
// Enum: Cycle Status
// =========================

type CycleStatus string

const (
	CycleStatusScheduled CycleStatus = "scheduled"
	CycleStatusActive    CycleStatus = "active"
	CycleStatusCompleted CycleStatus = "completed"
)

// =========================
// Enum: Assessment Type
// =========================

type AssessmentType string

const (
	AssessmentTypeSelf    AssessmentType = "self"
	AssessmentTypeManager AssessmentType = "manager"
	AssessmentTypePeer    AssessmentType = "peer"
	AssessmentType360     AssessmentType = "360"
)

func ValidAssessmentType(t string) bool {
	switch AssessmentType(t) {
	case AssessmentTypeSelf, AssessmentTypeManager, AssessmentTypePeer, AssessmentType360:
		return true
	}
	return false
}

type AssessmentCycleModel struct {
	CycleID     uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:cycle_id" json:"cycle_id"`
	CycleName   string      `gorm:"type:varchar(120);not null;column:cycle_name" json:"cycle_name"`
	CycleStatus CycleStatus `gorm:"type:varchar(16);not null;default:'scheduled';column:cycle_status" json:"cycle_status"`

	CycleStartDate time.Time `gorm:"type:timestamptz;not null;column:cycle_start_date" json:"cycle_start_date"`
	CycleEndDate   time.Time `gorm:"type:timestamptz;not null;column:cycle_end_date" json:"cycle_end_date"`

	// Subset dari {self, manager, peer, 360}
	CycleAssessmentTypes pq.StringArray `gorm:"type:text[];not null;column:cycle_assessment_types" json:"cycle_assessment_types"`

	CycleCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:cycle_created_at" json:"cycle_created_at"`
	CycleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:cycle_updated_at" json:"cycle_updated_at"`
	CycleDeletedAt gorm.DeletedAt `gorm:"column:cycle_deleted_at;index" json:"cycle_deleted_at,omitempty"`
}

func (AssessmentCycleModel) TableName() string { return "assessment_cycles" }
