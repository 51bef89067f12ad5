// file: internals/features/competency/development/model/development_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DevelopmentPlanModel struct {
	DevelopmentPlanID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:development_plan_id" json:"development_plan_id"`
	DevelopmentPlanEmployeeID   uuid.UUID `gorm:"type:uuid;not null;index;column:development_plan_employee_id" json:"development_plan_employee_id"`
	DevelopmentPlanCompetencyID uuid.UUID `gorm:"type:uuid;not null;column:development_plan_competency_id" json:"development_plan_competency_id"`

	DevelopmentPlanCurrentRating int `gorm:"type:smallint;not null;column:development_plan_current_rating" json:"development_plan_current_rating"`
	DevelopmentPlanTargetRating  int `gorm:"type:smallint;not null;column:development_plan_target_rating" json:"development_plan_target_rating"`

	// Snapshot hasil generator, JSONB
	DevelopmentPlanActions    datatypes.JSON `gorm:"type:jsonb;column:development_plan_actions" json:"development_plan_actions"`
	DevelopmentPlanMilestones datatypes.JSON `gorm:"type:jsonb;column:development_plan_milestones" json:"development_plan_milestones"`

	DevelopmentPlanCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:development_plan_created_by" json:"development_plan_created_by"`

	DevelopmentPlanCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:development_plan_created_at" json:"development_plan_created_at"`
	DevelopmentPlanUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:development_plan_updated_at" json:"development_plan_updated_at"`
	DevelopmentPlanDeletedAt gorm.DeletedAt `gorm:"column:development_plan_deleted_at;index" json:"development_plan_deleted_at,omitempty"`
}

func (DevelopmentPlanModel) TableName() string { return "development_plans" }
