// file: internals/features/competency/development/dto/development_plan_dto.go
package dto

import (
	"github.com/google/uuid"
)

type PlanAction struct {
	Order       int    `json:"order"`
	Description string `json:"description"`
}

type PlanMilestone struct {
	TargetRating   int    `json:"target_rating"`
	Description    string `json:"description"`
	TimelineMonths int    `json:"timeline_months"`
}

type GeneratePlanRequest struct {
	EmployeeID   uuid.UUID `json:"employee_id" validate:"required"`
	CompetencyID uuid.UUID `json:"competency_id" validate:"required"`
	TargetRating int       `json:"target_rating" validate:"required,min=2,max=5"`
}

type DevelopmentPlanResponse struct {
	PlanID        uuid.UUID       `json:"plan_id,omitempty"`
	EmployeeID    uuid.UUID       `json:"employee_id"`
	CompetencyID  uuid.UUID       `json:"competency_id"`
	Category      string          `json:"category"`
	CurrentRating int             `json:"current_rating"`
	TargetRating  int             `json:"target_rating"`
	Actions       []PlanAction    `json:"actions"`
	Milestones    []PlanMilestone `json:"milestones"`
}
