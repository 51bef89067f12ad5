// file: internals/features/competency/assessments/dto/assessment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kompetensiku_backend/internals/features/competency/assessments/model"
)

/* ==============================
   CREATE (POST /assessments)
============================== */

type CreateAssessmentRequest struct {
	AssessmentEmployeeID   uuid.UUID  `json:"assessment_employee_id" validate:"required"`
	AssessmentCompetencyID uuid.UUID  `json:"assessment_competency_id" validate:"required"`
	AssessmentAssessorID   uuid.UUID  `json:"assessment_assessor_id" validate:"required"`
	AssessmentCycleID      *uuid.UUID `json:"assessment_cycle_id" validate:"omitempty"`
	AssessmentType         *string    `json:"assessment_type" validate:"omitempty,oneof=self manager peer 360"`
	AssessmentRating       *int       `json:"assessment_rating" validate:"omitempty,min=1,max=5"`
	AssessmentComments     *string    `json:"assessment_comments" validate:"omitempty"`
}

func (r *CreateAssessmentRequest) Normalize() {
	if r.AssessmentComments != nil {
		c := strings.TrimSpace(*r.AssessmentComments)
		if c == "" {
			r.AssessmentComments = nil
		} else {
			r.AssessmentComments = &c
		}
	}
	if r.AssessmentType != nil {
		t := strings.ToLower(strings.TrimSpace(*r.AssessmentType))
		if t == "" {
			r.AssessmentType = nil
		} else {
			r.AssessmentType = &t
		}
	}
}

func (r CreateAssessmentRequest) ToModel() model.AssessmentModel {
	return model.AssessmentModel{
		AssessmentEmployeeID:   r.AssessmentEmployeeID,
		AssessmentCompetencyID: r.AssessmentCompetencyID,
		AssessmentAssessorID:   r.AssessmentAssessorID,
		AssessmentCycleID:      r.AssessmentCycleID,
		AssessmentType:         r.AssessmentType,
		AssessmentRating:       r.AssessmentRating,
		AssessmentComments:     r.AssessmentComments,
		AssessmentStatus:       model.AssessmentStatusDraft,
	}
}

/* ==============================
   DRAFT EDIT (PATCH /assessments/:id)
============================== */

type UpdateDraftRequest struct {
	AssessmentRating   *int    `json:"assessment_rating" validate:"omitempty,min=1,max=5"`
	AssessmentComments *string `json:"assessment_comments" validate:"omitempty"`
}

/* ==============================
   WORKFLOW
============================== */

type TransitionRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

type ExtendDeadlineRequest struct {
	NewDeadline time.Time `json:"new_deadline" validate:"required"`
	Reason      *string   `json:"reason" validate:"omitempty,max=500"`
}

type ReassignRequest struct {
	NewAssessorID uuid.UUID `json:"new_assessor_id" validate:"required"`
	Reason        *string   `json:"reason" validate:"omitempty,max=500"`
}

type BulkProcessRequest struct {
	AssessmentIDs []uuid.UUID `json:"assessment_ids" validate:"required,min=1"`
	Action        string      `json:"action" validate:"required,oneof=approve reject submit extend-deadline reassign"`
	Reason        *string     `json:"reason" validate:"omitempty,max=500"`
	NewDeadline   *time.Time  `json:"new_deadline" validate:"omitempty"`
	NewAssessorID *uuid.UUID  `json:"new_assessor_id" validate:"omitempty"`
}

/* ==============================
   Competency CRUD-lite
============================== */

type CreateCompetencyRequest struct {
	CompetencyName     string   `json:"competency_name" validate:"required,max=120"`
	CompetencyCategory string   `json:"competency_category" validate:"required,max=80"`
	CompetencyWeight   *float64 `json:"competency_weight" validate:"omitempty,gt=0,lte=10"`
}

func (r *CreateCompetencyRequest) Normalize() {
	r.CompetencyName = strings.TrimSpace(r.CompetencyName)
	r.CompetencyCategory = strings.ToLower(strings.TrimSpace(r.CompetencyCategory))
}

func (r CreateCompetencyRequest) ToModel() model.CompetencyModel {
	weight := 1.0
	if r.CompetencyWeight != nil {
		weight = *r.CompetencyWeight
	}
	return model.CompetencyModel{
		CompetencyName:     r.CompetencyName,
		CompetencyCategory: r.CompetencyCategory,
		CompetencyWeight:   weight,
	}
}
