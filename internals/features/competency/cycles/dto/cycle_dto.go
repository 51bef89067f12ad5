// file: internals/features/competency/cycles/dto/cycle_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/lib/pq"

	model "kompetensiku_backend/internals/features/competency/cycles/model"
)

type CreateCycleRequest struct {
	CycleName            string    `json:"cycle_name" validate:"required,max=120"`
	CycleStartDate       time.Time `json:"cycle_start_date" validate:"required"`
	CycleEndDate         time.Time `json:"cycle_end_date" validate:"required"`
	CycleAssessmentTypes []string  `json:"cycle_assessment_types" validate:"required,min=1,dive,oneof=self manager peer 360"`
}

func (r *CreateCycleRequest) Normalize() {
	r.CycleName = strings.TrimSpace(r.CycleName)
	for i := range r.CycleAssessmentTypes {
		r.CycleAssessmentTypes[i] = strings.ToLower(strings.TrimSpace(r.CycleAssessmentTypes[i]))
	}
}

func (r CreateCycleRequest) ToModel() model.AssessmentCycleModel {
	return model.AssessmentCycleModel{
		CycleName:            r.CycleName,
		CycleStatus:          model.CycleStatusScheduled,
		CycleStartDate:       r.CycleStartDate,
		CycleEndDate:         r.CycleEndDate,
		CycleAssessmentTypes: pq.StringArray(r.CycleAssessmentTypes),
	}
}
