// file: internals/features/competency/cycles/service/cycle_service.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	amodel "kompetensiku_backend/internals/features/competency/assessments/model"
	aservice "kompetensiku_backend/internals/features/competency/assessments/service"
	model "kompetensiku_backend/internals/features/competency/cycles/model"
	umodel "kompetensiku_backend/internals/features/users/employees/model"
)

type CycleService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewCycleService(db *gorm.DB) *CycleService {
	return &CycleService{DB: db, Now: func() time.Time { return time.Now().UTC() }}
}

func (s *CycleService) CreateCycle(ctx context.Context, c *model.AssessmentCycleModel) error {
	if !c.CycleEndDate.After(c.CycleStartDate) {
		return aservice.NewWorkflowError(aservice.ErrValidation, "cycle end date must be after start date")
	}
	if len(c.CycleAssessmentTypes) == 0 {
		return aservice.NewWorkflowError(aservice.ErrValidation, "at least one assessment type is required")
	}
	for _, t := range c.CycleAssessmentTypes {
		if !model.ValidAssessmentType(t) {
			return aservice.NewWorkflowError(aservice.ErrValidation, "unknown assessment type %q", t)
		}
	}
	c.CycleStatus = model.CycleStatusScheduled
	if err := s.DB.WithContext(ctx).Create(c).Error; err != nil {
		return aservice.NewWorkflowError(aservice.ErrPersistence, "create cycle: %v", err)
	}
	return nil
}

// ActivateCycle: scheduled -> active, lalu bulk-create draft assessment untuk
// kombinasi (employee aktif x kompetensi) per tipe self/manager.
// Tipe peer/360 tidak dibuat otomatis: assessor-nya harus ditunjuk manual.
// Duplikat tuple di-skip, bukan error.
func (s *CycleService) ActivateCycle(ctx context.Context, cycleID uuid.UUID) (created int, err error) {
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cycle model.AssessmentCycleModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cycle, "cycle_id = ?", cycleID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return aservice.NewWorkflowError(aservice.ErrNotFound, "cycle %s not found", cycleID)
			}
			return aservice.NewWorkflowError(aservice.ErrPersistence, "load cycle: %v", err)
		}
		if cycle.CycleStatus != model.CycleStatusScheduled {
			return aservice.NewWorkflowError(aservice.ErrValidation, "cycle %s is %s, only scheduled cycles can be activated", cycleID, cycle.CycleStatus)
		}

		var employees []umodel.EmployeeModel
		if err := tx.Where("employee_is_active = TRUE").Find(&employees).Error; err != nil {
			return aservice.NewWorkflowError(aservice.ErrPersistence, "load employees: %v", err)
		}
		var competencies []amodel.CompetencyModel
		if err := tx.Find(&competencies).Error; err != nil {
			return aservice.NewWorkflowError(aservice.ErrPersistence, "load competencies: %v", err)
		}

		wantSelf, wantManager := false, false
		for _, t := range cycle.CycleAssessmentTypes {
			switch model.AssessmentType(t) {
			case model.AssessmentTypeSelf:
				wantSelf = true
			case model.AssessmentTypeManager:
				wantManager = true
			}
		}

		for _, emp := range employees {
			for _, comp := range competencies {
				if wantSelf {
					n, err := createDraftIfAbsent(tx, cycle.CycleID, emp.EmployeeID, comp.CompetencyID, emp.EmployeeID, string(model.AssessmentTypeSelf))
					if err != nil {
						return err
					}
					created += n
				}
				if wantManager && emp.EmployeeManagerID != nil {
					n, err := createDraftIfAbsent(tx, cycle.CycleID, emp.EmployeeID, comp.CompetencyID, *emp.EmployeeManagerID, string(model.AssessmentTypeManager))
					if err != nil {
						return err
					}
					created += n
				}
			}
		}

		cycle.CycleStatus = model.CycleStatusActive
		cycle.CycleUpdatedAt = s.Now()
		if err := tx.Save(&cycle).Error; err != nil {
			return aservice.NewWorkflowError(aservice.ErrPersistence, "save cycle: %v", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	log.Printf("[CycleService] cycle %s activated, %d draft assessments created", cycleID, created)
	return created, nil
}

func createDraftIfAbsent(tx *gorm.DB, cycleID, employeeID, competencyID, assessorID uuid.UUID, assessmentType string) (int, error) {
	var count int64
	err := tx.Model(&amodel.AssessmentModel{}).
		Where("assessment_cycle_id = ? AND assessment_employee_id = ? AND assessment_competency_id = ? AND assessment_assessor_id = ?",
			cycleID, employeeID, competencyID, assessorID).
		Count(&count).Error
	if err != nil {
		return 0, aservice.NewWorkflowError(aservice.ErrPersistence, "duplicate check: %v", err)
	}
	if count > 0 {
		return 0, nil
	}
	a := amodel.AssessmentModel{
		AssessmentEmployeeID:   employeeID,
		AssessmentCompetencyID: competencyID,
		AssessmentAssessorID:   assessorID,
		AssessmentCycleID:      &cycleID,
		AssessmentType:         &assessmentType,
		AssessmentStatus:       amodel.AssessmentStatusDraft,
	}
	if err := tx.Create(&a).Error; err != nil {
		return 0, aservice.NewWorkflowError(aservice.ErrPersistence, "create draft assessment: %v", err)
	}
	return 1, nil
}

func (s *CycleService) CompleteCycle(ctx context.Context, cycleID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cycle model.AssessmentCycleModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cycle, "cycle_id = ?", cycleID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return aservice.NewWorkflowError(aservice.ErrNotFound, "cycle %s not found", cycleID)
			}
			return aservice.NewWorkflowError(aservice.ErrPersistence, "load cycle: %v", err)
		}
		if cycle.CycleStatus != model.CycleStatusActive {
			return aservice.NewWorkflowError(aservice.ErrValidation, "cycle %s is %s, only active cycles can be completed", cycleID, cycle.CycleStatus)
		}
		cycle.CycleStatus = model.CycleStatusCompleted
		cycle.CycleUpdatedAt = s.Now()
		if err := tx.Save(&cycle).Error; err != nil {
			return aservice.NewWorkflowError(aservice.ErrPersistence, "save cycle: %v", err)
		}
		return nil
	})
}

// OverdueAssessments: HANYA draft yang lewat deadline yang dihitung overdue.
// Assessment yang nyangkut di submitted melewati deadline sengaja TIDAK ikut,
// mengikuti perilaku sistem sebelumnya (lihat catatan open question di DESIGN.md).
func (s *CycleService) OverdueAssessments(ctx context.Context, cycleID *uuid.UUID) ([]amodel.AssessmentModel, error) {
	q := s.DB.WithContext(ctx).
		Model(&amodel.AssessmentModel{}).
		Joins("JOIN assessment_cycles ON assessment_cycles.cycle_id = assessments.assessment_cycle_id").
		Where("assessments.assessment_status = ?", amodel.AssessmentStatusDraft).
		Where("COALESCE(assessments.assessment_extended_deadline, assessment_cycles.cycle_end_date) < ?", s.Now())
	if cycleID != nil {
		q = q.Where("assessments.assessment_cycle_id = ?", *cycleID)
	}

	var out []amodel.AssessmentModel
	if err := q.Find(&out).Error; err != nil {
		return nil, aservice.NewWorkflowError(aservice.ErrPersistence, "overdue scan: %v", err)
	}
	return out, nil
}
