// file: internals/features/competency/development/service/development_plan_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	anservice "kompetensiku_backend/internals/features/competency/analytics/service"
	amodel "kompetensiku_backend/internals/features/competency/assessments/model"
	aservice "kompetensiku_backend/internals/features/competency/assessments/service"
	dto "kompetensiku_backend/internals/features/competency/development/dto"
	model "kompetensiku_backend/internals/features/competency/development/model"
)

/* ==============================
   Template aktivitas per kategori
   Deterministik: kategori sama -> daftar aksi sama.
============================== */

var categoryActivityTemplates = map[string][]string{
	"leadership": {
		"Ambil peran lead di satu proyek lintas tim",
		"Ikut program mentoring sebagai mentee dari senior leader",
		"Pimpin minimal dua sesi retrospektif tim",
	},
	"technical": {
		"Selesaikan kursus lanjutan yang relevan dengan kompetensi ini",
		"Kerjakan satu proyek hands-on yang memakai skill tersebut",
		"Lakukan code/design review rutin bersama engineer senior",
	},
	"communication": {
		"Presentasikan update bulanan di forum tim",
		"Ikut pelatihan komunikasi atau public speaking",
		"Minta feedback tertulis dari tiga rekan kerja per kuartal",
	},
	"teamwork": {
		"Gabung ke satu inisiatif lintas departemen",
		"Jadi fasilitator onboarding untuk anggota tim baru",
		"Rotasi peran koordinasi dalam sprint tim",
	},
}

var genericActivityTemplate = []string{
	"Susun learning path bersama manager untuk kompetensi ini",
	"Praktikkan skill pada pekerjaan sehari-hari dan catat progres",
	"Review perkembangan dengan manager tiap akhir bulan",
}

// GeneratePlan: pure generator aksi + milestone.
// target harus > current; tiap milestone step membawa estimasi
// 2 x (target - rating sebelum step) bulan.
func GeneratePlan(currentRating, targetRating int, category string) ([]dto.PlanAction, []dto.PlanMilestone, error) {
	if targetRating <= currentRating {
		return nil, nil, aservice.NewWorkflowError(aservice.ErrValidation,
			"target rating %d must be greater than current rating %d", targetRating, currentRating)
	}
	if currentRating < 0 || targetRating > 5 {
		return nil, nil, aservice.NewWorkflowError(aservice.ErrValidation,
			"ratings must stay within the 1..5 scale")
	}

	templates, ok := categoryActivityTemplates[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		templates = genericActivityTemplate
	}
	actions := make([]dto.PlanAction, 0, len(templates))
	for i, desc := range templates {
		actions = append(actions, dto.PlanAction{Order: i + 1, Description: desc})
	}

	milestones := make([]dto.PlanMilestone, 0, targetRating-currentRating)
	for step := currentRating + 1; step <= targetRating; step++ {
		prior := step - 1
		milestones = append(milestones, dto.PlanMilestone{
			TargetRating:   step,
			Description:    fmt.Sprintf("Capai rating %d pada assessment berikutnya", step),
			TimelineMonths: 2 * (targetRating - prior),
		})
	}
	return actions, milestones, nil
}

// DevelopmentPlanService merangkai current rating (dari analytics) dengan
// generator, lalu menyimpan snapshot plan.
type DevelopmentPlanService struct {
	DB        *gorm.DB
	Analytics *anservice.AnalyticsService
}

func NewDevelopmentPlanService(db *gorm.DB, analytics *anservice.AnalyticsService) *DevelopmentPlanService {
	return &DevelopmentPlanService{DB: db, Analytics: analytics}
}

func (s *DevelopmentPlanService) GenerateForEmployee(
	ctx context.Context,
	req dto.GeneratePlanRequest,
	actorID uuid.UUID,
) (*dto.DevelopmentPlanResponse, error) {
	var comp amodel.CompetencyModel
	if err := s.DB.WithContext(ctx).First(&comp, "competency_id = ?", req.CompetencyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, aservice.NewWorkflowError(aservice.ErrNotFound, "competency %s not found", req.CompetencyID)
		}
		return nil, aservice.NewWorkflowError(aservice.ErrPersistence, "load competency: %v", err)
	}

	current, err := s.Analytics.CurrentRating(ctx, req.EmployeeID, req.CompetencyID)
	if err != nil {
		return nil, aservice.NewWorkflowError(aservice.ErrPersistence, "current rating: %v", err)
	}
	currentRating := 1 // belum pernah di-assess: mulai dari dasar skala
	if current != nil {
		currentRating = *current
	}

	actions, milestones, err := GeneratePlan(currentRating, req.TargetRating, comp.CompetencyCategory)
	if err != nil {
		return nil, err
	}

	actionsJSON, err := json.Marshal(actions)
	if err != nil {
		return nil, aservice.NewWorkflowError(aservice.ErrPersistence, "marshal actions: %v", err)
	}
	milestonesJSON, err := json.Marshal(milestones)
	if err != nil {
		return nil, aservice.NewWorkflowError(aservice.ErrPersistence, "marshal milestones: %v", err)
	}

	plan := model.DevelopmentPlanModel{
		DevelopmentPlanEmployeeID:    req.EmployeeID,
		DevelopmentPlanCompetencyID:  req.CompetencyID,
		DevelopmentPlanCurrentRating: currentRating,
		DevelopmentPlanTargetRating:  req.TargetRating,
		DevelopmentPlanActions:       actionsJSON,
		DevelopmentPlanMilestones:    milestonesJSON,
		DevelopmentPlanCreatedBy:     actorID,
	}
	if err := s.DB.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, aservice.NewWorkflowError(aservice.ErrPersistence, "create development plan: %v", err)
	}

	return &dto.DevelopmentPlanResponse{
		PlanID:        plan.DevelopmentPlanID,
		EmployeeID:    req.EmployeeID,
		CompetencyID:  req.CompetencyID,
		Category:      comp.CompetencyCategory,
		CurrentRating: currentRating,
		TargetRating:  req.TargetRating,
		Actions:       actions,
		Milestones:    milestones,
	}, nil
}

// ListForEmployee mengembalikan seluruh plan aktif milik satu employee.
func (s *DevelopmentPlanService) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.DevelopmentPlanModel, error) {
	var plans []model.DevelopmentPlanModel
	err := s.DB.WithContext(ctx).
		Where("development_plan_employee_id = ?", employeeID).
		Order("development_plan_created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, aservice.NewWorkflowError(aservice.ErrPersistence, "list development plans: %v", err)
	}
	return plans, nil
}
