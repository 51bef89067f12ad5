// file: internals/features/competency/analytics/service/analytics_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kompetensiku_backend/internals/features/competency/analytics/dto"
	amodel "kompetensiku_backend/internals/features/competency/assessments/model"
)

// ScoreCacheTTL: skor per-employee di-cache 300 detik, read-through,
// TANPA invalidasi saat approval baru masuk. Lihat DESIGN.md.
const ScoreCacheTTL = 300 * time.Second

// AnalyticsService membaca state assessment yang sudah committed;
// tidak tahu-menahu soal transisi yang menghasilkannya.
type AnalyticsService struct {
	DB    *gorm.DB
	Cache Cache
}

func NewAnalyticsService(db *gorm.DB, cache Cache) *AnalyticsService {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &AnalyticsService{DB: db, Cache: cache}
}

/* ==============================
   Queries (approved only)
============================== */

func (s *AnalyticsService) approvedJoin(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Table("assessments").
		Select(`assessments.assessment_id,
			assessments.assessment_employee_id,
			assessments.assessment_competency_id,
			assessments.assessment_rating,
			assessments.assessment_type,
			assessments.assessment_cycle_id,
			assessments.assessment_submitted_at,
			assessments.assessment_created_at,
			competencies.competency_name,
			competencies.competency_category,
			competencies.competency_weight`).
		Joins("JOIN competencies ON competencies.competency_id = assessments.assessment_competency_id").
		Where("assessments.assessment_status = ?", amodel.AssessmentStatusApproved).
		Where("assessments.assessment_deleted_at IS NULL").
		Where("competencies.competency_deleted_at IS NULL")
}

/* ==============================
   Weighted score (cached)
============================== */

func scoreCacheKey(employeeID uuid.UUID, cycleID *uuid.UUID) string {
	if cycleID != nil {
		return fmt.Sprintf("score:%s:%s", employeeID, *cycleID)
	}
	return fmt.Sprintf("score:%s:latest", employeeID)
}

// EmployeeScore: weighted score + rollup kategori untuk satu employee.
// Tanpa cycle -> hanya assessment approved terbaru per kompetensi.
func (s *AnalyticsService) EmployeeScore(ctx context.Context, employeeID uuid.UUID, cycleID *uuid.UUID) (*dto.EmployeeScoreResponse, error) {
	key := scoreCacheKey(employeeID, cycleID)
	if cached, ok := s.Cache.Get(key); ok {
		if resp, ok := cached.(*dto.EmployeeScoreResponse); ok {
			return resp, nil
		}
	}

	q := s.approvedJoin(ctx).Where("assessments.assessment_employee_id = ?", employeeID)
	if cycleID != nil {
		q = q.Where("assessments.assessment_cycle_id = ?", *cycleID)
	}

	var rows []RatedAssessment
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	if cycleID == nil {
		rows = LatestPerCompetency(rows)
	}

	overall, cats := ComputeWeightedScore(rows)
	resp := &dto.EmployeeScoreResponse{
		EmployeeID:      employeeID,
		CycleID:         cycleID,
		OverallScore:    overall,
		AssessmentCount: len(rows),
		Categories:      cats,
		ComputedAt:      time.Now().UTC(),
	}
	s.Cache.Set(key, resp, ScoreCacheTTL)
	return resp, nil
}

// CurrentRating: rating dari assessment approved terbaru untuk satu
// (employee, competency); nil kalau belum pernah ada yang approved.
// Dipakai juga oleh generator development plan.
func (s *AnalyticsService) CurrentRating(ctx context.Context, employeeID, competencyID uuid.UUID) (*int, error) {
	var rows []RatedAssessment
	err := s.approvedJoin(ctx).
		Where("assessments.assessment_employee_id = ?", employeeID).
		Where("assessments.assessment_competency_id = ?", competencyID).
		Order("assessments.assessment_created_at DESC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0].Rating, nil
}

/* ==============================
   Trends
============================== */

// EmployeeTrends: arah perkembangan per kompetensi dalam window N bulan.
func (s *AnalyticsService) EmployeeTrends(ctx context.Context, employeeID uuid.UUID, windowMonths int) (*dto.EmployeeTrendResponse, error) {
	if windowMonths <= 0 {
		windowMonths = 12
	}
	since := time.Now().UTC().AddDate(0, -windowMonths, 0)

	var rows []RatedAssessment
	err := s.approvedJoin(ctx).
		Where("assessments.assessment_employee_id = ?", employeeID).
		Where("COALESCE(assessments.assessment_submitted_at, assessments.assessment_created_at) >= ?", since).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	trends, monthly := ComputeTrends(rows)
	return &dto.EmployeeTrendResponse{
		EmployeeID:   employeeID,
		WindowMonths: windowMonths,
		Competencies: trends,
		Monthly:      monthly,
	}, nil
}

/* ==============================
   Skill gaps
============================== */

// SkillGaps: analisis populasi, bisa difilter departemen / employee / kompetensi.
func (s *AnalyticsService) SkillGaps(ctx context.Context, filter dto.SkillGapFilter) (*dto.SkillGapResponse, error) {
	q := s.approvedJoin(ctx)
	if filter.Department != "" {
		q = q.Joins("JOIN employees ON employees.employee_id = assessments.assessment_employee_id").
			Where("employees.employee_department = ?", filter.Department)
	}
	if len(filter.EmployeeIDs) > 0 {
		q = q.Where("assessments.assessment_employee_id IN ?", filter.EmployeeIDs)
	}
	if len(filter.CompetencyIDs) > 0 {
		q = q.Where("assessments.assessment_competency_id IN ?", filter.CompetencyIDs)
	}

	var rows []RatedAssessment
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	gaps, profiles := ComputeSkillGaps(rows)
	return &dto.SkillGapResponse{Competencies: gaps, Employees: profiles}, nil
}

/* ==============================
   Distribution
============================== */

func (s *AnalyticsService) Distribution(ctx context.Context, cycleID *uuid.UUID) (*dto.DistributionResponse, error) {
	q := s.approvedJoin(ctx)
	if cycleID != nil {
		q = q.Where("assessments.assessment_cycle_id = ?", *cycleID)
	}
	var rows []RatedAssessment
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	resp := ComputeDistribution(rows)
	return &resp, nil
}
