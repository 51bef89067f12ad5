// file: internals/features/competency/analytics/dto/analytics_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* ==============================
   Weighted score
============================== */

type CategoryScore struct {
	Category        string  `json:"category"`
	Score           float64 `json:"score"`
	AssessmentCount int     `json:"assessment_count"`
}

type EmployeeScoreResponse struct {
	EmployeeID      uuid.UUID       `json:"employee_id"`
	CycleID         *uuid.UUID      `json:"cycle_id,omitempty"`
	OverallScore    float64         `json:"overall_score"`
	AssessmentCount int             `json:"assessment_count"`
	Categories      []CategoryScore `json:"categories"`
	ComputedAt      time.Time       `json:"computed_at"`
}

/* ==============================
   Trend analysis
============================== */

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

type CompetencyTrend struct {
	CompetencyID   uuid.UUID      `json:"competency_id"`
	CompetencyName string         `json:"competency_name"`
	FirstRating    int            `json:"first_rating"`
	LastRating     int            `json:"last_rating"`
	Improvement    float64        `json:"improvement"`
	Direction      TrendDirection `json:"direction"`
	DataPoints     int            `json:"data_points"`
}

type MonthlyAverage struct {
	Month         string  `json:"month"` // format 2006-01
	AverageRating float64 `json:"average_rating"`
	Count         int     `json:"count"`
}

type EmployeeTrendResponse struct {
	EmployeeID   uuid.UUID         `json:"employee_id"`
	WindowMonths int               `json:"window_months"`
	Competencies []CompetencyTrend `json:"competencies"`
	Monthly      []MonthlyAverage  `json:"monthly"`
}

/* ==============================
   Skill gaps
============================== */

type GapSeverity string

const (
	GapSeverityLow    GapSeverity = "low"
	GapSeverityMedium GapSeverity = "medium"
	GapSeverityHigh   GapSeverity = "high"
)

type CompetencyGap struct {
	CompetencyID   uuid.UUID   `json:"competency_id"`
	CompetencyName string      `json:"competency_name"`
	Category       string      `json:"category"`
	TotalAssessed  int         `json:"total_assessed"`
	BelowTarget    int         `json:"below_target"`
	BelowTargetPct float64     `json:"below_target_pct"`
	AverageRating  float64     `json:"average_rating"`
	Severity       GapSeverity `json:"severity"`
	CriticalGap    bool        `json:"critical_gap"`
}

type EmployeeGapProfile struct {
	EmployeeID    uuid.UUID   `json:"employee_id"`
	GapAreas      []uuid.UUID `json:"gap_areas"`      // kompetensi dengan rating < 3
	StrengthAreas []uuid.UUID `json:"strength_areas"` // kompetensi dengan rating >= 4
}

type SkillGapResponse struct {
	Competencies []CompetencyGap      `json:"competencies"`
	Employees    []EmployeeGapProfile `json:"employees"`
}

type SkillGapFilter struct {
	Department    string      `json:"department"`
	EmployeeIDs   []uuid.UUID `json:"employee_ids"`
	CompetencyIDs []uuid.UUID `json:"competency_ids"`
}

/* ==============================
   Distribution
============================== */

type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type BreakdownEntry struct {
	Key           string  `json:"key"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}

type DistributionResponse struct {
	Total      int              `json:"total"`
	Ratings    []RatingBucket   `json:"ratings"`
	Categories []BreakdownEntry `json:"categories"`
	Types      []BreakdownEntry `json:"types"`
}
