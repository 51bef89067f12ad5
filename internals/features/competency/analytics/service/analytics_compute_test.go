// file: internals/features/competency/analytics/service/analytics_compute_test.go
package service

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	dto "kompetensiku_backend/internals/features/competency/analytics/dto"
)

func row(employee, competency uuid.UUID, name, category string, weight float64, rating int, at time.Time) RatedAssessment {
	return RatedAssessment{
		AssessmentID:   uuid.New(),
		EmployeeID:     employee,
		CompetencyID:   competency,
		CompetencyName: name,
		Category:       category,
		Weight:         weight,
		Rating:         rating,
		CreatedAt:      at,
	}
}

func TestComputeWeightedScore(t *testing.T) {
	emp := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := []RatedAssessment{
		row(emp, uuid.New(), "Go", "technical", 2.0, 4, base),
		row(emp, uuid.New(), "Komunikasi", "communication", 1.0, 2, base),
	}

	overall, cats := ComputeWeightedScore(rows)

	// (4*2 + 2*1) / (2+1) = 10/3
	want := 10.0 / 3.0
	if math.Abs(overall-want) > 1e-9 {
		t.Fatalf("overall = %f, want %f", overall, want)
	}
	if len(cats) != 2 {
		t.Fatalf("categories = %d, want 2", len(cats))
	}
	// urut alfabet: communication dulu
	if cats[0].Category != "communication" || math.Abs(cats[0].Score-2.0) > 1e-9 {
		t.Fatalf("cats[0] = %+v", cats[0])
	}
	if cats[1].Category != "technical" || math.Abs(cats[1].Score-4.0) > 1e-9 {
		t.Fatalf("cats[1] = %+v", cats[1])
	}
}

func TestComputeWeightedScoreDefaultsNonPositiveWeight(t *testing.T) {
	emp := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []RatedAssessment{
		row(emp, uuid.New(), "Go", "technical", 0, 4, base),
		row(emp, uuid.New(), "SQL", "technical", -1, 2, base),
	}
	overall, _ := ComputeWeightedScore(rows)
	if math.Abs(overall-3.0) > 1e-9 {
		t.Fatalf("overall = %f, want 3.0 (weight fallback 1.0)", overall)
	}
}

func TestComputeWeightedScoreEmpty(t *testing.T) {
	overall, cats := ComputeWeightedScore(nil)
	if overall != 0 || len(cats) != 0 {
		t.Fatalf("empty input: overall = %f, cats = %d", overall, len(cats))
	}
}

func TestLatestPerCompetency(t *testing.T) {
	emp := uuid.New()
	comp := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	older := row(emp, comp, "Go", "technical", 1, 2, base)
	newer := row(emp, comp, "Go", "technical", 1, 5, base.AddDate(0, 1, 0))
	other := row(emp, uuid.New(), "SQL", "technical", 1, 3, base)

	out := LatestPerCompetency([]RatedAssessment{older, newer, other})
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	for _, r := range out {
		if r.CompetencyID == comp && r.Rating != 5 {
			t.Fatalf("expected latest rating 5, got %d", r.Rating)
		}
	}
}

func TestClassifyTrend(t *testing.T) {
	cases := []struct {
		improvement float64
		want        dto.TrendDirection
	}{
		{1.0, dto.TrendImproving},
		{0.6, dto.TrendImproving},
		{0.5, dto.TrendStable},
		{0.0, dto.TrendStable},
		{-0.5, dto.TrendStable},
		{-0.6, dto.TrendDeclining},
		{-2.0, dto.TrendDeclining},
	}
	for _, tc := range cases {
		if got := ClassifyTrend(tc.improvement); got != tc.want {
			t.Errorf("ClassifyTrend(%f) = %s, want %s", tc.improvement, got, tc.want)
		}
	}
}

func TestComputeTrends(t *testing.T) {
	emp := uuid.New()
	comp := uuid.New()
	single := uuid.New()
	base := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	rows := []RatedAssessment{
		row(emp, comp, "Go", "technical", 1, 2, base),
		row(emp, comp, "Go", "technical", 1, 4, base.AddDate(0, 2, 0)),
		// satu data point saja: tidak boleh muncul di trends
		row(emp, single, "SQL", "technical", 1, 3, base),
	}

	trends, monthly := ComputeTrends(rows)

	if len(trends) != 1 {
		t.Fatalf("trends = %d, want 1", len(trends))
	}
	tr := trends[0]
	if tr.CompetencyID != comp || tr.FirstRating != 2 || tr.LastRating != 4 {
		t.Fatalf("trend = %+v", tr)
	}
	if tr.Direction != dto.TrendImproving {
		t.Fatalf("direction = %s, want %s", tr.Direction, dto.TrendImproving)
	}
	if tr.DataPoints != 2 {
		t.Fatalf("data_points = %d, want 2", tr.DataPoints)
	}

	if len(monthly) != 2 {
		t.Fatalf("monthly = %d, want 2", len(monthly))
	}
	if monthly[0].Month != "2026-01" || monthly[0].Count != 2 {
		t.Fatalf("monthly[0] = %+v", monthly[0])
	}
	if math.Abs(monthly[0].AverageRating-2.5) > 1e-9 {
		t.Fatalf("monthly[0] avg = %f, want 2.5", monthly[0].AverageRating)
	}
}

func TestClassifyGapSeverity(t *testing.T) {
	cases := []struct {
		pct  float64
		want dto.GapSeverity
	}{
		{75, dto.GapSeverityHigh},
		{50, dto.GapSeverityHigh},
		{49.9, dto.GapSeverityMedium},
		{25, dto.GapSeverityMedium},
		{24.9, dto.GapSeverityLow},
		{0, dto.GapSeverityLow},
	}
	for _, tc := range cases {
		if got := ClassifyGapSeverity(tc.pct); got != tc.want {
			t.Errorf("ClassifyGapSeverity(%f) = %s, want %s", tc.pct, got, tc.want)
		}
	}
}

func TestComputeSkillGaps(t *testing.T) {
	comp := uuid.New()
	e1, e2, e3, e4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	// 2 dari 4 di bawah target (50%) dan rata-rata (2+2+3+4)/4 = 2.75
	rows := []RatedAssessment{
		row(e1, comp, "Go", "technical", 1, 2, base),
		row(e2, comp, "Go", "technical", 1, 2, base),
		row(e3, comp, "Go", "technical", 1, 3, base),
		row(e4, comp, "Go", "technical", 1, 4, base),
	}

	gaps, profiles := ComputeSkillGaps(rows)

	if len(gaps) != 1 {
		t.Fatalf("gaps = %d, want 1", len(gaps))
	}
	g := gaps[0]
	if g.BelowTarget != 2 || g.TotalAssessed != 4 {
		t.Fatalf("gap = %+v", g)
	}
	if g.Severity != dto.GapSeverityHigh {
		t.Fatalf("severity = %s, want %s", g.Severity, dto.GapSeverityHigh)
	}
	// rata-rata 2.75 >= 2.5: high tapi belum critical
	if g.CriticalGap {
		t.Fatal("avg 2.75 should not be critical")
	}

	if len(profiles) != 4 {
		t.Fatalf("profiles = %d, want 4", len(profiles))
	}
	for _, p := range profiles {
		switch p.EmployeeID {
		case e1, e2:
			if len(p.GapAreas) != 1 || len(p.StrengthAreas) != 0 {
				t.Fatalf("profile %s = %+v", p.EmployeeID, p)
			}
		case e3:
			if len(p.GapAreas) != 0 || len(p.StrengthAreas) != 0 {
				t.Fatalf("profile %s = %+v", p.EmployeeID, p)
			}
		case e4:
			if len(p.StrengthAreas) != 1 {
				t.Fatalf("profile %s = %+v", p.EmployeeID, p)
			}
		}
	}
}

func TestComputeSkillGapsCritical(t *testing.T) {
	comp := uuid.New()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := []RatedAssessment{
		row(uuid.New(), comp, "Leadership", "leadership", 1, 1, base),
		row(uuid.New(), comp, "Leadership", "leadership", 1, 2, base),
		row(uuid.New(), comp, "Leadership", "leadership", 1, 2, base),
		row(uuid.New(), comp, "Leadership", "leadership", 1, 4, base),
	}
	gaps, _ := ComputeSkillGaps(rows)
	// 3/4 below (75% high), avg 2.25 < 2.5
	if !gaps[0].CriticalGap {
		t.Fatalf("expected critical gap, got %+v", gaps[0])
	}
}

func TestComputeDistribution(t *testing.T) {
	emp := uuid.New()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	self := "self"

	r1 := row(emp, uuid.New(), "Go", "technical", 1, 4, base)
	r1.Type = &self
	r2 := row(emp, uuid.New(), "Komunikasi", "communication", 1, 2, base)

	d := ComputeDistribution([]RatedAssessment{r1, r2})

	if d.Total != 2 {
		t.Fatalf("total = %d, want 2", d.Total)
	}
	if len(d.Ratings) != 5 {
		t.Fatalf("ratings buckets = %d, want 5", len(d.Ratings))
	}
	if d.Ratings[1].Count != 1 || d.Ratings[3].Count != 1 {
		t.Fatalf("buckets = %+v", d.Ratings)
	}
	if len(d.Categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(d.Categories))
	}
	if len(d.Types) != 2 {
		t.Fatalf("types = %d, want 2", len(d.Types))
	}
	// baris tanpa type dihitung sebagai "unspecified"
	foundUnspecified := false
	for _, e := range d.Types {
		if e.Key == "unspecified" && e.Count == 1 {
			foundUnspecified = true
		}
	}
	if !foundUnspecified {
		t.Fatalf("types = %+v", d.Types)
	}
}
