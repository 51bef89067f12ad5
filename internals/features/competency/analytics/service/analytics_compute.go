// file: internals/features/competency/analytics/service/analytics_compute.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	dto "kompetensiku_backend/internals/features/competency/analytics/dto"
)

// RatedAssessment: satu baris hasil join assessments x competencies.
// Semua perhitungan analytics bekerja di atas slice tipe ini, tanpa DB.
type RatedAssessment struct {
	AssessmentID   uuid.UUID  `gorm:"column:assessment_id"`
	EmployeeID     uuid.UUID  `gorm:"column:assessment_employee_id"`
	CompetencyID   uuid.UUID  `gorm:"column:assessment_competency_id"`
	CompetencyName string     `gorm:"column:competency_name"`
	Category       string     `gorm:"column:competency_category"`
	Weight         float64    `gorm:"column:competency_weight"`
	Rating         int        `gorm:"column:assessment_rating"`
	Type           *string    `gorm:"column:assessment_type"`
	CycleID        *uuid.UUID `gorm:"column:assessment_cycle_id"`
	SubmittedAt    *time.Time `gorm:"column:assessment_submitted_at"`
	CreatedAt      time.Time  `gorm:"column:assessment_created_at"`
}

func (r RatedAssessment) observedAt() time.Time {
	if r.SubmittedAt != nil {
		return *r.SubmittedAt
	}
	return r.CreatedAt
}

// LatestPerCompetency: kalau tanpa cycle, hanya assessment approved TERBARU
// per kompetensi yang dihitung.
func LatestPerCompetency(rows []RatedAssessment) []RatedAssessment {
	latest := make(map[uuid.UUID]RatedAssessment, len(rows))
	for _, r := range rows {
		cur, ok := latest[r.CompetencyID]
		if !ok || r.CreatedAt.After(cur.CreatedAt) {
			latest[r.CompetencyID] = r
		}
	}
	out := make([]RatedAssessment, 0, len(latest))
	for _, r := range latest {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompetencyName < out[j].CompetencyName })
	return out
}

// ComputeWeightedScore: Σ(rating×weight) / Σ(weight); 0 kalau kosong.
// Rollup kategori memakai rumus yang sama per competency_category.
func ComputeWeightedScore(rows []RatedAssessment) (float64, []dto.CategoryScore) {
	var sumWeighted, sumWeight float64
	type catAgg struct {
		weighted, weight float64
		count            int
	}
	cats := map[string]*catAgg{}

	for _, r := range rows {
		w := r.Weight
		if w <= 0 {
			w = 1.0
		}
		sumWeighted += float64(r.Rating) * w
		sumWeight += w

		agg, ok := cats[r.Category]
		if !ok {
			agg = &catAgg{}
			cats[r.Category] = agg
		}
		agg.weighted += float64(r.Rating) * w
		agg.weight += w
		agg.count++
	}

	overall := 0.0
	if sumWeight > 0 {
		overall = sumWeighted / sumWeight
	}

	out := make([]dto.CategoryScore, 0, len(cats))
	for name, agg := range cats {
		score := 0.0
		if agg.weight > 0 {
			score = agg.weighted / agg.weight
		}
		out = append(out, dto.CategoryScore{Category: name, Score: score, AssessmentCount: agg.count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return overall, out
}

// ClassifyTrend: > 0.5 improving, < -0.5 declining, sisanya stable.
func ClassifyTrend(improvement float64) dto.TrendDirection {
	switch {
	case improvement > 0.5:
		return dto.TrendImproving
	case improvement < -0.5:
		return dto.TrendDeclining
	default:
		return dto.TrendStable
	}
}

// ComputeTrends: per kompetensi butuh >= 2 data point dalam window;
// improvement = rating terakhir - rating pertama urut waktu.
// Sekalian bucket rata-rata bulanan lintas kompetensi.
func ComputeTrends(rows []RatedAssessment) ([]dto.CompetencyTrend, []dto.MonthlyAverage) {
	byCompetency := map[uuid.UUID][]RatedAssessment{}
	for _, r := range rows {
		byCompetency[r.CompetencyID] = append(byCompetency[r.CompetencyID], r)
	}

	trends := make([]dto.CompetencyTrend, 0, len(byCompetency))
	for id, series := range byCompetency {
		if len(series) < 2 {
			continue
		}
		sort.Slice(series, func(i, j int) bool { return series[i].observedAt().Before(series[j].observedAt()) })
		first, last := series[0], series[len(series)-1]
		improvement := float64(last.Rating - first.Rating)
		trends = append(trends, dto.CompetencyTrend{
			CompetencyID:   id,
			CompetencyName: first.CompetencyName,
			FirstRating:    first.Rating,
			LastRating:     last.Rating,
			Improvement:    improvement,
			Direction:      ClassifyTrend(improvement),
			DataPoints:     len(series),
		})
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].CompetencyName < trends[j].CompetencyName })

	type monthAgg struct {
		sum   int
		count int
	}
	months := map[string]*monthAgg{}
	for _, r := range rows {
		key := r.observedAt().Format("2006-01")
		agg, ok := months[key]
		if !ok {
			agg = &monthAgg{}
			months[key] = agg
		}
		agg.sum += r.Rating
		agg.count++
	}
	monthly := make([]dto.MonthlyAverage, 0, len(months))
	for key, agg := range months {
		monthly = append(monthly, dto.MonthlyAverage{
			Month:         key,
			AverageRating: float64(agg.sum) / float64(agg.count),
			Count:         agg.count,
		})
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })
	return trends, monthly
}

// ClassifyGapSeverity: >= 50% high, >= 25% medium, sisanya low.
func ClassifyGapSeverity(belowTargetPct float64) dto.GapSeverity {
	switch {
	case belowTargetPct >= 50:
		return dto.GapSeverityHigh
	case belowTargetPct >= 25:
		return dto.GapSeverityMedium
	default:
		return dto.GapSeverityLow
	}
}

// ComputeSkillGaps: agregasi populasi per kompetensi + profil gap per karyawan.
// Target rating = 3; critical kalau severity high DAN rata-rata < 2.5.
func ComputeSkillGaps(rows []RatedAssessment) ([]dto.CompetencyGap, []dto.EmployeeGapProfile) {
	type compAgg struct {
		name, category string
		total, below   int
		sum            int
	}
	comps := map[uuid.UUID]*compAgg{}
	type empAgg struct {
		gaps, strengths []uuid.UUID
	}
	emps := map[uuid.UUID]*empAgg{}

	for _, r := range rows {
		agg, ok := comps[r.CompetencyID]
		if !ok {
			agg = &compAgg{name: r.CompetencyName, category: r.Category}
			comps[r.CompetencyID] = agg
		}
		agg.total++
		agg.sum += r.Rating
		if r.Rating < 3 {
			agg.below++
		}

		e, ok := emps[r.EmployeeID]
		if !ok {
			e = &empAgg{}
			emps[r.EmployeeID] = e
		}
		if r.Rating < 3 {
			e.gaps = append(e.gaps, r.CompetencyID)
		} else if r.Rating >= 4 {
			e.strengths = append(e.strengths, r.CompetencyID)
		}
	}

	gaps := make([]dto.CompetencyGap, 0, len(comps))
	for id, agg := range comps {
		pct := float64(agg.below) / float64(agg.total) * 100
		avg := float64(agg.sum) / float64(agg.total)
		severity := ClassifyGapSeverity(pct)
		gaps = append(gaps, dto.CompetencyGap{
			CompetencyID:   id,
			CompetencyName: agg.name,
			Category:       agg.category,
			TotalAssessed:  agg.total,
			BelowTarget:    agg.below,
			BelowTargetPct: pct,
			AverageRating:  avg,
			Severity:       severity,
			CriticalGap:    severity == dto.GapSeverityHigh && avg < 2.5,
		})
	}
	sort.Slice(gaps, func(i, j int) bool { return gaps[i].CompetencyName < gaps[j].CompetencyName })

	profiles := make([]dto.EmployeeGapProfile, 0, len(emps))
	for id, e := range emps {
		profiles = append(profiles, dto.EmployeeGapProfile{
			EmployeeID:    id,
			GapAreas:      e.gaps,
			StrengthAreas: e.strengths,
		})
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].EmployeeID.String() < profiles[j].EmployeeID.String()
	})
	return gaps, profiles
}

// ComputeDistribution: hitung rating 1..5, breakdown kategori dan tipe.
func ComputeDistribution(rows []RatedAssessment) dto.DistributionResponse {
	ratings := [5]int{}
	type agg struct {
		sum, count int
	}
	cats := map[string]*agg{}
	types := map[string]*agg{}

	for _, r := range rows {
		if r.Rating >= 1 && r.Rating <= 5 {
			ratings[r.Rating-1]++
		}
		c, ok := cats[r.Category]
		if !ok {
			c = &agg{}
			cats[r.Category] = c
		}
		c.sum += r.Rating
		c.count++

		typeKey := "unspecified"
		if r.Type != nil && *r.Type != "" {
			typeKey = *r.Type
		}
		t, ok := types[typeKey]
		if !ok {
			t = &agg{}
			types[typeKey] = t
		}
		t.sum += r.Rating
		t.count++
	}

	buckets := make([]dto.RatingBucket, 5)
	for i := range buckets {
		buckets[i] = dto.RatingBucket{Rating: i + 1, Count: ratings[i]}
	}
	toEntries := func(m map[string]*agg) []dto.BreakdownEntry {
		out := make([]dto.BreakdownEntry, 0, len(m))
		for key, a := range m {
			out = append(out, dto.BreakdownEntry{
				Key:           key,
				Count:         a.count,
				AverageRating: float64(a.sum) / float64(a.count),
			})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
		return out
	}
	return dto.DistributionResponse{
		Total:      len(rows),
		Ratings:    buckets,
		Categories: toEntries(cats),
		Types:      toEntries(types),
	}
}
