package analytics

import (
	"sort"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
)

const TopPerformerLimit = 10

var performanceInsights = []string{
	"Performance strongly correlates with experience in most departments",
	"Top performers show high collaboration indices",
	"Engineering department shows highest average productivity",
	"Consider cross-department knowledge sharing initiatives",
}

type TopPerformer struct {
	Name              string  `json:"name"`
	Department        string  `json:"department"`
	PerformanceScore  float64 `json:"performance_score"`
	ProductivityScore float64 `json:"productivity_score"`
}

// ExperiencePoint is one row of raw plotting data; no correlation is
// computed server-side.
type ExperiencePoint struct {
	Experience    int     `json:"experience"`
	Performance   float64 `json:"performance"`
	Productivity  float64 `json:"productivity"`
	Collaboration float64 `json:"collaboration"`
}

type PerformanceTrends struct {
	DepartmentPerformance  *OrderedMap[float64] `json:"department_performance"`
	DepartmentProductivity *OrderedMap[float64] `json:"department_productivity"`
	TopPerformers          []TopPerformer       `json:"top_performers"`
	ExperienceCorrelation  []ExperiencePoint    `json:"experience_correlation"`
	Insights               []string             `json:"insights"`
}

type scoreTally struct {
	n       int
	perf    float64
	product float64
}

func Performance(employees []*types.Employee) PerformanceTrends {
	tallies := NewOrderedMap[scoreTally]()
	points := make([]ExperiencePoint, 0, len(employees))
	for _, e := range employees {
		t, _ := tallies.Get(e.Department)
		t.n++
		t.perf += e.PerformanceScore
		t.product += e.ProductivityScore
		tallies.Set(e.Department, t)

		points = append(points, ExperiencePoint{
			Experience:    e.ExperienceYears,
			Performance:   e.PerformanceScore,
			Productivity:  e.ProductivityScore,
			Collaboration: e.CollaborationIndex,
		})
	}

	perf := NewOrderedMap[float64]()
	prod := NewOrderedMap[float64]()
	for _, dept := range tallies.Keys() {
		t, _ := tallies.Get(dept)
		perf.Set(dept, round(mean(t.perf, t.n), 2))
		prod.Set(dept, round(mean(t.product, t.n), 2))
	}

	return PerformanceTrends{
		DepartmentPerformance:  perf,
		DepartmentProductivity: prod,
		TopPerformers:          topPerformers(employees, TopPerformerLimit),
		ExperienceCorrelation:  points,
		Insights:               copyStrings(performanceInsights),
	}
}

// topPerformers sorts a copy of employees by performance, highest first,
// keeping collection order among equal scores.
func topPerformers(employees []*types.Employee, limit int) []TopPerformer {
	sorted := make([]*types.Employee, len(employees))
	copy(sorted, employees)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PerformanceScore > sorted[j].PerformanceScore
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]TopPerformer, 0, len(sorted))
	for _, e := range sorted {
		out = append(out, TopPerformer{
			Name:              e.Name,
			Department:        e.Department,
			PerformanceScore:  e.PerformanceScore,
			ProductivityScore: e.ProductivityScore,
		})
	}
	return out
}
