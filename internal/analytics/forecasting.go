package analytics

import (
	"fmt"
	"sort"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/domain/workforce"
)

const (
	// HighSuccessThreshold and RiskThreshold are inclusive lower bounds of
	// the high and medium buckets.
	HighSuccessThreshold = 0.8
	RiskThreshold        = 0.6

	BucketHigh   = "high"
	BucketMedium = "medium"
	BucketLow    = "low"
)

// SuccessBucket classifies a success probability. Boundary values belong to
// the higher bucket.
func SuccessBucket(prob float64) string {
	switch {
	case prob >= HighSuccessThreshold:
		return BucketHigh
	case prob >= RiskThreshold:
		return BucketMedium
	default:
		return BucketLow
	}
}

type RiskProject struct {
	Name               string  `json:"name"`
	SuccessProbability float64 `json:"success_probability"`
	Status             string  `json:"status"`
	TeamSize           int     `json:"team_size"`
}

type ProjectForecast struct {
	SuccessDistribution    *OrderedMap[int]     `json:"success_distribution"`
	StatusDistribution     *OrderedMap[int]     `json:"status_distribution"`
	DepartmentSuccessRates *OrderedMap[float64] `json:"department_success_rates"`
	RiskProjects           []RiskProject        `json:"risk_projects"`
	ForecastingInsights    []string             `json:"forecasting_insights"`
}

type deptTally struct {
	total int
	sum   float64
}

// Forecast buckets projects by success probability and attributes each
// project to the department of the first employee, in collection order, who
// is on its team. members must be in collection order and only needs to
// contain the employees named in some team; projects whose team resolves to
// nobody are left out of the department rates.
func Forecast(projects []*types.Project, members []*types.Employee) ProjectForecast {
	success := NewOrderedMap[int]()
	success.Set(BucketHigh, 0)
	success.Set(BucketMedium, 0)
	success.Set(BucketLow, 0)
	status := NewOrderedMap[int]()
	tallies := NewOrderedMap[deptTally]()
	risk := make([]RiskProject, 0)

	for _, p := range projects {
		bucket := SuccessBucket(p.SuccessProbability)
		n, _ := success.Get(bucket)
		success.Set(bucket, n+1)

		c, _ := status.Get(p.Status)
		status.Set(p.Status, c+1)

		if dept, ok := leadDepartment(p, members); ok {
			t, _ := tallies.Get(dept)
			t.total++
			t.sum += p.SuccessProbability
			tallies.Set(dept, t)
		}

		if p.SuccessProbability < RiskThreshold {
			risk = append(risk, RiskProject{
				Name:               p.Name,
				SuccessProbability: p.SuccessProbability,
				Status:             p.Status,
				TeamSize:           len(p.TeamMembers),
			})
		}
	}

	rates := NewOrderedMap[float64]()
	for _, dept := range tallies.Keys() {
		t, _ := tallies.Get(dept)
		rates.Set(dept, round(mean(t.sum, t.total)*100, 1))
	}

	sort.SliceStable(risk, func(i, j int) bool {
		return risk[i].SuccessProbability < risk[j].SuccessProbability
	})

	high, _ := success.Get(BucketHigh)
	closing := "Department performance varies"
	if rates.Has(workforce.DepartmentEngineering) {
		closing = "Engineering has the highest project success rate"
	}

	return ProjectForecast{
		SuccessDistribution:    success,
		StatusDistribution:     status,
		DepartmentSuccessRates: rates,
		RiskProjects:           risk,
		ForecastingInsights: []string{
			fmt.Sprintf("Total of %d projects tracked", len(projects)),
			fmt.Sprintf("%d projects have high success probability (≥80%%)", high),
			fmt.Sprintf("%d projects are at risk (success rate <60%%)", len(risk)),
			closing,
		},
	}
}

// leadDepartment returns the department of the first member, in the order
// given, whose name is on the project's team. Team order does not matter.
func leadDepartment(p *types.Project, members []*types.Employee) (string, bool) {
	if len(p.TeamMembers) == 0 {
		return "", false
	}
	team := toSet(p.TeamMembers)
	for _, e := range members {
		if e == nil {
			continue
		}
		if _, ok := team[e.Name]; ok {
			return e.Department, true
		}
	}
	return "", false
}

// TeamMemberNames is the de-duplicated union of every project's team, in
// first-seen order. It is the filter used to load forecast members.
func TeamMemberNames(projects []*types.Project) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, p := range projects {
		for _, name := range p.TeamMembers {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
