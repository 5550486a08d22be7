package analytics

import (
	"time"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/domain/workforce"
)

type DashboardMetrics struct {
	TotalEmployees        int     `json:"total_employees"`
	TotalProjects         int     `json:"total_projects"`
	ActiveProjects        int     `json:"active_projects"`
	AvgPerformanceScore   float64 `json:"avg_performance_score"`
	AvgProductivityScore  float64 `json:"avg_productivity_score"`
	AvgProjectSuccessRate float64 `json:"avg_project_success_rate"`
}

type DashboardOverview struct {
	Metrics                DashboardMetrics `json:"metrics"`
	DepartmentDistribution *OrderedMap[int] `json:"department_distribution"`
	Timestamp              string           `json:"timestamp"`
}

// Dashboard summarizes headcount, project activity and mean scores.
// Success rate is reported as a percentage with one decimal.
func Dashboard(employees []*types.Employee, projects []*types.Project, now time.Time) DashboardOverview {
	var perfSum, prodSum float64
	departments := NewOrderedMap[int]()
	for _, e := range employees {
		perfSum += e.PerformanceScore
		prodSum += e.ProductivityScore
		n, _ := departments.Get(e.Department)
		departments.Set(e.Department, n+1)
	}

	var successSum float64
	active := 0
	for _, p := range projects {
		successSum += p.SuccessProbability
		if workforce.IsActiveStatus(p.Status) {
			active++
		}
	}

	return DashboardOverview{
		Metrics: DashboardMetrics{
			TotalEmployees:        len(employees),
			TotalProjects:         len(projects),
			ActiveProjects:        active,
			AvgPerformanceScore:   round(mean(perfSum, len(employees)), 2),
			AvgProductivityScore:  round(mean(prodSum, len(employees)), 2),
			AvgProjectSuccessRate: round(mean(successSum, len(projects))*100, 1),
		},
		DepartmentDistribution: departments,
		Timestamp:              now.UTC().Format(time.RFC3339Nano),
	}
}
