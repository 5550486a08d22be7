package analytics

import (
	"fmt"
	"testing"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
)

func TestPerformanceDepartmentMeans(t *testing.T) {
	a := emp("A", "Sales", 0.8)
	a.ProductivityScore = 0.6
	b := emp("B", "HR", 0.7)
	c := emp("C", "Sales", 0.9)
	c.ProductivityScore = 0.9
	c.ExperienceYears = 11

	got := Performance([]*types.Employee{a, b, c})

	if js := mustJSON(t, got.DepartmentPerformance); js != `{"Sales":0.85,"HR":0.7}` {
		t.Fatalf("performance=%s", js)
	}
	if js := mustJSON(t, got.DepartmentProductivity); js != `{"Sales":0.75,"HR":0.7}` {
		t.Fatalf("productivity=%s", js)
	}
	if len(got.ExperienceCorrelation) != 3 {
		t.Fatalf("points=%d", len(got.ExperienceCorrelation))
	}
	want := ExperiencePoint{Experience: 11, Performance: 0.9, Productivity: 0.9, Collaboration: 0.5}
	if got.ExperienceCorrelation[2] != want {
		t.Fatalf("point=%+v", got.ExperienceCorrelation[2])
	}
	if len(got.Insights) != 4 {
		t.Fatalf("insights=%v", got.Insights)
	}
}

func TestTopPerformersStableAndCapped(t *testing.T) {
	employees := make([]*types.Employee, 0, 12)
	for i := 0; i < 12; i++ {
		employees = append(employees, emp(fmt.Sprintf("E%d", i), "Ops", 0.7))
	}
	employees[5].PerformanceScore = 0.95
	employees[9].PerformanceScore = 0.95

	got := Performance(employees).TopPerformers

	if len(got) != TopPerformerLimit {
		t.Fatalf("len=%d", len(got))
	}
	if got[0].Name != "E5" || got[1].Name != "E9" || got[2].Name != "E0" {
		t.Fatalf("order=%v,%v,%v", got[0].Name, got[1].Name, got[2].Name)
	}
	// input order is left alone
	if employees[0].Name != "E0" || employees[5].Name != "E5" {
		t.Fatalf("input reordered")
	}
}

func TestPerformanceEmpty(t *testing.T) {
	js := mustJSON(t, Performance(nil))
	want := `{"department_performance":{},"department_productivity":{},"top_performers":[],"experience_correlation":[],"insights":["Performance strongly correlates with experience in most departments","Top performers show high collaboration indices","Engineering department shows highest average productivity","Consider cross-department knowledge sharing initiatives"]}`
	if js != want {
		t.Fatalf("json=%s", js)
	}
}
