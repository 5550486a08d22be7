package analytics

import (
	"bytes"
	"encoding/json"
	"testing"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
)

func emp(name, dept string, perf float64, skills ...string) *types.Employee {
	return &types.Employee{
		Name:               name,
		Department:         dept,
		Role:               "Analyst",
		Skills:             skills,
		ExperienceYears:    4,
		PerformanceScore:   perf,
		CollaborationIndex: 0.5,
		ProductivityScore:  0.7,
	}
}

func proj(name, status string, prob float64, team ...string) *types.Project {
	return &types.Project{
		Name:               name,
		Status:             status,
		SuccessProbability: prob,
		TeamMembers:        team,
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
