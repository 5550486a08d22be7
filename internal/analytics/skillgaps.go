package analytics

import (
	"sort"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/domain/workforce"
)

type GapDetail struct {
	Skill                   string   `json:"skill"`
	GapLevel                string   `json:"gap_level"`
	CurrentProficiency      float64  `json:"current_proficiency"`
	RequiredProficiency     float64  `json:"required_proficiency"`
	GapPercentage           float64  `json:"gap_percentage"`
	AffectedEmployees       int      `json:"affected_employees"`
	TrainingRecommendations []string `json:"training_recommendations"`
}

type CriticalGap struct {
	Department        string  `json:"department"`
	Skill             string  `json:"skill"`
	AffectedEmployees int     `json:"affected_employees"`
	GapPercentage     float64 `json:"gap_percentage"`
}

type SkillGapSummary struct {
	TotalGaps           int `json:"total_gaps"`
	CriticalGapsCount   int `json:"critical_gaps_count"`
	DepartmentsAffected int `json:"departments_affected"`
}

type SkillGapAnalysis struct {
	ByDepartment *OrderedMap[[]GapDetail] `json:"by_department"`
	CriticalGaps []CriticalGap            `json:"critical_gaps"`
	Summary      SkillGapSummary          `json:"summary"`
}

// GapPercentage is the proficiency shortfall in percentage points, one
// decimal.
func GapPercentage(g *types.SkillGap) float64 {
	return round((g.RequiredProficiency-g.CurrentProficiency)*100, 1)
}

// SkillGaps groups gaps by department and lists the critical ones, largest
// gap first. Critical is taken from GapLevel as stored; it is not derived
// from the numeric gap.
func SkillGaps(gaps []*types.SkillGap) SkillGapAnalysis {
	byDept := NewOrderedMap[[]GapDetail]()
	critical := make([]CriticalGap, 0)

	for _, g := range gaps {
		pct := GapPercentage(g)
		list, _ := byDept.Get(g.Department)
		byDept.Set(g.Department, append(list, GapDetail{
			Skill:                   g.Skill,
			GapLevel:                g.GapLevel,
			CurrentProficiency:      g.CurrentProficiency,
			RequiredProficiency:     g.RequiredProficiency,
			GapPercentage:           pct,
			AffectedEmployees:       g.AffectedEmployees,
			TrainingRecommendations: copyStrings(g.TrainingRecommendations),
		}))

		if g.GapLevel == workforce.GapLevelCritical {
			critical = append(critical, CriticalGap{
				Department:        g.Department,
				Skill:             g.Skill,
				AffectedEmployees: g.AffectedEmployees,
				GapPercentage:     pct,
			})
		}
	}

	sort.SliceStable(critical, func(i, j int) bool {
		return critical[i].GapPercentage > critical[j].GapPercentage
	})

	return SkillGapAnalysis{
		ByDepartment: byDept,
		CriticalGaps: critical,
		Summary: SkillGapSummary{
			TotalGaps:           len(gaps),
			CriticalGapsCount:   len(critical),
			DepartmentsAffected: byDept.Len(),
		},
	}
}
