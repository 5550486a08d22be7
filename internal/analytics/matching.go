package analytics

import (
	"sort"
	"strings"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
)

const RecommendationLimit = 5

var matchingRecommendations = []string{
	"Cross-train employees in complementary skills",
	"Form skill-based project teams",
	"Identify skill gaps in critical projects",
	"Develop mentorship programs within skill clusters",
}

type EmployeeMatch struct {
	Name             string   `json:"name"`
	Department       string   `json:"department"`
	MatchingSkills   []string `json:"matching_skills"`
	MatchPercentage  float64  `json:"match_percentage"`
	PerformanceScore float64  `json:"performance_score"`
}

type ProjectMatch struct {
	Project              string          `json:"project"`
	RequiredSkills       []string        `json:"required_skills"`
	CurrentTeam          []string        `json:"current_team"`
	RecommendedEmployees []EmployeeMatch `json:"recommended_employees"`
}

type SkillCluster struct {
	Skills      []string `json:"skills"`
	Employees   []string `json:"employees"`
	ClusterSize int      `json:"cluster_size"`
}

type SkillMatching struct {
	ProjectSkillMatching []ProjectMatch `json:"project_skill_matching"`
	SkillClusters        []SkillCluster `json:"skill_clusters"`
	Recommendations      []string       `json:"recommendations"`
}

// MatchSkills ranks employees against each project's required skills by
// exact set overlap, and clusters employees that hold identical skill sets.
func MatchSkills(employees []*types.Employee, projects []*types.Project) SkillMatching {
	skillSets := make([]map[string]struct{}, len(employees))
	for i, e := range employees {
		skillSets[i] = toSet(e.Skills)
	}

	matches := make([]ProjectMatch, 0, len(projects))
	for _, p := range projects {
		matches = append(matches, ProjectMatch{
			Project:              p.Name,
			RequiredSkills:       copyStrings(p.RequiredSkills),
			CurrentTeam:          copyStrings(p.TeamMembers),
			RecommendedEmployees: rankCandidates(distinct(p.RequiredSkills), employees, skillSets),
		})
	}

	return SkillMatching{
		ProjectSkillMatching: matches,
		SkillClusters:        ClusterBySkills(employees),
		Recommendations:      copyStrings(matchingRecommendations),
	}
}

// rankCandidates keeps employees with a non-zero match, ordered by match
// percentage then performance (both descending), and returns the top
// RecommendationLimit.
func rankCandidates(required []string, employees []*types.Employee, skillSets []map[string]struct{}) []EmployeeMatch {
	candidates := make([]EmployeeMatch, 0)
	if len(required) == 0 {
		return candidates
	}
	for i, e := range employees {
		matched := make([]string, 0, len(required))
		for _, s := range required {
			if _, ok := skillSets[i][s]; ok {
				matched = append(matched, s)
			}
		}
		if len(matched) == 0 {
			continue
		}
		candidates = append(candidates, EmployeeMatch{
			Name:             e.Name,
			Department:       e.Department,
			MatchingSkills:   matched,
			MatchPercentage:  round(float64(len(matched))/float64(len(required))*100, 1),
			PerformanceScore: e.PerformanceScore,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.MatchPercentage != b.MatchPercentage {
			return a.MatchPercentage > b.MatchPercentage
		}
		return a.PerformanceScore > b.PerformanceScore
	})
	if len(candidates) > RecommendationLimit {
		candidates = candidates[:RecommendationLimit]
	}
	return candidates
}

// ClusterBySkills groups employees by skill signature and returns the
// groups with more than one member, in first-seen order.
func ClusterBySkills(employees []*types.Employee) []SkillCluster {
	groups := NewOrderedMap[*SkillCluster]()
	for _, e := range employees {
		skills := SkillSignature(e.Skills)
		key := strings.Join(skills, "\x1f")
		c, ok := groups.Get(key)
		if !ok {
			c = &SkillCluster{Skills: skills, Employees: make([]string, 0, 2)}
			groups.Set(key, c)
		}
		c.Employees = append(c.Employees, e.Name)
	}

	out := make([]SkillCluster, 0)
	for _, key := range groups.Keys() {
		c, _ := groups.Get(key)
		if len(c.Employees) < 2 {
			continue
		}
		c.ClusterSize = len(c.Employees)
		out = append(out, *c)
	}
	return out
}

// SkillSignature is the sorted, de-duplicated skill list. Two employees with
// the same skills in any order share a signature.
func SkillSignature(skills []string) []string {
	out := distinct(skills)
	sort.Strings(out)
	return out
}

func distinct(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func toSet(in []string) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for _, s := range in {
		out[s] = struct{}{}
	}
	return out
}
