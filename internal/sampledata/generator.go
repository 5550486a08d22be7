// Package sampledata builds the synthetic workforce dataset written by
// initialization. Every draw goes through one *rand.Rand so a fixed seed
// reproduces the whole dataset.
package sampledata

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/domain/workforce"
)

const (
	EmployeeCount      = 50
	CollaborationCount = 100
	GapsPerDepartment  = 3
)

var (
	Roles = []string{"Manager", "Senior", "Junior", "Lead", "Specialist", "Analyst"}

	SkillPool = []string{
		"Python", "JavaScript", "Data Analysis", "Project Management", "Communication",
		"Leadership", "Machine Learning", "Cloud Computing", "Agile", "Marketing Strategy",
		"Sales Management", "Financial Analysis", "HR Operations", "Team Leadership",
	}

	ProjectNames = []string{
		"AI Platform Development", "Customer Analytics Dashboard", "Mobile App Redesign",
		"Cloud Migration", "Marketing Automation", "Sales CRM Enhancement",
		"Financial Reporting System", "HR Digital Transformation",
	}

	GapSkills = []string{
		"Python", "Machine Learning", "Cloud Computing", "Data Analysis", "Digital Marketing",
		"Sales Analytics", "Financial Modeling", "HR Technology", "Project Management",
	}

	// extraRequiredSkills are added to the first employee's skills to form the
	// pool projects draw their required skills from.
	extraRequiredSkills = []string{"Leadership", "Communication"}
)

type Dataset struct {
	Employees      []*types.Employee
	Projects       []*types.Project
	Collaborations []*types.CollaborationEdge
	SkillGaps      []*types.SkillGap
}

type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New returns a generator drawing from rng. A nil rng is seeded from the
// runtime's entropy source; a nil now uses time.Now.
func New(rng *rand.Rand, now func() time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now}
}

// NewSeeded is New with a deterministic PCG source.
func NewSeeded(seed uint64, now func() time.Time) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), now)
}

// Generate produces employees, then projects staffed from them, then
// collaborations between them, then department skill gaps.
func (g *Generator) Generate() (*Dataset, error) {
	employees := g.Employees()
	projects, err := g.Projects(employees)
	if err != nil {
		return nil, err
	}
	collaborations, err := g.Collaborations(employees)
	if err != nil {
		return nil, err
	}
	return &Dataset{
		Employees:      employees,
		Projects:       projects,
		Collaborations: collaborations,
		SkillGaps:      g.SkillGaps(),
	}, nil
}

func (g *Generator) Employees() []*types.Employee {
	out := make([]*types.Employee, 0, EmployeeCount)
	for i := 0; i < EmployeeCount; i++ {
		skills := sample(g.rng, SkillPool, g.between(3, 6))
		out = append(out, &types.Employee{
			Name:               fmt.Sprintf("Employee %d", i+1),
			Department:         pick(g.rng, workforce.Departments),
			Role:               pick(g.rng, Roles),
			Skills:             skills,
			ExperienceYears:    g.between(1, 14),
			PerformanceScore:   g.uniform(0.6, 1.0),
			CollaborationIndex: g.uniform(0.3, 1.0),
			ProductivityScore:  g.uniform(0.5, 1.0),
		})
	}
	return out
}

// Projects staffs one project per entry of ProjectNames with 3 to 7 distinct
// employees. Required skills come from the first employee's skills plus
// Leadership and Communication.
func (g *Generator) Projects(employees []*types.Employee) ([]*types.Project, error) {
	if len(employees) == 0 {
		return nil, fmt.Errorf("projects need at least one employee")
	}
	names := make([]string, 0, len(employees))
	for _, e := range employees {
		names = append(names, e.Name)
	}
	requiredPool := dedupe(append(copyOf(employees[0].Skills), extraRequiredSkills...))

	start := g.now().UTC()
	out := make([]*types.Project, 0, len(ProjectNames))
	for _, name := range ProjectNames {
		team := sample(g.rng, names, min(g.between(3, 7), len(names)))
		required := sample(g.rng, requiredPool, min(g.between(2, 4), len(requiredPool)))
		out = append(out, &types.Project{
			Name:                name,
			Description:         "Description for " + name,
			Status:              pick(g.rng, workforce.ProjectStatuses),
			SuccessProbability:  g.uniform(0.4, 0.95),
			TeamMembers:         team,
			RequiredSkills:      required,
			StartDate:           start,
			EstimatedCompletion: start.AddDate(0, 0, g.between(30, 180)),
		})
	}
	return out, nil
}

// Collaborations draws CollaborationCount edges between two distinct
// employees. Pairs may repeat.
func (g *Generator) Collaborations(employees []*types.Employee) ([]*types.CollaborationEdge, error) {
	if len(employees) < 2 {
		return nil, fmt.Errorf("collaborations need at least two employees, have %d", len(employees))
	}
	out := make([]*types.CollaborationEdge, 0, CollaborationCount)
	for i := 0; i < CollaborationCount; i++ {
		pair := sample(g.rng, employees, 2)
		out = append(out, &types.CollaborationEdge{
			EmployeeA:             pair[0].Name,
			EmployeeB:             pair[1].Name,
			InteractionFrequency:  g.uniform(0.1, 1.0),
			CollaborationStrength: g.uniform(0.2, 1.0),
			ProjectsShared:        g.between(0, 4),
		})
	}
	return out, nil
}

// SkillGaps emits GapsPerDepartment distinct skills for every department.
// The level is drawn independently of the proficiencies.
func (g *Generator) SkillGaps() []*types.SkillGap {
	out := make([]*types.SkillGap, 0, len(workforce.Departments)*GapsPerDepartment)
	for _, dept := range workforce.Departments {
		for _, skill := range sample(g.rng, GapSkills, GapsPerDepartment) {
			out = append(out, &types.SkillGap{
				Department:          dept,
				Skill:               skill,
				GapLevel:            pick(g.rng, workforce.GapLevels),
				CurrentProficiency:  g.uniform(0.3, 0.7),
				RequiredProficiency: g.uniform(0.7, 1.0),
				AffectedEmployees:   g.between(5, 19),
				TrainingRecommendations: []string{
					fmt.Sprintf("Online %s certification", skill),
					fmt.Sprintf("Hands-on %s workshop", skill),
					fmt.Sprintf("Mentorship program for %s", skill),
				},
			})
		}
	}
	return out
}

// between is a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// uniform is a uniform float in [lo, hi) rounded to two decimals.
func (g *Generator) uniform(lo, hi float64) float64 {
	v := lo + g.rng.Float64()*(hi-lo)
	return math.Round(v*100) / 100
}

func pick[T any](rng *rand.Rand, from []T) T {
	return from[rng.IntN(len(from))]
}

// sample draws k distinct elements without replacement, in draw order.
func sample[T any](rng *rand.Rand, from []T, k int) []T {
	pool := make([]T, len(from))
	copy(pool, from)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}

func copyOf(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func dedupe(in []string) []string {
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
