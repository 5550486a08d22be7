package testutil

import (
	"time"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
)

func Employee(name, department string, perf float64, skills ...string) *types.Employee {
	return &types.Employee{
		Name:               name,
		Department:         department,
		Role:               "Analyst",
		Skills:             skills,
		ExperienceYears:    3,
		PerformanceScore:   perf,
		CollaborationIndex: 0.5,
		ProductivityScore:  0.7,
	}
}

func Project(name, status string, prob float64, team []string, required ...string) *types.Project {
	now := time.Now().UTC()
	return &types.Project{
		Name:                name,
		Description:         "Description for " + name,
		Status:              status,
		SuccessProbability:  prob,
		TeamMembers:         team,
		RequiredSkills:      required,
		StartDate:           now,
		EstimatedCompletion: now.AddDate(0, 3, 0),
	}
}

func Edge(a, b string, strength float64) *types.CollaborationEdge {
	return &types.CollaborationEdge{
		EmployeeA:             a,
		EmployeeB:             b,
		InteractionFrequency:  0.5,
		CollaborationStrength: strength,
		ProjectsShared:        1,
	}
}

func Gap(department, skill, level string, current, required float64) *types.SkillGap {
	return &types.SkillGap{
		Department:              department,
		Skill:                   skill,
		GapLevel:                level,
		CurrentProficiency:      current,
		RequiredProficiency:     required,
		AffectedEmployees:       7,
		TrainingRecommendations: []string{"Online " + skill + " certification"},
	}
}
