package domain

import (
	"github.com/yungbote/workforce-analytics-backend/internal/domain/workforce"
)

type Employee = workforce.Employee
type Project = workforce.Project
type CollaborationEdge = workforce.CollaborationEdge
type SkillGap = workforce.SkillGap

// AllModels lists every persisted record type, in migration order.
func AllModels() []any {
	return []any{
		&workforce.Employee{},
		&workforce.Project{},
		&workforce.CollaborationEdge{},
		&workforce.SkillGap{},
	}
}
