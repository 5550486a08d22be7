package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/workforce-analytics-backend/internal/data/repos"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

type Repos struct {
	Employee      repos.EmployeeRepo
	Project       repos.ProjectRepo
	Collaboration repos.CollaborationRepo
	SkillGap      repos.SkillGapRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger, batchSize int) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Employee:      repos.NewEmployeeRepo(db, log, batchSize),
		Project:       repos.NewProjectRepo(db, log, batchSize),
		Collaboration: repos.NewCollaborationRepo(db, log, batchSize),
		SkillGap:      repos.NewSkillGapRepo(db, log, batchSize),
	}
}
