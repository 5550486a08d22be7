package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/workforce-analytics-backend/internal/data/repos/workforce"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

type EmployeeRepo = workforce.EmployeeRepo
type ProjectRepo = workforce.ProjectRepo
type CollaborationRepo = workforce.CollaborationRepo
type SkillGapRepo = workforce.SkillGapRepo

func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger, batchSize int) EmployeeRepo {
	return workforce.NewEmployeeRepo(db, baseLog, batchSize)
}
func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger, batchSize int) ProjectRepo {
	return workforce.NewProjectRepo(db, baseLog, batchSize)
}
func NewCollaborationRepo(db *gorm.DB, baseLog *logger.Logger, batchSize int) CollaborationRepo {
	return workforce.NewCollaborationRepo(db, baseLog, batchSize)
}
func NewSkillGapRepo(db *gorm.DB, baseLog *logger.Logger, batchSize int) SkillGapRepo {
	return workforce.NewSkillGapRepo(db, baseLog, batchSize)
}
