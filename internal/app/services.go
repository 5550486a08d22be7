package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/workforce-analytics-backend/internal/config"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
	"github.com/yungbote/workforce-analytics-backend/internal/sampledata"
	"github.com/yungbote/workforce-analytics-backend/internal/services"
)

type Services struct {
	Analytics services.AnalyticsService
	Dataset   services.DatasetService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg *config.Config, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")

	generator := sampledata.New(nil, nil)
	if cfg.Dataset.Seed != 0 {
		log.Info("Sample generator seeded", "seed", cfg.Dataset.Seed)
		generator = sampledata.NewSeeded(cfg.Dataset.Seed, nil)
	}

	return Services{
		Analytics: services.NewAnalyticsService(
			db,
			log,
			reposet.Employee,
			reposet.Project,
			reposet.Collaboration,
			reposet.SkillGap,
		),
		Dataset: services.NewDatasetService(
			db,
			log,
			reposet.Employee,
			reposet.Project,
			reposet.Collaboration,
			reposet.SkillGap,
			generator,
			clients.Cache,
			services.NewNeo4jGraphMirror(clients.Neo4j, log),
		),
	}
}
