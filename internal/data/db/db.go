package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/workforce-analytics-backend/internal/config"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

// Service owns the single store handle for the process. The *gorm.DB it
// hands out is safe for concurrent use and is injected into every repo.
type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(cfg config.StoreConfig, logg *logger.Logger) (*Service, error) {
	serviceLog := logg.With("service", "StoreService", "driver", cfg.Driver)

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	gcfg := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLog,
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.URL)
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, fmt.Errorf("connect to %s store: %w", cfg.Driver, err)
	}

	serviceLog.Info("Store connected", "database", cfg.Name)
	return &Service{db: db, log: serviceLog}, nil
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) AutoMigrateAll() error {
	if err := AutoMigrateAll(s.db); err != nil {
		return fmt.Errorf("store automigrate: %w", err)
	}
	return nil
}

func (s *Service) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
