package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/workforce-analytics-backend/internal/data/db"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logg, err := logger.New("test")
	if err != nil {
		tb.Fatalf("failed to init logger: %v", err)
	}
	return logg
}

// DB opens a migrated SQLite store in a per-test temp dir.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "workforce.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}
