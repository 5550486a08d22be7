package workforce

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

type ProjectRepo interface {
	Create(ctx context.Context, tx *gorm.DB, projects []*types.Project) ([]*types.Project, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Project, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type projectRepo struct {
	db        *gorm.DB
	log       *logger.Logger
	batchSize int
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger, batchSize int) ProjectRepo {
	repoLog := baseLog.With("repo", "ProjectRepo")
	return &projectRepo{db: db, log: repoLog, batchSize: batchSize}
}

func (r *projectRepo) Create(ctx context.Context, tx *gorm.DB, projects []*types.Project) ([]*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(projects) == 0 {
		return []*types.Project{}, nil
	}

	seq, err := nextSeq(ctx, transaction, &types.Project{})
	if err != nil {
		return nil, fmt.Errorf("project seq: %w", err)
	}
	for i, p := range projects {
		p.Seq = seq + int64(i)
	}

	if err := transaction.WithContext(ctx).CreateInBatches(&projects, r.batchSize).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Project{}
	if err := transaction.WithContext(ctx).
		Order("seq ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Project{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *projectRepo) DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("1 = 1").
		Delete(&types.Project{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
