package workforce

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

type SkillGapRepo interface {
	Create(ctx context.Context, tx *gorm.DB, gaps []*types.SkillGap) ([]*types.SkillGap, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.SkillGap, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type skillGapRepo struct {
	db        *gorm.DB
	log       *logger.Logger
	batchSize int
}

func NewSkillGapRepo(db *gorm.DB, baseLog *logger.Logger, batchSize int) SkillGapRepo {
	repoLog := baseLog.With("repo", "SkillGapRepo")
	return &skillGapRepo{db: db, log: repoLog, batchSize: batchSize}
}

func (r *skillGapRepo) Create(ctx context.Context, tx *gorm.DB, gaps []*types.SkillGap) ([]*types.SkillGap, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(gaps) == 0 {
		return []*types.SkillGap{}, nil
	}

	seq, err := nextSeq(ctx, transaction, &types.SkillGap{})
	if err != nil {
		return nil, fmt.Errorf("skill gap seq: %w", err)
	}
	for i, g := range gaps {
		g.Seq = seq + int64(i)
	}

	if err := transaction.WithContext(ctx).CreateInBatches(&gaps, r.batchSize).Error; err != nil {
		return nil, err
	}
	return gaps, nil
}

func (r *skillGapRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.SkillGap, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.SkillGap{}
	if err := transaction.WithContext(ctx).
		Order("seq ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *skillGapRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.SkillGap{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *skillGapRepo) DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("1 = 1").
		Delete(&types.SkillGap{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
