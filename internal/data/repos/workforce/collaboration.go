package workforce

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

type CollaborationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, edges []*types.CollaborationEdge) ([]*types.CollaborationEdge, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.CollaborationEdge, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type collaborationRepo struct {
	db        *gorm.DB
	log       *logger.Logger
	batchSize int
}

func NewCollaborationRepo(db *gorm.DB, baseLog *logger.Logger, batchSize int) CollaborationRepo {
	repoLog := baseLog.With("repo", "CollaborationRepo")
	return &collaborationRepo{db: db, log: repoLog, batchSize: batchSize}
}

func (r *collaborationRepo) Create(ctx context.Context, tx *gorm.DB, edges []*types.CollaborationEdge) ([]*types.CollaborationEdge, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(edges) == 0 {
		return []*types.CollaborationEdge{}, nil
	}

	seq, err := nextSeq(ctx, transaction, &types.CollaborationEdge{})
	if err != nil {
		return nil, fmt.Errorf("collaboration seq: %w", err)
	}
	for i, e := range edges {
		e.Seq = seq + int64(i)
	}

	if err := transaction.WithContext(ctx).CreateInBatches(&edges, r.batchSize).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

func (r *collaborationRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.CollaborationEdge, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.CollaborationEdge{}
	if err := transaction.WithContext(ctx).
		Order("seq ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *collaborationRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.CollaborationEdge{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *collaborationRepo) DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("1 = 1").
		Delete(&types.CollaborationEdge{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
