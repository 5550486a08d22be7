package workforce

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

type EmployeeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, employees []*types.Employee) ([]*types.Employee, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Employee, error)
	GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.Employee, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type employeeRepo struct {
	db        *gorm.DB
	log       *logger.Logger
	batchSize int
}

func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger, batchSize int) EmployeeRepo {
	repoLog := baseLog.With("repo", "EmployeeRepo")
	return &employeeRepo{db: db, log: repoLog, batchSize: batchSize}
}

func (r *employeeRepo) Create(ctx context.Context, tx *gorm.DB, employees []*types.Employee) ([]*types.Employee, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(employees) == 0 {
		return []*types.Employee{}, nil
	}

	seq, err := nextSeq(ctx, transaction, &types.Employee{})
	if err != nil {
		return nil, fmt.Errorf("employee seq: %w", err)
	}
	for i, e := range employees {
		e.Seq = seq + int64(i)
	}

	if err := transaction.WithContext(ctx).CreateInBatches(&employees, r.batchSize).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Employee, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Employee{}
	if err := transaction.WithContext(ctx).
		Order("seq ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *employeeRepo) GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.Employee, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Employee{}
	if len(names) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("name IN ?", names).
		Order("seq ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *employeeRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Employee{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *employeeRepo) DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("1 = 1").
		Delete(&types.Employee{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
