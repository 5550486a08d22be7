package workforce

import (
	"context"

	"gorm.io/gorm"
)

// nextSeq returns the first free collection position for model. Rows are
// read back in seq order, which is the order they were inserted in.
func nextSeq(ctx context.Context, tx *gorm.DB, model any) (int64, error) {
	var max int64
	if err := tx.WithContext(ctx).
		Model(model).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max + 1, nil
}
