package repository

import (
	"context"

	"github.com/yeonsoft/crm-api/internal/domain/entity"
)

// DailyStatRepository defines the interface for daily stat rollups.
type DailyStatRepository interface {
	// Upsert writes the rollup for stat.Date, replacing the metric
	// columns when a row for that day already exists. The write is a
	// store-level upsert so concurrent syncs of the same day serialize.
	Upsert(ctx context.Context, stat *entity.DailyStat) error
	Latest(ctx context.Context) (*entity.DailyStat, error)
	// Recent returns up to limit rows, newest first.
	Recent(ctx context.Context, limit int) ([]entity.DailyStat, error)
}
