package repository

import (
	"context"
	"errors"

	"github.com/yeonsoft/crm-api/internal/domain/entity"
	domainRepo "github.com/yeonsoft/crm-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dailyStatRepository struct {
	db *gorm.DB
}

// NewDailyStatRepository creates a new daily stat repository
func NewDailyStatRepository(db *gorm.DB) domainRepo.DailyStatRepository {
	return &dailyStatRepository{db: db}
}

// Upsert relies on the store's ON CONFLICT handling so that two syncs
// of the same day serialize instead of racing on read-then-write.
func (r *dailyStatRepository) Upsert(ctx context.Context, stat *entity.DailyStat) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"page_views", "visitors", "signups", "inquiries", "revenue", "updated_at",
		}),
	}).Create(stat).Error
}

func (r *dailyStatRepository) Latest(ctx context.Context) (*entity.DailyStat, error) {
	var stat entity.DailyStat
	err := r.db.WithContext(ctx).Order("date DESC").First(&stat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stat, err
}

func (r *dailyStatRepository) Recent(ctx context.Context, limit int) ([]entity.DailyStat, error) {
	var stats []entity.DailyStat
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&stats).Error
	return stats, err
}
