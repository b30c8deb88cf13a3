package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	domainRepo "github.com/yeonsoft/crm-api/internal/domain/repository"
	"github.com/yeonsoft/crm-api/pkg/money"
	"gorm.io/gorm"
)

type estimateRepository struct {
	db *gorm.DB
}

// NewEstimateRepository creates a new estimate repository
func NewEstimateRepository(db *gorm.DB) domainRepo.EstimateRepository {
	return &estimateRepository{db: db}
}

// nextEstimateNum claims the next per-year sequence inside tx. The
// upsert serializes concurrent creates on the counter row, so two
// estimates can never share a number. Sequences start at 1001.
func nextEstimateNum(tx *gorm.DB, year int) (string, error) {
	var seq int
	err := tx.Raw(`
		INSERT INTO estimate_counters (year, seq) VALUES (?, 1001)
		ON CONFLICT (year) DO UPDATE SET seq = estimate_counters.seq + 1
		RETURNING seq`, year).Scan(&seq).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EST-%d-%d", year, seq), nil
}

func (r *estimateRepository) CreateWithItems(ctx context.Context, estimate *entity.Estimate, items []entity.EstimateItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		num, err := nextEstimateNum(tx, estimate.IssueDate.Year())
		if err != nil {
			return err
		}
		estimate.EstimateNum = num

		if err := tx.Create(estimate).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].EstimateID = estimate.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *estimateRepository) ReplaceWithItems(ctx context.Context, estimate *entity.Estimate, items []entity.EstimateItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(estimate).Error; err != nil {
			return err
		}

		if err := tx.Delete(&entity.EstimateItem{}, "estimate_id = ?", estimate.ID).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].EstimateID = estimate.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *estimateRepository) DeleteWithItems(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.EstimateItem{}, "estimate_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.Estimate{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *estimateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	var estimate entity.Estimate
	err := r.db.WithContext(ctx).First(&estimate, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &estimate, err
}

func (r *estimateRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	var estimate entity.Estimate
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("estimate_items.position ASC")
		}).
		First(&estimate, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &estimate, err
}

func (r *estimateRepository) List(ctx context.Context, params *domainRepo.EstimateFilterParams) ([]entity.Estimate, error) {
	var estimates []entity.Estimate

	query := r.db.WithContext(ctx).Model(&entity.Estimate{})

	if params.Search != "" {
		query = query.Where("estimate_num ILIKE ? OR title ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	err := query.
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("estimate_items.position ASC")
		}).
		Order("created_at DESC").
		Find(&estimates).Error
	return estimates, err
}

func (r *estimateRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.EstimateStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Estimate{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *estimateRepository) Stats(ctx context.Context) (*domainRepo.EstimateStats, error) {
	stats := &domainRepo.EstimateStats{}

	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Estimate{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return nil, err
	}
	stats.TotalAmount = money.KRW(total)

	err = r.db.WithContext(ctx).Model(&entity.Estimate{}).
		Where("status = ?", enum.EstimateStatusPending).
		Count(&stats.PendingCount).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&entity.Estimate{}).
		Where("status = ?", enum.EstimateStatusApproved).
		Count(&stats.ApprovedCount).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
