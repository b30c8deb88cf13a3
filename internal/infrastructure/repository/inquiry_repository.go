package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	domainRepo "github.com/yeonsoft/crm-api/internal/domain/repository"
	"gorm.io/gorm"
)

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(db *gorm.DB) domainRepo.InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *inquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	var inquiry entity.Inquiry
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&inquiry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &inquiry, err
}

func (r *inquiryRepository) Update(ctx context.Context, inquiry *entity.Inquiry) error {
	return r.db.WithContext(ctx).Save(inquiry).Error
}

func (r *inquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Inquiry{}, "id = ?", id).Error
}

func (r *inquiryRepository) List(ctx context.Context, params *domainRepo.InquiryFilterParams) ([]entity.Inquiry, int64, error) {
	var inquiries []entity.Inquiry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Inquiry{})

	if params.Search != "" {
		query = query.Where("title ILIKE ? OR author_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order("created_at DESC").
		Find(&inquiries).Error

	return inquiries, total, err
}

func (r *inquiryRepository) Stats(ctx context.Context) (*domainRepo.InquiryStats, error) {
	stats := &domainRepo.InquiryStats{}

	if err := r.db.WithContext(ctx).Model(&entity.Inquiry{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Model(&entity.Inquiry{}).
		Where("status = ?", enum.InquiryStatusPending).
		Count(&stats.Pending).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&entity.Inquiry{}).
		Where("status = ?", enum.InquiryStatusAnswered).
		Count(&stats.Answered).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *inquiryRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Inquiry{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return count, err
}
