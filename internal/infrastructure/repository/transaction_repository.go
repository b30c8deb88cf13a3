package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	domainRepo "github.com/yeonsoft/crm-api/internal/domain/repository"
	"github.com/yeonsoft/crm-api/pkg/money"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transaction entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&transaction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transaction, err
}

func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Save(transaction).Error
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Transaction{}, "id = ?", id).Error
}

func (r *transactionRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var transactions []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transaction{})

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
		Order("date DESC").
		Find(&transactions).Error

	return transactions, total, err
}

func (r *transactionRepository) Stats(ctx context.Context) (*domainRepo.SalesStats, error) {
	stats := &domainRepo.SalesStats{}

	var revenue int64
	err := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("status = ?", enum.TransactionStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = money.KRW(revenue)

	err = r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("status = ?", enum.TransactionStatusCompleted).
		Count(&stats.CompletedCount).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("status = ?", enum.TransactionStatusPending).
		Count(&stats.PendingCount).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *transactionRepository) RecentCompleted(ctx context.Context, limit int) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	err := r.db.WithContext(ctx).
		Where("status = ?", enum.TransactionStatusCompleted).
		Order("date ASC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepository) SumCompletedBetween(ctx context.Context, from, to time.Time) (money.KRW, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("status = ? AND date BETWEEN ? AND ?", enum.TransactionStatusCompleted, from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return money.KRW(sum), err
}
