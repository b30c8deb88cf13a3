package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/internal/domain/repository"
	"github.com/yeonsoft/crm-api/pkg/apperror"
	"github.com/yeonsoft/crm-api/pkg/money"
	"github.com/yeonsoft/crm-api/pkg/pagination"
)

// TransactionService handles sales transaction operations
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	customerRepo    repository.CustomerRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo repository.TransactionRepository, customerRepo repository.CustomerRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo, customerRepo: customerRepo}
}

// CreateTransactionInput represents the create transaction input
type CreateTransactionInput struct {
	ServiceType string
	Amount      money.KRW
	CustomerID  *uuid.UUID
	Status      enum.TransactionStatus
	Date        time.Time
}

// CreateTransaction creates a new transaction
func (s *TransactionService) CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error) {
	var fieldErrs []apperror.FieldError
	if input.ServiceType == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "service_type", Message: "Service type is required"})
	}
	if input.Amount < 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "amount", Message: "Amount must not be negative"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, apperror.NewPersistenceError("Failed to resolve customer", err)
		}
		if customer == nil {
			return nil, apperror.NewPersistenceError("Customer reference does not exist", nil)
		}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &entity.Transaction{
		ServiceType: input.ServiceType,
		Amount:      input.Amount,
		CustomerID:  input.CustomerID,
		Status:      input.Status,
		Date:        date,
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, apperror.NewPersistenceError("Failed to create transaction", err)
	}
	return transaction, nil
}

// GetTransaction retrieves a transaction by ID
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return transaction, nil
}

// ListTransactions lists transactions with customer joined
func (s *TransactionService) ListTransactions(ctx context.Context, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.Transaction], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	transactions, total, err := s.transactionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(transactions, pag), nil
}

// UpdateTransactionStatus marks a transaction pending or completed.
func (s *TransactionService) UpdateTransactionStatus(ctx context.Context, id uuid.UUID, status enum.TransactionStatus) (*entity.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}

	transaction.Status = status
	if err := s.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, apperror.NewPersistenceError("Failed to update transaction", err)
	}
	return transaction, nil
}

// DeleteTransaction deletes a transaction
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if transaction == nil {
		return apperror.NewNotFoundError("Transaction")
	}
	return s.transactionRepo.Delete(ctx, id)
}

// MonthlySalesPoint is one point on the sales board chart.
type MonthlySalesPoint struct {
	Name   string    `json:"name"`
	Amount money.KRW `json:"amount"`
}

// SalesOverview combines the sales summary with recent monthly points.
type SalesOverview struct {
	TotalRevenue   money.KRW           `json:"total_revenue"`
	CompletedCount int64               `json:"completed_count"`
	PendingCount   int64               `json:"pending_count"`
	MonthlySales   []MonthlySalesPoint `json:"monthly_sales"`
}

// GetSalesStats returns revenue totals, status counts and the last few
// completed transactions bucketed by month label.
func (s *TransactionService) GetSalesStats(ctx context.Context) (*SalesOverview, error) {
	stats, err := s.transactionRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.transactionRepo.RecentCompleted(ctx, 6)
	if err != nil {
		return nil, err
	}

	points := make([]MonthlySalesPoint, 0, len(recent))
	for _, tx := range recent {
		points = append(points, MonthlySalesPoint{
			Name:   fmt.Sprintf("%d월", int(tx.Date.Month())),
			Amount: tx.Amount,
		})
	}

	return &SalesOverview{
		TotalRevenue:   stats.TotalRevenue,
		CompletedCount: stats.CompletedCount,
		PendingCount:   stats.PendingCount,
		MonthlySales:   points,
	}, nil
}
