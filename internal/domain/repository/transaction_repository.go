package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/pkg/money"
	"github.com/yeonsoft/crm-api/pkg/pagination"
)

// SalesStats holds the summary figures shown on the sales board.
type SalesStats struct {
	TotalRevenue   money.KRW `json:"total_revenue"`
	CompletedCount int64     `json:"completed_count"`
	PendingCount   int64     `json:"pending_count"`
}

// TransactionFilterParams contains filtering parameters for transaction queries
type TransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.TransactionStatus
	CustomerID *uuid.UUID
}

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	Update(ctx context.Context, transaction *entity.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	Stats(ctx context.Context) (*SalesStats, error)
	// RecentCompleted returns completed transactions ordered by date
	// ascending, capped at limit. Feeds the monthly sales points.
	RecentCompleted(ctx context.Context, limit int) ([]entity.Transaction, error)
	SumCompletedBetween(ctx context.Context, from, to time.Time) (money.KRW, error)
}
