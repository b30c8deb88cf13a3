package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/pkg/money"
)

// EstimateStats holds the summary figures shown on the estimate board.
type EstimateStats struct {
	TotalAmount   money.KRW `json:"total_amount"`
	PendingCount  int64     `json:"pending_count"`
	ApprovedCount int64     `json:"approved_count"`
}

// EstimateFilterParams contains filtering parameters for estimate queries
type EstimateFilterParams struct {
	Search     string
	Status     *enum.EstimateStatus
	CustomerID *uuid.UUID
}

// EstimateRepository defines the interface for estimate data operations.
// Every write that touches the header together with its items is one
// transaction: a reader must never observe a header with a half-written
// item set.
type EstimateRepository interface {
	// CreateWithItems persists the header and its items atomically and
	// assigns EstimateNum from the per-year counter inside the same
	// transaction.
	CreateWithItems(ctx context.Context, estimate *entity.Estimate, items []entity.EstimateItem) error
	// ReplaceWithItems saves the header and swaps the entire item
	// collection for the submitted one in a single transaction.
	ReplaceWithItems(ctx context.Context, estimate *entity.Estimate, items []entity.EstimateItem) error
	// DeleteWithItems removes the items and then the header in one
	// transaction. Returns gorm.ErrRecordNotFound when no header row
	// was deleted.
	DeleteWithItems(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*entity.Estimate, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Estimate, error)
	List(ctx context.Context, params *EstimateFilterParams) ([]entity.Estimate, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.EstimateStatus) error
	// Stats recomputes the summary from current rows on every call.
	Stats(ctx context.Context) (*EstimateStats, error)
}
