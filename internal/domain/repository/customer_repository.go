package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/pkg/pagination"
)

// CustomerStats holds status-filtered customer counts.
type CustomerStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	Stats(ctx context.Context) (*CustomerStats, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
