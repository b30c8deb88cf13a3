package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/pkg/pagination"
)

// InquiryStats holds status-filtered inquiry counts.
type InquiryStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Answered int64 `json:"answered"`
}

// InquiryFilterParams contains filtering parameters for inquiry queries
type InquiryFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.InquiryStatus
	CustomerID *uuid.UUID
}

// InquiryRepository defines the interface for inquiry data operations
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)
	Update(ctx context.Context, inquiry *entity.Inquiry) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InquiryFilterParams) ([]entity.Inquiry, int64, error)
	Stats(ctx context.Context) (*InquiryStats, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
