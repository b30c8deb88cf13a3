package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/internal/domain/repository"
	"github.com/yeonsoft/crm-api/pkg/apperror"
	"github.com/yeonsoft/crm-api/pkg/pagination"
)

// InquiryService handles inquiry board operations
type InquiryService struct {
	inquiryRepo  repository.InquiryRepository
	customerRepo repository.CustomerRepository
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(inquiryRepo repository.InquiryRepository, customerRepo repository.CustomerRepository) *InquiryService {
	return &InquiryService{inquiryRepo: inquiryRepo, customerRepo: customerRepo}
}

// CreateInquiryInput represents the create inquiry input
type CreateInquiryInput struct {
	Title      string
	Content    string
	AuthorName string
	CustomerID *uuid.UUID
	Type       string
}

// CreateInquiry creates a new inquiry
func (s *InquiryService) CreateInquiry(ctx context.Context, input *CreateInquiryInput) (*entity.Inquiry, error) {
	var fieldErrs []apperror.FieldError
	if input.Title == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "title", Message: "Title is required"})
	}
	if input.Content == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "content", Message: "Content is required"})
	}
	if input.AuthorName == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "author_name", Message: "Author name is required"})
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

	inquiry := &entity.Inquiry{
		Title:      input.Title,
		Content:    input.Content,
		AuthorName: input.AuthorName,
		CustomerID: input.CustomerID,
		Type:       input.Type,
		Status:     enum.InquiryStatusPending,
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, apperror.NewPersistenceError("Failed to create inquiry", err)
	}
	return inquiry, nil
}

// GetInquiry retrieves an inquiry by ID
func (s *InquiryService) GetInquiry(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	inquiry, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, apperror.NewNotFoundError("Inquiry")
	}
	return inquiry, nil
}

// ListInquiries lists inquiries with filtering
func (s *InquiryService) ListInquiries(ctx context.Context, params *repository.InquiryFilterParams) (*pagination.PaginatedResult[entity.Inquiry], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	inquiries, total, err := s.inquiryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(inquiries, pag), nil
}

// UpdateInquiryStatus moves an inquiry between pending/answered/closed.
func (s *InquiryService) UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status enum.InquiryStatus) (*entity.Inquiry, error) {
	inquiry, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, apperror.NewNotFoundError("Inquiry")
	}

	inquiry.Status = status
	if err := s.inquiryRepo.Update(ctx, inquiry); err != nil {
		return nil, apperror.NewPersistenceError("Failed to update inquiry", err)
	}
	return inquiry, nil
}

// DeleteInquiry deletes an inquiry
func (s *InquiryService) DeleteInquiry(ctx context.Context, id uuid.UUID) error {
	inquiry, err := s.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inquiry == nil {
		return apperror.NewNotFoundError("Inquiry")
	}
	return s.inquiryRepo.Delete(ctx, id)
}

// GetInquiryStats returns status-filtered inquiry counts.
func (s *InquiryService) GetInquiryStats(ctx context.Context) (*repository.InquiryStats, error) {
	return s.inquiryRepo.Stats(ctx)
}
