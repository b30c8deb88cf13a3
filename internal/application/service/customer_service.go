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

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Email   *string
	Company *string
	Phone   *string
	Address *string
}

// CreateCustomer creates a new customer. New customers start pending.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}

	customer := &entity.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Company: input.Company,
		Phone:   input.Phone,
		Address: input.Address,
		Status:  enum.CustomerStatusPending,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, apperror.NewPersistenceError("Failed to create customer", err)
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with optional name/email/company search.
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID      uuid.UUID
	Name    *string
	Email   *string
	Company *string
	Phone   *string
	Address *string
	Status  *enum.CustomerStatus
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Company != nil {
		customer.Company = input.Company
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.Status != nil {
		customer.Status = *input.Status
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, apperror.NewPersistenceError("Failed to update customer", err)
	}
	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}

// GetCustomerStats returns status-filtered customer counts.
func (s *CustomerService) GetCustomerStats(ctx context.Context) (*repository.CustomerStats, error) {
	return s.customerRepo.Stats(ctx)
}
