package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/internal/domain/repository"
	"github.com/yeonsoft/crm-api/pkg/apperror"
	"github.com/yeonsoft/crm-api/pkg/money"
)

// validityPeriod is how long an estimate stays valid after issue.
const validityPeriod = 30 * 24 * time.Hour

// DocumentRenderer renders one fully-loaded estimate aggregate into a
// printable HTML document. Rasterizing to PDF and the visual layer are
// the consumer's concern; the engine only supplies consistent data.
type DocumentRenderer interface {
	RenderEstimate(estimate *entity.Estimate) (string, error)
}

// DocumentSender transmits a rendered document to a recipient.
type DocumentSender interface {
	SendDocument(to, subject, htmlBody string) error
}

// EstimateService maintains the estimate + item aggregate as one
// consistent unit: it computes the derived monetary fields and owns the
// document lifecycle.
type EstimateService struct {
	estimateRepo repository.EstimateRepository
	customerRepo repository.CustomerRepository
	settings     *SettingsService
	renderer     DocumentRenderer
	sender       DocumentSender
}

// NewEstimateService creates a new estimate service
func NewEstimateService(
	estimateRepo repository.EstimateRepository,
	customerRepo repository.CustomerRepository,
	settings *SettingsService,
	renderer DocumentRenderer,
	sender DocumentSender,
) *EstimateService {
	return &EstimateService{
		estimateRepo: estimateRepo,
		customerRepo: customerRepo,
		settings:     settings,
		renderer:     renderer,
		sender:       sender,
	}
}

// EstimateItemInput represents a line item as submitted by the operator.
// SupplyValue is set only when the operator edited the supply value
// directly; unit price and supply value are kept mutually consistent,
// last-edited-wins.
type EstimateItemInput struct {
	ItemName    string
	Spec        *string
	Quantity    int
	UnitPrice   money.KRW
	SupplyValue *money.KRW
}

// BusinessSnapshotInput carries per-estimate issuer fields. Empty fields
// fall back to the configured business profile.
type BusinessSnapshotInput struct {
	Number  string
	Name    string
	CEO     string
	Address string
	Phone   string
	Email   string
}

// CreateEstimateInput represents the input for creating an estimate
type CreateEstimateInput struct {
	Title      string
	CustomerID uuid.UUID
	Business   *BusinessSnapshotInput
	Items      []EstimateItemInput
}

// UpdateEstimateInput represents the input for updating an estimate
type UpdateEstimateInput struct {
	ID         uuid.UUID
	Title      string
	CustomerID uuid.UUID
	Business   *BusinessSnapshotInput
	Items      []EstimateItemInput
}

// ComputeLine derives the monetary fields of one line item.
//
// When supplyValue is nil the supply value is quantity * unitPrice.
// When the operator entered the supply value directly, it wins and the
// unit price is back-derived as floor(supplyValue / quantity) — unless
// quantity is zero, in which case the unit price is left as submitted.
// VAT is always floor(supplyValue * 0.10).
func ComputeLine(quantity int, unitPrice money.KRW, supplyValue *money.KRW) (unit, supply, vat money.KRW) {
	if supplyValue != nil {
		supply = *supplyValue
		unit = unitPrice
		if quantity > 0 {
			unit = supply / money.KRW(quantity)
		}
	} else {
		supply = money.KRW(quantity) * unitPrice
		unit = unitPrice
	}
	return unit, supply, supply.VAT()
}

// buildItems validates and normalizes the submitted items into entity
// rows with derived fields, returning the grand total.
func buildItems(inputs []EstimateItemInput) ([]entity.EstimateItem, money.KRW, []apperror.FieldError) {
	var fieldErrs []apperror.FieldError
	items := make([]entity.EstimateItem, 0, len(inputs))
	var amount money.KRW

	for i, in := range inputs {
		if in.ItemName == "" {
			fieldErrs = append(fieldErrs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].item_name", i),
				Message: "Item name is required",
			})
		}
		if in.Quantity == 0 {
			in.Quantity = 1
		}
		if in.Quantity < 0 {
			fieldErrs = append(fieldErrs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "Quantity must be a positive integer",
			})
		}
		if in.UnitPrice < 0 {
			fieldErrs = append(fieldErrs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "Unit price must not be negative",
			})
		}
		if in.SupplyValue != nil && *in.SupplyValue < 0 {
			fieldErrs = append(fieldErrs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].supply_value", i),
				Message: "Supply value must not be negative",
			})
		}

		unit, supply, vat := ComputeLine(in.Quantity, in.UnitPrice, in.SupplyValue)
		amount += supply + vat

		items = append(items, entity.EstimateItem{
			ItemName:    in.ItemName,
			Spec:        in.Spec,
			Quantity:    in.Quantity,
			UnitPrice:   unit,
			SupplyValue: supply,
			VAT:         vat,
			Position:    i,
		})
	}

	return items, amount, fieldErrs
}

func validateHeader(title string, customerID uuid.UUID, itemCount int) []apperror.FieldError {
	var fieldErrs []apperror.FieldError
	if title == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "title", Message: "Title is required"})
	}
	if customerID == uuid.Nil {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "customer_id", Message: "Customer is required"})
	}
	if itemCount == 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "items", Message: "At least one item is required"})
	}
	return fieldErrs
}

// snapshot merges the per-request issuer fields over the configured
// business profile; the per-estimate value wins field by field.
func (s *EstimateService) snapshot(ctx context.Context, in *BusinessSnapshotInput) (*entity.BusinessProfile, error) {
	profile, err := s.settings.Profile(ctx)
	if err != nil {
		return nil, err
	}
	snap := *profile
	if in != nil {
		if in.Number != "" {
			snap.RegistrationNumber = in.Number
		}
		if in.Name != "" {
			snap.BusinessName = in.Name
		}
		if in.CEO != "" {
			snap.CEOName = in.CEO
		}
		if in.Address != "" {
			snap.Address = in.Address
		}
		if in.Phone != "" {
			snap.Phone = in.Phone
		}
		if in.Email != "" {
			snap.Email = in.Email
		}
	}
	return &snap, nil
}

// CreateEstimate creates a new estimate aggregate. Validation happens
// before any row is written; the header and items are persisted in one
// transaction, all-or-nothing.
func (s *EstimateService) CreateEstimate(ctx context.Context, input *CreateEstimateInput) (*entity.Estimate, error) {
	fieldErrs := validateHeader(input.Title, input.CustomerID, len(input.Items))
	items, amount, itemErrs := buildItems(input.Items)
	fieldErrs = append(fieldErrs, itemErrs...)
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, apperror.NewPersistenceError("Failed to resolve customer", err)
	}
	if customer == nil {
		return nil, apperror.NewPersistenceError("Customer reference does not exist", nil)
	}

	snap, err := s.snapshot(ctx, input.Business)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	estimate := &entity.Estimate{
		Title:      input.Title,
		CustomerID: input.CustomerID,
		BizNumber:  snap.RegistrationNumber,
		BizName:    snap.BusinessName,
		BizCEO:     snap.CEOName,
		BizAddress: snap.Address,
		BizPhone:   snap.Phone,
		BizEmail:   snap.Email,
		Amount:     amount,
		Status:     enum.EstimateStatusPending,
		IssueDate:  now,
		ValidUntil: now.Add(validityPeriod),
	}

	if err := s.estimateRepo.CreateWithItems(ctx, estimate, items); err != nil {
		return nil, apperror.NewPersistenceError("Failed to create estimate", err)
	}

	return s.estimateRepo.GetWithItems(ctx, estimate.ID)
}

// UpdateEstimate performs a full-replace update: the amount is
// recomputed from the submitted items only, and the entire item
// collection is swapped for the submitted set — item ids do not survive
// an edit. IssueDate, EstimateNum and Status are never touched here.
func (s *EstimateService) UpdateEstimate(ctx context.Context, input *UpdateEstimateInput) (*entity.Estimate, error) {
	estimate, err := s.estimateRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if estimate == nil {
		return nil, apperror.NewNotFoundError("Estimate")
	}

	fieldErrs := validateHeader(input.Title, input.CustomerID, len(input.Items))
	items, amount, itemErrs := buildItems(input.Items)
	fieldErrs = append(fieldErrs, itemErrs...)
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	if input.CustomerID != estimate.CustomerID {
		customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
		if err != nil {
			return nil, apperror.NewPersistenceError("Failed to resolve customer", err)
		}
		if customer == nil {
			return nil, apperror.NewPersistenceError("Customer reference does not exist", nil)
		}
	}

	estimate.Title = input.Title
	estimate.CustomerID = input.CustomerID
	if input.Business != nil {
		if input.Business.Number != "" {
			estimate.BizNumber = input.Business.Number
		}
		if input.Business.Name != "" {
			estimate.BizName = input.Business.Name
		}
		if input.Business.CEO != "" {
			estimate.BizCEO = input.Business.CEO
		}
		if input.Business.Address != "" {
			estimate.BizAddress = input.Business.Address
		}
		if input.Business.Phone != "" {
			estimate.BizPhone = input.Business.Phone
		}
		if input.Business.Email != "" {
			estimate.BizEmail = input.Business.Email
		}
	}
	estimate.Amount = amount

	for i := range items {
		items[i].EstimateID = estimate.ID
	}

	if err := s.estimateRepo.ReplaceWithItems(ctx, estimate, items); err != nil {
		return nil, apperror.NewPersistenceError("Failed to update estimate", err)
	}

	return s.estimateRepo.GetWithItems(ctx, estimate.ID)
}

// DeleteEstimate removes the aggregate, items first. Deleting an id that
// does not exist is an error, not a no-op.
func (s *EstimateService) DeleteEstimate(ctx context.Context, id uuid.UUID) error {
	estimate, err := s.estimateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if estimate == nil {
		return apperror.NewNotFoundError("Estimate")
	}
	if err := s.estimateRepo.DeleteWithItems(ctx, id); err != nil {
		return apperror.NewPersistenceError("Failed to delete estimate", err)
	}
	return nil
}

// GetEstimate retrieves one estimate with customer and items joined.
func (s *EstimateService) GetEstimate(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	estimate, err := s.estimateRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if estimate == nil {
		return nil, apperror.NewNotFoundError("Estimate")
	}
	return estimate, nil
}

// ListEstimates lists estimates with customer and items joined, items in
// insertion order.
func (s *EstimateService) ListEstimates(ctx context.Context, params *repository.EstimateFilterParams) ([]entity.Estimate, error) {
	if params == nil {
		params = &repository.EstimateFilterParams{}
	}
	return s.estimateRepo.List(ctx, params)
}

// GetEstimateStats recomputes the summary cards from current data.
func (s *EstimateService) GetEstimateStats(ctx context.Context) (*repository.EstimateStats, error) {
	return s.estimateRepo.Stats(ctx)
}

// UpdateEstimateStatus applies a document-state transition.
func (s *EstimateService) UpdateEstimateStatus(ctx context.Context, id uuid.UUID, status enum.EstimateStatus) error {
	estimate, err := s.estimateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if estimate == nil {
		return apperror.NewNotFoundError("Estimate")
	}
	if !estimate.Status.CanTransitionTo(status) {
		return apperror.NewBadRequestError(
			fmt.Sprintf("Cannot change status from %s to %s", estimate.Status, status))
	}
	return s.estimateRepo.UpdateStatus(ctx, id, status)
}

// SendEstimate renders the document and emails it to the recipient,
// moving a pending estimate to sent. Re-sending an already sent document
// is allowed and does not change its state.
func (s *EstimateService) SendEstimate(ctx context.Context, id uuid.UUID, to string) error {
	if to == "" {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "to", Message: "Recipient email is required"},
		})
	}

	estimate, err := s.GetEstimate(ctx, id)
	if err != nil {
		return err
	}

	html, err := s.renderer.RenderEstimate(estimate)
	if err != nil {
		return apperror.NewPersistenceError("Failed to render estimate document", err)
	}

	subject := fmt.Sprintf("[%s] %s", estimate.EstimateNum, estimate.Title)
	if err := s.sender.SendDocument(to, subject, html); err != nil {
		return apperror.NewAppError(502, "Failed to send estimate document")
	}

	if estimate.Status == enum.EstimateStatusPending {
		if err := s.estimateRepo.UpdateStatus(ctx, id, enum.EstimateStatusSent); err != nil {
			log.Warn().Err(err).Str("estimate_id", id.String()).Msg("estimate sent but status update failed")
		}
	}
	return nil
}

// RenderEstimateDocument returns the printable HTML for one estimate.
func (s *EstimateService) RenderEstimateDocument(ctx context.Context, id uuid.UUID) (string, error) {
	estimate, err := s.GetEstimate(ctx, id)
	if err != nil {
		return "", err
	}
	return s.renderer.RenderEstimate(estimate)
}
