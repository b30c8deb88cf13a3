package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/internal/domain/repository"
	"github.com/yeonsoft/crm-api/pkg/apperror"
	"github.com/yeonsoft/crm-api/pkg/money"
	"github.com/yeonsoft/crm-api/pkg/pagination"
)

// fakeEstimateRepo is an in-memory EstimateRepository. It mimics the
// store's behavior closely enough for service-level tests: ids are
// assigned on insert and the per-year counter starts at 1001.
type fakeEstimateRepo struct {
	estimates map[uuid.UUID]*entity.Estimate
	items     map[uuid.UUID][]entity.EstimateItem
	counters  map[int]int
}

func newFakeEstimateRepo() *fakeEstimateRepo {
	return &fakeEstimateRepo{
		estimates: make(map[uuid.UUID]*entity.Estimate),
		items:     make(map[uuid.UUID][]entity.EstimateItem),
		counters:  make(map[int]int),
	}
}

func (r *fakeEstimateRepo) CreateWithItems(_ context.Context, estimate *entity.Estimate, items []entity.EstimateItem) error {
	year := estimate.IssueDate.Year()
	if _, ok := r.counters[year]; !ok {
		r.counters[year] = 1001
	} else {
		r.counters[year]++
	}
	estimate.EstimateNum = fmt.Sprintf("EST-%d-%d", year, r.counters[year])
	estimate.ID = uuid.New()

	for i := range items {
		items[i].ID = uuid.New()
		items[i].EstimateID = estimate.ID
	}

	copied := *estimate
	r.estimates[estimate.ID] = &copied
	r.items[estimate.ID] = items
	return nil
}

func (r *fakeEstimateRepo) ReplaceWithItems(_ context.Context, estimate *entity.Estimate, items []entity.EstimateItem) error {
	for i := range items {
		items[i].ID = uuid.New()
		items[i].EstimateID = estimate.ID
	}
	copied := *estimate
	r.estimates[estimate.ID] = &copied
	r.items[estimate.ID] = items
	return nil
}

func (r *fakeEstimateRepo) DeleteWithItems(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	delete(r.estimates, id)
	return nil
}

func (r *fakeEstimateRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Estimate, error) {
	estimate, ok := r.estimates[id]
	if !ok {
		return nil, nil
	}
	copied := *estimate
	return &copied, nil
}

func (r *fakeEstimateRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Estimate, error) {
	estimate, err := r.GetByID(ctx, id)
	if estimate == nil || err != nil {
		return nil, err
	}
	estimate.Items = append([]entity.EstimateItem(nil), r.items[id]...)
	return estimate, nil
}

func (r *fakeEstimateRepo) List(_ context.Context, _ *repository.EstimateFilterParams) ([]entity.Estimate, error) {
	var out []entity.Estimate
	for id, estimate := range r.estimates {
		copied := *estimate
		copied.Items = append([]entity.EstimateItem(nil), r.items[id]...)
		out = append(out, copied)
	}
	return out, nil
}

func (r *fakeEstimateRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.EstimateStatus) error {
	if estimate, ok := r.estimates[id]; ok {
		estimate.Status = status
	}
	return nil
}

func (r *fakeEstimateRepo) Stats(_ context.Context) (*repository.EstimateStats, error) {
	stats := &repository.EstimateStats{}
	for _, estimate := range r.estimates {
		stats.TotalAmount += estimate.Amount
		switch estimate.Status {
		case enum.EstimateStatusPending:
			stats.PendingCount++
		case enum.EstimateStatusApproved:
			stats.ApprovedCount++
		}
	}
	return stats, nil
}

// fakeCustomerRepo is an in-memory CustomerRepository
type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) add(name string) uuid.UUID {
	id := uuid.New()
	r.customers[id] = &entity.Customer{ID: id, Name: name, CreatedAt: time.Now()}
	return id
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	customer.ID = uuid.New()
	customer.CreatedAt = time.Now()
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return customer, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, customer := range r.customers {
		out = append(out, *customer)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) Stats(_ context.Context) (*repository.CustomerStats, error) {
	stats := &repository.CustomerStats{Total: int64(len(r.customers))}
	for _, customer := range r.customers {
		switch customer.Status {
		case enum.CustomerStatusPending:
			stats.Pending++
		case enum.CustomerStatusActive:
			stats.Active++
		case enum.CustomerStatusInactive:
			stats.Inactive++
		}
	}
	return stats, nil
}

func (r *fakeCustomerRepo) CountCreatedBetween(_ context.Context, from, to time.Time) (int64, error) {
	var count int64
	for _, customer := range r.customers {
		if !customer.CreatedAt.Before(from) && !customer.CreatedAt.After(to) {
			count++
		}
	}
	return count, nil
}

// fakeSettingsRepo is an in-memory SettingsRepository
type fakeSettingsRepo struct {
	profile *entity.BusinessProfile
}

func (r *fakeSettingsRepo) GetProfile(_ context.Context) (*entity.BusinessProfile, error) {
	return r.profile, nil
}

func (r *fakeSettingsRepo) Create(_ context.Context, profile *entity.BusinessProfile) error {
	profile.ID = uuid.New()
	r.profile = profile
	return nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, profile *entity.BusinessProfile) error {
	r.profile = profile
	return nil
}

type fakeRenderer struct{}

func (fakeRenderer) RenderEstimate(estimate *entity.Estimate) (string, error) {
	return "<html>" + estimate.EstimateNum + "</html>", nil
}

type fakeSender struct {
	sent []string
}

func (s *fakeSender) SendDocument(to, _, _ string) error {
	s.sent = append(s.sent, to)
	return nil
}

type estimateFixture struct {
	service      *EstimateService
	estimateRepo *fakeEstimateRepo
	customerRepo *fakeCustomerRepo
	sender       *fakeSender
	customerID   uuid.UUID
}

func newEstimateFixture(t *testing.T) *estimateFixture {
	t.Helper()
	estimateRepo := newFakeEstimateRepo()
	customerRepo := newFakeCustomerRepo()
	settings := NewSettingsService(&fakeSettingsRepo{}, entity.BusinessProfile{
		RegistrationNumber: "123-45-67890",
		BusinessName:       "연소프트",
		CEOName:            "김연수",
	})
	sender := &fakeSender{}
	svc := NewEstimateService(estimateRepo, customerRepo, settings, fakeRenderer{}, sender)
	return &estimateFixture{
		service:      svc,
		estimateRepo: estimateRepo,
		customerRepo: customerRepo,
		sender:       sender,
		customerID:   customerRepo.add("홍길동"),
	}
}

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name       string
		quantity   int
		unitPrice  money.KRW
		supply     *money.KRW
		wantUnit   money.KRW
		wantSupply money.KRW
		wantVAT    money.KRW
	}{
		{"quantity times unit price", 2, 1000000, nil, 1000000, 2000000, 200000},
		{"vat floors", 3, 333, nil, 333, 999, 99},
		{"supply wins and back-derives unit", 3, 100, krw(1000), 333, 1000, 100},
		{"supply with zero quantity keeps unit", 0, 500, krw(1000), 500, 1000, 100},
		{"single item", 1, 50000, nil, 50000, 50000, 5000},
		{"zero amounts", 1, 0, nil, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, supply, vat := ComputeLine(tt.quantity, tt.unitPrice, tt.supply)
			assert.Equal(t, tt.wantUnit, unit)
			assert.Equal(t, tt.wantSupply, supply)
			assert.Equal(t, tt.wantVAT, vat)
		})
	}
}

func krw(v int64) *money.KRW {
	m := money.KRW(v)
	return &m
}

func TestCreateEstimate(t *testing.T) {
	f := newEstimateFixture(t)

	estimate, err := f.service.CreateEstimate(context.Background(), &CreateEstimateInput{
		Title:      "홈페이지 제작",
		CustomerID: f.customerID,
		Items: []EstimateItemInput{
			{ItemName: "디자인", Quantity: 2, UnitPrice: 1000000},
			{ItemName: "퍼블리싱", Quantity: 1, UnitPrice: 500000},
		},
	})
	require.NoError(t, err)

	// 2,000,000 + 200,000 + 500,000 + 50,000
	assert.Equal(t, money.KRW(2750000), estimate.Amount)
	assert.Equal(t, enum.EstimateStatusPending, estimate.Status)
	assert.Equal(t, fmt.Sprintf("EST-%d-1001", time.Now().Year()), estimate.EstimateNum)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), estimate.ValidUntil, time.Minute)
	require.Len(t, estimate.Items, 2)
	assert.Equal(t, 0, estimate.Items[0].Position)
	assert.Equal(t, 1, estimate.Items[1].Position)

	// Issuer snapshot falls back to the configured profile
	assert.Equal(t, "123-45-67890", estimate.BizNumber)
	assert.Equal(t, "연소프트", estimate.BizName)
}

func TestCreateEstimate_SequenceIncrements(t *testing.T) {
	f := newEstimateFixture(t)

	first, err := f.service.CreateEstimate(context.Background(), &CreateEstimateInput{
		Title:      "첫 번째",
		CustomerID: f.customerID,
		Items:      []EstimateItemInput{{ItemName: "항목", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)
	second, err := f.service.CreateEstimate(context.Background(), &CreateEstimateInput{
		Title:      "두 번째",
		CustomerID: f.customerID,
		Items:      []EstimateItemInput{{ItemName: "항목", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("EST-%d-1001", year), first.EstimateNum)
	assert.Equal(t, fmt.Sprintf("EST-%d-1002", year), second.EstimateNum)
}

func TestCreateEstimate_ZeroQuantityDefaultsToOne(t *testing.T) {
	f := newEstimateFixture(t)

	estimate, err := f.service.CreateEstimate(context.Background(), &CreateEstimateInput{
		Title:      "유지보수",
		CustomerID: f.customerID,
		Items:      []EstimateItemInput{{ItemName: "월 유지보수", Quantity: 0, UnitPrice: 300000}},
	})
	require.NoError(t, err)

	require.Len(t, estimate.Items, 1)
	assert.Equal(t, 1, estimate.Items[0].Quantity)
	assert.Equal(t, money.KRW(300000), estimate.Items[0].SupplyValue)
}

func TestCreateEstimate_ValidationRejectsBeforeWrite(t *testing.T) {
	f := newEstimateFixture(t)

	tests := []struct {
		name  string
		input *CreateEstimateInput
	}{
		{"empty items", &CreateEstimateInput{Title: "제목", CustomerID: f.customerID}},
		{"empty title", &CreateEstimateInput{
			CustomerID: f.customerID,
			Items:      []EstimateItemInput{{ItemName: "항목", Quantity: 1, UnitPrice: 100}},
		}},
		{"unnamed item", &CreateEstimateInput{
			Title:      "제목",
			CustomerID: f.customerID,
			Items:      []EstimateItemInput{{Quantity: 1, UnitPrice: 100}},
		}},
		{"negative quantity", &CreateEstimateInput{
			Title:      "제목",
			CustomerID: f.customerID,
			Items:      []EstimateItemInput{{ItemName: "항목", Quantity: -1, UnitPrice: 100}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateEstimate(context.Background(), tt.input)
			require.Error(t, err)
			appErr := apperror.GetAppError(err)
			assert.Equal(t, 422, appErr.Code)
			assert.NotEmpty(t, appErr.Errors)
			assert.Empty(t, f.estimateRepo.estimates, "no row may be written on validation failure")
		})
	}
}

func TestCreateEstimate_UnknownCustomer(t *testing.T) {
	f := newEstimateFixture(t)

	_, err := f.service.CreateEstimate(context.Background(), &CreateEstimateInput{
		Title:      "제목",
		CustomerID: uuid.New(),
		Items:      []EstimateItemInput{{ItemName: "항목", Quantity: 1, UnitPrice: 100}},
	})
	require.Error(t, err)

	// A dangling customer reference is a persistence failure, not a 404.
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 500, appErr.Code)
	assert.False(t, apperror.IsNotFound(err))
}

func TestUpdateEstimate_FullReplace(t *testing.T) {
	f := newEstimateFixture(t)

	created, err := f.service.CreateEstimate(context.Background(), &CreateEstimateInput{
		Title:      "초안",
		CustomerID: f.customerID,
		Items: []EstimateItemInput{
			{ItemName: "디자인", Quantity: 1, UnitPrice: 1000000},
			{ItemName: "퍼블리싱", Quantity: 1, UnitPrice: 500000},
		},
	})
	require.NoError(t, err)
	oldItemIDs := map[uuid.UUID]bool{}
	for _, item := range created.Items {
		oldItemIDs[item.ID] = true
	}

	updated, err := f.service.UpdateEstimate(context.Background(), &UpdateEstimateInput{
		ID:         created.ID,
		Title:      "수정안",
		CustomerID: f.customerID,
		Items:      []EstimateItemInput{{ItemName: "디자인+퍼블리싱", Quantity: 1, UnitPrice: 1200000}},
	})
	require.NoError(t, err)

	assert.Equal(t, "수정안", updated.Title)
	assert.Equal(t, money.KRW(1320000), updated.Amount, "amount recomputed from submitted items only")
	require.Len(t, updated.Items, 1)
	assert.False(t, oldItemIDs[updated.Items[0].ID], "item ids do not survive an edit")

	// Identity and lifecycle fields are untouched by an edit.
	assert.Equal(t, created.EstimateNum, updated.EstimateNum)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.IssueDate.Unix(), updated.IssueDate.Unix())
}

func TestUpdateEstimate_NotFound(t *testing.T) {
	f := newEstimateFixture(t)

	_, err := f.service.UpdateEstimate(context.Background(), &UpdateEstimateInput{
		ID:         uuid.New(),
		Title:      "제목",
		CustomerID: f.customerID,
		Items:      []EstimateItemInput{{ItemName: "항목", Quantity: 1, UnitPrice: 100}},
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteEstimate(t *testing.T) {
	f := newEstimateFixture(t)

	created, err := f.service.CreateEstimate(context.Background(), &CreateEstimateInput{
		Title:      "삭제 대상",
		CustomerID: f.customerID,
		Items:      []EstimateItemInput{{ItemName: "항목", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteEstimate(context.Background(), created.ID))
	assert.Empty(t, f.estimateRepo.estimates)
	assert.Empty(t, f.estimateRepo.items[created.ID])

	// Deleting a missing id is an error, not a no-op.
	err = f.service.DeleteEstimate(context.Background(), created.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateEstimateStatus_Transitions(t *testing.T) {
	f := newEstimateFixture(t)

	created, err := f.service.CreateEstimate(context.Background(), &CreateEstimateInput{
		Title:      "상태 전이",
		CustomerID: f.customerID,
		Items:      []EstimateItemInput{{ItemName: "항목", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	// pending cannot jump straight to approved
	err = f.service.UpdateEstimateStatus(context.Background(), created.ID, enum.EstimateStatusApproved)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	require.NoError(t, f.service.UpdateEstimateStatus(context.Background(), created.ID, enum.EstimateStatusSent))
	require.NoError(t, f.service.UpdateEstimateStatus(context.Background(), created.ID, enum.EstimateStatusApproved))

	// approved is terminal
	err = f.service.UpdateEstimateStatus(context.Background(), created.ID, enum.EstimateStatusRejected)
	assert.Error(t, err)
}

func TestSendEstimate(t *testing.T) {
	f := newEstimateFixture(t)

	created, err := f.service.CreateEstimate(context.Background(), &CreateEstimateInput{
		Title:      "발송 대상",
		CustomerID: f.customerID,
		Items:      []EstimateItemInput{{ItemName: "항목", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	require.NoError(t, f.service.SendEstimate(context.Background(), created.ID, "customer@example.com"))
	assert.Equal(t, []string{"customer@example.com"}, f.sender.sent)

	sent, err := f.service.GetEstimate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.EstimateStatusSent, sent.Status)

	// Re-sending is allowed and leaves the state alone.
	require.NoError(t, f.service.SendEstimate(context.Background(), created.ID, "customer@example.com"))
	resent, err := f.service.GetEstimate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.EstimateStatusSent, resent.Status)
}

func TestSendEstimate_RequiresRecipient(t *testing.T) {
	f := newEstimateFixture(t)

	err := f.service.SendEstimate(context.Background(), uuid.New(), "")
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestGetEstimateStats(t *testing.T) {
	f := newEstimateFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.service.CreateEstimate(context.Background(), &CreateEstimateInput{
			Title:      fmt.Sprintf("견적 %d", i+1),
			CustomerID: f.customerID,
			Items:      []EstimateItemInput{{ItemName: "항목", Quantity: 1, UnitPrice: 100000}},
		})
		require.NoError(t, err)
	}

	stats, err := f.service.GetEstimateStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, money.KRW(330000), stats.TotalAmount)
	assert.Equal(t, int64(3), stats.PendingCount)
	assert.Equal(t, int64(0), stats.ApprovedCount)
}

func TestEstimateBusinessOverride(t *testing.T) {
	f := newEstimateFixture(t)

	estimate, err := f.service.CreateEstimate(context.Background(), &CreateEstimateInput{
		Title:      "별도 명의",
		CustomerID: f.customerID,
		Business:   &BusinessSnapshotInput{Name: "다른상호"},
		Items:      []EstimateItemInput{{ItemName: "항목", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	// Overridden field wins, the rest falls back to the profile.
	assert.Equal(t, "다른상호", estimate.BizName)
	assert.Equal(t, "123-45-67890", estimate.BizNumber)
}
