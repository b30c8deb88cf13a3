package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/internal/domain/repository"
	"github.com/yeonsoft/crm-api/pkg/money"
)

// fakeInquiryRepo is an in-memory InquiryRepository
type fakeInquiryRepo struct {
	inquiries []entity.Inquiry
}

func (r *fakeInquiryRepo) Create(_ context.Context, inquiry *entity.Inquiry) error {
	inquiry.ID = uuid.New()
	r.inquiries = append(r.inquiries, *inquiry)
	return nil
}

func (r *fakeInquiryRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	for i := range r.inquiries {
		if r.inquiries[i].ID == id {
			return &r.inquiries[i], nil
		}
	}
	return nil, nil
}

func (r *fakeInquiryRepo) Update(_ context.Context, inquiry *entity.Inquiry) error {
	for i := range r.inquiries {
		if r.inquiries[i].ID == inquiry.ID {
			r.inquiries[i] = *inquiry
		}
	}
	return nil
}

func (r *fakeInquiryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.inquiries {
		if r.inquiries[i].ID == id {
			r.inquiries = append(r.inquiries[:i], r.inquiries[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeInquiryRepo) List(_ context.Context, _ *repository.InquiryFilterParams) ([]entity.Inquiry, int64, error) {
	return r.inquiries, int64(len(r.inquiries)), nil
}

func (r *fakeInquiryRepo) Stats(_ context.Context) (*repository.InquiryStats, error) {
	stats := &repository.InquiryStats{Total: int64(len(r.inquiries))}
	for _, inquiry := range r.inquiries {
		switch inquiry.Status {
		case enum.InquiryStatusPending:
			stats.Pending++
		case enum.InquiryStatusAnswered:
			stats.Answered++
		}
	}
	return stats, nil
}

func (r *fakeInquiryRepo) CountCreatedBetween(_ context.Context, from, to time.Time) (int64, error) {
	var count int64
	for _, inquiry := range r.inquiries {
		if !inquiry.CreatedAt.Before(from) && !inquiry.CreatedAt.After(to) {
			count++
		}
	}
	return count, nil
}

// fakeTransactionRepo is an in-memory TransactionRepository
type fakeTransactionRepo struct {
	transactions []entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	transaction.ID = uuid.New()
	r.transactions = append(r.transactions, *transaction)
	return nil
}

func (r *fakeTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for i := range r.transactions {
		if r.transactions[i].ID == id {
			return &r.transactions[i], nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	for i := range r.transactions {
		if r.transactions[i].ID == transaction.ID {
			r.transactions[i] = *transaction
		}
	}
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.transactions {
		if r.transactions[i].ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeTransactionRepo) List(_ context.Context, _ *repository.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	return r.transactions, int64(len(r.transactions)), nil
}

func (r *fakeTransactionRepo) Stats(_ context.Context) (*repository.SalesStats, error) {
	stats := &repository.SalesStats{}
	for _, tx := range r.transactions {
		switch tx.Status {
		case enum.TransactionStatusCompleted:
			stats.CompletedCount++
			stats.TotalRevenue += tx.Amount
		case enum.TransactionStatusPending:
			stats.PendingCount++
		}
	}
	return stats, nil
}

func (r *fakeTransactionRepo) RecentCompleted(_ context.Context, limit int) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, tx := range r.transactions {
		if tx.Status == enum.TransactionStatusCompleted {
			out = append(out, tx)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) SumCompletedBetween(_ context.Context, from, to time.Time) (money.KRW, error) {
	var sum money.KRW
	for _, tx := range r.transactions {
		if tx.Status == enum.TransactionStatusCompleted &&
			!tx.Date.Before(from) && !tx.Date.After(to) {
			sum += tx.Amount
		}
	}
	return sum, nil
}

// fakeDailyStatRepo upserts by date like the real table's unique index
type fakeDailyStatRepo struct {
	stats map[string]*entity.DailyStat
}

func newFakeDailyStatRepo() *fakeDailyStatRepo {
	return &fakeDailyStatRepo{stats: make(map[string]*entity.DailyStat)}
}

func (r *fakeDailyStatRepo) Upsert(_ context.Context, stat *entity.DailyStat) error {
	copied := *stat
	r.stats[stat.Date.Format("2006-01-02")] = &copied
	return nil
}

func (r *fakeDailyStatRepo) Latest(_ context.Context) (*entity.DailyStat, error) {
	var latest *entity.DailyStat
	for _, stat := range r.stats {
		if latest == nil || stat.Date.After(latest.Date) {
			latest = stat
		}
	}
	return latest, nil
}

func (r *fakeDailyStatRepo) Recent(_ context.Context, limit int) ([]entity.DailyStat, error) {
	var out []entity.DailyStat
	for _, stat := range r.stats {
		out = append(out, *stat)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestPseudoTrafficProviderIsDeterministic(t *testing.T) {
	provider := PseudoTrafficProvider{}
	date := time.Date(2026, 8, 30, 14, 30, 0, 0, time.Local)

	first, err := provider.Traffic(context.Background(), date)
	require.NoError(t, err)
	second, err := provider.Traffic(context.Background(), date.Add(3*time.Hour))
	require.NoError(t, err)

	// Any time within the same day yields the same sample.
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first.PageViews, 100)
	assert.GreaterOrEqual(t, first.Visitors, 50)
}

func TestSyncDay(t *testing.T) {
	customerRepo := newFakeCustomerRepo()
	inquiryRepo := &fakeInquiryRepo{}
	transactionRepo := &fakeTransactionRepo{}
	dailyStatRepo := newFakeDailyStatRepo()

	svc := NewStatSyncService(customerRepo, inquiryRepo, transactionRepo, dailyStatRepo, PseudoTrafficProvider{})

	now := time.Now()
	customerRepo.add("오늘 가입")
	require.NoError(t, inquiryRepo.Create(context.Background(), &entity.Inquiry{
		Title: "문의", CreatedAt: now,
	}))
	require.NoError(t, transactionRepo.Create(context.Background(), &entity.Transaction{
		ServiceType: "홈페이지 제작",
		Amount:      1500000,
		Status:      enum.TransactionStatusCompleted,
		Date:        now,
	}))
	// Pending revenue is not counted.
	require.NoError(t, transactionRepo.Create(context.Background(), &entity.Transaction{
		ServiceType: "유지보수",
		Amount:      300000,
		Status:      enum.TransactionStatusPending,
		Date:        now,
	}))

	stat, err := svc.SyncDay(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, stat.Signups)
	assert.Equal(t, 1, stat.Inquiries)
	assert.Equal(t, money.KRW(1500000), stat.Revenue)
	assert.Equal(t, DayStart(now), stat.Date)
}

func TestSyncDayIsIdempotent(t *testing.T) {
	customerRepo := newFakeCustomerRepo()
	dailyStatRepo := newFakeDailyStatRepo()
	svc := NewStatSyncService(customerRepo, &fakeInquiryRepo{}, &fakeTransactionRepo{}, dailyStatRepo, PseudoTrafficProvider{})

	now := time.Now()
	first, err := svc.SyncDay(context.Background(), now)
	require.NoError(t, err)

	customerRepo.add("나중 가입")
	second, err := svc.SyncDay(context.Background(), now)
	require.NoError(t, err)

	// Re-running replaces the same row with fresh counts.
	assert.Len(t, dailyStatRepo.stats, 1)
	assert.Equal(t, 0, first.Signups)
	assert.Equal(t, 1, second.Signups)
	assert.Equal(t, first.PageViews, second.PageViews, "traffic is stable for the day")
}

func TestDayStart(t *testing.T) {
	d := time.Date(2026, 8, 30, 23, 59, 59, 999, time.Local)
	start := DayStart(d)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, d.Day(), start.Day())
}
