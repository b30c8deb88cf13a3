package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/enum"
	"github.com/yeonsoft/crm-api/pkg/apperror"
	"github.com/yeonsoft/crm-api/pkg/money"
)

func TestCreateTransaction(t *testing.T) {
	customerRepo := newFakeCustomerRepo()
	transactionRepo := &fakeTransactionRepo{}
	svc := NewTransactionService(transactionRepo, customerRepo)
	customerID := customerRepo.add("홍길동")

	tx, err := svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		ServiceType: "홈페이지 제작",
		Amount:      1500000,
		CustomerID:  &customerID,
		Status:      enum.TransactionStatusCompleted,
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)
	assert.Equal(t, money.KRW(1500000), tx.Amount)

	// Zero date defaults to now.
	tx, err = svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		ServiceType: "유지보수",
		Amount:      300000,
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), tx.Date, time.Minute)
}

func TestCreateTransaction_Validation(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{}, newFakeCustomerRepo())

	_, err := svc.CreateTransaction(context.Background(), &CreateTransactionInput{Amount: -1})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 2)
}

func TestGetSalesStats(t *testing.T) {
	transactionRepo := &fakeTransactionRepo{}
	svc := NewTransactionService(transactionRepo, newFakeCustomerRepo())

	seed := []struct {
		month  time.Month
		amount money.KRW
		status enum.TransactionStatus
	}{
		{time.March, 1500000, enum.TransactionStatusCompleted},
		{time.April, 2000000, enum.TransactionStatusCompleted},
		{time.May, 999999, enum.TransactionStatusPending},
	}
	for _, s := range seed {
		require.NoError(t, transactionRepo.Create(context.Background(), &entity.Transaction{
			ServiceType: "홈페이지 제작",
			Amount:      s.amount,
			Status:      s.status,
			Date:        time.Date(2026, s.month, 15, 0, 0, 0, 0, time.Local),
		}))
	}

	overview, err := svc.GetSalesStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, money.KRW(3500000), overview.TotalRevenue)
	assert.Equal(t, int64(2), overview.CompletedCount)
	assert.Equal(t, int64(1), overview.PendingCount)
	require.Len(t, overview.MonthlySales, 2)

	labels := []string{overview.MonthlySales[0].Name, overview.MonthlySales[1].Name}
	assert.Contains(t, labels, "3월")
	assert.Contains(t, labels, "4월")
}

func TestDashboardStats(t *testing.T) {
	customerRepo := newFakeCustomerRepo()
	inquiryRepo := &fakeInquiryRepo{}
	estimateRepo := newFakeEstimateRepo()
	transactionRepo := &fakeTransactionRepo{}
	dailyStatRepo := newFakeDailyStatRepo()

	svc := NewDashboardService(customerRepo, inquiryRepo, estimateRepo, transactionRepo, dailyStatRepo)

	customerRepo.add("홍길동")
	customerRepo.add("김철수")

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalCustomers)
	assert.Equal(t, int64(0), stats.PendingInquiries)
	assert.Equal(t, money.KRW(0), stats.TotalRevenue)
	assert.Equal(t, 0, stats.TodayVisitors)
}
