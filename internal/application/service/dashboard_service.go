package service

import (
	"context"

	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/repository"
	"github.com/yeonsoft/crm-api/pkg/money"
)

// DashboardService provides the overview figures for the landing page
type DashboardService struct {
	customerRepo    repository.CustomerRepository
	inquiryRepo     repository.InquiryRepository
	estimateRepo    repository.EstimateRepository
	transactionRepo repository.TransactionRepository
	dailyStatRepo   repository.DailyStatRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	customerRepo repository.CustomerRepository,
	inquiryRepo repository.InquiryRepository,
	estimateRepo repository.EstimateRepository,
	transactionRepo repository.TransactionRepository,
	dailyStatRepo repository.DailyStatRepository,
) *DashboardService {
	return &DashboardService{
		customerRepo:    customerRepo,
		inquiryRepo:     inquiryRepo,
		estimateRepo:    estimateRepo,
		transactionRepo: transactionRepo,
		dailyStatRepo:   dailyStatRepo,
	}
}

// DashboardStats represents the overview cards
type DashboardStats struct {
	TotalCustomers   int64     `json:"total_customers"`
	PendingInquiries int64     `json:"pending_inquiries"`
	PendingEstimates int64     `json:"pending_estimates"`
	TotalRevenue     money.KRW `json:"total_revenue"`
	TodayVisitors    int       `json:"today_visitors"`
}

// GetDashboardStats recomputes the overview from current data.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	customerStats, err := s.customerRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalCustomers = customerStats.Total

	inquiryStats, err := s.inquiryRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.PendingInquiries = inquiryStats.Pending

	estimateStats, err := s.estimateRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.PendingEstimates = estimateStats.PendingCount

	salesStats, err := s.transactionRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = salesStats.TotalRevenue

	latest, err := s.dailyStatRepo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		stats.TodayVisitors = latest.Visitors
	}

	return stats, nil
}

// RecentDailyStats returns the last week of rollup rows, newest first.
func (s *DashboardService) RecentDailyStats(ctx context.Context) ([]entity.DailyStat, error) {
	return s.dailyStatRepo.Recent(ctx, 7)
}
