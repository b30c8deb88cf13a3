package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/repository"
)

// TrafficSample is one day of site traffic numbers.
type TrafficSample struct {
	PageViews int
	Visitors  int
}

// TrafficProvider supplies the page view / visitor numbers for a day.
// Production wires an analytics API client here.
type TrafficProvider interface {
	Traffic(ctx context.Context, date time.Time) (TrafficSample, error)
}

// PseudoTrafficProvider generates plausible traffic numbers seeded by
// the date, so repeated syncs of the same day agree. It stands in until
// a real analytics integration is configured.
type PseudoTrafficProvider struct{}

// Traffic returns deterministic pseudo-random numbers for the day.
func (PseudoTrafficProvider) Traffic(_ context.Context, date time.Time) (TrafficSample, error) {
	rng := rand.New(rand.NewSource(DayStart(date).Unix()))
	return TrafficSample{
		PageViews: rng.Intn(500) + 100,
		Visitors:  rng.Intn(300) + 50,
	}, nil
}

// DayStart truncates t to local midnight.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StatSyncService rolls one day of metrics into the daily_stats table.
// A sync is idempotent per day: re-running replaces the same row.
type StatSyncService struct {
	customerRepo    repository.CustomerRepository
	inquiryRepo     repository.InquiryRepository
	transactionRepo repository.TransactionRepository
	dailyStatRepo   repository.DailyStatRepository
	traffic         TrafficProvider
}

// NewStatSyncService creates a new stat sync service
func NewStatSyncService(
	customerRepo repository.CustomerRepository,
	inquiryRepo repository.InquiryRepository,
	transactionRepo repository.TransactionRepository,
	dailyStatRepo repository.DailyStatRepository,
	traffic TrafficProvider,
) *StatSyncService {
	return &StatSyncService{
		customerRepo:    customerRepo,
		inquiryRepo:     inquiryRepo,
		transactionRepo: transactionRepo,
		dailyStatRepo:   dailyStatRepo,
		traffic:         traffic,
	}
}

// SyncDay recomputes the rollup for the given calendar day and upserts
// it: traffic from the provider, signups and inquiries counted from
// rows created that day, revenue summed from completed transactions
// dated that day.
func (s *StatSyncService) SyncDay(ctx context.Context, date time.Time) (*entity.DailyStat, error) {
	dayStart := DayStart(date)
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	sample, err := s.traffic.Traffic(ctx, dayStart)
	if err != nil {
		return nil, err
	}

	signups, err := s.customerRepo.CountCreatedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	inquiries, err := s.inquiryRepo.CountCreatedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	revenue, err := s.transactionRepo.SumCompletedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	stat := &entity.DailyStat{
		Date:      dayStart,
		PageViews: sample.PageViews,
		Visitors:  sample.Visitors,
		Signups:   int(signups),
		Inquiries: int(inquiries),
		Revenue:   revenue,
	}

	if err := s.dailyStatRepo.Upsert(ctx, stat); err != nil {
		return nil, err
	}

	log.Info().
		Str("date", dayStart.Format("2006-01-02")).
		Int("page_views", stat.PageViews).
		Int("visitors", stat.Visitors).
		Int64("signups", signups).
		Str("revenue", revenue.String()).
		Msg("daily stats synced")

	return stat, nil
}

// SyncToday syncs the current day.
func (s *StatSyncService) SyncToday(ctx context.Context) (*entity.DailyStat, error) {
	return s.SyncDay(ctx, time.Now())
}

// StartScheduler registers the daily sync on the given cron spec and
// starts the scheduler. The returned cron can be stopped on shutdown.
func (s *StatSyncService) StartScheduler(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if _, err := s.SyncToday(context.Background()); err != nil {
			log.Error().Err(err).Msg("scheduled stat sync failed")
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Info().Str("spec", spec).Msg("stat sync scheduler started")
	return c, nil
}
