package repository

import (
	"context"

	"github.com/yeonsoft/crm-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the business profile row.
type SettingsRepository interface {
	// GetProfile returns the profile row, or nil when none exists yet.
	GetProfile(ctx context.Context) (*entity.BusinessProfile, error)
	Create(ctx context.Context, profile *entity.BusinessProfile) error
	Update(ctx context.Context, profile *entity.BusinessProfile) error
}
