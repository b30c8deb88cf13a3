package repository

import (
	"context"
	"errors"

	"github.com/yeonsoft/crm-api/internal/domain/entity"
	domainRepo "github.com/yeonsoft/crm-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetProfile(ctx context.Context) (*entity.BusinessProfile, error) {
	var profile entity.BusinessProfile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *settingsRepository) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *settingsRepository) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
