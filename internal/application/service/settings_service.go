package service

import (
	"context"

	"github.com/yeonsoft/crm-api/internal/domain/entity"
	"github.com/yeonsoft/crm-api/internal/domain/repository"
)

// SettingsService owns the business profile row. The profile is the
// default issuing-business snapshot for new estimates; it is injected
// into the estimate service rather than read from ambient state.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	defaults     entity.BusinessProfile
}

// NewSettingsService creates a new settings service. defaults are the
// environment-configured profile values used until the row exists.
func NewSettingsService(settingsRepo repository.SettingsRepository, defaults entity.BusinessProfile) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		defaults:     defaults,
	}
}

// Profile returns the business profile, creating it from the configured
// defaults on first access.
func (s *SettingsService) Profile(ctx context.Context) (*entity.BusinessProfile, error) {
	profile, err := s.settingsRepo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.BusinessProfile{
			RegistrationNumber: s.defaults.RegistrationNumber,
			BusinessName:       s.defaults.BusinessName,
			CEOName:            s.defaults.CEOName,
			Address:            s.defaults.Address,
			Phone:              s.defaults.Phone,
			Email:              s.defaults.Email,
		}
		if err := s.settingsRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

// UpdateProfileInput represents the input for updating the profile
type UpdateProfileInput struct {
	RegistrationNumber *string
	BusinessName       *string
	CEOName            *string
	Address            *string
	Phone              *string
	Email              *string
}

// UpdateProfile updates the business profile fields that were submitted.
func (s *SettingsService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.BusinessProfile, error) {
	profile, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}

	if input.RegistrationNumber != nil {
		profile.RegistrationNumber = *input.RegistrationNumber
	}
	if input.BusinessName != nil {
		profile.BusinessName = *input.BusinessName
	}
	if input.CEOName != nil {
		profile.CEOName = *input.CEOName
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.Email != nil {
		profile.Email = *input.Email
	}

	if err := s.settingsRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
