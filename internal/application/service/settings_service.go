package service

import (
	"context"

	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/repository"
	"github.com/almadina/pos-api/pkg/apperror"
)

// SettingsService handles the billing settings singleton
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// UpdateSettingsInput represents the update settings input. Nil fields are
// left unchanged.
type UpdateSettingsInput struct {
	TaxRate           *float64
	ServiceChargeRate *float64
	CurrencyCode      *string
	CurrencySymbol    *string
	Theme             *string
	LogoURL           *string
}

// GetSettings returns the billing settings, creating the defaults row if it
// does not exist yet
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.BillingSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultBillingSettings()
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettings applies a partial update to the billing configuration.
// Committed orders keep the totals they were priced with.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.BillingSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.TaxRate != nil {
		if *input.TaxRate < 0 || *input.TaxRate >= 1 {
			return nil, apperror.NewBadRequestError("Tax rate must be at least 0 and below 1")
		}
		settings.TaxRate = *input.TaxRate
	}
	if input.ServiceChargeRate != nil {
		if *input.ServiceChargeRate < 0 || *input.ServiceChargeRate >= 1 {
			return nil, apperror.NewBadRequestError("Service charge rate must be at least 0 and below 1")
		}
		settings.ServiceChargeRate = *input.ServiceChargeRate
	}
	if input.CurrencyCode != nil {
		settings.CurrencyCode = *input.CurrencyCode
	}
	if input.CurrencySymbol != nil {
		settings.CurrencySymbol = *input.CurrencySymbol
	}
	if input.Theme != nil {
		if *input.Theme != "light" && *input.Theme != "dark" {
			return nil, apperror.NewBadRequestError("Theme must be light or dark")
		}
		settings.Theme = *input.Theme
	}
	if input.LogoURL != nil {
		settings.LogoURL = input.LogoURL
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
