package service

import (
	"context"
	"testing"

	"github.com/almadina/pos-api/internal/domain/entity"
)

type settingsRepoStub struct {
	settings *entity.BillingSettings
}

func (s *settingsRepoStub) Get(ctx context.Context) (*entity.BillingSettings, error) {
	return s.settings, nil
}

func (s *settingsRepoStub) Create(ctx context.Context, settings *entity.BillingSettings) error {
	s.settings = settings
	return nil
}

func (s *settingsRepoStub) Update(ctx context.Context, settings *entity.BillingSettings) error {
	s.settings = settings
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func TestUpdateSettingsRateBounds(t *testing.T) {
	tests := []struct {
		name    string
		input   UpdateSettingsInput
		wantErr bool
	}{
		{"tax rate zero", UpdateSettingsInput{TaxRate: floatPtr(0)}, false},
		{"tax rate below one", UpdateSettingsInput{TaxRate: floatPtr(0.99)}, false},
		{"tax rate exactly one", UpdateSettingsInput{TaxRate: floatPtr(1.0)}, true},
		{"tax rate negative", UpdateSettingsInput{TaxRate: floatPtr(-0.01)}, true},
		{"service charge exactly one", UpdateSettingsInput{ServiceChargeRate: floatPtr(1.0)}, true},
		{"service charge below one", UpdateSettingsInput{ServiceChargeRate: floatPtr(0.10)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSettingsService(&settingsRepoStub{settings: entity.DefaultBillingSettings()})

			_, err := svc.UpdateSettings(context.Background(), &tt.input)
			if tt.wantErr && err == nil {
				t.Fatal("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateSettingsRejectedRateLeavesSettingsUntouched(t *testing.T) {
	repo := &settingsRepoStub{settings: entity.DefaultBillingSettings()}
	svc := NewSettingsService(repo)

	_, err := svc.UpdateSettings(context.Background(), &UpdateSettingsInput{TaxRate: floatPtr(1.0)})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if repo.settings.TaxRate != 0.05 {
		t.Errorf("tax rate changed despite rejection: %v", repo.settings.TaxRate)
	}
}
