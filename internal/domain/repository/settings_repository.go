package repository

import (
	"context"

	"github.com/almadina/pos-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the billing settings singleton
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.BillingSettings, error)
	Create(ctx context.Context, settings *entity.BillingSettings) error
	Update(ctx context.Context, settings *entity.BillingSettings) error
}
