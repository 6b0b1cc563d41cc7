package repository

import (
	"context"
	"errors"

	"github.com/almadina/pos-api/internal/domain/entity"
	domainRepo "github.com/almadina/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new billing settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the billing settings singleton, or nil when none exists yet
func (r *settingsRepository) Get(ctx context.Context) (*entity.BillingSettings, error) {
	var settings entity.BillingSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) Create(ctx context.Context, settings *entity.BillingSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.BillingSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
