package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/FilmsDust/agency-os/internal/models"
)

// SettingsRepository defines the interface for the agency settings singleton
type SettingsRepository interface {
	Get(ctx context.Context) (*models.AgencySettings, error)
	Save(ctx context.Context, settings *models.AgencySettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the settings row, seeding the default on first access.
func (r *settingsRepository) Get(ctx context.Context) (*models.AgencySettings, error) {
	var settings models.AgencySettings
	err := r.db.WithContext(ctx).First(&settings, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultAgencySettings()
		if err := r.db.WithContext(ctx).Create(defaults).Error; err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *models.AgencySettings) error {
	settings.ID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}
