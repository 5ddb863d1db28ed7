package services

import (
	"context"
	"fmt"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
)

// SettingsService manages the agency settings singleton.
type SettingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the agency settings, seeding defaults on first boot.
func (s *SettingsService) Get(ctx context.Context) (*models.AgencySettings, error) {
	return s.repo.Get(ctx)
}

// UpdateSettingsInput carries the editable agency identity fields.
type UpdateSettingsInput struct {
	Name        string
	Tagline     string
	Phone       string
	Email       string
	Address     string
	BankDetails string
	TaxNumber   string
}

// Update replaces the settings row. The agency name is the one field that
// must never be blank; it appears on every printed document.
func (s *SettingsService) Update(ctx context.Context, input UpdateSettingsInput) (*models.AgencySettings, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: agency name is required", ErrValidation)
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings.Name = input.Name
	settings.Tagline = input.Tagline
	settings.Phone = input.Phone
	settings.Email = input.Email
	settings.Address = input.Address
	settings.BankDetails = input.BankDetails
	settings.TaxNumber = input.TaxNumber

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}
