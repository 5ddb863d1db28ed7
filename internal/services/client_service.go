package services

import (
	"context"
	"fmt"

	"github.com/FilmsDust/agency-os/internal/finance"
	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
)

// ClientService manages agency clients.
type ClientService struct {
	repo        repository.ClientRepository
	projectRepo repository.ProjectRepository
	invoiceRepo repository.InvoiceRepository
}

// NewClientService creates a new client service
func NewClientService(repo repository.ClientRepository, projectRepo repository.ProjectRepository, invoiceRepo repository.InvoiceRepository) *ClientService {
	return &ClientService{repo: repo, projectRepo: projectRepo, invoiceRepo: invoiceRepo}
}

// CreateClientInput carries the fields for a new client.
type CreateClientInput struct {
	Name     string
	Email    string
	Industry string
}

// Create adds a client. TotalBilled always starts at zero and is only ever
// grown by invoice payments.
func (s *ClientService) Create(ctx context.Context, input CreateClientInput) (*models.Client, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	client := &models.Client{
		ID:          models.NewID(),
		Name:        input.Name,
		Email:       input.Email,
		Industry:    input.Industry,
		TotalBilled: 0,
		Status:      models.ClientStatusActive,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// UpdateClientInput carries editable client fields. TotalBilled is absent by
// design.
type UpdateClientInput struct {
	Name     *string
	Email    *string
	Industry *string
	Status   *string
}

// Update edits client contact fields and status.
func (s *ClientService) Update(ctx context.Context, id string, input UpdateClientInput) (*models.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	if input.Name != nil && *input.Name != "" {
		client.Name = *input.Name
	}
	if input.Email != nil && *input.Email != "" {
		client.Email = *input.Email
	}
	if input.Industry != nil {
		client.Industry = *input.Industry
	}
	if input.Status != nil {
		if !models.ValidClientStatus(*input.Status) {
			return nil, fmt.Errorf("%w: unknown client status %q", ErrValidation, *input.Status)
		}
		client.Status = *input.Status
	}

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// FindByID returns one client.
func (s *ClientService) FindByID(ctx context.Context, id string) (*models.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of clients.
func (s *ClientService) List(ctx context.Context, query *repository.ListQuery) ([]models.Client, int64, error) {
	return s.repo.List(ctx, query)
}

// Delete removes a client. Invoices and ledger history referencing the client
// are untouched; they carry denormalized snapshots of the client fields.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Stats computes the derived per-client counts on demand.
func (s *ClientService) Stats(ctx context.Context, id string) (*models.ClientStats, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	projects, err := s.projectRepo.FindByClientID(ctx, client.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	invoices, err := s.invoiceRepo.FindByClientID(ctx, client.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}

	stats := finance.PerClientStats(client.ID, projects, invoices)
	return &stats, nil
}
