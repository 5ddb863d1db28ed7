package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
	"github.com/FilmsDust/agency-os/internal/statemachine"
)

// LeadService manages the sales pipeline.
type LeadService struct {
	repo       repository.LeadRepository
	clientRepo repository.ClientRepository
}

// NewLeadService creates a new lead service
func NewLeadService(repo repository.LeadRepository, clientRepo repository.ClientRepository) *LeadService {
	return &LeadService{repo: repo, clientRepo: clientRepo}
}

// CreateLeadInput carries the fields for a new lead.
type CreateLeadInput struct {
	CompanyName string
	ContactName string
	Value       float64
	Source      string
}

// Create adds a lead at the top of the funnel.
func (s *LeadService) Create(ctx context.Context, input CreateLeadInput) (*models.Lead, error) {
	if input.CompanyName == "" {
		return nil, fmt.Errorf("%w: company name is required", ErrValidation)
	}
	if input.Value < 0 {
		return nil, fmt.Errorf("%w: value must not be negative", ErrValidation)
	}

	lead := &models.Lead{
		ID:          models.NewID(),
		CompanyName: input.CompanyName,
		ContactName: input.ContactName,
		Value:       input.Value,
		Status:      models.LeadStatusNew,
		Source:      input.Source,
		DateAdded:   time.Now(),
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

// MoveStage moves a lead to another funnel stage via the state machine.
// Won and lost stages are terminal.
func (s *LeadService) MoveStage(ctx context.Context, id, stage string) (*models.Lead, error) {
	if !models.ValidLeadStatus(stage) {
		return nil, fmt.Errorf("%w: unknown funnel stage %q", ErrValidation, stage)
	}

	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load lead: %w", err)
	}

	fsm := statemachine.NewLeadFSM(lead)
	if err := fsm.MoveTo(ctx, stage); err != nil {
		return nil, fmt.Errorf("cannot move lead: %w", err)
	}

	if err := s.repo.Update(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return lead, nil
}

// ConvertToClient turns a lead into an ACTIVE client and removes the lead
// from the funnel. Converted leads are deleted rather than kept as WON.
func (s *LeadService) ConvertToClient(ctx context.Context, id, email, industry string) (*models.Client, error) {
	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load lead: %w", err)
	}

	if !lead.MayConvert() {
		return nil, fmt.Errorf("%w: lost leads cannot be converted", ErrInvalidState)
	}

	client := &models.Client{
		ID:          models.NewID(),
		Name:        lead.CompanyName,
		Email:       email,
		Industry:    industry,
		TotalBilled: 0,
		Status:      models.ClientStatusActive,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := s.repo.Delete(ctx, lead.ID); err != nil {
		return nil, fmt.Errorf("failed to remove converted lead: %w", err)
	}

	return client, nil
}

// FindByID returns one lead.
func (s *LeadService) FindByID(ctx context.Context, id string) (*models.Lead, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of leads.
func (s *LeadService) List(ctx context.Context, query *repository.ListQuery) ([]models.Lead, int64, error) {
	return s.repo.List(ctx, query)
}

// Delete removes a lead.
func (s *LeadService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
