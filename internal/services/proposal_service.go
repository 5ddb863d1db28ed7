package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FilmsDust/agency-os/internal/ai"
	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
	"github.com/FilmsDust/agency-os/pkg/logger"
)

// ProposalService creates proposal documents and converts them to invoices.
type ProposalService struct {
	repo       repository.ProposalRepository
	clientRepo repository.ClientRepository
	invoiceSvc *InvoiceService
	generator  ai.TextGenerator
}

// NewProposalService creates a new proposal service
func NewProposalService(
	repo repository.ProposalRepository,
	clientRepo repository.ClientRepository,
	invoiceSvc *InvoiceService,
	generator ai.TextGenerator,
) *ProposalService {
	return &ProposalService{
		repo:       repo,
		clientRepo: clientRepo,
		invoiceSvc: invoiceSvc,
		generator:  generator,
	}
}

// CreateProposalInput carries the fields for a new proposal.
type CreateProposalInput struct {
	ClientName     string
	ClientIndustry string
	ProjectTitle   string
	Duration       string
	TemplateType   string
	TotalAmount    float64
	AdvanceAmount  float64
}

// Create builds a proposal, asking the text generator for its section copy.
// Generation failures degrade to an empty section list; the proposal is
// created either way.
func (s *ProposalService) Create(ctx context.Context, input CreateProposalInput) (*models.Proposal, error) {
	if input.ClientName == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrValidation)
	}
	if input.ProjectTitle == "" {
		return nil, fmt.Errorf("%w: project title is required", ErrValidation)
	}
	if !models.ValidTemplateType(input.TemplateType) {
		return nil, fmt.Errorf("%w: unknown template type %q", ErrValidation, input.TemplateType)
	}
	if input.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: total amount must be positive", ErrValidation)
	}
	if input.AdvanceAmount < 0 {
		return nil, fmt.Errorf("%w: advance amount must not be negative", ErrValidation)
	}

	proposalID := models.NewID()
	proposal := &models.Proposal{
		ID:             proposalID,
		ClientName:     input.ClientName,
		ClientIndustry: input.ClientIndustry,
		ProjectTitle:   input.ProjectTitle,
		Duration:       input.Duration,
		TemplateType:   input.TemplateType,
		Date:           time.Now(),
		QuoteNo:        models.NewQuoteNumber(),
		TotalAmount:    input.TotalAmount,
		AdvanceAmount:  input.AdvanceAmount,
		Sections:       []models.ProposalSection{},
	}

	generated, err := s.generator.GenerateSections(ctx, sectionPrompt(input))
	if err != nil {
		logger.Warn("Proposal section generation failed, creating without copy",
			"proposal_id", proposalID, "error", err)
	} else {
		for i, sec := range generated {
			secType := sec.Type
			if !models.ValidSectionType(secType) {
				secType = models.SectionSummary
			}
			proposal.Sections = append(proposal.Sections, models.ProposalSection{
				ID:         models.NewID(),
				ProposalID: proposalID,
				Position:   i,
				Title:      sec.Title,
				Content:    sec.Content,
				Type:       secType,
			})
		}
	}

	if err := s.repo.Create(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}
	return proposal, nil
}

func sectionPrompt(input CreateProposalInput) string {
	return fmt.Sprintf(
		"Write a %s marketing agency proposal for client %q in the %s industry. "+
			"Project: %s. Duration: %s. Budget: %.2f. "+
			"Exactly 3 short sections: SUMMARY, TIMELINE, TERMS.",
		input.TemplateType, input.ClientName, input.ClientIndustry,
		input.ProjectTitle, input.Duration, input.TotalAmount,
	)
}

// ConvertToInvoice issues an invoice from a proposal: one line item carrying
// the proposal's full quoted amount, billed to the client matching the
// proposal's client name. Invoice creation applies the standard tax rate on
// top of the quoted amount.
func (s *ProposalService) ConvertToInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	proposal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load proposal: %w", err)
	}

	client, err := s.clientRepo.FindByName(ctx, proposal.ClientName)
	if err != nil {
		return nil, fmt.Errorf("no client named %q: %w", proposal.ClientName, err)
	}

	invoice, err := s.invoiceSvc.Create(ctx, CreateInvoiceInput{
		ClientID: client.ID,
		Items: []InvoiceItemInput{
			{
				Description: proposal.ProjectTitle,
				Quantity:    1,
				UnitPrice:   proposal.TotalAmount,
			},
		},
		AdvancePayment: proposal.AdvanceAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to convert proposal: %w", err)
	}

	logger.Info("Proposal converted to invoice",
		"proposal_id", proposal.ID, "invoice_id", invoice.ID, "total", invoice.Total)
	return invoice, nil
}

// FindByID returns one proposal with its ordered sections.
func (s *ProposalService) FindByID(ctx context.Context, id string) (*models.Proposal, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of proposals.
func (s *ProposalService) List(ctx context.Context, query *repository.ListQuery) ([]models.Proposal, int64, error) {
	return s.repo.List(ctx, query)
}

// Delete removes a proposal and its sections.
func (s *ProposalService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
