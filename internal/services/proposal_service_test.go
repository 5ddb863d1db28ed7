package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FilmsDust/agency-os/internal/ai"
	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
)

type mockProposalRepo struct {
	repository.ProposalRepository
	mockFindByID func(ctx context.Context, id string) (*models.Proposal, error)
	mockCreate   func(ctx context.Context, proposal *models.Proposal) error
}

func (m *mockProposalRepo) FindByID(ctx context.Context, id string) (*models.Proposal, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockProposalRepo) Create(ctx context.Context, proposal *models.Proposal) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, proposal)
	}
	return nil
}

type stubGenerator struct {
	sections []ai.Section
	err      error
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", s.err
}

func (s *stubGenerator) GenerateSections(ctx context.Context, prompt string) ([]ai.Section, error) {
	return s.sections, s.err
}

func TestProposalService_Create_WithGeneratedSections(t *testing.T) {
	repo := &mockProposalRepo{}
	var saved *models.Proposal
	repo.mockCreate = func(ctx context.Context, proposal *models.Proposal) error {
		saved = proposal
		return nil
	}

	gen := &stubGenerator{sections: []ai.Section{
		{Title: "Executive Summary", Content: "...", Type: models.SectionSummary},
		{Title: "Timeline", Content: "...", Type: models.SectionTimeline},
	}}

	svc := NewProposalService(repo, &mockClientRepo{}, nil, gen)
	proposal, err := svc.Create(context.Background(), CreateProposalInput{
		ClientName:   "Acme Retail",
		ProjectTitle: "Brand Relaunch",
		TemplateType: models.TemplateGrowth,
		TotalAmount:  100000,
	})
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Len(t, proposal.Sections, 2)
	assert.Equal(t, 0, proposal.Sections[0].Position)
	assert.Equal(t, 1, proposal.Sections[1].Position)
	assert.Len(t, proposal.QuoteNo, 4)
}

func TestProposalService_Create_GeneratorFailureFallsBackToEmpty(t *testing.T) {
	repo := &mockProposalRepo{}
	var saved *models.Proposal
	repo.mockCreate = func(ctx context.Context, proposal *models.Proposal) error {
		saved = proposal
		return nil
	}

	svc := NewProposalService(repo, &mockClientRepo{}, nil, &stubGenerator{err: errors.New("provider down")})
	proposal, err := svc.Create(context.Background(), CreateProposalInput{
		ClientName:   "Acme Retail",
		ProjectTitle: "Brand Relaunch",
		TemplateType: models.TemplateStarter,
		TotalAmount:  50000,
	})
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Empty(t, proposal.Sections)
}

func TestProposalService_ConvertToInvoice_AppliesTaxOnQuotedAmount(t *testing.T) {
	propRepo := &mockProposalRepo{}
	propRepo.mockFindByID = func(ctx context.Context, id string) (*models.Proposal, error) {
		return &models.Proposal{
			ID:           id,
			ClientName:   "Acme Retail",
			ProjectTitle: "Brand Relaunch",
			TotalAmount:  100000,
		}, nil
	}

	clientRepo := &mockClientRepo{}
	clientRepo.mockFindByName = func(ctx context.Context, name string) (*models.Client, error) {
		assert.Equal(t, "Acme Retail", name)
		return &models.Client{ID: "client-1", Name: name}, nil
	}
	clientRepo.mockFindByID = func(ctx context.Context, id string) (*models.Client, error) {
		return &models.Client{ID: id, Name: "Acme Retail"}, nil
	}

	invRepo := &mockInvoiceRepo{}
	var created *models.Invoice
	invRepo.mockCreate = func(ctx context.Context, invoice *models.Invoice) error {
		created = invoice
		return nil
	}

	invoiceSvc, worker := testInvoiceService(invRepo, &mockTransactionRepo{}, clientRepo)
	defer worker.Shutdown()

	svc := NewProposalService(propRepo, clientRepo, invoiceSvc, &stubGenerator{})
	invoice, err := svc.ConvertToInvoice(context.Background(), "prop-1")
	assert.NoError(t, err)
	assert.NotNil(t, created)

	assert.Len(t, invoice.Items, 1)
	assert.InDelta(t, 100000.0, invoice.Items[0].UnitPrice, 0.001)
	// Tax is layered onto the quoted amount at invoice creation.
	assert.InDelta(t, 116000.0, invoice.Total, 0.001)
}

func TestProposalService_ConvertToInvoice_UnknownClient(t *testing.T) {
	propRepo := &mockProposalRepo{}
	propRepo.mockFindByID = func(ctx context.Context, id string) (*models.Proposal, error) {
		return &models.Proposal{ID: id, ClientName: "Nobody Inc"}, nil
	}

	clientRepo := &mockClientRepo{}
	clientRepo.mockFindByName = func(ctx context.Context, name string) (*models.Client, error) {
		return nil, errors.New("record not found")
	}

	invoiceSvc, worker := testInvoiceService(&mockInvoiceRepo{}, &mockTransactionRepo{}, clientRepo)
	defer worker.Shutdown()

	svc := NewProposalService(propRepo, clientRepo, invoiceSvc, &stubGenerator{})
	_, err := svc.ConvertToInvoice(context.Background(), "prop-1")
	assert.Error(t, err)
}

func TestSectionPrompt_RequestsThreeNamedSections(t *testing.T) {
	prompt := sectionPrompt(CreateProposalInput{
		ClientName:     "Acme Retail",
		ClientIndustry: "Retail",
		ProjectTitle:   "Spring campaign",
		Duration:       "6 weeks",
		TemplateType:   models.TemplateGrowth,
		TotalAmount:    100000,
	})

	// Pricing is rendered from the quoted amounts, never AI-generated.
	assert.Contains(t, prompt, "Exactly 3 short sections: SUMMARY, TIMELINE, TERMS.")
	assert.NotContains(t, prompt, "PRICING")
}
