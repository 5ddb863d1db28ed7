package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
)

type mockLeadRepo struct {
	repository.LeadRepository
	mockFindByID func(ctx context.Context, id string) (*models.Lead, error)
	mockUpdate   func(ctx context.Context, lead *models.Lead) error
	mockDelete   func(ctx context.Context, id string) error
}

func (m *mockLeadRepo) FindByID(ctx context.Context, id string) (*models.Lead, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockLeadRepo) Update(ctx context.Context, lead *models.Lead) error {
	if m.mockUpdate != nil {
		return m.mockUpdate(ctx, lead)
	}
	return nil
}

func (m *mockLeadRepo) Delete(ctx context.Context, id string) error {
	if m.mockDelete != nil {
		return m.mockDelete(ctx, id)
	}
	return nil
}

func TestLeadService_MoveStage(t *testing.T) {
	leadRepo := &mockLeadRepo{}
	leadRepo.mockFindByID = func(ctx context.Context, id string) (*models.Lead, error) {
		return &models.Lead{ID: id, Status: models.LeadStatusNew}, nil
	}

	svc := NewLeadService(leadRepo, &mockClientRepo{})
	lead, err := svc.MoveStage(context.Background(), "lead-1", models.LeadStatusContacted)
	assert.NoError(t, err)
	assert.Equal(t, models.LeadStatusContacted, lead.Status)
}

func TestLeadService_MoveStage_TerminalStageRejected(t *testing.T) {
	leadRepo := &mockLeadRepo{}
	leadRepo.mockFindByID = func(ctx context.Context, id string) (*models.Lead, error) {
		return &models.Lead{ID: id, Status: models.LeadStatusLost}, nil
	}

	svc := NewLeadService(leadRepo, &mockClientRepo{})
	_, err := svc.MoveStage(context.Background(), "lead-1", models.LeadStatusContacted)
	assert.Error(t, err)
}

func TestLeadService_MoveStage_UnknownStage(t *testing.T) {
	svc := NewLeadService(&mockLeadRepo{}, &mockClientRepo{})
	_, err := svc.MoveStage(context.Background(), "lead-1", "FROZEN")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLeadService_ConvertToClient_DeletesLead(t *testing.T) {
	leadRepo := &mockLeadRepo{}
	clientRepo := &mockClientRepo{}

	leadRepo.mockFindByID = func(ctx context.Context, id string) (*models.Lead, error) {
		return &models.Lead{
			ID:          id,
			CompanyName: "Sunrise Foods",
			Status:      models.LeadStatusNegotiation,
			Value:       80000,
		}, nil
	}

	var createdClient *models.Client
	clientRepo.mockCreate = func(ctx context.Context, client *models.Client) error {
		createdClient = client
		return nil
	}

	var deletedID string
	leadRepo.mockDelete = func(ctx context.Context, id string) error {
		deletedID = id
		return nil
	}

	svc := NewLeadService(leadRepo, clientRepo)
	client, err := svc.ConvertToClient(context.Background(), "lead-1", "hello@sunrise.test", "Food")
	assert.NoError(t, err)

	assert.NotNil(t, createdClient)
	assert.Equal(t, "Sunrise Foods", client.Name)
	assert.Equal(t, models.ClientStatusActive, client.Status)
	assert.Zero(t, client.TotalBilled)
	assert.Equal(t, "lead-1", deletedID)
}

func TestLeadService_ConvertToClient_LostLeadRejected(t *testing.T) {
	leadRepo := &mockLeadRepo{}
	leadRepo.mockFindByID = func(ctx context.Context, id string) (*models.Lead, error) {
		return &models.Lead{ID: id, CompanyName: "Sunrise Foods", Status: models.LeadStatusLost}, nil
	}

	svc := NewLeadService(leadRepo, &mockClientRepo{})
	_, err := svc.ConvertToClient(context.Background(), "lead-1", "", "")
	assert.ErrorIs(t, err, ErrInvalidState)
}
