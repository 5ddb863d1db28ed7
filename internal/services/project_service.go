package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
)

// ProjectService manages client engagements.
type ProjectService struct {
	repo       repository.ProjectRepository
	clientRepo repository.ClientRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepository, clientRepo repository.ClientRepository) *ProjectService {
	return &ProjectService{repo: repo, clientRepo: clientRepo}
}

// CreateProjectInput carries the fields for a new project.
type CreateProjectInput struct {
	ClientID string
	Title    string
	Budget   float64
	Deadline time.Time
}

// Create starts a project in PLANNING with zero progress. The client name is
// snapshotted at creation like it is on invoices.
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must not be negative", ErrValidation)
	}

	client, err := s.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	deadline := input.Deadline
	if deadline.IsZero() {
		deadline = time.Now().AddDate(0, 1, 0)
	}

	project := &models.Project{
		ID:         models.NewID(),
		ClientID:   client.ID,
		ClientName: client.Name,
		Title:      input.Title,
		Budget:     input.Budget,
		Status:     models.ProjectStatusPlanning,
		Progress:   0,
		Deadline:   deadline,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// UpdateProgress sets the completion percentage. Status is derived from
// progress, not accepted from the caller: 100 completes the project, any
// lower value keeps it active.
func (s *ProjectService) UpdateProgress(ctx context.Context, id string, progress int) (*models.Project, error) {
	if progress < 0 || progress > 100 {
		return nil, fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	project.ApplyProgress(progress)
	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// Hold pauses a project that has not been started or completed via progress.
func (s *ProjectService) Hold(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if project.Status == models.ProjectStatusCompleted {
		return nil, fmt.Errorf("%w: completed projects cannot be put on hold", ErrInvalidState)
	}

	project.Status = models.ProjectStatusOnHold
	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// FindByID returns one project.
func (s *ProjectService) FindByID(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of projects.
func (s *ProjectService) List(ctx context.Context, query *repository.ListQuery) ([]models.Project, int64, error) {
	return s.repo.List(ctx, query)
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
