package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/FilmsDust/agency-os/internal/models"
)

// ProposalRepository defines the interface for proposal data access
type ProposalRepository interface {
	FindByID(ctx context.Context, id string) (*models.Proposal, error)
	Create(ctx context.Context, proposal *models.Proposal) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query *ListQuery) ([]models.Proposal, int64, error)
	FindAll(ctx context.Context) ([]models.Proposal, error)
}

type proposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new proposal repository
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) FindByID(ctx context.Context, id string) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&proposal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) Create(ctx context.Context, proposal *models.Proposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

// Delete removes a proposal and its sections. Proposals are immutable after
// creation, so there is no update path.
func (r *proposalRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Select("Sections").Delete(&models.Proposal{ID: id}).Error
}

func (r *proposalRepository) List(ctx context.Context, query *ListQuery) ([]models.Proposal, int64, error) {
	var proposals []models.Proposal
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Proposal{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("client_name ILIKE ? OR project_title ILIKE ?", search, search)
	}

	if val, ok := query.Filters["template_type"]; ok && val != "" {
		db = db.Where("template_type = ?", val)
	}

	db.Count(&total)

	if query.SortBy != "" {
		order := query.SortBy
		if query.SortDir == "desc" {
			order += " DESC"
		}
		db = db.Order(order)
	} else {
		db = db.Order("created_at DESC")
	}

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Find(&proposals).Error
	return proposals, total, err
}

func (r *proposalRepository) FindAll(ctx context.Context) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&proposals).Error
	return proposals, err
}
