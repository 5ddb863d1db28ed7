package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/FilmsDust/agency-os/internal/models"
)

// LeadRepository defines the interface for sales pipeline data access
type LeadRepository interface {
	FindByID(ctx context.Context, id string) (*models.Lead, error)
	Create(ctx context.Context, lead *models.Lead) error
	Update(ctx context.Context, lead *models.Lead) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query *ListQuery) ([]models.Lead, int64, error)
	FindAll(ctx context.Context) ([]models.Lead, error)
	FindOpen(ctx context.Context) ([]models.Lead, error)
}

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) FindByID(ctx context.Context, id string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) Update(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

func (r *leadRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Lead{}, "id = ?", id).Error
}

func (r *leadRepository) List(ctx context.Context, query *ListQuery) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Lead{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("company_name ILIKE ? OR contact_name ILIKE ?", search, search)
	}

	if val, ok := query.Filters["status"]; ok && val != "" {
		db = db.Where("status = ?", val)
	}

	db.Count(&total)

	if query.SortBy != "" {
		order := query.SortBy
		if query.SortDir == "desc" {
			order += " DESC"
		}
		db = db.Order(order)
	} else {
		db = db.Order("date_added DESC")
	}

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&leads).Error
	return leads, total, err
}

func (r *leadRepository) FindAll(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.WithContext(ctx).Order("date_added DESC").Find(&leads).Error
	return leads, err
}

// FindOpen returns leads still counting toward pipeline value.
func (r *leadRepository) FindOpen(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []string{models.LeadStatusWon, models.LeadStatusLost}).
		Order("date_added DESC").
		Find(&leads).Error
	return leads, err
}
