package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/FilmsDust/agency-os/internal/models"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	FindByID(ctx context.Context, id string) (*models.Client, error)
	FindByName(ctx context.Context, name string) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query *ListQuery) ([]models.Client, int64, error)
	FindAll(ctx context.Context) ([]models.Client, error)
	IncrementTotalBilled(ctx context.Context, id string, amount float64) error
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) FindByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// FindByName resolves a client by exact name match. Proposal conversion keys
// on the client name, not the id, because proposals store only the name.
func (r *clientRepository) FindByName(ctx context.Context, name string) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).First(&client, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id).Error
}

func (r *clientRepository) List(ctx context.Context, query *ListQuery) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Client{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR email ILIKE ? OR industry ILIKE ?", search, search, search)
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
		db = db.Order("created_at DESC")
	}

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&clients).Error
	return clients, total, err
}

func (r *clientRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.WithContext(ctx).Order("name ASC").Find(&clients).Error
	return clients, err
}

// IncrementTotalBilled adds amount to the client's lifetime billing total
// atomically in SQL, avoiding a read-modify-write race.
func (r *clientRepository) IncrementTotalBilled(ctx context.Context, id string, amount float64) error {
	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		UpdateColumn("total_billed", gorm.Expr("total_billed + ?", amount)).Error
}
