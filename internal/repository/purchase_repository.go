package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/FilmsDust/agency-os/internal/models"
)

// PurchaseRepository defines the interface for vendor purchase data access
type PurchaseRepository interface {
	FindByID(ctx context.Context, id string) (*models.PurchaseRecord, error)
	Create(ctx context.Context, purchase *models.PurchaseRecord) error
	Delete(ctx context.Context, id string) error
	DeleteWithLedgerEntry(ctx context.Context, id string) error
	List(ctx context.Context, query *ListQuery) ([]models.PurchaseRecord, int64, error)
	FindAll(ctx context.Context) ([]models.PurchaseRecord, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) FindByID(ctx context.Context, id string) (*models.PurchaseRecord, error) {
	var purchase models.PurchaseRecord
	err := r.db.WithContext(ctx).First(&purchase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *models.PurchaseRecord) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.PurchaseRecord{}, "id = ?", id).Error
}

// DeleteWithLedgerEntry removes a purchase record together with the ledger
// transaction mirrored under the same id. The one cascading delete in the
// system; both rows go or neither does.
func (r *purchaseRepository) DeleteWithLedgerEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PurchaseRecord{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Transaction{}, "id = ?", id).Error
	})
}

func (r *purchaseRepository) List(ctx context.Context, query *ListQuery) ([]models.PurchaseRecord, int64, error) {
	var purchases []models.PurchaseRecord
	var total int64

	db := r.db.WithContext(ctx).Model(&models.PurchaseRecord{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("vendor_name ILIKE ? OR description ILIKE ?", search, search)
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
		db = db.Order("date DESC, created_at DESC")
	}

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&purchases).Error
	return purchases, total, err
}

func (r *purchaseRepository) FindAll(ctx context.Context) ([]models.PurchaseRecord, error) {
	var purchases []models.PurchaseRecord
	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&purchases).Error
	return purchases, err
}
