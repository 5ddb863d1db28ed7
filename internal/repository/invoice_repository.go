package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/FilmsDust/agency-os/internal/models"
)

// InvoiceRepository defines the interface for invoice data access
type InvoiceRepository interface {
	FindByID(ctx context.Context, id string) (*models.Invoice, error)
	Create(ctx context.Context, invoice *models.Invoice) error
	Update(ctx context.Context, invoice *models.Invoice) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query *ListQuery) ([]models.Invoice, int64, error)
	FindAll(ctx context.Context) ([]models.Invoice, error)
	FindByClientID(ctx context.Context, clientID string) ([]models.Invoice, error)
	FindOverdueCandidates(ctx context.Context) ([]models.Invoice, error)
	Count(ctx context.Context) (int64, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) FindByID(ctx context.Context, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).Preload("Items").First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

// Delete removes an invoice and its line items. Posted ledger transactions
// and client billing totals are intentionally not reversed.
func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Select("Items").Delete(&models.Invoice{ID: id}).Error
}

func (r *invoiceRepository) List(ctx context.Context, query *ListQuery) ([]models.Invoice, int64, error) {
	var invoices []models.Invoice
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Invoice{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("client_name ILIKE ? OR invoice_number ILIKE ?", search, search)
	}

	if val, ok := query.Filters["status"]; ok && val != "" {
		db = db.Where("status = ?", val)
	}
	if val, ok := query.Filters["client_id"]; ok && val != "" {
		db = db.Where("client_id = ?", val)
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

	err := db.Preload("Items").Find(&invoices).Error
	return invoices, total, err
}

func (r *invoiceRepository) FindAll(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) FindByClientID(ctx context.Context, clientID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

// FindOverdueCandidates returns sent invoices whose due date has passed.
func (r *invoiceRepository) FindOverdueCandidates(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Where("status = ? AND due_date < CURRENT_DATE", models.InvoiceStatusSent).
		Find(&invoices).Error
	return invoices, err
}

// Count returns the total number of invoices, used for display numbering.
func (r *invoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).Count(&count).Error
	return count, err
}
