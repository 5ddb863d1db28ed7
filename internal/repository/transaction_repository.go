package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/FilmsDust/agency-os/internal/models"
)

// TransactionRepository defines the interface for general ledger data access
type TransactionRepository interface {
	FindByID(ctx context.Context, id string) (*models.Transaction, error)
	Create(ctx context.Context, txn *models.Transaction) error
	Update(ctx context.Context, txn *models.Transaction) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query *ListQuery) ([]models.Transaction, int64, error)
	FindAll(ctx context.Context) ([]models.Transaction, error)
	SumByType(ctx context.Context, txnType string) (float64, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) FindByID(ctx context.Context, id string) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) Update(ctx context.Context, txn *models.Transaction) error {
	return r.db.WithContext(ctx).Save(txn).Error
}

// Delete removes a single ledger entry. Deliberately non-cascading: invoices
// and client totals fed by this entry are left untouched.
func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Transaction{}, "id = ?", id).Error
}

func (r *transactionRepository) List(ctx context.Context, query *ListQuery) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Transaction{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("description ILIKE ? OR entity_name ILIKE ?", search, search)
	}

	if val, ok := query.Filters["type"]; ok && val != "" {
		db = db.Where("type = ?", val)
	}
	if val, ok := query.Filters["category"]; ok && val != "" {
		db = db.Where("category = ?", val)
	}
	if val, ok := query.Filters["start_date"]; ok && val != "" {
		db = db.Where("date >= ?", val)
	}
	if val, ok := query.Filters["end_date"]; ok && val != "" {
		db = db.Where("date <= ?", val)
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

	err := db.Find(&transactions).Error
	return transactions, total, err
}

func (r *transactionRepository) FindAll(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error
	return transactions, err
}

// SumByType totals all ledger amounts of the given type in SQL. Used by the
// reports view where loading the full ledger would be wasteful.
func (r *transactionRepository) SumByType(ctx context.Context, txnType string) (float64, error) {
	var result struct {
		Total float64
	}

	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("type = ?", txnType).
		Scan(&result).Error

	return result.Total, err
}
