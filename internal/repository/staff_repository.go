package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/FilmsDust/agency-os/internal/models"
)

// StaffRepository defines the interface for staff data access
type StaffRepository interface {
	FindByID(ctx context.Context, id string) (*models.Staff, error)
	Create(ctx context.Context, staff *models.Staff) error
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query *ListQuery) ([]models.Staff, int64, error)
	FindAll(ctx context.Context) ([]models.Staff, error)
	FindActive(ctx context.Context) ([]models.Staff, error)
	AppendPayment(ctx context.Context, payment *models.StaffPayment) error
}

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) FindByID(ctx context.Context, id string) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.WithContext(ctx).Preload("PaymentHistory").First(&staff, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Create(ctx context.Context, staff *models.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepository) Update(ctx context.Context, staff *models.Staff) error {
	return r.db.WithContext(ctx).Save(staff).Error
}

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Select("PaymentHistory").Delete(&models.Staff{ID: id}).Error
}

func (r *staffRepository) List(ctx context.Context, query *ListQuery) ([]models.Staff, int64, error) {
	var staff []models.Staff
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Staff{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR designation ILIKE ?", search, search)
	}

	if val, ok := query.Filters["status"]; ok && val != "" {
		db = db.Where("status = ?", val)
	}
	if val, ok := query.Filters["department"]; ok && val != "" {
		db = db.Where("department = ?", val)
	}

	db.Count(&total)

	if query.SortBy != "" {
		order := query.SortBy
		if query.SortDir == "desc" {
			order += " DESC"
		}
		db = db.Order(order)
	} else {
		db = db.Order("joining_date ASC")
	}

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Preload("PaymentHistory").Find(&staff).Error
	return staff, total, err
}

func (r *staffRepository) FindAll(ctx context.Context) ([]models.Staff, error) {
	var staff []models.Staff
	err := r.db.WithContext(ctx).Order("joining_date ASC").Find(&staff).Error
	return staff, err
}

func (r *staffRepository) FindActive(ctx context.Context) ([]models.Staff, error) {
	var staff []models.Staff
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StaffStatusActive).
		Order("joining_date ASC").
		Find(&staff).Error
	return staff, err
}

// AppendPayment records one disbursed payroll entry. The history is
// append-only; there is no update or delete path.
func (r *staffRepository) AppendPayment(ctx context.Context, payment *models.StaffPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}
