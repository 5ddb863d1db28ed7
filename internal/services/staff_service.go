package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
	"github.com/FilmsDust/agency-os/pkg/logger"
)

// StaffService manages team members and runs payroll.
type StaffService struct {
	repo    repository.StaffRepository
	txnRepo repository.TransactionRepository
}

// NewStaffService creates a new staff service
func NewStaffService(repo repository.StaffRepository, txnRepo repository.TransactionRepository) *StaffService {
	return &StaffService{repo: repo, txnRepo: txnRepo}
}

// CreateStaffInput carries the fields for a new team member.
type CreateStaffInput struct {
	Name        string
	Designation string
	Department  string
	Salary      float64
	JoiningDate time.Time
}

// Create adds a staff member in ACTIVE status with an empty payment history.
func (s *StaffService) Create(ctx context.Context, input CreateStaffInput) (*models.Staff, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Salary <= 0 {
		return nil, fmt.Errorf("%w: salary must be positive", ErrValidation)
	}
	if !models.ValidDepartment(input.Department) {
		return nil, fmt.Errorf("%w: unknown department %q", ErrValidation, input.Department)
	}

	joining := input.JoiningDate
	if joining.IsZero() {
		joining = time.Now()
	}

	staff := &models.Staff{
		ID:          models.NewID(),
		Name:        input.Name,
		Designation: input.Designation,
		Department:  input.Department,
		Salary:      input.Salary,
		JoiningDate: joining,
		Status:      models.StaffStatusActive,
	}

	if err := s.repo.Create(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return staff, nil
}

// UpdateStatus moves a staff member between ACTIVE, ON_LEAVE and EXITED.
func (s *StaffService) UpdateStatus(ctx context.Context, id, status string) (*models.Staff, error) {
	if !models.ValidStaffStatus(status) {
		return nil, fmt.Errorf("%w: unknown staff status %q", ErrValidation, status)
	}

	staff, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff member: %w", err)
	}

	staff.Status = status
	if err := s.repo.Update(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}
	return staff, nil
}

// FindByID returns one staff member with payment history.
func (s *StaffService) FindByID(ctx context.Context, id string) (*models.Staff, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of staff members.
func (s *StaffService) List(ctx context.Context, query *repository.ListQuery) ([]models.Staff, int64, error) {
	return s.repo.List(ctx, query)
}

// Delete removes a staff member and their payment history.
func (s *StaffService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// PayrollResult reports what a payroll run disbursed.
type PayrollResult struct {
	StaffPaid   int     `json:"staff_paid"`
	TotalAmount float64 `json:"total_amount"`
}

// RunPayroll disburses one month of salary to every ACTIVE member: an
// EXPENSE ledger entry plus an append to the member's payment history.
// ON_LEAVE and EXITED members are skipped.
func (s *StaffService) RunPayroll(ctx context.Context) (*PayrollResult, error) {
	active, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active staff: %w", err)
	}

	now := time.Now()
	month := now.Format("January 2006")
	result := &PayrollResult{}

	for i := range active {
		member := &active[i]

		txn := &models.Transaction{
			ID:          models.NewID(),
			Description: fmt.Sprintf("PAYROLL DISBURSEMENT: %s", member.Name),
			Amount:      member.Salary,
			Type:        models.TransactionTypeExpense,
			Date:        now,
			Category:    models.CategoryPayroll,
			EntityName:  &member.Name,
		}
		if err := s.txnRepo.Create(ctx, txn); err != nil {
			return result, fmt.Errorf("failed to post payroll for %s: %w", member.Name, err)
		}

		payment := &models.StaffPayment{
			ID:      models.NewID(),
			StaffID: member.ID,
			Month:   month,
			Amount:  member.Salary,
			PaidAt:  now,
		}
		if err := s.repo.AppendPayment(ctx, payment); err != nil {
			return result, fmt.Errorf("failed to record payment history for %s: %w", member.Name, err)
		}

		result.StaffPaid++
		result.TotalAmount += member.Salary
	}

	logger.Info("Payroll processed", "staff_paid", result.StaffPaid, "total", result.TotalAmount)
	return result, nil
}
