package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
)

type mockStaffRepo struct {
	repository.StaffRepository
	mockFindActive    func(ctx context.Context) ([]models.Staff, error)
	mockAppendPayment func(ctx context.Context, payment *models.StaffPayment) error
	mockCreate        func(ctx context.Context, staff *models.Staff) error
}

func (m *mockStaffRepo) FindActive(ctx context.Context) ([]models.Staff, error) {
	return m.mockFindActive(ctx)
}

func (m *mockStaffRepo) AppendPayment(ctx context.Context, payment *models.StaffPayment) error {
	if m.mockAppendPayment != nil {
		return m.mockAppendPayment(ctx, payment)
	}
	return nil
}

func (m *mockStaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, staff)
	}
	return nil
}

func TestStaffService_RunPayroll_PaysActiveOnly(t *testing.T) {
	staffRepo := &mockStaffRepo{}
	txnRepo := &mockTransactionRepo{}

	// FindActive already excludes ON_LEAVE and EXITED at the query level.
	staffRepo.mockFindActive = func(ctx context.Context) ([]models.Staff, error) {
		return []models.Staff{
			{ID: "st-1", Name: "Ayesha Khan", Salary: 90000, Status: models.StaffStatusActive},
			{ID: "st-2", Name: "Bilal Ahmed", Salary: 60000, Status: models.StaffStatusActive},
		}, nil
	}

	var posted []*models.Transaction
	txnRepo.mockCreate = func(ctx context.Context, txn *models.Transaction) error {
		posted = append(posted, txn)
		return nil
	}

	var history []*models.StaffPayment
	staffRepo.mockAppendPayment = func(ctx context.Context, payment *models.StaffPayment) error {
		history = append(history, payment)
		return nil
	}

	svc := NewStaffService(staffRepo, txnRepo)
	result, err := svc.RunPayroll(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 2, result.StaffPaid)
	assert.InDelta(t, 150000.0, result.TotalAmount, 0.001)

	assert.Len(t, posted, 2)
	for _, txn := range posted {
		assert.Equal(t, models.TransactionTypeExpense, txn.Type)
		assert.Equal(t, models.CategoryPayroll, txn.Category)
		assert.Contains(t, txn.Description, "PAYROLL DISBURSEMENT: ")
	}

	assert.Len(t, history, 2)
	assert.Equal(t, "st-1", history[0].StaffID)
	assert.InDelta(t, 90000.0, history[0].Amount, 0.001)
	assert.NotEmpty(t, history[0].Month)
}

func TestStaffService_RunPayroll_NoActiveStaff(t *testing.T) {
	staffRepo := &mockStaffRepo{}
	staffRepo.mockFindActive = func(ctx context.Context) ([]models.Staff, error) {
		return nil, nil
	}

	svc := NewStaffService(staffRepo, &mockTransactionRepo{})
	result, err := svc.RunPayroll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, result.StaffPaid)
	assert.Zero(t, result.TotalAmount)
}

func TestStaffService_Create_RejectsUnknownDepartment(t *testing.T) {
	svc := NewStaffService(&mockStaffRepo{}, &mockTransactionRepo{})
	_, err := svc.Create(context.Background(), CreateStaffInput{
		Name:       "Ayesha Khan",
		Department: "LEGAL",
		Salary:     90000,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStaffService_Create_RejectsNonPositiveSalary(t *testing.T) {
	svc := NewStaffService(&mockStaffRepo{}, &mockTransactionRepo{})
	_, err := svc.Create(context.Background(), CreateStaffInput{
		Name:       "Ayesha Khan",
		Department: models.DepartmentCreative,
		Salary:     0,
	})
	assert.ErrorIs(t, err, ErrValidation)
}
