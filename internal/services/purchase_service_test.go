package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
)

type mockPurchaseRepo struct {
	repository.PurchaseRepository
	mockFindByID              func(ctx context.Context, id string) (*models.PurchaseRecord, error)
	mockCreate                func(ctx context.Context, purchase *models.PurchaseRecord) error
	mockDeleteWithLedgerEntry func(ctx context.Context, id string) error
}

func (m *mockPurchaseRepo) FindByID(ctx context.Context, id string) (*models.PurchaseRecord, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockPurchaseRepo) Create(ctx context.Context, purchase *models.PurchaseRecord) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, purchase)
	}
	return nil
}

func (m *mockPurchaseRepo) DeleteWithLedgerEntry(ctx context.Context, id string) error {
	return m.mockDeleteWithLedgerEntry(ctx, id)
}

func TestPurchaseService_Create_MirrorsLedgerEntryUnderSameID(t *testing.T) {
	purchRepo := &mockPurchaseRepo{}
	txnRepo := &mockTransactionRepo{}

	var savedPurchase *models.PurchaseRecord
	purchRepo.mockCreate = func(ctx context.Context, purchase *models.PurchaseRecord) error {
		savedPurchase = purchase
		return nil
	}

	var mirrored *models.Transaction
	txnRepo.mockCreate = func(ctx context.Context, txn *models.Transaction) error {
		mirrored = txn
		return nil
	}

	svc := NewPurchaseService(purchRepo, txnRepo)
	purchase, err := svc.Create(context.Background(), CreatePurchaseInput{
		VendorName:  "PaperWorks",
		Description: "Office supplies",
		Amount:      4500,
		Category:    "SUPPLIES",
	})
	assert.NoError(t, err)
	assert.NotNil(t, savedPurchase)
	assert.NotNil(t, mirrored)

	assert.Equal(t, purchase.ID, mirrored.ID)
	assert.Equal(t, models.TransactionTypeExpense, mirrored.Type)
	assert.Equal(t, models.CategoryVendorPurchase, mirrored.Category)
	assert.Equal(t, "PURCHASE: PaperWorks (Office supplies)", mirrored.Description)
	assert.InDelta(t, 4500.0, mirrored.Amount, 0.001)
	assert.Equal(t, models.PurchaseStatusPaid, purchase.Status)
}

func TestPurchaseService_Create_RejectsNonPositiveAmount(t *testing.T) {
	svc := NewPurchaseService(&mockPurchaseRepo{}, &mockTransactionRepo{})
	_, err := svc.Create(context.Background(), CreatePurchaseInput{
		VendorName: "PaperWorks",
		Amount:     -10,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPurchaseService_Delete_RemovesBothRows(t *testing.T) {
	purchRepo := &mockPurchaseRepo{}
	purchRepo.mockFindByID = func(ctx context.Context, id string) (*models.PurchaseRecord, error) {
		return &models.PurchaseRecord{ID: id}, nil
	}

	var deletedID string
	purchRepo.mockDeleteWithLedgerEntry = func(ctx context.Context, id string) error {
		deletedID = id
		return nil
	}

	svc := NewPurchaseService(purchRepo, &mockTransactionRepo{})
	err := svc.Delete(context.Background(), "pur-1")
	assert.NoError(t, err)
	assert.Equal(t, "pur-1", deletedID)
}
