package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
	"github.com/FilmsDust/agency-os/pkg/logger"
)

// PurchaseService manages vendor purchases and their mirrored ledger entries.
type PurchaseService struct {
	repo    repository.PurchaseRepository
	txnRepo repository.TransactionRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(repo repository.PurchaseRepository, txnRepo repository.TransactionRepository) *PurchaseService {
	return &PurchaseService{repo: repo, txnRepo: txnRepo}
}

// CreatePurchaseInput carries the fields for a new purchase record.
type CreatePurchaseInput struct {
	VendorName  string
	Description string
	Amount      float64
	Date        time.Time
	Status      string
	Category    string
}

// Create records a vendor purchase and mirrors it into the ledger as an
// EXPENSE transaction under the same id. The shared id is what lets Delete
// find the mirrored entry later.
func (s *PurchaseService) Create(ctx context.Context, input CreatePurchaseInput) (*models.PurchaseRecord, error) {
	if input.VendorName == "" {
		return nil, fmt.Errorf("%w: vendor name is required", ErrValidation)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	status := input.Status
	if status == "" {
		status = models.PurchaseStatusPaid
	}
	if !models.ValidPurchaseStatus(status) {
		return nil, fmt.Errorf("%w: unknown purchase status %q", ErrValidation, status)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	purchase := &models.PurchaseRecord{
		ID:          models.NewID(),
		VendorName:  input.VendorName,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        date,
		Status:      status,
		Category:    input.Category,
	}

	if err := s.repo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	txn := &models.Transaction{
		ID:          purchase.ID,
		Description: purchase.LedgerDescription(),
		Amount:      purchase.Amount,
		Type:        models.TransactionTypeExpense,
		Date:        purchase.Date,
		Category:    models.CategoryVendorPurchase,
		EntityName:  &purchase.VendorName,
	}
	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to mirror purchase to ledger: %w", err)
	}

	return purchase, nil
}

// Delete removes a purchase together with its mirrored ledger entry.
func (s *PurchaseService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("failed to load purchase: %w", err)
	}
	if err := s.repo.DeleteWithLedgerEntry(ctx, id); err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	logger.Info("Purchase and ledger entry deleted", "purchase_id", id)
	return nil
}

// FindByID returns one purchase record.
func (s *PurchaseService) FindByID(ctx context.Context, id string) (*models.PurchaseRecord, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of purchase records.
func (s *PurchaseService) List(ctx context.Context, query *repository.ListQuery) ([]models.PurchaseRecord, int64, error) {
	return s.repo.List(ctx, query)
}
