package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
	"github.com/FilmsDust/agency-os/internal/storage"
)

// TransactionService manages the general ledger. Entries are immutable once
// posted; the only mutations are create and delete.
type TransactionService struct {
	repo  repository.TransactionRepository
	store *storage.LocalStorage
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo repository.TransactionRepository, store *storage.LocalStorage) *TransactionService {
	return &TransactionService{repo: repo, store: store}
}

// CreateTransactionInput carries the fields for a new ledger entry.
type CreateTransactionInput struct {
	Description string
	Amount      float64
	Type        string
	Date        time.Time
	Category    string
	ProjectID   *string
	EntityName  *string
}

// Create validates and posts a ledger entry. Amounts must be strictly
// positive: the original UI coerced unparsable input to zero, which silently
// masked bad data; here bad input is rejected outright.
func (s *TransactionService) Create(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error) {
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !models.ValidTransactionType(input.Type) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, input.Type)
	}
	if !models.ValidTransactionCategory(input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, input.Category)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	txn := &models.Transaction{
		ID:          models.NewID(),
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		Date:        date,
		Category:    input.Category,
		ProjectID:   input.ProjectID,
		EntityName:  input.EntityName,
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return txn, nil
}

// FindByID returns one ledger entry.
func (s *TransactionService) FindByID(ctx context.Context, id string) (*models.Transaction, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of ledger entries.
func (s *TransactionService) List(ctx context.Context, query *repository.ListQuery) ([]models.Transaction, int64, error) {
	return s.repo.List(ctx, query)
}

// Delete removes a ledger entry. Non-cascading: any invoice or client total
// that this entry fed stays as is.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	txn, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load transaction: %w", err)
	}

	if err := s.repo.Delete(ctx, txn.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	// Remove the stored receipt, if any, after the row is gone.
	if txn.ReceiptPath != nil && *txn.ReceiptPath != "" {
		_ = s.store.Delete(*txn.ReceiptPath)
	}
	return nil
}

// AttachReceipt stores an uploaded receipt image against a ledger entry.
func (s *TransactionService) AttachReceipt(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (*models.Transaction, error) {
	txn, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	if header.Size > storage.MaxReceiptSize {
		return nil, fmt.Errorf("%w: receipt exceeds size limit", ErrValidation)
	}
	if !storage.IsValidReceiptType(header.Header.Get("Content-Type")) {
		return nil, fmt.Errorf("%w: unsupported receipt format", ErrValidation)
	}

	path, err := s.store.Upload(file, header, "receipts")
	if err != nil {
		return nil, fmt.Errorf("failed to store receipt: %w", err)
	}

	// Replace a previously attached receipt.
	if txn.ReceiptPath != nil && *txn.ReceiptPath != "" {
		_ = s.store.Delete(*txn.ReceiptPath)
	}

	txn.ReceiptPath = &path
	if err := s.repo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}
