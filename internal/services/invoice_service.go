package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FilmsDust/agency-os/internal/config"
	"github.com/FilmsDust/agency-os/internal/jobs"
	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
	"github.com/FilmsDust/agency-os/internal/statemachine"
	"github.com/FilmsDust/agency-os/pkg/logger"
)

// InvoiceService owns the invoice lifecycle and the payment posting rule.
type InvoiceService struct {
	repo       repository.InvoiceRepository
	txnRepo    repository.TransactionRepository
	clientRepo repository.ClientRepository
	emailSvc   *EmailService
	worker     *jobs.Worker
	cfg        *config.Config
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	repo repository.InvoiceRepository,
	txnRepo repository.TransactionRepository,
	clientRepo repository.ClientRepository,
	emailSvc *EmailService,
	worker *jobs.Worker,
	cfg *config.Config,
) *InvoiceService {
	return &InvoiceService{
		repo:       repo,
		txnRepo:    txnRepo,
		clientRepo: clientRepo,
		emailSvc:   emailSvc,
		worker:     worker,
		cfg:        cfg,
	}
}

// CreateInvoiceInput carries the fields for a new invoice.
type CreateInvoiceInput struct {
	ClientID       string
	Items          []InvoiceItemInput
	DiscountAmount float64
	AdvancePayment float64
	Currency       string
	Notes          *string
	DueDate        *time.Time
}

// InvoiceItemInput is one requested line item.
type InvoiceItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// Create issues a new invoice in SENT status. The total is computed here,
// once: (sum of qty x unit price - discount) x (1 + tax/100). It is never
// recalculated afterwards, even if the stored items were somehow edited.
func (s *InvoiceService) Create(ctx context.Context, input CreateInvoiceInput) (*models.Invoice, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one line item is required", ErrValidation)
	}
	for _, item := range input.Items {
		if item.Description == "" {
			return nil, fmt.Errorf("%w: item description is required", ErrValidation)
		}
		if item.Quantity < 0 || item.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: item quantity and price must not be negative", ErrValidation)
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}
	if !models.ValidCurrency(currency) {
		return nil, fmt.Errorf("%w: unsupported currency %q", ErrValidation, currency)
	}

	client, err := s.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}

	invoiceID := models.NewID()
	items := make([]models.InvoiceItem, 0, len(input.Items))
	var subtotal float64
	for _, item := range input.Items {
		subtotal += item.Quantity * item.UnitPrice
		items = append(items, models.InvoiceItem{
			ID:          models.NewID(),
			InvoiceID:   invoiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	now := time.Now()
	dueDate := now.AddDate(0, 0, 7)
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}

	invoice := &models.Invoice{
		ID:             invoiceID,
		InvoiceNumber:  models.InvoiceNumberFor(s.cfg.InvoicePrefix, count, s.cfg.InvoiceNumberOffset),
		ClientID:       client.ID,
		ClientName:     client.Name,
		ClientEmail:    client.Email,
		Date:           now,
		DueDate:        dueDate,
		Items:          items,
		Status:         models.InvoiceStatusSent,
		TaxRate:        models.DefaultTaxRate,
		DiscountAmount: input.DiscountAmount,
		AdvancePayment: input.AdvancePayment,
		PaidAmount:     0,
		Total:          (subtotal - input.DiscountAmount) * (1 + models.DefaultTaxRate/100),
		Currency:       currency,
		Notes:          input.Notes,
	}

	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	// Deliver the bill to the client off the request path. Email failures
	// never fail invoice creation.
	s.worker.EnqueueAsync(func(ctx context.Context) error {
		return s.emailSvc.SendInvoiceIssued(ctx, invoice)
	})

	return invoice, nil
}

// MarkAsPaid performs the payment posting rule: one income transaction, one
// client total increment, one status transition. Idempotent: an invoice that
// is already paid posts nothing and increments nothing, no matter how many
// times this is called.
func (s *InvoiceService) MarkAsPaid(ctx context.Context, id string) (*models.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice: %w", err)
	}

	if invoice.Status == models.InvoiceStatusPaid {
		logger.Warn("Ignoring repeated payment request", "invoice_id", invoice.ID)
		return invoice, nil
	}

	fsm := statemachine.NewInvoiceFSM(invoice)
	if err := fsm.Pay(ctx); err != nil {
		return nil, fmt.Errorf("cannot mark invoice as paid: %w", err)
	}

	// 1. Persist the transition first. A retry after any later failure hits
	// the PAID guard above, so the ledger can never be posted twice.
	invoice.PaidAmount = invoice.Total
	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	// 2. Post the income entry to the ledger.
	txn := &models.Transaction{
		ID:          models.NewID(),
		Description: fmt.Sprintf("INVOICE PAYMENT: %s (%s)", invoice.ClientName, invoice.InvoiceNumber),
		Amount:      invoice.Total,
		Type:        models.TransactionTypeIncome,
		Date:        time.Now(),
		Category:    models.CategoryProject,
		EntityName:  &invoice.ClientName,
	}
	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to post payment to ledger: %w", err)
	}

	// 3. Grow the client's lifetime billing total.
	if err := s.clientRepo.IncrementTotalBilled(ctx, invoice.ClientID, invoice.Total); err != nil {
		return nil, fmt.Errorf("failed to update client billing total: %w", err)
	}

	return invoice, nil
}

// Cancel voids an unpaid invoice.
func (s *InvoiceService) Cancel(ctx context.Context, id string) (*models.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice: %w", err)
	}

	fsm := statemachine.NewInvoiceFSM(invoice)
	if err := fsm.Cancel(ctx); err != nil {
		return nil, fmt.Errorf("cannot cancel invoice: %w", err)
	}

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return invoice, nil
}

// Delete removes an invoice. Non-cascading on purpose: ledger entries and
// client totals posted by an earlier payment stay in place.
func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("failed to load invoice: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

// FindByID returns one invoice with its items.
func (s *InvoiceService) FindByID(ctx context.Context, id string) (*models.Invoice, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of invoices.
func (s *InvoiceService) List(ctx context.Context, query *repository.ListQuery) ([]models.Invoice, int64, error) {
	return s.repo.List(ctx, query)
}

// MarkOverdueInvoices sweeps sent invoices past their due date into OVERDUE.
// Run on a schedule; each invoice lapses at most once because lapsing moves
// it out of SENT.
func (s *InvoiceService) MarkOverdueInvoices(ctx context.Context) error {
	candidates, err := s.repo.FindOverdueCandidates(ctx)
	if err != nil {
		return fmt.Errorf("failed to find overdue candidates: %w", err)
	}

	for i := range candidates {
		invoice := &candidates[i]
		fsm := statemachine.NewInvoiceFSM(invoice)
		if err := fsm.Lapse(ctx); err != nil {
			logger.Error("Failed to lapse invoice", "invoice_id", invoice.ID, "error", err)
			continue
		}
		if err := s.repo.Update(ctx, invoice); err != nil {
			logger.Error("Failed to persist overdue invoice", "invoice_id", invoice.ID, "error", err)
			continue
		}
		logger.Info("Invoice marked overdue", "invoice_id", invoice.ID, "number", invoice.InvoiceNumber)

		reminder := *invoice
		s.worker.EnqueueAsync(func(ctx context.Context) error {
			return s.emailSvc.SendInvoiceOverdue(ctx, &reminder)
		})
	}
	return nil
}
