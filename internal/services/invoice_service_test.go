package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FilmsDust/agency-os/internal/config"
	"github.com/FilmsDust/agency-os/internal/jobs"
	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
)

type mockInvoiceRepo struct {
	repository.InvoiceRepository
	mockFindByID              func(ctx context.Context, id string) (*models.Invoice, error)
	mockCreate                func(ctx context.Context, invoice *models.Invoice) error
	mockUpdate                func(ctx context.Context, invoice *models.Invoice) error
	mockDelete                func(ctx context.Context, id string) error
	mockCount                 func(ctx context.Context) (int64, error)
	mockFindOverdueCandidates func(ctx context.Context) ([]models.Invoice, error)
}

func (m *mockInvoiceRepo) FindByID(ctx context.Context, id string) (*models.Invoice, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, invoice)
	}
	return nil
}

func (m *mockInvoiceRepo) Update(ctx context.Context, invoice *models.Invoice) error {
	if m.mockUpdate != nil {
		return m.mockUpdate(ctx, invoice)
	}
	return nil
}

func (m *mockInvoiceRepo) Delete(ctx context.Context, id string) error {
	if m.mockDelete != nil {
		return m.mockDelete(ctx, id)
	}
	return nil
}

func (m *mockInvoiceRepo) Count(ctx context.Context) (int64, error) {
	if m.mockCount != nil {
		return m.mockCount(ctx)
	}
	return 0, nil
}

func (m *mockInvoiceRepo) FindOverdueCandidates(ctx context.Context) ([]models.Invoice, error) {
	return m.mockFindOverdueCandidates(ctx)
}

type mockTransactionRepo struct {
	repository.TransactionRepository
	mockCreate func(ctx context.Context, txn *models.Transaction) error
	mockDelete func(ctx context.Context, id string) error
}

func (m *mockTransactionRepo) Create(ctx context.Context, txn *models.Transaction) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, txn)
	}
	return nil
}

func (m *mockTransactionRepo) Delete(ctx context.Context, id string) error {
	if m.mockDelete != nil {
		return m.mockDelete(ctx, id)
	}
	return nil
}

type mockClientRepo struct {
	repository.ClientRepository
	mockFindByID             func(ctx context.Context, id string) (*models.Client, error)
	mockFindByName           func(ctx context.Context, name string) (*models.Client, error)
	mockCreate               func(ctx context.Context, client *models.Client) error
	mockIncrementTotalBilled func(ctx context.Context, id string, amount float64) error
}

func (m *mockClientRepo) FindByID(ctx context.Context, id string) (*models.Client, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockClientRepo) FindByName(ctx context.Context, name string) (*models.Client, error) {
	return m.mockFindByName(ctx, name)
}

func (m *mockClientRepo) Create(ctx context.Context, client *models.Client) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, client)
	}
	return nil
}

func (m *mockClientRepo) IncrementTotalBilled(ctx context.Context, id string, amount float64) error {
	if m.mockIncrementTotalBilled != nil {
		return m.mockIncrementTotalBilled(ctx, id, amount)
	}
	return nil
}

func testInvoiceService(invRepo *mockInvoiceRepo, txnRepo *mockTransactionRepo, clientRepo *mockClientRepo) (*InvoiceService, *jobs.Worker) {
	cfg := &config.Config{
		InvoicePrefix:       "AG-INV",
		InvoiceNumberOffset: 101,
		DefaultCurrency:     models.CurrencyPKR,
	}
	worker := jobs.NewWorker(1)
	emailSvc := NewEmailService(cfg, nil)
	return NewInvoiceService(invRepo, txnRepo, clientRepo, emailSvc, worker, cfg), worker
}

func TestInvoiceService_Create_ComputesTotalOnce(t *testing.T) {
	invRepo := &mockInvoiceRepo{}
	clientRepo := &mockClientRepo{}

	clientRepo.mockFindByID = func(ctx context.Context, id string) (*models.Client, error) {
		return &models.Client{ID: id, Name: "Acme Retail", Email: "billing@acme.test"}, nil
	}
	invRepo.mockCount = func(ctx context.Context) (int64, error) {
		return 4, nil
	}

	var created *models.Invoice
	invRepo.mockCreate = func(ctx context.Context, invoice *models.Invoice) error {
		created = invoice
		return nil
	}

	svc, worker := testInvoiceService(invRepo, &mockTransactionRepo{}, clientRepo)
	defer worker.Shutdown()

	invoice, err := svc.Create(context.Background(), CreateInvoiceInput{
		ClientID: "client-1",
		Items: []InvoiceItemInput{
			{Description: "Social media retainer", Quantity: 2, UnitPrice: 40000},
			{Description: "Ad spend management", Quantity: 1, UnitPrice: 30000},
		},
		DiscountAmount: 10000,
	})
	assert.NoError(t, err)
	assert.NotNil(t, created)

	// (2*40000 + 30000 - 10000) * 1.16
	assert.InDelta(t, 116000.0, invoice.Total, 0.001)
	assert.Equal(t, "AG-INV-105", invoice.InvoiceNumber)
	assert.Equal(t, models.InvoiceStatusSent, invoice.Status)
	assert.Equal(t, "Acme Retail", invoice.ClientName)
	assert.Len(t, invoice.Items, 2)
}

func TestInvoiceService_Create_RejectsEmptyItems(t *testing.T) {
	svc, worker := testInvoiceService(&mockInvoiceRepo{}, &mockTransactionRepo{}, &mockClientRepo{})
	defer worker.Shutdown()

	_, err := svc.Create(context.Background(), CreateInvoiceInput{ClientID: "client-1"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInvoiceService_MarkAsPaid_PostsAllThreeUpdates(t *testing.T) {
	invRepo := &mockInvoiceRepo{}
	txnRepo := &mockTransactionRepo{}
	clientRepo := &mockClientRepo{}

	invoice := &models.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "AG-INV-101",
		ClientID:      "client-1",
		ClientName:    "Acme Retail",
		Status:        models.InvoiceStatusSent,
		Total:         116000,
	}
	invRepo.mockFindByID = func(ctx context.Context, id string) (*models.Invoice, error) {
		return invoice, nil
	}

	var postedTxn *models.Transaction
	txnRepo.mockCreate = func(ctx context.Context, txn *models.Transaction) error {
		postedTxn = txn
		return nil
	}

	var incrementedBy float64
	clientRepo.mockIncrementTotalBilled = func(ctx context.Context, id string, amount float64) error {
		assert.Equal(t, "client-1", id)
		incrementedBy = amount
		return nil
	}

	var updated *models.Invoice
	invRepo.mockUpdate = func(ctx context.Context, inv *models.Invoice) error {
		updated = inv
		return nil
	}

	svc, worker := testInvoiceService(invRepo, txnRepo, clientRepo)
	defer worker.Shutdown()

	result, err := svc.MarkAsPaid(context.Background(), "inv-1")
	assert.NoError(t, err)

	assert.NotNil(t, postedTxn)
	assert.Equal(t, models.TransactionTypeIncome, postedTxn.Type)
	assert.Equal(t, models.CategoryProject, postedTxn.Category)
	assert.Equal(t, "INVOICE PAYMENT: Acme Retail (AG-INV-101)", postedTxn.Description)
	assert.InDelta(t, 116000.0, postedTxn.Amount, 0.001)

	assert.InDelta(t, 116000.0, incrementedBy, 0.001)

	assert.NotNil(t, updated)
	assert.Equal(t, models.InvoiceStatusPaid, result.Status)
	assert.InDelta(t, 116000.0, result.PaidAmount, 0.001)
}

func TestInvoiceService_MarkAsPaid_Idempotent(t *testing.T) {
	invRepo := &mockInvoiceRepo{}
	txnRepo := &mockTransactionRepo{}
	clientRepo := &mockClientRepo{}

	invoice := &models.Invoice{
		ID:         "inv-1",
		ClientID:   "client-1",
		Status:     models.InvoiceStatusPaid,
		Total:      116000,
		PaidAmount: 116000,
	}
	invRepo.mockFindByID = func(ctx context.Context, id string) (*models.Invoice, error) {
		return invoice, nil
	}

	txnCreates := 0
	txnRepo.mockCreate = func(ctx context.Context, txn *models.Transaction) error {
		txnCreates++
		return nil
	}
	increments := 0
	clientRepo.mockIncrementTotalBilled = func(ctx context.Context, id string, amount float64) error {
		increments++
		return nil
	}
	updates := 0
	invRepo.mockUpdate = func(ctx context.Context, inv *models.Invoice) error {
		updates++
		return nil
	}

	svc, worker := testInvoiceService(invRepo, txnRepo, clientRepo)
	defer worker.Shutdown()

	for i := 0; i < 3; i++ {
		result, err := svc.MarkAsPaid(context.Background(), "inv-1")
		assert.NoError(t, err)
		assert.Equal(t, models.InvoiceStatusPaid, result.Status)
	}

	assert.Equal(t, 0, txnCreates)
	assert.Equal(t, 0, increments)
	assert.Equal(t, 0, updates)
}

func TestInvoiceService_Cancel_RejectsPaidInvoice(t *testing.T) {
	invRepo := &mockInvoiceRepo{}
	invRepo.mockFindByID = func(ctx context.Context, id string) (*models.Invoice, error) {
		return &models.Invoice{ID: id, Status: models.InvoiceStatusPaid}, nil
	}

	svc, worker := testInvoiceService(invRepo, &mockTransactionRepo{}, &mockClientRepo{})
	defer worker.Shutdown()

	_, err := svc.Cancel(context.Background(), "inv-1")
	assert.Error(t, err)
}

func TestInvoiceService_MarkOverdueInvoices(t *testing.T) {
	invRepo := &mockInvoiceRepo{}

	candidates := []models.Invoice{
		{ID: "inv-1", Status: models.InvoiceStatusSent, DueDate: time.Now().AddDate(0, 0, -3)},
		{ID: "inv-2", Status: models.InvoiceStatusSent, DueDate: time.Now().AddDate(0, 0, -1)},
	}
	invRepo.mockFindOverdueCandidates = func(ctx context.Context) ([]models.Invoice, error) {
		return candidates, nil
	}

	var lapsed []string
	invRepo.mockUpdate = func(ctx context.Context, inv *models.Invoice) error {
		assert.Equal(t, models.InvoiceStatusOverdue, inv.Status)
		lapsed = append(lapsed, inv.ID)
		return nil
	}

	svc, worker := testInvoiceService(invRepo, &mockTransactionRepo{}, &mockClientRepo{})
	defer worker.Shutdown()

	err := svc.MarkOverdueInvoices(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"inv-1", "inv-2"}, lapsed)
}

func TestInvoiceService_Delete_DoesNotTouchLedger(t *testing.T) {
	invRepo := &mockInvoiceRepo{}
	txnRepo := &mockTransactionRepo{}

	invRepo.mockFindByID = func(ctx context.Context, id string) (*models.Invoice, error) {
		return &models.Invoice{ID: id, Status: models.InvoiceStatusPaid}, nil
	}
	deleted := false
	invRepo.mockDelete = func(ctx context.Context, id string) error {
		deleted = true
		return nil
	}
	txnDeletes := 0
	txnRepo.mockDelete = func(ctx context.Context, id string) error {
		txnDeletes++
		return nil
	}

	svc, worker := testInvoiceService(invRepo, txnRepo, &mockClientRepo{})
	defer worker.Shutdown()

	err := svc.Delete(context.Background(), "inv-1")
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 0, txnDeletes)
}

func TestInvoiceService_MarkAsPaid_RetryAfterPartialFailure(t *testing.T) {
	invRepo := &mockInvoiceRepo{}
	txnRepo := &mockTransactionRepo{}
	clientRepo := &mockClientRepo{}

	invoice := &models.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "AG-INV-101",
		ClientID:      "client-1",
		ClientName:    "Acme Retail",
		Status:        models.InvoiceStatusSent,
		Total:         116000,
	}
	invRepo.mockFindByID = func(ctx context.Context, id string) (*models.Invoice, error) {
		return invoice, nil
	}

	txnCreates := 0
	txnRepo.mockCreate = func(ctx context.Context, txn *models.Transaction) error {
		txnCreates++
		return nil
	}

	incrementCalls := 0
	clientRepo.mockIncrementTotalBilled = func(ctx context.Context, id string, amount float64) error {
		incrementCalls++
		if incrementCalls == 1 {
			return errors.New("connection reset by peer")
		}
		return nil
	}

	svc, worker := testInvoiceService(invRepo, txnRepo, clientRepo)
	defer worker.Shutdown()

	// First attempt fails after the status transition was persisted.
	_, err := svc.MarkAsPaid(context.Background(), "inv-1")
	assert.Error(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, invoice.Status)

	// The retry hits the PAID guard and must not post a second ledger entry.
	result, err := svc.MarkAsPaid(context.Background(), "inv-1")
	assert.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, result.Status)

	assert.Equal(t, 1, txnCreates)
	assert.Equal(t, 1, incrementCalls)
}
