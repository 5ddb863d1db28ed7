package services

import (
	"context"
	"fmt"

	"github.com/FilmsDust/agency-os/internal/finance"
	"github.com/FilmsDust/agency-os/internal/repository"
)

// AnalyticsService produces the dashboard snapshot. All figures are derived
// on demand from the stored records; nothing is cached or persisted.
type AnalyticsService struct {
	txnRepo     repository.TransactionRepository
	invoiceRepo repository.InvoiceRepository
	staffRepo   repository.StaffRepository
	leadRepo    repository.LeadRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	txnRepo repository.TransactionRepository,
	invoiceRepo repository.InvoiceRepository,
	staffRepo repository.StaffRepository,
	leadRepo repository.LeadRepository,
) *AnalyticsService {
	return &AnalyticsService{
		txnRepo:     txnRepo,
		invoiceRepo: invoiceRepo,
		staffRepo:   staffRepo,
		leadRepo:    leadRepo,
	}
}

// DashboardSnapshot loads every collection and computes the derived figures.
func (s *AnalyticsService) DashboardSnapshot(ctx context.Context) (*finance.Snapshot, error) {
	transactions, err := s.txnRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	staff, err := s.staffRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}
	leads, err := s.leadRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leads: %w", err)
	}

	snapshot := finance.Summarize(transactions, invoices, staff, leads)
	return &snapshot, nil
}
