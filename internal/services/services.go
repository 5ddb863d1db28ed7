package services

import (
	"github.com/FilmsDust/agency-os/internal/ai"
	"github.com/FilmsDust/agency-os/internal/config"
	"github.com/FilmsDust/agency-os/internal/jobs"
	"github.com/FilmsDust/agency-os/internal/repository"
	"github.com/FilmsDust/agency-os/internal/storage"
)

// Services holds all service instances
type Services struct {
	Auth        *AuthService
	Transaction *TransactionService
	Invoice     *InvoiceService
	Client      *ClientService
	Staff       *StaffService
	Project     *ProjectService
	Lead        *LeadService
	Proposal    *ProposalService
	Product     *ProductService
	Purchase    *PurchaseService
	Settings    *SettingsService
	Assistant   *AssistantService
	Analytics   *AnalyticsService
	Export      *ExportService
	Document    *DocumentService
	Email       *EmailService
}

// NewServices creates all service instances
func NewServices(
	repos *repository.Repositories,
	worker *jobs.Worker,
	store *storage.LocalStorage,
	generator ai.TextGenerator,
	cfg *config.Config,
) *Services {
	emailSvc := NewEmailService(cfg, repos.Settings)
	invoiceSvc := NewInvoiceService(repos.Invoice, repos.Transaction, repos.Client, emailSvc, worker, cfg)

	return &Services{
		Auth:        NewAuthService(cfg),
		Transaction: NewTransactionService(repos.Transaction, store),
		Invoice:     invoiceSvc,
		Client:      NewClientService(repos.Client, repos.Project, repos.Invoice),
		Staff:       NewStaffService(repos.Staff, repos.Transaction),
		Project:     NewProjectService(repos.Project, repos.Client),
		Lead:        NewLeadService(repos.Lead, repos.Client),
		Proposal:    NewProposalService(repos.Proposal, repos.Client, invoiceSvc, generator),
		Product:     NewProductService(repos.Product),
		Purchase:    NewPurchaseService(repos.Purchase, repos.Transaction),
		Settings:    NewSettingsService(repos.Settings),
		Assistant:   NewAssistantService(repos.Transaction, repos.Invoice, generator),
		Analytics:   NewAnalyticsService(repos.Transaction, repos.Invoice, repos.Staff, repos.Lead),
		Export:      NewExportService(repos.Transaction, repos.Purchase, repos.Invoice, repos.Settings),
		Document:    NewDocumentService(repos.Proposal, repos.Settings),
		Email:       emailSvc,
	}
}
