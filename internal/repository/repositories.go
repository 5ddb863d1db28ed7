package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Transaction TransactionRepository
	Invoice     InvoiceRepository
	Client      ClientRepository
	Staff       StaffRepository
	Project     ProjectRepository
	Lead        LeadRepository
	Proposal    ProposalRepository
	Product     ProductRepository
	Purchase    PurchaseRepository
	Settings    SettingsRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Transaction: NewTransactionRepository(db),
		Invoice:     NewInvoiceRepository(db),
		Client:      NewClientRepository(db),
		Staff:       NewStaffRepository(db),
		Project:     NewProjectRepository(db),
		Lead:        NewLeadRepository(db),
		Proposal:    NewProposalRepository(db),
		Product:     NewProductRepository(db),
		Purchase:    NewPurchaseRepository(db),
		Settings:    NewSettingsRepository(db),
	}
}
