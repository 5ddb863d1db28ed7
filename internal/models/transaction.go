package models

import (
	"time"
)

// Transaction is a single entry in the general ledger. Entries are immutable
// once created; corrections are made by deleting and re-posting.
type Transaction struct {
	ID          string    `gorm:"primaryKey;size:12" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type        string    `gorm:"not null;index" json:"type"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Category    string    `gorm:"not null;index" json:"category"`
	ProjectID   *string   `gorm:"size:12;index" json:"project_id,omitempty"`
	EntityName  *string   `json:"entity_name,omitempty"`
	ReceiptPath *string   `json:"-"` // uploaded receipt image, if any
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// Transaction type constants
const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"
)

// Transaction category constants
const (
	CategoryProject        = "PROJECT"
	CategoryPayroll        = "PAYROLL"
	CategoryOffice         = "OFFICE"
	CategoryPettyCash      = "PETTY_CASH"
	CategoryMarketing      = "MARKETING"
	CategoryTax            = "TAX"
	CategoryEquipment      = "EQUIPMENT"
	CategoryVendorPurchase = "VENDOR_PURCHASE"
)

// ValidTransactionType reports whether t is a recognized transaction type.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// ValidTransactionCategory reports whether c is a recognized ledger category.
func ValidTransactionCategory(c string) bool {
	switch c {
	case CategoryProject, CategoryPayroll, CategoryOffice, CategoryPettyCash,
		CategoryMarketing, CategoryTax, CategoryEquipment, CategoryVendorPurchase:
		return true
	}
	return false
}

// IsIncome returns true for income entries.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// TransactionResponse is the JSON response format for ledger entries
type TransactionResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	ProjectID   *string   `json:"project_id,omitempty"`
	EntityName  *string   `json:"entity_name,omitempty"`
	HasReceipt  bool      `json:"has_receipt"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse converts Transaction to TransactionResponse
func (t *Transaction) ToResponse() TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
		Date:        t.Date,
		Category:    t.Category,
		ProjectID:   t.ProjectID,
		EntityName:  t.EntityName,
		HasReceipt:  t.ReceiptPath != nil && *t.ReceiptPath != "",
		CreatedAt:   t.CreatedAt,
	}
}
