package models

import (
	"fmt"
	"time"
)

// PurchaseRecord is a vendor purchase. Creating one mirrors an EXPENSE
// transaction into the ledger under the same id; deleting one removes that
// mirrored entry as well (the one cascading delete in the system).
type PurchaseRecord struct {
	ID          string    `gorm:"primaryKey;size:12" json:"id"`
	VendorName  string    `gorm:"not null" json:"vendor_name"`
	Description string    `gorm:"not null" json:"description"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Status      string    `gorm:"default:PAID;not null" json:"status"`
	Category    string    `gorm:"not null" json:"category"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for PurchaseRecord
func (PurchaseRecord) TableName() string {
	return "purchase_records"
}

// Purchase status constants
const (
	PurchaseStatusPending = "PENDING"
	PurchaseStatusPaid    = "PAID"
)

// ValidPurchaseStatus reports whether s is a recognized purchase status.
func ValidPurchaseStatus(s string) bool {
	return s == PurchaseStatusPending || s == PurchaseStatusPaid
}

// LedgerDescription builds the description used for the mirrored ledger entry.
func (p *PurchaseRecord) LedgerDescription() string {
	return fmt.Sprintf("PURCHASE: %s (%s)", p.VendorName, p.Description)
}

// PurchaseRecordResponse is the JSON response format for purchase records
type PurchaseRecordResponse struct {
	ID          string    `json:"id"`
	VendorName  string    `json:"vendor_name"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse converts PurchaseRecord to PurchaseRecordResponse
func (p *PurchaseRecord) ToResponse() PurchaseRecordResponse {
	return PurchaseRecordResponse{
		ID:          p.ID,
		VendorName:  p.VendorName,
		Description: p.Description,
		Amount:      p.Amount,
		Date:        p.Date,
		Status:      p.Status,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
	}
}
