package models

import (
	"fmt"
	"time"
)

// Invoice represents a client bill. Client fields are denormalized snapshots
// taken at creation time so later client edits never rewrite issued bills.
// Total is computed once at creation and never recalculated from items.
type Invoice struct {
	ID             string        `gorm:"primaryKey;size:12" json:"id"`
	InvoiceNumber  string        `gorm:"not null;index" json:"invoice_number"`
	ClientID       string        `gorm:"size:12;not null;index" json:"client_id"`
	ClientName     string        `gorm:"not null" json:"client_name"`
	ClientEmail    string        `gorm:"not null" json:"client_email"`
	Date           time.Time     `gorm:"type:date;not null" json:"date"`
	DueDate        time.Time     `gorm:"type:date;not null;index" json:"due_date"`
	Items          []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
	Status         string        `gorm:"default:SENT;not null;index" json:"status"`
	TaxRate        float64       `gorm:"not null" json:"tax_rate"`
	DiscountAmount float64       `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	AdvancePayment float64       `gorm:"type:decimal(15,2);default:0" json:"advance_payment"`
	PaidAmount     float64       `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	Total          float64       `gorm:"type:decimal(15,2);not null" json:"total"`
	Currency       string        `gorm:"default:PKR" json:"currency"`
	Notes          *string       `json:"notes,omitempty"`
	CreatedAt      time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// TableName specifies the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is a single billed line. Items are fixed after invoice creation.
type InvoiceItem struct {
	ID          string  `gorm:"primaryKey;size:12" json:"id"`
	InvoiceID   string  `gorm:"size:12;not null;index" json:"invoice_id"`
	Description string  `gorm:"not null" json:"description"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"type:decimal(15,2);not null" json:"unit_price"`
}

// TableName specifies the table name for InvoiceItem
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// Invoice status constants
const (
	InvoiceStatusDraft     = "DRAFT"
	InvoiceStatusSent      = "SENT"
	InvoiceStatusPaid      = "PAID"
	InvoiceStatusOverdue   = "OVERDUE"
	InvoiceStatusCancelled = "CANCELLED"
)

// Invoice currency constants
const (
	CurrencyPKR = "PKR"
	CurrencyUSD = "USD"
)

// DefaultTaxRate is the tax percentage applied on every creation path.
const DefaultTaxRate = 16.0

// ValidInvoiceStatus reports whether s is a recognized invoice status.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// ValidCurrency reports whether c is a supported billing currency.
func ValidCurrency(c string) bool {
	return c == CurrencyPKR || c == CurrencyUSD
}

// Subtotal returns the pre-tax, pre-discount sum of the line items. Display
// only: the authoritative figure is Total, fixed at creation.
func (i *Invoice) Subtotal() float64 {
	var sum float64
	for _, item := range i.Items {
		sum += item.Quantity * item.UnitPrice
	}
	return sum
}

// MayMarkPaid returns true if the invoice can transition to paid.
// An already-paid or cancelled invoice must never post revenue again.
func (i *Invoice) MayMarkPaid() bool {
	return i.Status == InvoiceStatusSent || i.Status == InvoiceStatusDraft ||
		i.Status == InvoiceStatusOverdue
}

// MayCancel returns true if the invoice can be cancelled.
func (i *Invoice) MayCancel() bool {
	return i.Status != InvoiceStatusPaid && i.Status != InvoiceStatusCancelled
}

// MayMarkOverdue returns true if the invoice qualifies for the overdue sweep.
func (i *Invoice) MayMarkOverdue() bool {
	return i.Status == InvoiceStatusSent && time.Now().After(i.DueDate)
}

// Outstanding returns the uncollected portion of the invoice. Negative when
// an overpayment has been recorded; callers must not clamp it.
func (i *Invoice) Outstanding() float64 {
	return i.Total - (i.AdvancePayment + i.PaidAmount)
}

// InvoiceNumberFor builds the human-readable display label for the nth
// invoice. It is NOT unique or stable under deletions; lookups always use ID.
func InvoiceNumberFor(prefix string, existingCount int64, offset int) string {
	return fmt.Sprintf("%s-%d", prefix, existingCount+int64(offset))
}

// InvoiceResponse is the JSON response format for invoices
type InvoiceResponse struct {
	ID             string        `json:"id"`
	InvoiceNumber  string        `json:"invoice_number"`
	ClientID       string        `json:"client_id"`
	ClientName     string        `json:"client_name"`
	ClientEmail    string        `json:"client_email"`
	Date           time.Time     `json:"date"`
	DueDate        time.Time     `json:"due_date"`
	Items          []InvoiceItem `json:"items"`
	Status         string        `json:"status"`
	TaxRate        float64       `json:"tax_rate"`
	DiscountAmount float64       `json:"discount_amount"`
	AdvancePayment float64       `json:"advance_payment"`
	PaidAmount     float64       `json:"paid_amount"`
	Total          float64       `json:"total"`
	Outstanding    float64       `json:"outstanding"`
	Currency       string        `json:"currency"`
	Notes          *string       `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ToResponse converts Invoice to InvoiceResponse
func (i *Invoice) ToResponse() InvoiceResponse {
	return InvoiceResponse{
		ID:             i.ID,
		InvoiceNumber:  i.InvoiceNumber,
		ClientID:       i.ClientID,
		ClientName:     i.ClientName,
		ClientEmail:    i.ClientEmail,
		Date:           i.Date,
		DueDate:        i.DueDate,
		Items:          i.Items,
		Status:         i.Status,
		TaxRate:        i.TaxRate,
		DiscountAmount: i.DiscountAmount,
		AdvancePayment: i.AdvancePayment,
		PaidAmount:     i.PaidAmount,
		Total:          i.Total,
		Outstanding:    i.Outstanding(),
		Currency:       i.Currency,
		Notes:          i.Notes,
		CreatedAt:      i.CreatedAt,
	}
}
