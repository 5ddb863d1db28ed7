package models

import (
	"time"
)

// Client is an agency customer. TotalBilled is a running lifetime sum mutated
// only as a side effect of invoice payment, never edited directly.
type Client struct {
	ID          string    `gorm:"primaryKey;size:12" json:"id"`
	Name        string    `gorm:"not null;index" json:"name"`
	Email       string    `gorm:"not null" json:"email"`
	Industry    string    `json:"industry"`
	TotalBilled float64   `gorm:"type:decimal(15,2);default:0" json:"total_billed"`
	Status      string    `gorm:"default:ACTIVE;not null;index" json:"status"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Client
func (Client) TableName() string {
	return "clients"
}

// Client status constants
const (
	ClientStatusActive   = "ACTIVE"
	ClientStatusInactive = "INACTIVE"
)

// ValidClientStatus reports whether s is a recognized client status.
func ValidClientStatus(s string) bool {
	return s == ClientStatusActive || s == ClientStatusInactive
}

// ClientStats holds per-client derived counts for the client detail view.
type ClientStats struct {
	ActiveProjectCount int `json:"active_project_count"`
	TotalProjectCount  int `json:"total_project_count"`
	UnpaidInvoiceCount int `json:"unpaid_invoice_count"`
}

// ClientResponse is the JSON response format for clients
type ClientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Industry    string    `json:"industry"`
	TotalBilled float64   `json:"total_billed"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse converts Client to ClientResponse
func (c *Client) ToResponse() ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Industry:    c.Industry,
		TotalBilled: c.TotalBilled,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
}
