package models

import (
	"time"
)

// Lead is a sales pipeline entry. A lead leaves the funnel either by deletion
// on conversion to a client or by being marked LOST; converted leads are
// removed rather than retained as WON.
type Lead struct {
	ID          string    `gorm:"primaryKey;size:12" json:"id"`
	CompanyName string    `gorm:"not null" json:"company_name"`
	ContactName string    `gorm:"not null" json:"contact_name"`
	Value       float64   `gorm:"type:decimal(15,2);not null" json:"value"`
	Status      string    `gorm:"default:NEW;not null;index" json:"status"`
	Source      string    `json:"source"`
	DateAdded   time.Time `gorm:"type:date;not null" json:"date_added"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

// Lead status constants (funnel stages in order)
const (
	LeadStatusNew         = "NEW"
	LeadStatusContacted   = "CONTACTED"
	LeadStatusProposal    = "PROPOSAL"
	LeadStatusNegotiation = "NEGOTIATION"
	LeadStatusWon         = "WON"
	LeadStatusLost        = "LOST"
)

// FunnelStages lists the pipeline stages in display order.
var FunnelStages = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusProposal,
	LeadStatusNegotiation,
	LeadStatusWon,
	LeadStatusLost,
}

// ValidLeadStatus reports whether s is a recognized funnel stage.
func ValidLeadStatus(s string) bool {
	for _, stage := range FunnelStages {
		if s == stage {
			return true
		}
	}
	return false
}

// IsOpen returns true while the lead still counts toward pipeline value.
func (l *Lead) IsOpen() bool {
	return l.Status != LeadStatusWon && l.Status != LeadStatusLost
}

// MayConvert returns true if the lead can be converted to a client.
func (l *Lead) MayConvert() bool {
	return l.Status != LeadStatusLost
}

// LeadResponse is the JSON response format for leads
type LeadResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	ContactName string    `json:"contact_name"`
	Value       float64   `json:"value"`
	Status      string    `json:"status"`
	Source      string    `json:"source"`
	DateAdded   time.Time `json:"date_added"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse converts Lead to LeadResponse
func (l *Lead) ToResponse() LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		CompanyName: l.CompanyName,
		ContactName: l.ContactName,
		Value:       l.Value,
		Status:      l.Status,
		Source:      l.Source,
		DateAdded:   l.DateAdded,
		CreatedAt:   l.CreatedAt,
	}
}
