package models

import (
	"time"
)

// AgencySettings is the singleton configuration record for the agency
// identity printed on invoices and proposals. Exactly one row, id 1.
type AgencySettings struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Tagline     string    `json:"tagline"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	BankDetails string    `json:"bank_details"`
	TaxNumber   string    `json:"tax_number"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for AgencySettings
func (AgencySettings) TableName() string {
	return "agency_settings"
}

// DefaultAgencySettings returns the seed row used on first boot.
func DefaultAgencySettings() *AgencySettings {
	return &AgencySettings{
		ID:      1,
		Name:    "AdvertsGen",
		Tagline: "Operational OS",
	}
}
