package models

import (
	"time"
)

// Proposal is a quoted offer document. Immutable after creation except
// deletion; may be converted into a single-line invoice.
type Proposal struct {
	ID             string            `gorm:"primaryKey;size:12" json:"id"`
	ClientName     string            `gorm:"not null" json:"client_name"`
	ClientIndustry string            `json:"client_industry"`
	ProjectTitle   string            `gorm:"not null" json:"project_title"`
	Duration       string            `json:"duration"`
	TemplateType   string            `gorm:"not null" json:"template_type"`
	Sections       []ProposalSection `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE" json:"sections"`
	Date           time.Time         `gorm:"type:date;not null" json:"date"`
	QuoteNo        string            `gorm:"not null" json:"quote_no"`
	TotalAmount    float64           `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	AdvanceAmount  float64           `gorm:"type:decimal(15,2);default:0" json:"advance_amount"`
	CreatedAt      time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// TableName specifies the table name for Proposal
func (Proposal) TableName() string {
	return "proposals"
}

// ProposalSection is one ordered block of proposal copy.
type ProposalSection struct {
	ID         string `gorm:"primaryKey;size:12" json:"id"`
	ProposalID string `gorm:"size:12;not null;index" json:"proposal_id"`
	Position   int    `gorm:"not null" json:"position"`
	Title      string `gorm:"not null" json:"title"`
	Content    string `gorm:"type:text;not null" json:"content"`
	Type       string `gorm:"not null" json:"type"`
}

// TableName specifies the table name for ProposalSection
func (ProposalSection) TableName() string {
	return "proposal_sections"
}

// Proposal template constants
const (
	TemplateStarter    = "STARTER"
	TemplateGrowth     = "GROWTH"
	TemplateEnterprise = "ENTERPRISE"
)

// Proposal section type constants
const (
	SectionSummary  = "SUMMARY"
	SectionTimeline = "TIMELINE"
	SectionPricing  = "PRICING"
	SectionTerms    = "TERMS"
)

// ValidTemplateType reports whether t is a recognized proposal template.
func ValidTemplateType(t string) bool {
	return t == TemplateStarter || t == TemplateGrowth || t == TemplateEnterprise
}

// ValidSectionType reports whether t is a recognized section type.
func ValidSectionType(t string) bool {
	switch t {
	case SectionSummary, SectionTimeline, SectionPricing, SectionTerms:
		return true
	}
	return false
}

// ProposalResponse is the JSON response format for proposals
type ProposalResponse struct {
	ID             string            `json:"id"`
	ClientName     string            `json:"client_name"`
	ClientIndustry string            `json:"client_industry"`
	ProjectTitle   string            `json:"project_title"`
	Duration       string            `json:"duration"`
	TemplateType   string            `json:"template_type"`
	Sections       []ProposalSection `json:"sections"`
	Date           time.Time         `json:"date"`
	QuoteNo        string            `json:"quote_no"`
	TotalAmount    float64           `json:"total_amount"`
	AdvanceAmount  float64           `json:"advance_amount"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ToResponse converts Proposal to ProposalResponse
func (p *Proposal) ToResponse() ProposalResponse {
	sections := p.Sections
	if sections == nil {
		sections = []ProposalSection{}
	}
	return ProposalResponse{
		ID:             p.ID,
		ClientName:     p.ClientName,
		ClientIndustry: p.ClientIndustry,
		ProjectTitle:   p.ProjectTitle,
		Duration:       p.Duration,
		TemplateType:   p.TemplateType,
		Sections:       sections,
		Date:           p.Date,
		QuoteNo:        p.QuoteNo,
		TotalAmount:    p.TotalAmount,
		AdvanceAmount:  p.AdvanceAmount,
		CreatedAt:      p.CreatedAt,
	}
}
