package models

import (
	"time"
)

// Staff is an agency team member on monthly payroll.
type Staff struct {
	ID             string         `gorm:"primaryKey;size:12" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	Designation    string         `gorm:"not null" json:"designation"`
	Department     string         `gorm:"not null;index" json:"department"`
	Salary         float64        `gorm:"type:decimal(15,2);not null" json:"salary"`
	JoiningDate    time.Time      `gorm:"type:date;not null" json:"joining_date"`
	Status         string         `gorm:"default:ACTIVE;not null;index" json:"status"`
	PaymentHistory []StaffPayment `gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE" json:"payment_history"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TableName specifies the table name for Staff
func (Staff) TableName() string {
	return "staff"
}

// StaffPayment is one disbursed payroll entry. Append-only: rows are written
// by the payroll run and never edited.
type StaffPayment struct {
	ID      string    `gorm:"primaryKey;size:12" json:"id"`
	StaffID string    `gorm:"size:12;not null;index" json:"staff_id"`
	Month   string    `gorm:"not null" json:"month"` // e.g. "January 2026"
	Amount  float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	PaidAt  time.Time `gorm:"not null" json:"paid_at"`
}

// TableName specifies the table name for StaffPayment
func (StaffPayment) TableName() string {
	return "staff_payments"
}

// Staff status constants
const (
	StaffStatusActive  = "ACTIVE"
	StaffStatusOnLeave = "ON_LEAVE"
	StaffStatusExited  = "EXITED"
)

// Staff department constants
const (
	DepartmentCreative   = "CREATIVE"
	DepartmentTech       = "TECH"
	DepartmentFinance    = "FINANCE"
	DepartmentSales      = "SALES"
	DepartmentManagement = "MANAGEMENT"
)

// ValidStaffStatus reports whether s is a recognized staff status.
func ValidStaffStatus(s string) bool {
	return s == StaffStatusActive || s == StaffStatusOnLeave || s == StaffStatusExited
}

// ValidDepartment reports whether d is a recognized department.
func ValidDepartment(d string) bool {
	switch d {
	case DepartmentCreative, DepartmentTech, DepartmentFinance,
		DepartmentSales, DepartmentManagement:
		return true
	}
	return false
}

// IsPayable returns true when the member is included in a payroll run.
func (s *Staff) IsPayable() bool {
	return s.Status == StaffStatusActive
}

// StaffResponse is the JSON response format for staff members
type StaffResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Designation    string         `json:"designation"`
	Department     string         `json:"department"`
	Salary         float64        `json:"salary"`
	JoiningDate    time.Time      `json:"joining_date"`
	Status         string         `json:"status"`
	PaymentHistory []StaffPayment `json:"payment_history"`
	CreatedAt      time.Time      `json:"created_at"`
}

// ToResponse converts Staff to StaffResponse
func (s *Staff) ToResponse() StaffResponse {
	history := s.PaymentHistory
	if history == nil {
		history = []StaffPayment{}
	}
	return StaffResponse{
		ID:             s.ID,
		Name:           s.Name,
		Designation:    s.Designation,
		Department:     s.Department,
		Salary:         s.Salary,
		JoiningDate:    s.JoiningDate,
		Status:         s.Status,
		PaymentHistory: history,
		CreatedAt:      s.CreatedAt,
	}
}
