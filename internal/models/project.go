package models

import (
	"time"
)

// Project is a client engagement. Once progress has been touched, status is a
// pure function of progress (100 means completed, anything below means
// active) and is not independently settable.
type Project struct {
	ID         string    `gorm:"primaryKey;size:12" json:"id"`
	ClientID   string    `gorm:"size:12;not null;index" json:"client_id"`
	ClientName string    `gorm:"not null" json:"client_name"`
	Title      string    `gorm:"not null" json:"title"`
	Budget     float64   `gorm:"type:decimal(15,2);not null" json:"budget"`
	Status     string    `gorm:"default:PLANNING;not null;index" json:"status"`
	Progress   int       `gorm:"default:0;not null" json:"progress"`
	Deadline   time.Time `gorm:"type:date;not null" json:"deadline"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// Project status constants
const (
	ProjectStatusPlanning  = "PLANNING"
	ProjectStatusActive    = "ACTIVE"
	ProjectStatusOnHold    = "ON_HOLD"
	ProjectStatusCompleted = "COMPLETED"
)

// ValidProjectStatus reports whether s is a recognized project status.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold,
		ProjectStatusCompleted:
		return true
	}
	return false
}

// ApplyProgress sets progress and derives the resulting status.
func (p *Project) ApplyProgress(progress int) {
	p.Progress = progress
	if progress == 100 {
		p.Status = ProjectStatusCompleted
	} else {
		p.Status = ProjectStatusActive
	}
}

// IsActive returns true while the project counts toward a client's active work.
func (p *Project) IsActive() bool {
	return p.Status == ProjectStatusActive
}

// ProjectResponse is the JSON response format for projects
type ProjectResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	ClientName string    `json:"client_name"`
	Title      string    `json:"title"`
	Budget     float64   `json:"budget"`
	Status     string    `json:"status"`
	Progress   int       `json:"progress"`
	Deadline   time.Time `json:"deadline"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToResponse converts Project to ProjectResponse
func (p *Project) ToResponse() ProjectResponse {
	return ProjectResponse{
		ID:         p.ID,
		ClientID:   p.ClientID,
		ClientName: p.ClientName,
		Title:      p.Title,
		Budget:     p.Budget,
		Status:     p.Status,
		Progress:   p.Progress,
		Deadline:   p.Deadline,
		CreatedAt:  p.CreatedAt,
	}
}
