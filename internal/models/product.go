package models

import (
	"time"
)

// Product is a catalog entry for a standard agency service.
type Product struct {
	ID        string    `gorm:"primaryKey;size:12" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	BasePrice float64   `gorm:"type:decimal(15,2);not null" json:"base_price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// ProductResponse is the JSON response format for products
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BasePrice float64   `json:"base_price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts Product to ProductResponse
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		BasePrice: p.BasePrice,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
	}
}
