package services

import (
	"context"
	"fmt"

	"github.com/FilmsDust/agency-os/internal/models"
	"github.com/FilmsDust/agency-os/internal/repository"
)

// ProductService manages the service catalog.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// CreateProductInput carries the fields for a new catalog entry.
type CreateProductInput struct {
	Name      string
	BasePrice float64
	Category  string
}

// Create adds a catalog entry.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if input.BasePrice < 0 {
		return nil, fmt.Errorf("%w: base price must not be negative", ErrValidation)
	}

	product := &models.Product{
		ID:        models.NewID(),
		Name:      input.Name,
		BasePrice: input.BasePrice,
		Category:  input.Category,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// Update replaces the mutable fields of a catalog entry.
func (s *ProductService) Update(ctx context.Context, id string, input CreateProductInput) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if input.BasePrice < 0 {
		return nil, fmt.Errorf("%w: base price must not be negative", ErrValidation)
	}

	product.Name = input.Name
	product.BasePrice = input.BasePrice
	product.Category = input.Category
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// FindByID returns one catalog entry.
func (s *ProductService) FindByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of catalog entries.
func (s *ProductService) List(ctx context.Context, query *repository.ListQuery) ([]models.Product, int64, error) {
	return s.repo.List(ctx, query)
}

// Delete removes a catalog entry.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
