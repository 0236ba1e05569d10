package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Ericatici/payment-service/internal/model"
	"github.com/Ericatici/payment-service/internal/repository"
)

type ProductService struct {
	Products *repository.ProductRepository
}

func NewProductService(pr *repository.ProductRepository) *ProductService {
	return &ProductService{Products: pr}
}

func (s *ProductService) Create(ctx context.Context, name, category string, description *string, price decimal.Decimal) (int64, error) {
	if name == "" {
		return 0, errors.New("product name is required")
	}
	if category == "" {
		return 0, errors.New("product category is required")
	}
	if price.IsNegative() {
		return 0, errors.New("product price cannot be negative")
	}
	return s.Products.Create(ctx, name, category, description, price)
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	return s.Products.GetByID(ctx, id)
}

func (s *ProductService) ListAll(ctx context.Context) ([]model.Product, error) {
	return s.Products.ListAll(ctx)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.Products.Delete(ctx, id)
}
