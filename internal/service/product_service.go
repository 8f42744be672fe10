package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maheshrc27/engagement-api/internal/models"
	"github.com/maheshrc27/engagement-api/internal/repository"
	"github.com/maheshrc27/engagement-api/internal/transfer"
)

type ProductService interface {
	CreateProduct(ctx context.Context, pc *transfer.ProductCreation) (*models.Product, error)
}

type productService struct {
	pr repository.ProductRepository
}

func NewProductService(pr repository.ProductRepository) ProductService {
	return &productService{pr: pr}
}

// CreateProduct inserts a product. SKU uniqueness is left to the database; a
// clash is reported as ErrDuplicateSKU and nothing is written.
func (s *productService) CreateProduct(ctx context.Context, pc *transfer.ProductCreation) (*models.Product, error) {
	if pc == nil || strings.TrimSpace(pc.SKUNumber) == "" {
		err := errors.New("sku_number cannot be empty")
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	product := models.Product{
		ProductName:   pc.ProductName,
		ProductImage:  pc.ProductImage,
		SKUNumber:     pc.SKUNumber,
		ShoppingURL:   pc.ShoppingURL,
		VideoDuration: pc.VideoDuration,
	}

	if _, err := s.pr.Create(ctx, nil, &product); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			slog.Info("duplicate sku rejected", "sku_number", pc.SKUNumber)
			return nil, ErrDuplicateSKU
		}
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	return &product, nil
}
