package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/engagement-api/internal/models"
	"github.com/maheshrc27/engagement-api/internal/repository"
	"github.com/maheshrc27/engagement-api/internal/transfer"
)

const TopProductsLimit = 5

type AnalyticsService interface {
	TopViewedPosts(ctx context.Context, tenantID int64) ([]transfer.TopViewedPost, error)
	TopViewedProducts(ctx context.Context, tenantID int64) ([]transfer.TopViewedProduct, error)
}

type analyticsService struct {
	pr repository.EngagementPostRepository
	pd repository.ProductRepository
	pm repository.ProductMappingRepository
}

func NewAnalyticsService(
	pr repository.EngagementPostRepository,
	pd repository.ProductRepository,
	pm repository.ProductMappingRepository) AnalyticsService {
	return &analyticsService{
		pr: pr,
		pd: pd,
		pm: pm,
	}
}

// TopViewedPosts ranks all posts of the tenant by share count. No limit is
// applied.
func (s *analyticsService) TopViewedPosts(ctx context.Context, tenantID int64) ([]transfer.TopViewedPost, error) {
	posts, err := s.pr.ListByTenantOrderedByShares(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	result := make([]transfer.TopViewedPost, 0, len(posts))
	for _, post := range posts {
		result = append(result, transfer.TopViewedPost{
			ThumbnailTitle: post.ThumbnailTitle,
			ContentURL:     post.ShoppingURL,
		})
	}
	return result, nil
}

// TopViewedProducts returns up to TopProductsLimit products ordered by the
// number of the tenant's posts they are mapped to. Products that can no
// longer be loaded are skipped.
func (s *analyticsService) TopViewedProducts(ctx context.Context, tenantID int64) ([]transfer.TopViewedProduct, error) {
	counts, err := s.pm.CountByTenant(ctx, tenantID, TopProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("error counting product associations: %w", err)
	}

	result := make([]transfer.TopViewedProduct, 0, len(counts))
	for _, c := range counts {
		product, err := s.pd.GetByID(ctx, c.ProductID)
		if err != nil {
			return nil, fmt.Errorf("error loading product %d: %w", c.ProductID, err)
		}
		if product == nil {
			slog.Info("skipping missing product", "product_id", c.ProductID)
			continue
		}

		result = append(result, transfer.TopViewedProduct{
			ProductName:     product.ProductName,
			ContentURL:      product.ShoppingURL,
			DurationWatched: DurationWatched(c.Count, product),
		})
	}
	return result, nil
}

// DurationWatched approximates hours watched as association count times the
// clip length. Zero when the product has no clip length.
func DurationWatched(count int64, product *models.Product) float64 {
	if product.VideoDuration == nil || *product.VideoDuration == 0 {
		return 0
	}
	return float64(count) * (float64(*product.VideoDuration) / 3600)
}
