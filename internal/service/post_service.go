package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/engagement-api/internal/models"
	"github.com/maheshrc27/engagement-api/internal/repository"
	"github.com/maheshrc27/engagement-api/internal/transfer"
)

type PostService interface {
	GetPosts(ctx context.Context, tenantID int64) ([]transfer.PostView, error)
	CreatePost(ctx context.Context, pc *transfer.PostCreation) (*models.EngagementPost, error)
	MapProducts(ctx context.Context, postID int64, productIDs []int64) ([]*models.ProductMapping, error)
	CreatePostContent(ctx context.Context, pc *transfer.PostContentCreation) (*models.EngagementPostContent, error)
	ListStoryContent(ctx context.Context, storyID int64) ([]*models.EngagementPostContent, error)
}

type postService struct {
	pr repository.EngagementPostRepository
	pd repository.ProductRepository
	pm repository.ProductMappingRepository
	pc repository.PostContentRepository
}

func NewPostService(
	pr repository.EngagementPostRepository,
	pd repository.ProductRepository,
	pm repository.ProductMappingRepository,
	pc repository.PostContentRepository) PostService {
	return &postService{
		pr: pr,
		pd: pd,
		pm: pm,
		pc: pc,
	}
}

// GetPosts returns every post of the tenant with its mapped products. A
// tenant without posts yields an empty slice.
func (s *postService) GetPosts(ctx context.Context, tenantID int64) ([]transfer.PostView, error) {
	posts, err := s.pr.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	views := make([]transfer.PostView, 0, len(posts))
	for _, post := range posts {
		products, err := s.pd.ListByPostID(ctx, post.ID)
		if err != nil {
			return nil, fmt.Errorf("error listing products of post %d: %w", post.ID, err)
		}

		view := transfer.PostView{
			EngagementPostID: post.ID,
			TenantID:         post.TenantID,
			Description:      post.Description,
			CreatedBy:        post.CreatedBy,
			CreatedOn:        post.CreatedOn,
			ThumbnailURL:     post.ThumbnailURL,
			ThumbnailTitle:   post.ThumbnailTitle,
			Products:         make([]transfer.PostProduct, 0, len(products)),
		}
		for _, p := range products {
			view.Products = append(view.Products, transfer.PostProduct{
				ProductName:  p.ProductName,
				ProductImage: p.ProductImage,
				SKUNumber:    p.SKUNumber,
			})
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *postService) CreatePost(ctx context.Context, pc *transfer.PostCreation) (*models.EngagementPost, error) {
	if pc == nil {
		err := errors.New("post creation data is nil")
		slog.Error(err.Error())
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	post := models.EngagementPost{
		TenantID:            pc.TenantID,
		NumberOfLikes:       pc.NumberOfLikes,
		NumberOfShares:      pc.NumberOfShares,
		Description:         pc.Description,
		CreatedBy:           pc.CreatedBy,
		ShoppingURL:         pc.ShoppingURL,
		ContentType:         pc.ContentType,
		InfluencerID:        pc.InfluencerID,
		Tags:                pc.Tags,
		ThumbnailURL:        pc.ThumbnailURL,
		ThumbnailTitle:      pc.ThumbnailTitle,
		ScheduleCode:        pc.ScheduleCode,
		ButtonCTA:           pc.ButtonCTA,
		IsNewCollection:     pc.IsNewCollection,
		VideoDuration:       pc.VideoDuration,
		IsMultihost:         pc.IsMultihost,
		CtaURL:              pc.CtaURL,
		ProductThumbnailURL: pc.ProductThumbnailURL,
	}

	if _, err := s.pr.Create(ctx, nil, &post); err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	return &post, nil
}

func (s *postService) MapProducts(ctx context.Context, postID int64, productIDs []int64) ([]*models.ProductMapping, error) {
	if postID <= 0 || len(productIDs) == 0 {
		err := errors.New("post id and at least one product id are required")
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	mappings, err := s.pm.MapProducts(ctx, postID, productIDs)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrUnknownReference
		}
		return nil, fmt.Errorf("error mapping products: %w", err)
	}

	return mappings, nil
}

func (s *postService) CreatePostContent(ctx context.Context, pc *transfer.PostContentCreation) (*models.EngagementPostContent, error) {
	if pc == nil || pc.Sequence == nil {
		return nil, fmt.Errorf("%w: sequence is required", ErrInvalidInput)
	}

	content := models.EngagementPostContent{
		FileType:     pc.FileType,
		StoryID:      pc.StoryID,
		URL:          pc.URL,
		ThumbnailURL: pc.ThumbnailURL,
		Sequence:     *pc.Sequence,
	}

	if _, err := s.pc.Create(ctx, nil, &content); err != nil {
		return nil, fmt.Errorf("error creating post content: %w", err)
	}

	return &content, nil
}

func (s *postService) ListStoryContent(ctx context.Context, storyID int64) ([]*models.EngagementPostContent, error) {
	contents, err := s.pc.ListByStoryID(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("error listing story content: %w", err)
	}
	return contents, nil
}
