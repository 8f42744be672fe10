package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maheshrc27/engagement-api/internal/models"
	"github.com/maheshrc27/engagement-api/internal/repository"
)

type CollectionService interface {
	CreateCollection(ctx context.Context, name string, postIDs []int64) (*models.Collection, error)
}

type collectionService struct {
	cr repository.CollectionRepository
}

func NewCollectionService(cr repository.CollectionRepository) CollectionService {
	return &collectionService{cr: cr}
}

// CreateCollection stores the collection and associates it with postIDs in
// input order. Repeated ids are kept as repeated rows. The whole write is one
// transaction, so an unknown post leaves nothing behind.
func (s *collectionService) CreateCollection(ctx context.Context, name string, postIDs []int64) (*models.Collection, error) {
	if strings.TrimSpace(name) == "" {
		err := errors.New("collection_name cannot be empty")
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	collection := models.Collection{CollectionName: name}
	if err := s.cr.CreateWithPosts(ctx, &collection, postIDs); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrUnknownReference
		}
		return nil, fmt.Errorf("error creating collection: %w", err)
	}

	return &collection, nil
}
