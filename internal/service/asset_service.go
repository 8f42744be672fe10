package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/engagement-api/pkg/utils"
)

const productImagePrefix = "products"

type AssetService interface {
	UploadProductImage(ctx context.Context, file []byte) (string, error)
}

type assetService struct {
	store ObjectStore
}

// NewAssetService accepts a nil store; uploads then fail with
// ErrStorageNotConfigured.
func NewAssetService(store ObjectStore) AssetService {
	return &assetService{store: store}
}

var allowedImageTypes = map[string]struct{}{
	"jpg": {}, "png": {}, "gif": {}, "webp": {},
}

func (s *assetService) UploadProductImage(ctx context.Context, file []byte) (string, error) {
	if s.store == nil {
		return "", ErrStorageNotConfigured
	}

	kind, err := filetype.Match(file)
	if err != nil || kind == types.Unknown {
		return "", ErrUnsupportedFileType
	}
	if _, ok := allowedImageTypes[kind.Extension]; !ok {
		slog.Info("rejected upload", "extension", kind.Extension)
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, kind.Extension)
	}

	key, err := utils.ObjectKey(productImagePrefix, kind.Extension)
	if err != nil {
		return "", fmt.Errorf("error generating object key: %w", err)
	}

	url, err := s.store.Put(ctx, key, file, kind.MIME.Value)
	if err != nil {
		return "", fmt.Errorf("error uploading file: %w", err)
	}

	return url, nil
}
