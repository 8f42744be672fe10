package service

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicateSKU         = errors.New("a product with this sku_number already exists")
	ErrUnknownReference     = errors.New("referenced post or product does not exist")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrStorageNotConfigured = errors.New("object storage is not configured")
)
