package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violated")
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")
)

// classifyError tags constraint failures reported by postgres so callers can
// match them with errors.Is. The driver error stays in the chain.
func classifyError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code.Name() {
	case "unique_violation":
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case "foreign_key_violation":
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	}
	return err
}
