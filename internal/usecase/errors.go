package usecase

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/cricverse/cricstats/internal/infrastructure/storage"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrMalformedResponse     = errors.New("malformed provider response")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// translateStorageError lifts storage-layer sentinels into the service
// error taxonomy so transport code never inspects storage errors.
func translateStorageError(err error, subject string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, subject)
	case errors.Is(err, storage.ErrDuplicateKey):
		return fmt.Errorf("%w: %s", ErrDuplicateKey, subject)
	case errors.Is(err, storage.ErrConnection):
		return fmt.Errorf("%w: %s: %v", ErrDependencyUnavailable, subject, err)
	default:
		return err
	}
}
