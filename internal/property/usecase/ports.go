package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
)

// ErrCacheMiss is returned by Cache implementations when a key is absent.
var ErrCacheMiss = errors.New("key not found in cache")

// Cache is the byte-level cache the usecases consult for property detail
// reads. Implementations must return ErrCacheMiss on absent keys.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// EventPublisher notifies downstream consumers about catalog mutations.
type EventPublisher interface {
	PublishPropertyCreated(ctx context.Context, property *domain.Property) error
	PublishPropertyUpdated(ctx context.Context, property *domain.Property) error
	PublishPropertyDeleted(ctx context.Context, propertyID string) error
}

// FileStorage stores raw image files and returns a public URL.
type FileStorage interface {
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}
