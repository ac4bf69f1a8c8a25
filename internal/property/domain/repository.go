package domain

import "context"

type PropertyRepository interface {
	Create(ctx context.Context, property *Property) (string, error)
	GetByID(ctx context.Context, id string) (*Property, error)
	Replace(ctx context.Context, property *Property) error
	Delete(ctx context.Context, id string) (bool, error)
	// Search runs the filtered, sorted, paginated query and returns the
	// page of properties together with the total filtered count.
	Search(ctx context.Context, filter PropertyFilter) ([]*Property, int64, error)
}

type OwnerRepository interface {
	Create(ctx context.Context, owner *Owner) (string, error)
	GetByID(ctx context.Context, id string) (*Owner, error)
	List(ctx context.Context) ([]*Owner, error)
	Replace(ctx context.Context, owner *Owner) error
	Delete(ctx context.Context, id string) (bool, error)
}

type ImageRepository interface {
	Add(ctx context.Context, image *PropertyImage) (string, error)
	GetByID(ctx context.Context, id string) (*PropertyImage, error)
	ListByProperty(ctx context.Context, propertyID string, enabledOnly bool) ([]*PropertyImage, error)
	Replace(ctx context.Context, image *PropertyImage) error
	Delete(ctx context.Context, id string) (bool, error)
}

type TraceRepository interface {
	Add(ctx context.Context, trace *PropertyTrace) (string, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*PropertyTrace, error)
}
