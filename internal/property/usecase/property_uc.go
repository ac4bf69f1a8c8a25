package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func propertyCacheKey(propertyID string) string {
	return fmt.Sprintf("property:%s", propertyID)
}

const propertyCacheTTL = 5 * time.Minute

// PropertyUsecase runs the filtered property search, assembles related data
// for detail views and applies single-document mutations. Cache and publisher
// collaborators are optional; a nil collaborator simply disables that
// concern.
type PropertyUsecase struct {
	propertyRepo domain.PropertyRepository
	ownerRepo    domain.OwnerRepository
	imageRepo    domain.ImageRepository
	traceRepo    domain.TraceRepository
	publisher    EventPublisher
	cache        Cache
	logger       *zap.Logger
}

func NewPropertyUsecase(
	pr domain.PropertyRepository,
	or domain.OwnerRepository,
	ir domain.ImageRepository,
	tr domain.TraceRepository,
	pub EventPublisher,
	cache Cache,
	log *zap.Logger,
) *PropertyUsecase {
	return &PropertyUsecase{
		propertyRepo: pr,
		ownerRepo:    or,
		imageRepo:    ir,
		traceRepo:    tr,
		publisher:    pub,
		cache:        cache,
		logger:       log,
	}
}

// HydrateOptions selects which related collections get attached to a
// property on detail reads.
type HydrateOptions struct {
	Owner  bool
	Images bool
	Traces bool
}

// SearchProperties runs the compiled filter against the store and returns
// one page with total-count metadata. With includeImages set, each page item
// gets its enabled gallery attached; image fetches are best-effort and never
// fail the search.
func (uc *PropertyUsecase) SearchProperties(ctx context.Context, filter domain.PropertyFilter, includeImages bool) (*domain.PagedResult[*domain.Property], error) {
	filter.Normalize()

	properties, totalCount, err := uc.propertyRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to search properties in repository", zap.Error(err))
		return nil, fmt.Errorf("PropertyUsecase.SearchProperties: failed to search properties in repo: %w", err)
	}

	if includeImages {
		for _, property := range properties {
			images, imgErr := uc.imageRepo.ListByProperty(ctx, property.ID, true)
			if imgErr != nil {
				uc.logger.Warn("Failed to load images for property in search results",
					zap.Error(imgErr),
					zap.String("property_id", property.ID),
				)
				continue
			}
			property.Images = images
		}
	}

	return domain.NewPagedResult(properties, totalCount, filter.Page, filter.PageSize), nil
}

// GetProperty resolves a property by id and hydrates the requested related
// collections. A missing base property is the only error condition; every
// related fetch degrades to an empty/nil attachment instead of failing the
// read.
func (uc *PropertyUsecase) GetProperty(ctx context.Context, id string, opts HydrateOptions) (*domain.Property, error) {
	property, err := uc.getBaseProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	if opts.Owner && property.IDOwner != "" {
		owner, ownerErr := uc.ownerRepo.GetByID(ctx, property.IDOwner)
		switch {
		case ownerErr == nil:
			property.Owner = owner
		case errors.Is(ownerErr, domain.ErrOwnerNotFound):
			// Dangling owner reference; the property is served without one.
		default:
			uc.logger.Warn("Failed to load owner for property",
				zap.Error(ownerErr),
				zap.String("property_id", property.ID),
				zap.String("owner_id", property.IDOwner),
			)
		}
	}

	if opts.Images {
		images, imgErr := uc.imageRepo.ListByProperty(ctx, property.ID, true)
		if imgErr != nil {
			uc.logger.Warn("Failed to load images for property",
				zap.Error(imgErr),
				zap.String("property_id", property.ID),
			)
		} else {
			property.Images = images
		}
	}

	if opts.Traces {
		traces, traceErr := uc.traceRepo.ListByProperty(ctx, property.ID)
		if traceErr != nil {
			uc.logger.Warn("Failed to load traces for property",
				zap.Error(traceErr),
				zap.String("property_id", property.ID),
			)
		} else {
			property.Traces = traces
		}
	}

	return property, nil
}

// getBaseProperty reads a bare property through the cache. Only the bare
// document is cached; navigation fields are attached per request.
func (uc *PropertyUsecase) getBaseProperty(ctx context.Context, id string) (*domain.Property, error) {
	if uc.cache != nil {
		key := propertyCacheKey(id)
		cachedBytes, err := uc.cache.Get(ctx, key)
		if err == nil {
			var cached domain.Property
			if unmarshalErr := json.Unmarshal(cachedBytes, &cached); unmarshalErr == nil {
				uc.logger.Debug("Property fetched from cache", zap.String("key", key))
				return &cached, nil
			}
			uc.logger.Error("Failed to unmarshal property from cache", zap.String("key", key))
			if delErr := uc.cache.Delete(ctx, key); delErr != nil {
				uc.logger.Warn("Failed to delete corrupted data from cache", zap.String("key", key), zap.Error(delErr))
			}
		} else if !errors.Is(err, ErrCacheMiss) {
			uc.logger.Warn("Failed to get property from cache", zap.Error(err), zap.String("key", key))
		}
	}

	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		uc.logger.Error("Failed to get property by ID from repository", zap.Error(err), zap.String("property_id", id))
		return nil, fmt.Errorf("PropertyUsecase.GetProperty: failed to get property from repo: %w", err)
	}

	uc.cacheProperty(ctx, property)
	return property, nil
}

func (uc *PropertyUsecase) cacheProperty(ctx context.Context, property *domain.Property) {
	if uc.cache == nil {
		return
	}
	propertyBytes, err := json.Marshal(property)
	if err != nil {
		uc.logger.Warn("Failed to marshal property for caching", zap.Error(err), zap.String("property_id", property.ID))
		return
	}
	key := propertyCacheKey(property.ID)
	if err := uc.cache.Set(ctx, key, propertyBytes, propertyCacheTTL); err != nil {
		uc.logger.Warn("Failed to set property in cache", zap.Error(err), zap.String("key", key))
	}
}

func (uc *PropertyUsecase) invalidateProperty(ctx context.Context, propertyID string) {
	if uc.cache == nil {
		return
	}
	key := propertyCacheKey(propertyID)
	if err := uc.cache.Delete(ctx, key); err != nil {
		uc.logger.Warn("Failed to delete property from cache", zap.Error(err), zap.String("key", key))
	}
}

type CreatePropertyInput struct {
	Name         string
	Address      string
	Price        primitive.Decimal128
	CodeInternal string
	Year         int
	IDOwner      string
	Enabled      *bool
}

func (uc *PropertyUsecase) CreateProperty(ctx context.Context, input CreatePropertyInput) (*domain.Property, error) {
	now := time.Now().UTC()
	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	property := &domain.Property{
		Name:         input.Name,
		Address:      input.Address,
		Price:        input.Price,
		CodeInternal: input.CodeInternal,
		Year:         input.Year,
		IDOwner:      input.IDOwner,
		Enabled:      enabled,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	createdID, err := uc.propertyRepo.Create(ctx, property)
	if err != nil {
		uc.logger.Error("Failed to create property in repository", zap.Error(err))
		return nil, fmt.Errorf("PropertyUsecase.CreateProperty: failed to create property in repo: %w", err)
	}
	property.ID = createdID

	uc.cacheProperty(ctx, property)

	if uc.publisher != nil {
		if pubErr := uc.publisher.PublishPropertyCreated(ctx, property); pubErr != nil {
			uc.logger.Warn("Failed to publish property created event",
				zap.Error(pubErr),
				zap.String("property_id", property.ID),
			)
		}
	}

	return property, nil
}

// UpdatePropertyInput carries a partial update: nil fields leave the stored
// value untouched, non-nil fields overwrite it, including explicit zero
// values.
type UpdatePropertyInput struct {
	ID           string
	Name         *string
	Address      *string
	Price        *primitive.Decimal128
	CodeInternal *string
	Year         *int
	IDOwner      *string
	Enabled      *bool
}

// UpdateProperty merges the supplied fields onto the stored property and
// replaces the document. The updated timestamp is refreshed unconditionally,
// even when the payload changes nothing.
func (uc *PropertyUsecase) UpdateProperty(ctx context.Context, input UpdatePropertyInput) (*domain.Property, error) {
	property, err := uc.propertyRepo.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		uc.logger.Error("Failed to get property for update from repository", zap.Error(err), zap.String("property_id", input.ID))
		return nil, fmt.Errorf("PropertyUsecase.UpdateProperty: failed to get property for update: %w", err)
	}

	if input.Name != nil {
		property.Name = *input.Name
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.CodeInternal != nil {
		property.CodeInternal = *input.CodeInternal
	}
	if input.Year != nil {
		property.Year = *input.Year
	}
	if input.IDOwner != nil {
		property.IDOwner = *input.IDOwner
	}
	if input.Enabled != nil {
		property.Enabled = *input.Enabled
	}

	property.UpdatedAt = time.Now().UTC()

	if err := uc.propertyRepo.Replace(ctx, property); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		uc.logger.Error("Failed to replace property in repository", zap.Error(err), zap.String("property_id", property.ID))
		return nil, fmt.Errorf("PropertyUsecase.UpdateProperty: failed to replace property in repo: %w", err)
	}

	uc.invalidateProperty(ctx, property.ID)

	if uc.publisher != nil {
		if pubErr := uc.publisher.PublishPropertyUpdated(ctx, property); pubErr != nil {
			uc.logger.Warn("Failed to publish property updated event",
				zap.Error(pubErr),
				zap.String("property_id", property.ID),
			)
		}
	}

	return property, nil
}

// DeleteProperty hard-deletes a property document. An unknown id yields
// false, not an error. Images and traces referencing the property are left in
// place: there is no cascade across collections.
func (uc *PropertyUsecase) DeleteProperty(ctx context.Context, id string) (bool, error) {
	deleted, err := uc.propertyRepo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete property from repository", zap.Error(err), zap.String("property_id", id))
		return false, fmt.Errorf("PropertyUsecase.DeleteProperty: failed to delete property from repo: %w", err)
	}
	if !deleted {
		return false, nil
	}

	uc.invalidateProperty(ctx, id)

	if uc.publisher != nil {
		if pubErr := uc.publisher.PublishPropertyDeleted(ctx, id); pubErr != nil {
			uc.logger.Warn("Failed to publish property deleted event",
				zap.Error(pubErr),
				zap.String("property_id", id),
			)
		}
	}

	return true, nil
}
