package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockPropertyRepository struct{ mock.Mock }

func (m *MockPropertyRepository) Create(ctx context.Context, property *domain.Property) (string, error) {
	args := m.Called(ctx, property)
	return args.String(0), args.Error(1)
}
func (m *MockPropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepository) Replace(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPropertyRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockPropertyRepository) Search(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, int64(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]*domain.Property), int64(args.Int(1)), args.Error(2)
}

type MockOwnerRepository struct{ mock.Mock }

func (m *MockOwnerRepository) Create(ctx context.Context, owner *domain.Owner) (string, error) {
	args := m.Called(ctx, owner)
	return args.String(0), args.Error(1)
}
func (m *MockOwnerRepository) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}
func (m *MockOwnerRepository) List(ctx context.Context) ([]*domain.Owner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Owner), args.Error(1)
}
func (m *MockOwnerRepository) Replace(ctx context.Context, owner *domain.Owner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}
func (m *MockOwnerRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockImageRepository struct{ mock.Mock }

func (m *MockImageRepository) Add(ctx context.Context, image *domain.PropertyImage) (string, error) {
	args := m.Called(ctx, image)
	return args.String(0), args.Error(1)
}
func (m *MockImageRepository) GetByID(ctx context.Context, id string) (*domain.PropertyImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyImage), args.Error(1)
}
func (m *MockImageRepository) ListByProperty(ctx context.Context, propertyID string, enabledOnly bool) ([]*domain.PropertyImage, error) {
	args := m.Called(ctx, propertyID, enabledOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PropertyImage), args.Error(1)
}
func (m *MockImageRepository) Replace(ctx context.Context, image *domain.PropertyImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}
func (m *MockImageRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockTraceRepository struct{ mock.Mock }

func (m *MockTraceRepository) Add(ctx context.Context, trace *domain.PropertyTrace) (string, error) {
	args := m.Called(ctx, trace)
	return args.String(0), args.Error(1)
}
func (m *MockTraceRepository) ListByProperty(ctx context.Context, propertyID string) ([]*domain.PropertyTrace, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PropertyTrace), args.Error(1)
}

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishPropertyCreated(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPublisher) PublishPropertyUpdated(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPublisher) PublishPropertyDeleted(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

func mustDecimal(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	d, err := primitive.ParseDecimal128(s)
	require.NoError(t, err)
	return d
}

func newTestUsecase(pr *MockPropertyRepository, or *MockOwnerRepository, ir *MockImageRepository, tr *MockTraceRepository) *PropertyUsecase {
	return NewPropertyUsecase(pr, or, ir, tr, nil, nil, zap.NewNop())
}

func TestSearchProperties_AppliesPaginationDefaults(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	uc := newTestUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository))

	propertyRepo.On("Search", mock.Anything, mock.MatchedBy(func(f domain.PropertyFilter) bool {
		return f.Page == 1 && f.PageSize == 10
	})).Return([]*domain.Property{}, 0, nil)

	result, err := uc.SearchProperties(context.Background(), domain.PropertyFilter{}, false)

	require.NoError(t, err)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, 10, result.PageSize)
	propertyRepo.AssertExpectations(t)
}

func TestSearchProperties_ReturnsPagedMetadata(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	uc := newTestUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository))

	properties := []*domain.Property{
		{ID: "p1", Name: "Luxury Villa Miami"},
		{ID: "p2", Name: "Beach House"},
	}
	propertyRepo.On("Search", mock.Anything, mock.Anything).Return(properties, 42, nil)

	filter := domain.PropertyFilter{Page: 2, PageSize: 2}
	result, err := uc.SearchProperties(context.Background(), filter, false)

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(42), result.TotalCount)
	assert.Equal(t, 21, result.TotalPages)
	assert.True(t, result.HasPrevious)
	assert.True(t, result.HasNext)
}

func TestSearchProperties_IncludeImagesAttachesEnabledGallery(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	imageRepo := new(MockImageRepository)
	uc := newTestUsecase(propertyRepo, new(MockOwnerRepository), imageRepo, new(MockTraceRepository))

	propertyRepo.On("Search", mock.Anything, mock.Anything).
		Return([]*domain.Property{{ID: "p1"}}, 1, nil)
	images := []*domain.PropertyImage{{ID: "img1", IDProperty: "p1", Enabled: true}}
	imageRepo.On("ListByProperty", mock.Anything, "p1", true).Return(images, nil)

	result, err := uc.SearchProperties(context.Background(), domain.PropertyFilter{}, true)

	require.NoError(t, err)
	assert.Equal(t, images, result.Items[0].Images)
	imageRepo.AssertExpectations(t)
}

func TestSearchProperties_ImageFetchFailureIsBestEffort(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	imageRepo := new(MockImageRepository)
	uc := newTestUsecase(propertyRepo, new(MockOwnerRepository), imageRepo, new(MockTraceRepository))

	propertyRepo.On("Search", mock.Anything, mock.Anything).
		Return([]*domain.Property{{ID: "p1"}}, 1, nil)
	imageRepo.On("ListByProperty", mock.Anything, "p1", true).
		Return(nil, errors.New("store unavailable"))

	result, err := uc.SearchProperties(context.Background(), domain.PropertyFilter{}, true)

	require.NoError(t, err)
	assert.Nil(t, result.Items[0].Images)
}

func TestGetProperty_NotFound(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	uc := newTestUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository))

	propertyRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrPropertyNotFound)

	_, err := uc.GetProperty(context.Background(), "missing", HydrateOptions{})

	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestGetProperty_HydratesAllRelatedData(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	ownerRepo := new(MockOwnerRepository)
	imageRepo := new(MockImageRepository)
	traceRepo := new(MockTraceRepository)
	uc := newTestUsecase(propertyRepo, ownerRepo, imageRepo, traceRepo)

	propertyRepo.On("GetByID", mock.Anything, "p1").
		Return(&domain.Property{ID: "p1", IDOwner: "o1"}, nil)
	owner := &domain.Owner{ID: "o1", Name: "Jordan Smith"}
	ownerRepo.On("GetByID", mock.Anything, "o1").Return(owner, nil)
	images := []*domain.PropertyImage{{ID: "img1", Enabled: true}}
	imageRepo.On("ListByProperty", mock.Anything, "p1", true).Return(images, nil)
	traces := []*domain.PropertyTrace{{ID: "t1", Name: "Initial Sale"}}
	traceRepo.On("ListByProperty", mock.Anything, "p1").Return(traces, nil)

	property, err := uc.GetProperty(context.Background(), "p1", HydrateOptions{Owner: true, Images: true, Traces: true})

	require.NoError(t, err)
	assert.Equal(t, owner, property.Owner)
	assert.Equal(t, images, property.Images)
	assert.Equal(t, traces, property.Traces)
}

func TestGetProperty_NoHydrationLeavesNavigationNil(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	ownerRepo := new(MockOwnerRepository)
	imageRepo := new(MockImageRepository)
	traceRepo := new(MockTraceRepository)
	uc := newTestUsecase(propertyRepo, ownerRepo, imageRepo, traceRepo)

	propertyRepo.On("GetByID", mock.Anything, "p1").
		Return(&domain.Property{ID: "p1", IDOwner: "o1"}, nil)

	property, err := uc.GetProperty(context.Background(), "p1", HydrateOptions{})

	require.NoError(t, err)
	assert.Nil(t, property.Owner)
	assert.Nil(t, property.Images)
	assert.Nil(t, property.Traces)
	ownerRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	imageRepo.AssertNotCalled(t, "ListByProperty", mock.Anything, mock.Anything, mock.Anything)
	traceRepo.AssertNotCalled(t, "ListByProperty", mock.Anything, mock.Anything)
}

func TestGetProperty_DanglingOwnerReferenceIsNotAnError(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	ownerRepo := new(MockOwnerRepository)
	uc := newTestUsecase(propertyRepo, ownerRepo, new(MockImageRepository), new(MockTraceRepository))

	propertyRepo.On("GetByID", mock.Anything, "p1").
		Return(&domain.Property{ID: "p1", IDOwner: "gone"}, nil)
	ownerRepo.On("GetByID", mock.Anything, "gone").Return(nil, domain.ErrOwnerNotFound)

	property, err := uc.GetProperty(context.Background(), "p1", HydrateOptions{Owner: true})

	require.NoError(t, err)
	assert.Nil(t, property.Owner)
}

func TestGetProperty_ServedFromCache(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	cacheMock := new(MockCache)
	uc := NewPropertyUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository), nil, cacheMock, zap.NewNop())

	cached := domain.Property{ID: "p1", Name: "Cached Villa"}
	cachedBytes, err := json.Marshal(&cached)
	require.NoError(t, err)
	cacheMock.On("Get", mock.Anything, "property:p1").Return(cachedBytes, nil)

	property, err := uc.GetProperty(context.Background(), "p1", HydrateOptions{})

	require.NoError(t, err)
	assert.Equal(t, "Cached Villa", property.Name)
	propertyRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetProperty_CacheMissFallsThroughAndPopulates(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	cacheMock := new(MockCache)
	uc := NewPropertyUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository), nil, cacheMock, zap.NewNop())

	cacheMock.On("Get", mock.Anything, "property:p1").Return(nil, ErrCacheMiss)
	propertyRepo.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1"}, nil)
	cacheMock.On("Set", mock.Anything, "property:p1", mock.Anything, propertyCacheTTL).Return(nil)

	_, err := uc.GetProperty(context.Background(), "p1", HydrateOptions{})

	require.NoError(t, err)
	cacheMock.AssertExpectations(t)
}

func TestCreateProperty_SetsDefaultsAndPublishes(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	publisher := new(MockPublisher)
	uc := NewPropertyUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository), publisher, nil, zap.NewNop())

	propertyRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Property) bool {
		return p.Enabled && !p.CreatedAt.IsZero() && p.CreatedAt.Equal(p.UpdatedAt)
	})).Return("new-id", nil)
	publisher.On("PublishPropertyCreated", mock.Anything, mock.Anything).Return(nil)

	property, err := uc.CreateProperty(context.Background(), CreatePropertyInput{
		Name:    "Luxury Villa Miami",
		Address: "Ocean Drive 1",
		Price:   mustDecimal(t, "2500000"),
		Year:    2020,
	})

	require.NoError(t, err)
	assert.Equal(t, "new-id", property.ID)
	assert.True(t, property.Enabled)
	publisher.AssertExpectations(t)
}

func TestCreateProperty_ExplicitDisabled(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	uc := newTestUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository))

	disabled := false
	propertyRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Property) bool {
		return !p.Enabled
	})).Return("new-id", nil)

	_, err := uc.CreateProperty(context.Background(), CreatePropertyInput{
		Name:    "Hidden Listing",
		Address: "Nowhere 1",
		Price:   mustDecimal(t, "100"),
		Enabled: &disabled,
	})

	require.NoError(t, err)
	propertyRepo.AssertExpectations(t)
}

func TestUpdateProperty_MergesOnlySuppliedFields(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	uc := newTestUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository))

	existing := &domain.Property{
		ID:           "p1",
		Name:         "Old Name",
		Address:      "Old Address",
		Price:        mustDecimal(t, "850000"),
		CodeInternal: "PROP-001",
		Year:         1999,
		Enabled:      true,
	}
	propertyRepo.On("GetByID", mock.Anything, "p1").Return(existing, nil)

	var replaced *domain.Property
	propertyRepo.On("Replace", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		replaced = args.Get(1).(*domain.Property)
	}).Return(nil)

	newName := "New Name"
	_, err := uc.UpdateProperty(context.Background(), UpdatePropertyInput{ID: "p1", Name: &newName})

	require.NoError(t, err)
	require.NotNil(t, replaced)
	assert.Equal(t, "New Name", replaced.Name)
	// Unset fields keep their stored values.
	assert.Equal(t, "Old Address", replaced.Address)
	assert.Equal(t, mustDecimal(t, "850000"), replaced.Price)
	assert.Equal(t, 1999, replaced.Year)
}

func TestUpdateProperty_ExplicitZeroValueIsApplied(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	uc := newTestUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository))

	propertyRepo.On("GetByID", mock.Anything, "p1").
		Return(&domain.Property{ID: "p1", Enabled: true, Year: 2005}, nil)

	var replaced *domain.Property
	propertyRepo.On("Replace", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		replaced = args.Get(1).(*domain.Property)
	}).Return(nil)

	disabled := false
	zeroYear := 0
	_, err := uc.UpdateProperty(context.Background(), UpdatePropertyInput{ID: "p1", Enabled: &disabled, Year: &zeroYear})

	require.NoError(t, err)
	assert.False(t, replaced.Enabled)
	assert.Equal(t, 0, replaced.Year)
}

func TestUpdateProperty_RefreshesUpdatedAtUnconditionally(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	uc := newTestUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository))

	before := time.Now().UTC().Add(-time.Hour)
	propertyRepo.On("GetByID", mock.Anything, "p1").
		Return(&domain.Property{ID: "p1", UpdatedAt: before}, nil)

	var replaced *domain.Property
	propertyRepo.On("Replace", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		replaced = args.Get(1).(*domain.Property)
	}).Return(nil)

	// Empty payload: nothing to merge, timestamp still moves.
	updated, err := uc.UpdateProperty(context.Background(), UpdatePropertyInput{ID: "p1"})

	require.NoError(t, err)
	assert.True(t, replaced.UpdatedAt.After(before))
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestUpdateProperty_NotFound(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	uc := newTestUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository))

	propertyRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrPropertyNotFound)

	_, err := uc.UpdateProperty(context.Background(), UpdatePropertyInput{ID: "missing"})

	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	propertyRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestUpdateProperty_InvalidatesCache(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	cacheMock := new(MockCache)
	uc := NewPropertyUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository), nil, cacheMock, zap.NewNop())

	propertyRepo.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1"}, nil)
	propertyRepo.On("Replace", mock.Anything, mock.Anything).Return(nil)
	cacheMock.On("Delete", mock.Anything, "property:p1").Return(nil)

	_, err := uc.UpdateProperty(context.Background(), UpdatePropertyInput{ID: "p1"})

	require.NoError(t, err)
	cacheMock.AssertExpectations(t)
}

func TestDeleteProperty_UnknownIDReturnsFalse(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	publisher := new(MockPublisher)
	uc := NewPropertyUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository), publisher, nil, zap.NewNop())

	propertyRepo.On("Delete", mock.Anything, "missing").Return(false, nil)

	deleted, err := uc.DeleteProperty(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, deleted)
	publisher.AssertNotCalled(t, "PublishPropertyDeleted", mock.Anything, mock.Anything)
}

func TestDeleteProperty_PublishesAndInvalidates(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	publisher := new(MockPublisher)
	cacheMock := new(MockCache)
	uc := NewPropertyUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository), publisher, cacheMock, zap.NewNop())

	propertyRepo.On("Delete", mock.Anything, "p1").Return(true, nil)
	cacheMock.On("Delete", mock.Anything, "property:p1").Return(nil)
	publisher.On("PublishPropertyDeleted", mock.Anything, "p1").Return(nil)

	deleted, err := uc.DeleteProperty(context.Background(), "p1")

	require.NoError(t, err)
	assert.True(t, deleted)
	publisher.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestDeleteProperty_RepositoryError(t *testing.T) {
	propertyRepo := new(MockPropertyRepository)
	uc := newTestUsecase(propertyRepo, new(MockOwnerRepository), new(MockImageRepository), new(MockTraceRepository))

	propertyRepo.On("Delete", mock.Anything, "p1").Return(false, errors.New("store unavailable"))

	deleted, err := uc.DeleteProperty(context.Background(), "p1")

	assert.Error(t, err)
	assert.False(t, deleted)
}
