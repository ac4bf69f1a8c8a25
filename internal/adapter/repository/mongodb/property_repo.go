package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const propertiesCollectionName = "properties"

type PropertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{collection: db.Collection(propertiesCollectionName)}
}

func (r *PropertyRepository) Create(ctx context.Context, property *domain.Property) (string, error) {
	doc, err := toPropertyDocument(property)
	if err != nil {
		return "", err
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create property in mongo: %w", err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted_id to ObjectID")
	}
	return insertedID.Hex(), nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	var doc propertyDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property by id from mongo: %w", err)
	}
	return toDomainProperty(&doc), nil
}

func (r *PropertyRepository) Replace(ctx context.Context, property *domain.Property) error {
	doc, err := toPropertyDocument(property)
	if err != nil {
		return err
	}
	if doc.ID.IsZero() {
		return fmt.Errorf("property ID is required for replace")
	}

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("failed to replace property in mongo: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot address any document.
		return false, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return false, fmt.Errorf("failed to delete property from mongo: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// Search counts the filtered population, then fetches one sorted page of it.
// The two reads are not wrapped in a snapshot: a write landing between them
// can make TotalCount stale relative to the returned page, which is an
// accepted trade-off of the store model.
func (r *PropertyRepository) Search(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, int64, error) {
	query := buildSearchFilter(filter)

	totalCount, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count properties in mongo: %w", err)
	}

	findOptions := options.Find().
		SetSort(buildSort(filter)).
		SetSkip(filter.Skip()).
		SetLimit(int64(filter.PageSize))

	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search properties in mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []propertyDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode property search results: %w", err)
	}

	properties := make([]*domain.Property, len(docs))
	for i := range docs {
		properties[i] = toDomainProperty(&docs[i])
	}
	return properties, totalCount, nil
}
