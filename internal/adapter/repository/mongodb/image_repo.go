package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const imagesCollectionName = "propertyImages"

type ImageRepository struct {
	collection *mongo.Collection
}

func NewImageRepository(db *mongo.Database) *ImageRepository {
	return &ImageRepository{collection: db.Collection(imagesCollectionName)}
}

func (r *ImageRepository) Add(ctx context.Context, image *domain.PropertyImage) (string, error) {
	doc, err := toImageDocument(image)
	if err != nil {
		return "", err
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to add property image in mongo: %w", err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted_id to ObjectID")
	}
	return insertedID.Hex(), nil
}

func (r *ImageRepository) GetByID(ctx context.Context, id string) (*domain.PropertyImage, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrImageNotFound
	}

	var doc imageDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to get property image by id from mongo: %w", err)
	}
	return toDomainImage(&doc), nil
}

// ListByProperty returns a property's gallery in store insertion order; no
// ordering beyond that is guaranteed.
func (r *ImageRepository) ListByProperty(ctx context.Context, propertyID string, enabledOnly bool) ([]*domain.PropertyImage, error) {
	filter := bson.M{"idProperty": propertyID}
	if enabledOnly {
		filter["enabled"] = true
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list property images from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []imageDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode property image list from mongo: %w", err)
	}

	images := make([]*domain.PropertyImage, len(docs))
	for i := range docs {
		images[i] = toDomainImage(&docs[i])
	}
	return images, nil
}

func (r *ImageRepository) Replace(ctx context.Context, image *domain.PropertyImage) error {
	doc, err := toImageDocument(image)
	if err != nil {
		return err
	}
	if doc.ID.IsZero() {
		return fmt.Errorf("image ID is required for replace")
	}

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("failed to replace property image in mongo: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

func (r *ImageRepository) Delete(ctx context.Context, id string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return false, fmt.Errorf("failed to delete property image from mongo: %w", err)
	}
	return res.DeletedCount > 0, nil
}
