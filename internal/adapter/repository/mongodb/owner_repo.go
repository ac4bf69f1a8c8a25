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

const ownersCollectionName = "owners"

type OwnerRepository struct {
	collection *mongo.Collection
}

func NewOwnerRepository(db *mongo.Database) *OwnerRepository {
	return &OwnerRepository{collection: db.Collection(ownersCollectionName)}
}

func (r *OwnerRepository) Create(ctx context.Context, owner *domain.Owner) (string, error) {
	doc, err := toOwnerDocument(owner)
	if err != nil {
		return "", err
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create owner in mongo: %w", err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted_id to ObjectID")
	}
	return insertedID.Hex(), nil
}

func (r *OwnerRepository) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOwnerNotFound
	}

	var doc ownerDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to get owner by id from mongo: %w", err)
	}
	return toDomainOwner(&doc), nil
}

func (r *OwnerRepository) List(ctx context.Context) ([]*domain.Owner, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []ownerDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode owner list from mongo: %w", err)
	}

	owners := make([]*domain.Owner, len(docs))
	for i := range docs {
		owners[i] = toDomainOwner(&docs[i])
	}
	return owners, nil
}

func (r *OwnerRepository) Replace(ctx context.Context, owner *domain.Owner) error {
	doc, err := toOwnerDocument(owner)
	if err != nil {
		return err
	}
	if doc.ID.IsZero() {
		return fmt.Errorf("owner ID is required for replace")
	}

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("failed to replace owner in mongo: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOwnerNotFound
	}
	return nil
}

func (r *OwnerRepository) Delete(ctx context.Context, id string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return false, fmt.Errorf("failed to delete owner from mongo: %w", err)
	}
	return res.DeletedCount > 0, nil
}
