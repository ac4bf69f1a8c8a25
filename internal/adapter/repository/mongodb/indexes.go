package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the secondary indexes the property search relies on.
// Index creation is idempotent, so this is safe to run on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	propertyIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("idx_name"),
		},
		{
			Keys:    bson.D{{Key: "address", Value: 1}},
			Options: options.Index().SetName("idx_address"),
		},
		{
			Keys:    bson.D{{Key: "price", Value: 1}},
			Options: options.Index().SetName("idx_price"),
		},
		{
			Keys:    bson.D{{Key: "enabled", Value: 1}},
			Options: options.Index().SetName("idx_enabled"),
		},
		{
			Keys:    bson.D{{Key: "idOwner", Value: 1}},
			Options: options.Index().SetName("idx_idowner"),
		},
		{
			Keys: bson.D{
				{Key: "name", Value: 1},
				{Key: "address", Value: 1},
				{Key: "price", Value: 1},
			},
			Options: options.Index().SetName("idx_name_address_price"),
		},
	}
	if _, err := db.Collection(propertiesCollectionName).Indexes().CreateMany(ctx, propertyIndexes); err != nil {
		return fmt.Errorf("failed to create property indexes: %w", err)
	}

	ownerIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("idx_owner_name"),
		},
		{
			Keys:    bson.D{{Key: "address", Value: 1}},
			Options: options.Index().SetName("idx_owner_address"),
		},
	}
	if _, err := db.Collection(ownersCollectionName).Indexes().CreateMany(ctx, ownerIndexes); err != nil {
		return fmt.Errorf("failed to create owner indexes: %w", err)
	}

	imageIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "idProperty", Value: 1}},
			Options: options.Index().SetName("idx_image_idproperty"),
		},
	}
	if _, err := db.Collection(imagesCollectionName).Indexes().CreateMany(ctx, imageIndexes); err != nil {
		return fmt.Errorf("failed to create property image indexes: %w", err)
	}

	traceIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "idProperty", Value: 1}},
			Options: options.Index().SetName("idx_trace_idproperty"),
		},
	}
	if _, err := db.Collection(tracesCollectionName).Indexes().CreateMany(ctx, traceIndexes); err != nil {
		return fmt.Errorf("failed to create property trace indexes: %w", err)
	}

	return nil
}
