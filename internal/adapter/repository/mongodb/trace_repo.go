package mongodb

import (
	"context"
	"fmt"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const tracesCollectionName = "propertyTraces"

// TraceRepository only appends and reads: the sale ledger carries no update
// or delete operations.
type TraceRepository struct {
	collection *mongo.Collection
}

func NewTraceRepository(db *mongo.Database) *TraceRepository {
	return &TraceRepository{collection: db.Collection(tracesCollectionName)}
}

func (r *TraceRepository) Add(ctx context.Context, trace *domain.PropertyTrace) (string, error) {
	doc, err := toTraceDocument(trace)
	if err != nil {
		return "", err
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to add property trace in mongo: %w", err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted_id to ObjectID")
	}
	return insertedID.Hex(), nil
}

// ListByProperty returns the full ledger in store insertion order. Callers
// needing chronological order must sort on dateSale themselves.
func (r *TraceRepository) ListByProperty(ctx context.Context, propertyID string) ([]*domain.PropertyTrace, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"idProperty": propertyID})
	if err != nil {
		return nil, fmt.Errorf("failed to list property traces from mongo: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []traceDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode property trace list from mongo: %w", err)
	}

	traces := make([]*domain.PropertyTrace, len(docs))
	for i := range docs {
		traces[i] = toDomainTrace(&docs[i])
	}
	return traces, nil
}
