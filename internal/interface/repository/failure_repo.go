package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
)

var _ repository.FailureRepository = (*MongoFailureRepository)(nil)

// MongoFailureRepository journals nacked messages to MongoDB
type MongoFailureRepository struct {
	collection *mongo.Collection
}

// NewMongoFailureRepository creates a new MongoDB failure journal
func NewMongoFailureRepository(db *mongo.Database) *MongoFailureRepository {
	collection := db.Collection("processingFailures")

	// Indexes for the operational queries: "recent failures per queue".
	ctx := context.Background()

	queueIndex := mongo.IndexModel{
		Keys: bson.M{"queue": 1},
	}

	occurredAtIndex := mongo.IndexModel{
		Keys: bson.M{"occurredAt": -1},
	}

	queueOccurredIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "queue", Value: 1},
			{Key: "occurredAt", Value: -1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		queueIndex,
		occurredAtIndex,
		queueOccurredIndex,
	})

	return &MongoFailureRepository{collection: collection}
}

// RecordFailure inserts one journal entry
func (r *MongoFailureRepository) RecordFailure(ctx context.Context, failure *entity.ProcessingFailure) error {
	if _, err := r.collection.InsertOne(ctx, failure); err != nil {
		return fmt.Errorf("failed to record processing failure: %w", err)
	}
	return nil
}

// RecentFailures lists the latest journal entries for a queue
func (r *MongoFailureRepository) RecentFailures(ctx context.Context, queue string, limit int64) ([]entity.ProcessingFailure, error) {
	opts := options.Find().
		SetSort(bson.M{"occurredAt": -1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"queue": queue}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query processing failures: %w", err)
	}
	defer cursor.Close(ctx)

	var failures []entity.ProcessingFailure
	if err := cursor.All(ctx, &failures); err != nil {
		return nil, fmt.Errorf("failed to decode processing failures: %w", err)
	}
	return failures, nil
}
