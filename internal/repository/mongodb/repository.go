package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/repository"
)

const (
	storesCollection    = "stores"
	snapshotsCollection = "snapshots"
)

// stateDocument wraps the homestead state with its store key.
type stateDocument struct {
	ID    string                `bson:"_id"`
	State models.HomesteadState `bson:"state"`
}

// MongoDBRepository stores the homestead document and its weekly snapshots.
type MongoDBRepository struct {
	client    *mongo.Client
	dbName    string
	storeName string
}

var (
	_ repository.StateRepository    = (*MongoDBRepository)(nil)
	_ repository.SnapshotRepository = (*MongoDBRepository)(nil)
)

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:    client,
		dbName:    dbName,
		storeName: models.StoreName,
	}, nil
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// LoadState reads the homestead document.
func (r *MongoDBRepository) LoadState(ctx context.Context) (models.HomesteadState, error) {
	var doc stateDocument
	err := r.collection(storesCollection).FindOne(ctx, bson.M{"_id": r.storeName}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.HomesteadState{}, repository.ErrStateNotFound
	}
	if err != nil {
		return models.HomesteadState{}, fmt.Errorf("failed to load homestead state: %w", err)
	}
	return doc.State.Clone(), nil
}

// SaveState upserts the homestead document.
func (r *MongoDBRepository) SaveState(ctx context.Context, state models.HomesteadState) error {
	doc := stateDocument{ID: r.storeName, State: state.Clone()}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection(storesCollection).ReplaceOne(ctx, bson.M{"_id": r.storeName}, doc, opts); err != nil {
		return fmt.Errorf("failed to save homestead state: %w", err)
	}
	return nil
}

// SaveSnapshot appends a weekly snapshot.
func (r *MongoDBRepository) SaveSnapshot(ctx context.Context, snapshot models.PlanSnapshot) error {
	if _, err := r.collection(snapshotsCollection).InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert plan snapshot: %w", err)
	}
	return nil
}

// ListSnapshots returns the most recent snapshots, newest first.
func (r *MongoDBRepository) ListSnapshots(ctx context.Context, limit int) ([]models.PlanSnapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.collection(snapshotsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query plan snapshots: %w", err)
	}

	var out []models.PlanSnapshot
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode plan snapshots: %w", err)
	}
	return out, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
