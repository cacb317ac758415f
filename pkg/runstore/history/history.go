// Package history records one document per completed heuristic run to
// MongoDB, giving a researcher sweeping parameter combinations a queryable
// log of everything they've already run, independent of the runstore
// lookup cache (which only keeps the latest result per key). Nothing in
// the engine or CLI core depends on this package being wired; "layerheur
// history list" reports an error when no Mongo URI is configured.
package history

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ordbench/layerheur/pkg/runstore"
)

// Recorder appends completed runs to, and lists them back from, a
// persistent history independent of the runstore lookup cache.
type Recorder interface {
	Record(ctx context.Context, run runstore.Run) error
	List(ctx context.Context, limit int) ([]runstore.Run, error)
	Close(ctx context.Context) error
}

// Mongo is a Recorder backed by a single "runs" collection.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Connect dials uri and returns a Mongo recorder writing to database.runs.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("history: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("history: ping: %w", err)
	}
	return &Mongo{
		client:     client,
		collection: client.Database(database).Collection("runs"),
	}, nil
}

type runDocument struct {
	ID            string             `bson:"id"`
	GraphName     string             `bson:"graph_name"`
	Heuristic     string             `bson:"heuristic"`
	Options       map[string]string  `bson:"options"`
	Objectives    map[string]float64 `bson:"objectives"`
	BestIteration int                `bson:"best_iteration"`
	ElapsedMillis int64              `bson:"elapsed_millis"`
	CompletedAt   time.Time          `bson:"completed_at"`
}

func toDocument(r runstore.Run) runDocument {
	return runDocument{
		ID:            r.ID,
		GraphName:     r.GraphName,
		Heuristic:     r.Heuristic,
		Options:       r.Options,
		Objectives:    r.Objectives,
		BestIteration: r.BestIteration,
		ElapsedMillis: r.Elapsed.Milliseconds(),
		CompletedAt:   r.CompletedAt,
	}
}

func fromDocument(d runDocument) runstore.Run {
	return runstore.Run{
		ID:            d.ID,
		GraphName:     d.GraphName,
		Heuristic:     d.Heuristic,
		Options:       d.Options,
		Objectives:    d.Objectives,
		BestIteration: d.BestIteration,
		Elapsed:       time.Duration(d.ElapsedMillis) * time.Millisecond,
		CompletedAt:   d.CompletedAt,
	}
}

// Record inserts one document for the completed run.
func (m *Mongo) Record(ctx context.Context, run runstore.Run) error {
	_, err := m.collection.InsertOne(ctx, toDocument(run))
	if err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	return nil
}

// List returns the most recently completed runs, newest first, capped at limit.
func (m *Mongo) List(ctx context.Context, limit int) ([]runstore.Run, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := m.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("history: find: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []runDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("history: decode: %w", err)
	}

	runs := make([]runstore.Run, len(docs))
	for i, d := range docs {
		runs[i] = fromDocument(d)
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].CompletedAt.After(runs[j].CompletedAt)
	})
	return runs, nil
}

// Close disconnects the underlying Mongo client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

var _ Recorder = (*Mongo)(nil)
