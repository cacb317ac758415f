package runstore_test

import (
	"testing"
	"time"

	"github.com/ordbench/layerheur/pkg/runstore"
)

func TestKeyIsStableUnderOptionOrdering(t *testing.T) {
	graph := []byte("digraph G { a -> b; }")
	k1 := runstore.Key(graph, "mse", map[string]string{"preprocessor": "bfs", "seed": "1"})
	k2 := runstore.Key(graph, "mse", map[string]string{"seed": "1", "preprocessor": "bfs"})
	if k1 != k2 {
		t.Fatalf("expected option order not to affect the key: %q != %q", k1, k2)
	}
}

func TestKeyDiffersOnHeuristic(t *testing.T) {
	graph := []byte("digraph G { a -> b; }")
	k1 := runstore.Key(graph, "mse", nil)
	k2 := runstore.Key(graph, "mce", nil)
	if k1 == k2 {
		t.Fatal("expected different heuristics to produce different keys")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := runstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer store.Close()

	key := runstore.Key([]byte("digraph G { a -> b; }"), "mse", map[string]string{"seed": "7"})
	want := runstore.Run{
		ID:            "11111111-1111-1111-1111-111111111111",
		GraphName:     "demo",
		Heuristic:     "mse",
		Options:       map[string]string{"seed": "7"},
		Objectives:    map[string]float64{"crossings": 3, "stretch": 12},
		BestIteration: 42,
		Elapsed:       2 * time.Second,
		CompletedAt:   time.Unix(0, 0).UTC(),
	}

	if err := store.Put(key, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := store.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if got.Heuristic != want.Heuristic || got.BestIteration != want.BestIteration {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFileStoreMiss(t *testing.T) {
	store, err := runstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer store.Close()

	_, ok, err := store.Get(runstore.Key([]byte("x"), "mse", nil))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss on an empty store")
	}
}
