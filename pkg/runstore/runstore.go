// Package runstore persists the outcome of a completed heuristic run so a
// researcher sweeping parameter combinations against the same graph can
// look up a combination they've already measured instead of re-running it,
// and so completed runs can be listed later.
//
// This is new relative to the teacher's pkg/cache: that package's Cache
// and Keyer interfaces are referenced by its own scoped.go but never
// defined anywhere in the retrieved teacher source, so they cannot be
// adapted as-is. runstore borrows only file.go's JSON-entry-on-disk shape
// and hash.go's SHA-256 keying, not the literal (incomplete) interface.
package runstore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Run is the recorded outcome of one completed heuristic run.
type Run struct {
	ID            string            `json:"id"`
	GraphName     string            `json:"graph_name"`
	Heuristic     string            `json:"heuristic"`
	Options       map[string]string `json:"options"`
	Objectives    map[string]float64 `json:"objectives"`
	BestIteration int               `json:"best_iteration"`
	Elapsed       time.Duration     `json:"elapsed"`
	CompletedAt   time.Time         `json:"completed_at"`
}

// Store is a key/value lookup for final run results, keyed by Key.
// Implementations (FileStore, rediscache.Store) never block the engine
// itself — they're consulted and written by the CLI layer around a run,
// never by pkg/heuristic.
type Store interface {
	Get(key string) (Run, bool, error)
	Put(key string, run Run) error
	Close() error
}

// Key hashes a graph's content alongside the heuristic name and its
// options into a single lookup key, the same prefix:hash shape as the
// teacher's cache/hash.go hashKey, so two runs over an identical graph
// with identical options collide on the same entry regardless of source
// file name or option ordering.
func Key(graphContent []byte, heuristic string, options map[string]string) string {
	data, _ := json.Marshal(struct {
		Graph     string            `json:"graph"`
		Heuristic string            `json:"heuristic"`
		Options   map[string]string `json:"options"`
	}{
		Graph:     sortedOptionsInsensitiveHash(graphContent),
		Heuristic: heuristic,
		Options:   options,
	})
	sum := sha256.Sum256(data)
	return fmt.Sprintf("run:%s", hex.EncodeToString(sum[:]))
}

func sortedOptionsInsensitiveHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// SortedOptionKeys returns options' keys in sorted order, for producing
// a deterministic display or log line over a map.
func SortedOptionKeys(options map[string]string) []string {
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
