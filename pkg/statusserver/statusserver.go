// Package statusserver exposes a minimal read-only HTTP endpoint reporting
// a heuristic run's live progress, for a long iteration- or wall-clock-
// bounded run where a researcher wants to check in without attaching a
// terminal. It is driven by the same pkg/telemetry hooks the logger and
// progress TUI use, and never runs inside the engine itself: it only
// observes state telemetry already pushes out.
package statusserver

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ordbench/layerheur/pkg/telemetry"
)

// Snapshot is the current progress of one run, reported as JSON at GET /status.
type Snapshot struct {
	Heuristic          string        `json:"heuristic"`
	Iteration          int           `json:"iteration"`
	TotalCrossings     int           `json:"total_crossings"`
	Pass               int           `json:"pass"`
	Improved           bool          `json:"improved"`
	Elapsed            time.Duration `json:"elapsed_ns"`
	Complete           bool          `json:"complete"`
	TerminationReason  string        `json:"termination_reason,omitempty"`
}

// Recorder implements telemetry.RunHooks, keeping a thread-safe Snapshot
// that the HTTP handler reads on every request.
type Recorder struct {
	mu    sync.RWMutex
	snap  Snapshot
	start time.Time
}

// NewRecorder returns a Recorder ready to register via telemetry.Set.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnRunStart records the heuristic name and resets progress state.
func (r *Recorder) OnRunStart(_ context.Context, heuristic string, _ int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = Snapshot{Heuristic: heuristic}
	r.start = time.Now()
}

// OnIteration updates the live iteration count and current crossing total.
func (r *Recorder) OnIteration(_ context.Context, iteration int, totalCrossings int, improved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Iteration = iteration
	r.snap.TotalCrossings = totalCrossings
	r.snap.Improved = improved
	r.snap.Elapsed = time.Since(r.start)
}

// OnPassComplete records the most recently completed pass number.
func (r *Recorder) OnPassComplete(_ context.Context, pass int, _ bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Pass = pass
}

// OnStandardTerminationReached is a no-op; the status snapshot only
// reports what a GET /status poller needs (current progress, final
// result), not every intermediate termination-check event.
func (r *Recorder) OnStandardTerminationReached(context.Context, int) {}

// OnRunComplete marks the snapshot complete with the final reason.
func (r *Recorder) OnRunComplete(_ context.Context, reason string, bestTotalCrossings int, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Complete = true
	r.snap.TerminationReason = reason
	r.snap.TotalCrossings = bestTotalCrossings
	r.snap.Elapsed = elapsed
}

// OnCapture is a no-op; capture file events aren't part of the live status.
func (r *Recorder) OnCapture(context.Context, int, string, error) {}

var _ telemetry.RunHooks = (*Recorder)(nil)

// Snapshot returns a copy of the current progress.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}

// Handler returns a chi router serving GET /status as JSON.
func (r *Recorder) Handler() http.Handler {
	mux := chi.NewRouter()
	mux.Get("/status", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(r.Snapshot())
	})
	return mux
}

// Server binds Recorder.Handler to an address until Shutdown is called.
type Server struct {
	http *http.Server
}

// New starts listening on addr in the background. A non-empty addr like
// ":8080" is expected; ListenAndServe errors (other than the expected
// http.ErrServerClosed on Shutdown) are sent on the returned channel.
func New(addr string, rec *Recorder) (*Server, <-chan error) {
	srv := &http.Server{Addr: addr, Handler: rec.Handler()}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()
	return &Server{http: srv}, errCh
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.http.Close()
}
