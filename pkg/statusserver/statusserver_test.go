package statusserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ordbench/layerheur/pkg/statusserver"
)

func TestHandlerReportsLiveProgress(t *testing.T) {
	rec := statusserver.NewRecorder()
	ctx := context.Background()

	rec.OnRunStart(ctx, "mse", 1000, time.Minute)
	rec.OnIteration(ctx, 3, 7, true)
	rec.OnPassComplete(ctx, 1, true)

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("GET /status: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var snap statusserver.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Heuristic != "mse" || snap.Iteration != 3 || snap.TotalCrossings != 7 || snap.Pass != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Complete {
		t.Fatal("expected Complete=false before OnRunComplete")
	}
}

func TestHandlerReportsCompletion(t *testing.T) {
	rec := statusserver.NewRecorder()
	ctx := context.Background()

	rec.OnRunStart(ctx, "mce", 1000, time.Minute)
	rec.OnRunComplete(ctx, "budget_reached", 2, 5*time.Second)

	snap := rec.Snapshot()
	if !snap.Complete || snap.TerminationReason != "budget_reached" || snap.TotalCrossings != 2 {
		t.Fatalf("unexpected snapshot after completion: %+v", snap)
	}
}
