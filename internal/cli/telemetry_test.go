package cli

import (
	"context"
	"testing"
	"time"
)

type recordingLogger struct {
	infos  []string
	debugs []string
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.infos = append(l.infos, format)
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.debugs = append(l.debugs, format)
}

func TestLoggingHooksThrottlesIterations(t *testing.T) {
	rl := &recordingLogger{}
	h := loggingHooks{logger: rl, traceEvery: 5}

	for i := 1; i <= 10; i++ {
		h.OnIteration(context.Background(), i, 100-i, true)
	}
	if len(rl.debugs) != 2 {
		t.Fatalf("expected exactly 2 throttled debug lines, got %d: %v", len(rl.debugs), rl.debugs)
	}
}

func TestLoggingHooksRunStartAndComplete(t *testing.T) {
	rl := &recordingLogger{}
	h := loggingHooks{logger: rl, traceEvery: 1}

	h.OnRunStart(context.Background(), "mod_bary", 100, time.Second)
	h.OnRunComplete(context.Background(), "max_iterations", 42, time.Millisecond)

	if len(rl.infos) != 2 {
		t.Fatalf("expected 2 info lines, got %d: %v", len(rl.infos), rl.infos)
	}
}

type countingHooks struct {
	starts, iterations, passes, completes, captures int
}

func (c *countingHooks) OnRunStart(context.Context, string, int, time.Duration)   { c.starts++ }
func (c *countingHooks) OnIteration(context.Context, int, int, bool)              { c.iterations++ }
func (c *countingHooks) OnPassComplete(context.Context, int, bool)                { c.passes++ }
func (c *countingHooks) OnStandardTerminationReached(context.Context, int)        {}
func (c *countingHooks) OnRunComplete(context.Context, string, int, time.Duration) { c.completes++ }
func (c *countingHooks) OnCapture(context.Context, int, string, error)           { c.captures++ }

func TestFanoutHooksDispatchesToEveryDelegate(t *testing.T) {
	a, b := &countingHooks{}, &countingHooks{}
	fan := fanoutHooks{a, b}

	fan.OnRunStart(context.Background(), "mcn", 10, 0)
	fan.OnIteration(context.Background(), 1, 5, true)
	fan.OnPassComplete(context.Background(), 1, true)
	fan.OnRunComplete(context.Background(), "converged", 5, time.Millisecond)
	fan.OnCapture(context.Background(), 1, "out.sgf", nil)

	for name, h := range map[string]*countingHooks{"a": a, "b": b} {
		if h.starts != 1 || h.iterations != 1 || h.passes != 1 || h.completes != 1 || h.captures != 1 {
			t.Fatalf("delegate %s did not receive every event: %+v", name, h)
		}
	}
}
