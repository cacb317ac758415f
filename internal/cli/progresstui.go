package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ordbench/layerheur/pkg/telemetry"
)

// progressState is what the bubbletea model renders, updated by
// progressRecorder (a telemetry.RunHooks implementation) and pulled by
// the model on a ticker — the same split the teacher's spinner.go makes
// between a background goroutine producing state and a renderer
// consuming it, promoted here to a full bubbletea.Model since a run's
// progress has more to show than a spinner frame.
type progressState struct {
	heuristic string
	iteration int
	crossings int
	pass      int
	elapsed   time.Duration
	complete  bool
	reason    string
}

// progressRecorder implements telemetry.RunHooks, keeping a thread-safe
// progressState the bubbletea model reads on every tick.
type progressRecorder struct {
	mu    sync.RWMutex
	state progressState
	start time.Time
}

func newProgressRecorder() *progressRecorder { return &progressRecorder{} }

func (r *progressRecorder) OnRunStart(_ context.Context, heuristic string, _ int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = progressState{heuristic: heuristic}
	r.start = time.Now()
}

func (r *progressRecorder) OnIteration(_ context.Context, iteration, crossings int, _ bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.iteration = iteration
	r.state.crossings = crossings
	r.state.elapsed = time.Since(r.start)
}

func (r *progressRecorder) OnPassComplete(_ context.Context, pass int, _ bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.pass = pass
}

func (r *progressRecorder) OnStandardTerminationReached(context.Context, int) {}

func (r *progressRecorder) OnRunComplete(_ context.Context, reason string, crossings int, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.complete = true
	r.state.reason = reason
	r.state.crossings = crossings
	r.state.elapsed = elapsed
}

func (r *progressRecorder) OnCapture(context.Context, int, string, error) {}

func (r *progressRecorder) snapshot() progressState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

var _ telemetry.RunHooks = (*progressRecorder)(nil)

type tickMsg time.Time

type progressModel struct {
	recorder *progressRecorder
}

func (m progressModel) Init() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tickMsg:
		if m.recorder.snapshot().complete {
			return m, tea.Quit
		}
		return m, tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
	}
	return m, nil
}

var (
	progressLabelStyle = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	progressValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

func (m progressModel) View() string {
	s := m.recorder.snapshot()
	line := func(label, value string) string {
		return progressLabelStyle.Render(label) + progressValueStyle.Render(value) + "\n"
	}
	out := StyleTitle.Render("layerheur run") + "\n"
	out += line("heuristic", s.heuristic)
	out += line("iteration", fmt.Sprintf("%d", s.iteration))
	out += line("crossings", fmt.Sprintf("%d", s.crossings))
	out += line("pass", fmt.Sprintf("%d", s.pass))
	out += line("elapsed", s.elapsed.Round(10*time.Millisecond).String())
	if s.complete {
		out += line("status", s.reason)
	}
	return out
}

// progressProgram drives a progressModel on its own goroutine,
// context-cancellable the way the teacher's Spinner is, so the run
// command can start it before the heuristic driver runs and stop it
// once the driver returns.
type progressProgram struct {
	recorder *progressRecorder
	program  *tea.Program
	done     chan struct{}
}

func newProgressProgram(heuristicName string) *progressProgram {
	rec := newProgressRecorder()
	return &progressProgram{
		recorder: rec,
		program:  tea.NewProgram(progressModel{recorder: rec}),
		done:     make(chan struct{}),
	}
}

// Start runs the bubbletea program in the background until Stop is
// called or the recorder observes OnRunComplete.
func (p *progressProgram) Start() {
	go func() {
		defer close(p.done)
		_, _ = p.program.Run()
	}()
}

// Stop asks the program to quit and waits for it to exit.
func (p *progressProgram) Stop() {
	p.program.Quit()
	<-p.done
}
