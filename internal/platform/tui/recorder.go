package tui

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/games/bricks"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// Journal is the subset of storage.Store the recorder writes to.
type Journal interface {
	BeginRun(player string, rows, width, height int) (string, error)
	AppendInput(runID string, in storage.RunInput) error
	FinishRun(runID, status string, score, ticks int) error
}

// Recorder turns controller events into run journal entries.
// Journal failures are logged and otherwise ignored; the game keeps running.
// It is safe to use from the update loop and a session watcher at once.
type Recorder struct {
	mu      sync.Mutex
	journal Journal
	player  string
	logger  *log.Logger
	runID   string // Open run, empty if none
}

// NewRecorder creates a recorder. A nil journal records nothing but still
// logs run lifecycle events.
func NewRecorder(journal Journal, player string, logger *log.Logger) *Recorder {
	return &Recorder{
		journal: journal,
		player:  player,
		logger:  logger,
	}
}

// RunID returns the ID of the open run, or "" if none.
func (r *Recorder) RunID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runID
}

// Record writes the given events in order.
func (r *Recorder) Record(events []bricks.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(events)
}

// Flush drains the controller's queued events and writes them. Draining
// under the recorder lock keeps events from two callers in order.
func (r *Recorder) Flush(ctrl *bricks.Controller) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(ctrl.Events())
}

func (r *Recorder) record(events []bricks.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case bricks.StartedEvent:
			r.begin(ev)
		case bricks.InputEvent:
			r.append(storage.RunInput{
				Tick:    ev.Tick,
				Kind:    storage.InputCommand,
				Command: ev.Command.String(),
			})
		case bricks.ResizedEvent:
			r.append(storage.RunInput{
				Tick:   ev.Tick,
				Kind:   storage.InputResize,
				Width:  ev.Width,
				Height: ev.Height,
			})
		case bricks.BrickDestroyedEvent:
			r.logger.Debug("brick destroyed", "row", ev.Row, "col", ev.Col, "score", ev.Score)
		case bricks.FinishedEvent:
			r.finish(ev.Status.String(), ev.Score, ev.Ticks)
		case bricks.AbandonedEvent:
			r.finish(storage.StatusAbandoned, ev.Score, ev.Ticks)
		}
	}
}

// Close marks a run that is still open as abandoned.
func (r *Recorder) Close(score, ticks int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.close(score, ticks)
}

// Stop writes the controller's pending events, then abandons a run that is
// still open with the controller's current score and tick count.
// Calling it again is a no-op.
func (r *Recorder) Stop(ctrl *bricks.Controller) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record(ctrl.Events())
	snap := ctrl.Snapshot()
	r.close(snap.Score, snap.Tick)
}

func (r *Recorder) close(score, ticks int) {
	if r.runID != "" {
		r.finish(storage.StatusAbandoned, score, ticks)
	}
}

func (r *Recorder) begin(ev bricks.StartedEvent) {
	r.logger.Info("run started", "player", r.player, "rows", ev.Rows, "generation", ev.Generation)

	if r.journal == nil {
		return
	}
	id, err := r.journal.BeginRun(r.player, ev.Rows, ev.Width, ev.Height)
	if err != nil {
		r.logger.Warn("could not journal run", "error", err)
		r.runID = ""
		return
	}
	r.runID = id
}

func (r *Recorder) append(in storage.RunInput) {
	if r.journal == nil || r.runID == "" {
		return
	}
	if err := r.journal.AppendInput(r.runID, in); err != nil {
		r.logger.Warn("could not journal input", "run", r.runID, "error", err)
	}
}

func (r *Recorder) finish(status string, score, ticks int) {
	r.logger.Info("run finished", "player", r.player, "status", status, "score", score, "ticks", ticks)

	if r.journal == nil || r.runID == "" {
		return
	}
	if err := r.journal.FinishRun(r.runID, status, score, ticks); err != nil {
		r.logger.Warn("could not journal result", "run", r.runID, "error", err)
	}
	r.runID = ""
}
