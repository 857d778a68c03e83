package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/bricks"
)

// Rows taken by the HUD above the play area and the help line below it.
const chromeRows = 2

// Options configures a game Model.
type Options struct {
	Bricks  config.BricksConfig
	Runtime core.RuntimeConfig
	Journal Journal     // Optional
	Logger  *log.Logger // Optional, discards when nil
}

// Model is the Bubble Tea model for one brick breaker session.
type Model struct {
	ctrl     *bricks.Controller
	sched    *teaScheduler
	screen   *core.Screen
	recorder *Recorder
	cfg      config.BricksConfig
	player   string
	keys     KeyMap
	help     help.Model
	width    int
	quitting bool
}

// NewModel creates a model with a fresh controller in the Ready state.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	player := opts.Runtime.PlayerName
	if player == "" {
		player = core.DefaultPlayerName
	}

	sched := newTeaScheduler()
	ctrl := bricks.NewController(opts.Bricks, sched)
	ctrl.Initialize(opts.Runtime.Rows)

	screenH := max(opts.Runtime.ScreenH-chromeRows, 0)

	return Model{
		ctrl:     ctrl,
		sched:    sched,
		screen:   core.NewScreen(opts.Runtime.ScreenW, screenH),
		recorder: NewRecorder(opts.Journal, player, logger),
		cfg:      opts.Bricks,
		player:   player,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		width:    opts.Runtime.ScreenW,
	}
}

// Controller returns the game controller driven by the model.
func (m Model) Controller() *bricks.Controller {
	return m.ctrl
}

// Init reports the initial play area. The game waits for the start key.
func (m Model) Init() tea.Cmd {
	m.ctrl.Resize(m.cfg.Canvas.Width, PlayAreaHeight(m.cfg.Canvas, m.screen.Width(), m.screen.Height()))
	m.flush()
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tickMsg:
		msg.fire()
		m.flush()
		return m, m.sched.Drain()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if cmd := m.keys.Command(msg); cmd != core.CommandNone {
		m.ctrl.Handle(cmd)
		m.flush()
	}
	return m, m.sched.Drain()
}

// handleResize processes window resize events. The play area keeps the
// canvas width in game units; its height follows the terminal's aspect.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-chromeRows, 0))

	m.ctrl.Resize(m.cfg.Canvas.Width, PlayAreaHeight(m.cfg.Canvas, m.screen.Width(), m.screen.Height()))
	m.flush()
	return m, m.sched.Drain()
}

// flush hands queued controller events to the recorder.
func (m Model) flush() {
	m.recorder.Flush(m.ctrl)
}

// Close ends the session's journaling. A run still in progress is recorded
// as abandoned. Safe to call more than once and from any goroutine.
func (m Model) Close() {
	m.recorder.Stop(m.ctrl)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.ctrl.Snapshot()
	bricks.Render(m.screen, snap)

	return RenderHUD(m.player, snap.Score, snap.Status, m.width) + "\n" +
		RenderScreen(m.screen) + "\n" +
		m.help.View(m.keys)
}

// ScoreText is the score label shown in the HUD.
func ScoreText(player string, score int) string {
	return fmt.Sprintf("%s's Score: %d", player, score)
}

// PlayAreaHeight returns the play-area height in game units for a screen of
// the given cell size. Cells are about twice as tall as they are wide, so
// the height grows with tall terminals. It never drops below the canvas
// height, which keeps the paddle inside the field.
func PlayAreaHeight(canvas config.CanvasConfig, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return canvas.Height
	}
	return max(canvas.Width*rows*2/cols, canvas.Height)
}

// Run starts the Bubble Tea program for a local session. The open run is
// closed however the program ends.
func Run(opts Options) error {
	m := NewModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()
	m.Close()
	return err
}
