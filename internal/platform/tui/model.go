package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmalakhov/skyhop/internal/core"
	"github.com/dmalakhov/skyhop/internal/game"
)

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig) Model {
	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	snap := m.session.Snapshot()
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Esc/B leaves the game once the run is over or paused.
	if action == core.ActionBack && (snap.Phase == game.PhaseGameOver || snap.Paused) {
		m.quitting = true
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. A run in flight restarts with
// the new dimensions; a frozen game over screen is left untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	m.session.Resize(msg.Width, msg.Height)
	if m.session.Phase() == game.PhaseRunning {
		m.session.Reset()
		m.session.Start()
	}

	return m, nil
}

// handleTick applies buffered input, then advances the simulation one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	phase := m.session.Phase()

	if m.inputFrame.Has(core.ActionRestart) && phase == game.PhaseGameOver {
		m.session.Start()
	}

	if m.inputFrame.Has(core.ActionFlap) || m.inputFrame.Has(core.ActionConfirm) {
		if phase == game.PhaseIdle {
			m.session.Start()
		} else {
			m.session.Flap()
		}
	}

	if m.inputFrame.Has(core.ActionPause) {
		m.session.TogglePause()
	}

	m.session.Update()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawSnapshot(m.screen, m.session.Snapshot())

	dir := filepath.Join(os.Getenv("HOME"), ".skyhop", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("skyhop_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.session.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given session.
func Run(session *game.Session, cfg core.RuntimeConfig) error {
	model := NewModel(session, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
