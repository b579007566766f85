package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flipspider/internal/config"
	"flipspider/internal/core"
	"flipspider/internal/sim"
	"flipspider/internal/storage"
)

// menuPresets is the menu order of the difficulty presets.
var menuPresets = []sim.Preset{sim.PresetEasy, sim.PresetMedium, sim.PresetHard}

// sessionStore adapts the SQLite store to the session's BestStore interface.
type sessionStore struct {
	store *storage.Store
}

func (s sessionStore) Best() (int, error) {
	return s.store.Best(storage.GameID)
}

func (s sessionStore) SaveBest(score int) error {
	return s.store.SaveBest(storage.GameID, score)
}

// Model is the Bubble Tea model driving the game. All gameplay state lives
// in the session; the model owns only presentation concerns.
type Model struct {
	session  *sim.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	cursor   int    // menu difficulty cursor
	shotPath string // last exported frame, shown briefly on the overlay
	quitting bool
}

// NewModel wires a session to the terminal. store and audio may be nil; the
// session then runs without persistence or sound.
func NewModel(gameCfg config.GameConfig, store *storage.Store, audio sim.AudioSink, cfg core.RuntimeConfig, preset sim.Preset) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var best sim.BestStore
	if store != nil {
		best = sessionStore{store: store}
	}

	cursor := 0
	for i, p := range menuPresets {
		if p == preset {
			cursor = i
		}
	}

	session := sim.NewSession(gameCfg, cfg.Seed, audio, best)
	session.SelectDifficulty(preset)

	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		cursor:  cursor,
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		now := float64(time.Time(msg).UnixNano()) / 1e6
		m.session.Tick(now)
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey routes keyboard input by game state. Commands are queued into
// the session and take effect on its next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.session.State() {
	case sim.StateMenu:
		switch action {
		case core.ActionUp:
			m.cursor = core.Clamp(m.cursor-1, 0, len(menuPresets)-1)
			m.session.SelectDifficulty(menuPresets[m.cursor])
		case core.ActionDown:
			m.cursor = core.Clamp(m.cursor+1, 0, len(menuPresets)-1)
			m.session.SelectDifficulty(menuPresets[m.cursor])
		case core.ActionConfirm, core.ActionImpulse:
			m.shotPath = ""
			m.session.Reseed(time.Now().UnixNano())
			m.session.StartRun(menuPresets[m.cursor])
		}

	case sim.StatePlaying:
		if action == core.ActionImpulse {
			m.session.Impulse()
		}

	case sim.StateGameOver:
		switch action {
		case core.ActionRestart:
			m.shotPath = ""
			m.session.Reseed(time.Now().UnixNano())
			m.session.Restart()
		case core.ActionBack:
			m.session.GoToMenu()
		case core.ActionShare:
			m.exportFrame()
		}
	}

	return m, nil
}

// exportFrame saves the current frame and final score to a text file.
func (m *Model) exportFrame() {
	snap := m.session.Snapshot()
	Draw(m.screen, snap)
	if path, err := SaveShot(m.screen, snap.Score); err == nil {
		m.shotPath = path
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()

	if snap.State == sim.StateMenu {
		return m.menuView(snap.Best)
	}

	Draw(m.screen, snap)
	if snap.State == sim.StateGameOver {
		DrawGameOver(m.screen, snap)
		if m.shotPath != "" {
			m.screen.DrawTextCentered(m.screen.Height()-2, "saved "+m.shotPath)
		}
	}
	return RenderScreen(m.screen)
}

// menuView draws the title and difficulty picker with lipgloss.
func (m Model) menuView(best int) string {
	theme := m.session.Theme()

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Player)).
		Bold(true)
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Floor))

	var sb strings.Builder
	sb.WriteString("\n\n")
	sb.WriteString(titleStyle.Render("  F L I P S P I D E R"))
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("  vault the gaps, one web throw at a time"))
	sb.WriteString("\n\n")

	for i, p := range menuPresets {
		line := fmt.Sprintf("    %s", p)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("  ▶ %s", p))
		} else {
			line = dimStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if best > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  best: %d", best)))
		sb.WriteString("\n\n")
	}
	sb.WriteString("  " + m.help.View(m.keys))

	return sb.String()
}

// Run starts the Bubble Tea program for a local terminal.
func Run(gameCfg config.GameConfig, store *storage.Store, audio sim.AudioSink, cfg core.RuntimeConfig, preset sim.Preset) error {
	model := NewModel(gameCfg, store, audio, cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
