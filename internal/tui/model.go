package tui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/gotris-core/internal/game"
)

// frameInterval is how often the model feeds elapsed time into the engine.
const frameInterval = 50 * time.Millisecond

// --- Custom tea.Msg types ---

// TickMsg carries the wall-clock time of a frame.
type TickMsg time.Time

// --- Screens ---

type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenPlaying
	ScreenGameOver
)

// --- Model ---

// Model is the presentation layer: it owns one engine, translates keys
// into engine calls and feeds frame time into Engine.Tick.
type Model struct {
	screen     Screen
	playerName string
	engine     *game.Engine
	paused     bool
	lastTick   time.Time
	width      int
	height     int
}

// NewModel creates the TUI model. The engine is created from cfg with the
// model's logging observer attached.
func NewModel(playerName string, cfg game.Config) (Model, error) {
	cfg.OnEvent = logEvent(playerName, cfg.OnEvent)
	e, err := game.New(cfg)
	if err != nil {
		return Model{}, err
	}
	return Model{
		screen:     ScreenWelcome,
		playerName: playerName,
		engine:     e,
	}, nil
}

// logEvent logs locks, clears and game over, then forwards to next.
func logEvent(playerName string, next game.Listener) game.Listener {
	return func(ev game.Event) {
		switch ev.Type {
		case game.EventLinesCleared:
			log.Printf("%s cleared %d line(s) for %d points (score %d)", playerName, ev.Lines, ev.Points, ev.Score)
		case game.EventGameOver:
			log.Printf("%s game over: %s blocked at spawn, final score %d", playerName, ev.Piece.Kind, ev.Score)
		case game.EventLock:
			log.Printf("%s locked %s at (%d,%d)", playerName, ev.Piece.Kind, ev.Piece.Col, ev.Piece.Row)
		}
		if next != nil {
			next(ev)
		}
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// --- Key handlers ---

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.screen == ScreenPlaying && !m.paused {
			// Don't quit during gameplay with q
			break
		}
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenWelcome:
		return m.handleWelcomeKeys(msg)
	case ScreenPlaying:
		return m.handlePlayingKeys(msg)
	case ScreenGameOver:
		return m.handleGameOverKeys(msg)
	}
	return m, nil
}

func (m Model) handleWelcomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "s", "1":
		m.start()
	}
	return m, nil
}

func (m *Model) start() {
	m.engine.Reset()
	m.screen = ScreenPlaying
	m.paused = false
	m.lastTick = time.Time{}
	log.Printf("%s started a game", m.playerName)
	m.checkGameOver()
}

func (m Model) handlePlayingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "p" {
		m.paused = !m.paused
		m.lastTick = time.Time{}
		return m, nil
	}
	if m.paused {
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		m.engine.MoveLeft()
	case "right", "l":
		m.engine.MoveRight()
	case "down", "j":
		m.engine.SoftDrop()
	case "up", "x":
		m.engine.Rotate()
	case "a":
		m.engine.RotateBack()
	case " ", "c":
		m.engine.HardDrop()
	case "z":
		m.engine.Hold()
	case "r":
		m.start()
	}
	m.checkGameOver()
	return m, nil
}

func (m Model) handleGameOverKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.screen = ScreenWelcome
	case "r":
		m.start()
	}
	return m, nil
}

// --- Tick handlers ---

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.screen != ScreenPlaying || m.paused {
		m.lastTick = time.Time{}
		return m, tickCmd()
	}

	if !m.lastTick.IsZero() {
		m.engine.Tick(now.Sub(m.lastTick))
	}
	m.lastTick = now
	m.checkGameOver()

	return m, tickCmd()
}

func (m *Model) checkGameOver() {
	if m.engine.Status() == game.StatusGameOver {
		m.screen = ScreenGameOver
	}
}

// --- View ---

func (m Model) View() string {
	switch m.screen {
	case ScreenWelcome:
		return m.renderCentered(RenderWelcome())
	case ScreenPlaying:
		return m.renderPlaying()
	case ScreenGameOver:
		return m.renderGameOver()
	}
	return ""
}

func (m Model) renderCentered(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m Model) renderPlaying() string {
	info := RenderInfo(m.engine, m.playerName)
	if m.paused {
		info += "\n" + RenderPaused()
	}

	leftPanel := lipgloss.NewStyle().
		Width(24).
		Render(info)

	centerPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(RenderBoard(m.engine))

	rightPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(RenderControls())

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		centerPanel,
		rightPanel,
	)

	return m.renderCentered(mainContent)
}

func (m Model) renderGameOver() string {
	content := lipgloss.JoinHorizontal(
		lipgloss.Center,
		RenderBoard(m.engine),
		RenderGameOver(m.engine.Score(), m.engine.Lines()),
	)
	content += "\n\nPress ENTER to continue, R to play again"
	return m.renderCentered(content)
}

// Engine exposes the underlying engine for read-only inspection.
func (m Model) Engine() *game.Engine {
	return m.engine
}

func (m Model) Screen() Screen {
	return m.screen
}

func (m Model) Paused() bool {
	return m.paused
}
