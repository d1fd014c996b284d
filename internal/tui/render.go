package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/gotris-core/internal/game"
)

var (
	// Indexed by game.Kind.Color().
	colors = []string{
		"0",
		"196",
		"46",
		"226",
		"21",
		"201",
		"51",
		"208",
	}

	ghostColor = "244"

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("15"))

	infoStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

func colorFor(k game.Kind) string {
	idx := k.Color()
	if idx <= 0 || idx >= len(colors) {
		return "248"
	}
	return colors[idx]
}

// cellGlyphs composes the board, ghost and active piece into one grid of
// (glyph, color) pairs, top row first.
func cellGlyphs(e *game.Engine) [][]glyph {
	board := e.Board()
	rows := board.Rows()

	grid := make([][]glyph, len(rows))
	for y, row := range rows {
		grid[y] = make([]glyph, len(row))
		for x, c := range row {
			if c.Filled {
				grid[y][x] = glyph{"██", colorFor(c.Kind)}
			} else {
				grid[y][x] = glyph{"  ", "0"}
			}
		}
	}

	if e.Status() == game.StatusGameOver {
		return grid
	}

	for _, c := range e.Ghost().Cells() {
		if board.InBounds(c.Col, c.Row) && !rows[c.Row][c.Col].Filled {
			grid[c.Row][c.Col] = glyph{"[]", ghostColor}
		}
	}
	cur := e.Current()
	for _, c := range cur.Cells() {
		if board.InBounds(c.Col, c.Row) {
			grid[c.Row][c.Col] = glyph{"██", colorFor(cur.Kind)}
		}
	}
	return grid
}

type glyph struct {
	text  string
	color string
}

func RenderBoard(e *game.Engine) string {
	var sb strings.Builder

	grid := cellGlyphs(e)
	for y, row := range grid {
		for _, g := range row {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(g.color)).
				Render(g.text))
		}
		if y < len(grid)-1 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

func RenderPiece(k game.Kind, ok bool) string {
	if !ok {
		return "Empty"
	}

	var sb strings.Builder
	pieceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorFor(k)))

	shape := game.Piece{Kind: k}.Shape()
	for y, row := range shape {
		for _, filled := range row {
			if filled {
				sb.WriteString(pieceStyle.Render("██"))
			} else {
				sb.WriteString("  ")
			}
		}
		if y < len(shape)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func RenderInfo(e *game.Engine, playerName string) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("GOTRIS") + "\n\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Player: %s", playerName)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Score: %d", e.Score())) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Level: %d", e.Level())) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Lines: %d", e.Lines())) + "\n\n")

	sb.WriteString(titleStyle.Render("NEXT") + "\n")
	next := e.Next()
	if len(next) == 0 {
		sb.WriteString(RenderPiece(0, false) + "\n\n")
	}
	for _, k := range next {
		sb.WriteString(RenderPiece(k, true) + "\n\n")
	}

	if e.Config().HoldEnabled {
		sb.WriteString(titleStyle.Render("HOLD") + "\n")
		sb.WriteString(RenderPiece(e.Held()) + "\n")
	}

	return sb.String()
}

func RenderWelcome() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")).
		Align(lipgloss.Center).
		Render(`
╔══════════════════════════════╗
║          G O T R I S         ║
║       Falling block TUI      ║
╚══════════════════════════════╝

   Press ENTER or S to start
   Press Q to quit
`)
}

func RenderPaused() string {
	return pausedStyle.Render("PAUSED - press P to resume")
}

func RenderGameOver(score, lines int) string {
	return gameOverStyle.
		Align(lipgloss.Center).
		Render(fmt.Sprintf("\n\n\n     GAME OVER     \n     Score: %d     \n     Lines: %d     \n\n\n", score, lines))
}

func RenderControls() string {
	return infoStyle.Render(`
Controls:
  ← →    Move left/right
  ↓      Soft drop
  Space  Hard drop
  ↑/X    Rotate
  A      Rotate back
  Z      Hold piece
  P      Pause
  R      Restart
  Q      Quit
`)
}
