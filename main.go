package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/gotris-core/internal/game"
	"github.com/hersh/gotris-core/internal/tui"
)

// This is the standalone entry point with default settings.
// For flags (seed, scoring, fall interval, logging), use:
//   go run ./cmd/gotris -name YourName -scoring guideline

func main() {
	name := "Player"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	log.SetOutput(io.Discard)

	cfg := game.DefaultConfig()
	cfg.Seed = time.Now().UnixNano()
	cfg.WallKicks = game.DefaultKicks

	model, err := tui.NewModel(name, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
