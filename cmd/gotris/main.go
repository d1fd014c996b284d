package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/gotris-core/internal/game"
	"github.com/hersh/gotris-core/internal/tui"
)

func main() {
	cfg := game.DefaultConfig()

	playerName := flag.String("name", "", "Player name (defaults to OS username)")
	seed := flag.Int64("seed", envInt64("GOTRIS_SEED", time.Now().UnixNano()), "Piece randomizer seed")
	scoring := flag.String("scoring", envString("GOTRIS_SCORING", "linear"), "Score table: linear or guideline")
	interval := flag.Duration("interval", 0, "Fixed fall interval (0 follows the level curve)")
	preview := flag.Int("preview", cfg.Preview, "Number of upcoming pieces shown")
	kicks := flag.Bool("kicks", true, "Enable wall kicks on rotation")
	hold := flag.Bool("hold", cfg.HoldEnabled, "Enable the hold slot")
	logPath := flag.String("log", os.Getenv("GOTRIS_LOG"), "Write debug log to this file")
	flag.Parse()

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "gotris")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", *logPath, err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		// The TUI owns the terminal.
		log.SetOutput(io.Discard)
	}

	name := *playerName
	if name == "" {
		if u, err := user.Current(); err == nil && u.Username != "" {
			name = u.Username
		} else {
			name = "Player"
		}
	}

	table, err := parseScoring(*scoring)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	cfg.Scoring = table
	cfg.Seed = *seed
	cfg.FallInterval = *interval
	cfg.Preview = *preview
	cfg.HoldEnabled = *hold
	if *kicks {
		cfg.WallKicks = game.DefaultKicks
	}

	model, err := tui.NewModel(name, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	log.Printf("Gotris starting for %s (seed %d, scoring %s)", name, cfg.Seed, *scoring)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseScoring(name string) (game.ScoreTable, error) {
	switch strings.ToLower(name) {
	case "linear", "":
		return game.LinearScoring, nil
	case "guideline":
		return game.GuidelineScoring, nil
	}
	return game.ScoreTable{}, fmt.Errorf("unknown scoring %q (want linear or guideline)", name)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
