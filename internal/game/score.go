package game

import "time"

// ScoreTable maps the number of rows cleared by one lock (index 0-4) to
// base points. The awarded points are multiplied by the current level.
type ScoreTable [5]int

var (
	// LinearScoring awards 100 points per cleared row.
	LinearScoring = ScoreTable{0, 100, 200, 300, 400}

	// GuidelineScoring rewards multi-row clears.
	GuidelineScoring = ScoreTable{0, 100, 300, 500, 800}
)

func (t ScoreTable) Points(cleared, level int) int {
	if cleared < 0 || cleared >= len(t) {
		return 0
	}
	return t[cleared] * level
}

func (t ScoreTable) valid() bool {
	for i, v := range t {
		if v < 0 || (i > 0 && v < t[i-1]) {
			return false
		}
	}
	return true
}

const linesPerLevel = 10

func levelForLines(lines int) int {
	return lines/linesPerLevel + 1
}

var dropSpeeds = []time.Duration{
	800 * time.Millisecond,
	720 * time.Millisecond,
	630 * time.Millisecond,
	550 * time.Millisecond,
	470 * time.Millisecond,
	380 * time.Millisecond,
	300 * time.Millisecond,
	220 * time.Millisecond,
	130 * time.Millisecond,
	100 * time.Millisecond,
	80 * time.Millisecond,
	80 * time.Millisecond,
	80 * time.Millisecond,
	70 * time.Millisecond,
	70 * time.Millisecond,
	70 * time.Millisecond,
	50 * time.Millisecond,
	50 * time.Millisecond,
	50 * time.Millisecond,
	30 * time.Millisecond,
}

// DropSpeed returns the gravity interval for a level on the default curve.
func DropSpeed(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	if level > len(dropSpeeds) {
		return dropSpeeds[len(dropSpeeds)-1]
	}
	return dropSpeeds[level-1]
}
