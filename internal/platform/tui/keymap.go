package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkazmin/circle-gauntlet/internal/gauntlet"
)

// directionForKey translates a key message to a steering direction.
// Arrow keys, WASD, and vim-style HJKL are all accepted.
func directionForKey(msg tea.KeyMsg) (gauntlet.Direction, bool) {
	switch msg.String() {
	case "up", "w", "k":
		return gauntlet.DirUp, true
	case "down", "s", "j":
		return gauntlet.DirDown, true
	case "left", "a", "h":
		return gauntlet.DirLeft, true
	case "right", "d", "l":
		return gauntlet.DirRight, true
	}
	return 0, false
}

// isQuitKey reports whether a key message is a quit request.
func isQuitKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

// holdTracker synthesizes key-release events. Terminals only deliver key
// presses (and OS-level key repeat), so a direction counts as held until
// no repeat has been seen for a window of ticks.
type holdTracker struct {
	window int
	last   [4]int // tick of the most recent press per direction, -1 when released
}

// newHoldTracker creates a tracker whose expiry window is derived from the
// tick rate. Half a second of repeat silence at any sane rate is far longer
// than OS key-repeat intervals, so genuinely held keys never flicker.
func newHoldTracker(tickRate int) holdTracker {
	window := tickRate / 2
	if window < 1 {
		window = 1
	}
	t := holdTracker{window: window}
	for i := range t.last {
		t.last[i] = -1
	}
	return t
}

// press records a direction press at the given tick.
func (t *holdTracker) press(d gauntlet.Direction, tick int) {
	t.last[d] = tick
}

// expired returns the directions whose hold has lapsed at the given tick
// and marks them released.
func (t *holdTracker) expired(tick int) []gauntlet.Direction {
	var out []gauntlet.Direction
	for i, seen := range t.last {
		if seen < 0 {
			continue
		}
		if tick-seen > t.window {
			t.last[i] = -1
			out = append(out, gauntlet.Direction(i))
		}
	}
	return out
}
