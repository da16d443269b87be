package gauntlet

import "github.com/vkazmin/circle-gauntlet/internal/geom"

// Direction identifies one of the four directional controls.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	directionCount
)

var directionVectors = [directionCount]geom.Vec2{
	DirUp:    {X: 0, Y: 1},
	DirDown:  {X: 0, Y: -1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

// InputState accumulates directional press/release events into a net held
// direction. Held directions sum without normalization, so diagonal input
// yields a larger magnitude than cardinal input.
type InputState struct {
	held [directionCount]bool
}

// Press marks a direction as held.
func (s *InputState) Press(d Direction) {
	if d >= 0 && d < directionCount {
		s.held[d] = true
	}
}

// Release marks a direction as no longer held.
func (s *InputState) Release(d Direction) {
	if d >= 0 && d < directionCount {
		s.held[d] = false
	}
}

// Reset releases all directions.
func (s *InputState) Reset() {
	s.held = [directionCount]bool{}
}

// Direction returns the sum of held direction vectors. Opposite directions
// cancel; no input yields the zero vector.
func (s *InputState) Direction() geom.Vec2 {
	var dir geom.Vec2
	for d, held := range s.held {
		if held {
			dir = dir.Add(directionVectors[d])
		}
	}
	return dir
}
