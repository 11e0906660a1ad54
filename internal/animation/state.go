// Package animation holds the rotating line's mutable state: the current
// angle and the color phase that drives the red -> green -> blue sweep.
package animation

import (
	"image/color"
	"math"

	"github.com/iburimskiy/rotating-line/internal/config"
)

const fullTurn = 2 * math.Pi

// State is owned by a single window and only mutated by Advance.
type State struct {
	Angle float64    // radians, always in [0, 2π)
	Phase int        // [0, config.ColorCycle)
	Color color.RGBA // derived from Phase
}

// NewState returns the initial state: angle 0, pure red.
func NewState() *State {
	return &State{Color: LineColor(0)}
}

// Advance performs one tick.
func (s *State) Advance() {
	s.Angle += config.AngleStep
	for s.Angle >= fullTurn {
		s.Angle -= fullTurn
	}

	s.Phase = (s.Phase + 1) % config.ColorCycle
	s.Color = LineColor(s.Phase)
}

// LineColor maps a phase onto three linear segments:
// red -> yellow, yellow -> green (fading blue in), green -> blue.
func LineColor(phase int) color.RGBA {
	phase %= config.ColorCycle
	if phase < 0 {
		phase += config.ColorCycle
	}

	switch {
	case phase < 256:
		return color.RGBA{R: 255, G: uint8(phase), B: 0, A: 255}
	case phase < 512:
		return color.RGBA{R: uint8(511 - phase), G: 255, B: uint8(phase - 256), A: 255}
	default:
		return color.RGBA{R: 0, G: uint8(767 - phase), B: uint8(phase - 512), A: 255}
	}
}
