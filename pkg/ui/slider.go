package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal drag widget for one float64 parameter.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64

	dragging bool
}

// NewSlider creates a slider with the default bar height.
func NewSlider(x, y, width float64, label string, min, max, value float64) *Slider {
	return &Slider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     width,
		H:     10,
	}
}

// Height returns the drawn height of the bar.
func (s *Slider) Height() float64 { return s.H }

// SetY moves the widget vertically; the hosting panel calls this while
// laying out rows.
func (s *Slider) SetY(y float64) { s.Y = y }

// Update begins a drag on a press inside the track and then follows the
// cursor until the button is released, so a fast horizontal swipe does not
// drop the handle when it momentarily leaves the bar.
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.dragging = false
		return
	}

	mx, my := ebiten.CursorPosition()
	if !s.dragging {
		inside := float64(mx) >= s.X && float64(mx) <= s.X+s.W &&
			float64(my) >= s.Y && float64(my) <= s.Y+s.H
		if !inside {
			return
		}
		s.dragging = true
	}

	ratio := (float64(mx) - s.X) / s.W
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	s.Value = s.Min + ratio*(s.Max-s.Min)
}

// Draw renders the track, the filled portion and a knob at the current value.
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H),
		color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := (s.Value - s.Min) / (s.Max - s.Min)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H),
		color.RGBA{R: 160, G: 160, B: 170, A: 255}, true)

	knobX := s.X + s.W*ratio - 2
	vector.FillRect(screen, float32(knobX), float32(s.Y-2), 4, float32(s.H+4),
		color.RGBA{R: 230, G: 230, B: 230, A: 255}, true)
}
