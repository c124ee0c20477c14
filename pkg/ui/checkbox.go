package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a click-to-toggle widget for one boolean parameter.
type Checkbox struct {
	Label string
	Value bool
	X, Y  float64
	Size  float64

	prevPressed bool
}

// NewCheckbox creates a new checkbox instance.
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  16,
	}
}

// Height returns the drawn height of the box.
func (c *Checkbox) Height() float64 { return c.Size }

// SetY moves the widget vertically; the hosting panel calls this while
// laying out rows.
func (c *Checkbox) SetY(y float64) { c.Y = y }

// Update toggles the value on the press edge, so a held button flips the
// box exactly once.
func (c *Checkbox) Update() {
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := pressed && !c.prevPressed
	c.prevPressed = pressed
	if !justPressed {
		return
	}

	mx, my := ebiten.CursorPosition()
	if float64(mx) >= c.X && float64(mx) <= c.X+c.Size &&
		float64(my) >= c.Y && float64(my) <= c.Y+c.Size {
		c.Value = !c.Value
	}
}

// Draw renders the box outline and, when checked, an inner cross.
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2,
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
		true)

	if c.Value {
		x0, y0 := float32(c.X+3), float32(c.Y+3)
		x1, y1 := float32(c.X+c.Size-3), float32(c.Y+c.Size-3)
		clr := color.RGBA{R: 100, G: 200, B: 100, A: 255}
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
		vector.StrokeLine(screen, x0, y1, x1, y0, 2, clr, true)
	}
}
