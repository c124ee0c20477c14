package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// rowSpacing is the vertical room reserved above each widget for its label.
const rowSpacing = 25

// Widget is implemented by everything a Panel can host. The panel owns
// vertical placement through SetY; widgets own their height and their own
// input handling.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	SetY(y float64)
}

type section struct {
	title string
	start int // widget index where this section starts
	end   int // widget index where this section ends (exclusive)
}

// Panel manages a scrollable column of labeled widgets, grouped into
// titled sections.
type Panel struct {
	X, Y          float64
	Width, Height float64

	widgets      []Widget
	labels       []string
	sections     []section
	scrollOffset float64

	// Layout state recomputed by layout(): the label Y of every widget
	// row, the header Y of every section, and which rows are in view.
	rowY   []float64
	secY   []float64
	inView []bool

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA
}

// NewPanel creates an empty panel at the given position.
func NewPanel(x, y, width, height float64) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection opens a new titled group; widgets added afterwards belong to
// it until EndSection is called.
func (p *Panel) AddSection(title string) {
	p.sections = append(p.sections, section{title: title, start: len(p.widgets)})
}

// EndSection closes the current section.
func (p *Panel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].end = len(p.widgets)
	}
}

// AddSlider appends a slider to the panel and returns it so the caller can
// read its value every frame.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.widgets = append(p.widgets, s)
	p.labels = append(p.labels, label)
	return s
}

// AddCheckbox appends a checkbox to the panel and returns it.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.widgets = append(p.widgets, c)
	p.labels = append(p.labels, label)
	return c
}

// Update handles scrolling, lays rows out for the current scroll offset and
// forwards input to the widgets that are in view. Rows scrolled out of the
// panel receive no input, so a hidden widget can never catch a click at a
// stale position.
func (p *Panel) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.scrollOffset -= dy * 20

		maxScroll := p.contentHeight() - p.Height + 40
		if maxScroll < 0 {
			maxScroll = 0
		}
		if p.scrollOffset < 0 {
			p.scrollOffset = 0
		}
		if p.scrollOffset > maxScroll {
			p.scrollOffset = maxScroll
		}
	}

	p.layout()
	for i, w := range p.widgets {
		if p.inView[i] {
			w.Update()
		}
	}
}

// Draw renders the panel background, section headers and the visible rows.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, "Tuning", int(p.X+10), int(p.Y+5))

	p.layout()
	for si, sec := range p.sections {
		if p.rowInView(p.secY[si], 20) {
			vector.FillRect(screen,
				float32(p.X+5), float32(p.secY[si]),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, sec.title, int(p.X+10), int(p.secY[si]+5))
		}

		for i := sec.start; i < sec.end && i < len(p.widgets); i++ {
			if !p.inView[i] {
				continue
			}
			ebitenutil.DebugPrintAt(screen, p.labels[i], int(p.X+10), int(p.rowY[i]))
			p.widgets[i].Draw(screen)
		}
	}
}

// layout assigns every widget its on-screen Y for the current scroll offset
// and records which rows land inside the panel. Update and Draw both run
// it, so input and rendering always agree on where each widget is.
func (p *Panel) layout() {
	if len(p.rowY) != len(p.widgets) {
		p.rowY = make([]float64, len(p.widgets))
		p.inView = make([]bool, len(p.widgets))
	}
	if len(p.secY) != len(p.sections) {
		p.secY = make([]float64, len(p.sections))
	}

	y := p.Y + 30 - p.scrollOffset
	for si, sec := range p.sections {
		p.secY[si] = y
		y += rowSpacing

		for i := sec.start; i < sec.end && i < len(p.widgets); i++ {
			w := p.widgets[i]
			p.rowY[i] = y
			w.SetY(y + 15)
			p.inView[i] = p.rowInView(y, 15+w.Height())
			y += w.Height() + rowSpacing
		}
	}
}

// rowInView reports whether a row starting at y with the given extent lies
// fully inside the panel's usable area, below the title strip.
func (p *Panel) rowInView(y, extent float64) bool {
	return y >= p.Y+20 && y+extent <= p.Y+p.Height-5
}

func (p *Panel) contentHeight() float64 {
	h := 30.0 // title space
	h += float64(len(p.sections)) * rowSpacing
	for _, w := range p.widgets {
		h += w.Height() + rowSpacing
	}
	return h
}
