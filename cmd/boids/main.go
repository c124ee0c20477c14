package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"
	"github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/ui"
)

const panelWidth = 280

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.RGBA{R: 100, G: 200, B: 255, A: 255})
}

// Game drives one dynamic flock from the ebiten loop. Holding the left
// mouse button sets the seek target to the cursor (the desktop stand-in for
// the fingertip feed of the camera targets); releasing it clears the target
// and hands control back to flocking plus optional wander.
type Game struct {
	flock  *flock.FlockStd
	logger log.Logger

	width, height float64

	// Tuning panel and widget references, read back every frame
	panel           *ui.Panel
	wMaxSpeed       *ui.Slider
	wMaxForce       *ui.Slider
	wSeparationDist *ui.Slider
	wAlignmentDist  *ui.Slider
	wCohesionDist   *ui.Slider
	wSeparation     *ui.Slider
	wAlignment      *ui.Slider
	wCohesion       *ui.Slider
	wSeek           *ui.Slider
	wWanderRadius   *ui.Slider
	wWanderEnabled  *ui.Checkbox
	wShowAverage    *ui.Checkbox

	addClicked bool
}

func newGame(width, height float64, f *flock.FlockStd, logger log.Logger) *Game {
	cfg := f.Config()

	panel := ui.NewPanel(10, 10, panelWidth, height-20)

	panel.AddSection("Physics")
	wMaxSpeed := panel.AddSlider("Max Speed", 0.5, 10, cfg.MaxSpeed)
	wMaxForce := panel.AddSlider("Max Force", 0.01, 0.5, cfg.MaxForce)
	panel.EndSection()

	panel.AddSection("Interaction Radii")
	wSeparationDist := panel.AddSlider("Separation Distance", 1, 100, cfg.SeparationDistance)
	wAlignmentDist := panel.AddSlider("Alignment Distance", 1, 150, cfg.AlignmentDistance)
	wCohesionDist := panel.AddSlider("Cohesion Distance", 1, 150, cfg.CohesionDistance)
	panel.EndSection()

	panel.AddSection("Behavior Weights")
	wSeparation := panel.AddSlider("Separation Weight", 0, 5, cfg.SeparationWeight)
	wAlignment := panel.AddSlider("Alignment Weight", 0, 5, cfg.AlignmentWeight)
	wCohesion := panel.AddSlider("Cohesion Weight", 0, 5, cfg.CohesionWeight)
	wSeek := panel.AddSlider("Seek Weight", 0, 20, cfg.SeekWeight)
	wWanderRadius := panel.AddSlider("Wander Radius", 0, 10, cfg.WanderRadius)
	wWanderEnabled := panel.AddCheckbox("Wander When Idle", cfg.WanderEnabled)
	panel.EndSection()

	panel.AddSection("Visualization")
	wShowAverage := panel.AddCheckbox("Show Flock Center", true)
	panel.EndSection()

	return &Game{
		flock:           f,
		logger:          logger,
		width:           width,
		height:          height,
		panel:           panel,
		wMaxSpeed:       wMaxSpeed,
		wMaxForce:       wMaxForce,
		wSeparationDist: wSeparationDist,
		wAlignmentDist:  wAlignmentDist,
		wCohesionDist:   wCohesionDist,
		wSeparation:     wSeparation,
		wAlignment:      wAlignment,
		wCohesion:       wCohesion,
		wSeek:           wSeek,
		wWanderRadius:   wWanderRadius,
		wWanderEnabled:  wWanderEnabled,
		wShowAverage:    wShowAverage,
	}
}

func (g *Game) Update() error {
	g.panel.Update()

	// Push the whole tuning surface to the flock every frame; sliders are
	// cheap to read and the setters are plain field writes.
	g.flock.SetMaxSpeed(g.wMaxSpeed.Value)
	g.flock.SetMaxForce(g.wMaxForce.Value)
	g.flock.SetSeparationDistance(g.wSeparationDist.Value)
	g.flock.SetAlignmentDistance(g.wAlignmentDist.Value)
	g.flock.SetCohesionDistance(g.wCohesionDist.Value)
	g.flock.SetSeparationWeight(g.wSeparation.Value)
	g.flock.SetAlignmentWeight(g.wAlignment.Value)
	g.flock.SetCohesionWeight(g.wCohesion.Value)
	g.flock.SetSeekWeight(g.wSeek.Value)
	g.flock.SetWanderRadius(g.wWanderRadius.Value)
	g.flock.SetWanderEnabled(g.wWanderEnabled.Value)

	g.handleMouse()

	g.flock.Update()
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	overPanel := float64(mx) <= g.panel.X+g.panel.Width+10

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !overPanel {
		g.flock.SetTarget(geometry.Vector2D{X: float64(mx), Y: float64(my)})
	} else if _, ok := g.flock.Target(); ok && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.flock.ClearTarget()
	}

	// Right click spawns an extra boid at a random position.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if !g.addClicked {
			g.flock.AddRandomBoid()
			g.logger.Infof("spawned boid, flock size is now %d", g.flock.Len())
			g.addClicked = true
		}
	} else {
		g.addClicked = false
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	for i := range g.flock.Boids() {
		drawBoid(screen, &g.flock.Boids()[i])
	}

	if target, ok := g.flock.Target(); ok {
		drawCrosshair(screen, target, color.RGBA{R: 255, G: 200, B: 50, A: 255})
	}

	if g.wShowAverage.Value && g.flock.Len() > 0 {
		avg := g.flock.AveragePosition()
		vector.StrokeCircle(screen, float32(avg.X), float32(avg.Y), 6, 1,
			color.RGBA{R: 120, G: 255, B: 120, A: 180}, true)
	}

	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nBoids: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.flock.Len())
	ebitenutil.DebugPrintAt(screen, msg, int(g.width)-130, 10)
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.width), int(g.height)
}

// drawBoid renders an agent as a small triangle oriented along its velocity.
func drawBoid(screen *ebiten.Image, b *flock.Boid) {
	angle := b.Velocity.Angle()

	tip := geometry.NewVectorPolar(6, angle).Add(b.Position)
	right := geometry.NewVectorPolar(5, angle+2.5).Add(b.Position)
	left := geometry.NewVectorPolar(5, angle-2.5).Add(b.Position)

	vertices := []ebiten.Vertex{
		{DstX: float32(tip.X), DstY: float32(tip.Y), SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: float32(right.X), DstY: float32(right.Y), SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: float32(left.X), DstY: float32(left.Y), SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
	}
	indices := []uint16{0, 1, 2}

	screen.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{})
}

func drawCrosshair(screen *ebiten.Image, p geometry.Vector2D, clr color.RGBA) {
	x, y := float32(p.X), float32(p.Y)
	vector.StrokeLine(screen, x-8, y, x+8, y, 1, clr, true)
	vector.StrokeLine(screen, x, y-8, x, y+8, 1, clr, true)
	vector.StrokeCircle(screen, x, y, 5, 1, clr, true)
}

func main() {
	var (
		width      float64
		height     float64
		count      int
		seed       int64
		configPath string
		schemaPath string
	)

	root := &cobra.Command{
		Use:   "boids",
		Short: "Interactive flocking simulation with a mouse-driven seek target",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(log.InfoLevel, os.Stderr)

			cfg := flock.DefaultConfig()
			if configPath != "" {
				loaded, err := flock.LoadConfig(configPath, schemaPath)
				if err != nil {
					return err
				}
				cfg = loaded
				logger.Infof("loaded config from %s", configPath)
			}

			f := flock.NewFlockStdWithConfig(width, height, count, cfg)
			if seed != 0 {
				f.Reseed(seed)
			}
			logger.Infof("starting with %d boids in a %.0fx%.0f space", f.Len(), width, height)

			ebiten.SetWindowSize(int(width), int(height))
			ebiten.SetWindowTitle("Boids")
			return ebiten.RunGame(newGame(width, height, f, logger))
		},
	}

	root.Flags().Float64Var(&width, "width", 1000, "simulation space width in pixels")
	root.Flags().Float64Var(&height, "height", 800, "simulation space height in pixels")
	root.Flags().IntVar(&count, "count", 60, "number of boids to spawn")
	root.Flags().Int64Var(&seed, "seed", 0, "random seed (0 keeps the reproducible default)")
	root.Flags().StringVar(&configPath, "config", "", "path to a JSON tuning file")
	root.Flags().StringVar(&schemaPath, "schema", "config.schema.json", "path to the JSON schema used to validate --config")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
