package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-engine/pkg/geometry"
)

const tickInterval = 33 * time.Millisecond

// run exercises the fixed-capacity flock without any display attached, the
// way the engine runs on a microcontroller build. Boids are placed on a
// grid so the run is fully reproducible.
func run(width, height float64, capacity, maxTicks int, logger log.Logger) error {
	f := flock.NewFlock(width, height, capacity, flock.DefaultConfig())

	cols := 8
	for i := 0; i < capacity; i++ {
		pos := geometry.Vector2D{
			X: float64(i%cols)*12 + 10,
			Y: float64(i/cols)*12 + 10,
		}
		vel := geometry.NewVectorPolar(1.0, float64(i)*0.7)
		if err := f.AddBoid(flock.NewBoid(pos, vel)); err != nil {
			return fmt.Errorf("failed to populate flock: %w", err)
		}
	}

	// One more than the capacity must be refused.
	if err := f.AddBoid(flock.NewBoid(geometry.Vector2D{}, geometry.Vector2D{})); err != nil {
		logger.Infof("flock is full as expected: %v", err)
	}

	logger.Infof("running %d boids at %v per tick", f.Len(), tickInterval)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	lastReport := time.Now()
	for tick := 0; maxTicks == 0 || tick < maxTicks; tick++ {
		<-ticker.C
		f.Update()

		if time.Since(lastReport) >= time.Second {
			avg := f.AveragePosition()
			logger.Infof("tick %d: %d boids, flock center (%.1f, %.1f)",
				tick, f.Len(), avg.X, avg.Y)
			lastReport = time.Now()
		}
	}

	avg := f.AveragePosition()
	logger.Infof("done after %d ticks, flock center (%.1f, %.1f)", maxTicks, avg.X, avg.Y)
	return nil
}

func main() {
	var (
		width    float64
		height   float64
		capacity int
		ticks    int
	)

	root := &cobra.Command{
		Use:   "microflock",
		Short: "Headless fixed-capacity flocking run",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(log.InfoLevel, os.Stderr)
			return run(width, height, capacity, ticks, logger)
		},
	}

	root.Flags().Float64Var(&width, "width", 128, "simulation space width")
	root.Flags().Float64Var(&height, "height", 64, "simulation space height")
	root.Flags().IntVar(&capacity, "capacity", 16, "fixed flock capacity")
	root.Flags().IntVar(&ticks, "ticks", 300, "number of ticks to run (0 runs forever)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
