package pointdist

import (
	"errors"
	"fmt"
)

// Display presents a figure to the user. Show blocks until the figure has
// been dismissed or written out.
type Display interface {
	Show(fig *Figure) error
}

type PlotOption func(*PlotConfig)

func WithConfig(cfg PlotConfig) PlotOption {
	return func(c *PlotConfig) {
		*c = cfg
	}
}

func WithTitle(title string) PlotOption {
	return func(c *PlotConfig) {
		c.Title = title
	}
}

// WithView sets the viewing angles in degrees.
func WithView(azimuth, elevation float64) PlotOption {
	return func(c *PlotConfig) {
		c.Azimuth = azimuth
		c.Elevation = elevation
	}
}

func WithAveragedAnchor() PlotOption {
	return func(c *PlotConfig) {
		c.AverageAnchorX = true
	}
}

// PlotDistance draws both points, the segment joining them and a label with
// their distance, and shows the result on d.
//
// The points are validated exactly as DistanceBetween validates them, and
// nothing is drawn when validation fails.
func PlotDistance(p1, p2 any, d Display, opts ...PlotOption) error {
	a, b, err := parsePair(p1, p2)
	if err != nil {
		return err
	}
	if d == nil {
		return errors.New("plot: nil display")
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fig, err := NewDistanceFigure(a, b, cfg)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if err := d.Show(fig); err != nil {
		return fmt.Errorf("plot: show figure: %w", err)
	}
	return nil
}
