package pointdist

import (
	"image/color"
	"sort"
)

const (
	axisLineWidth   = 1
	axisLabelOffset = 14
	titleMargin     = 8
)

type Line struct {
	From  ScreenPoint
	To    ScreenPoint
	Width float64
	Color color.RGBA
}

type Marker struct {
	At     ScreenPoint
	Radius float64
	Color  color.RGBA
}

// Label is a piece of text whose top-left corner sits at At.
type Label struct {
	At    ScreenPoint
	Text  string
	Color color.RGBA
}

// Canvas is a drawing surface a Figure can paint itself onto.
type Canvas interface {
	DrawLine(from, to ScreenPoint, width float64, clr color.RGBA)
	DrawMarker(at ScreenPoint, radius float64, clr color.RGBA)
	DrawText(at ScreenPoint, text string, clr color.RGBA)
}

// Figure is a fully projected scene, ready to paint.
type Figure struct {
	Width      int
	Height     int
	Background color.RGBA
	Distance   float64
	Axes       []Line
	Segments   []Line
	Markers    []Marker
	Labels     []Label
}

// NewDistanceFigure lays out p1, p2, the segment between them, the axis
// box and the distance label.
func NewDistanceFigure(p1, p2 Point3d, cfg PlotConfig) (*Figure, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, _ := cfg.Colors.palette()

	box := NewBox(p1, p2)
	cam := NewCamera(box, cfg.Azimuth, cfg.Elevation, cfg.Width, cfg.Height)
	d := Distance(p1, p2)

	f := &Figure{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: pal.background,
		Distance:   d,
	}

	corners := box.Corners()
	for _, e := range box.Edges() {
		f.Axes = append(f.Axes, Line{
			From:  cam.Project(corners[e[0]]),
			To:    cam.Project(corners[e[1]]),
			Width: axisLineWidth,
			Color: pal.axis,
		})
	}
	f.Labels = append(f.Labels, axisLabels(box, cam, pal.axis)...)

	a, b := cam.Project(p1), cam.Project(p2)
	f.Segments = append(f.Segments, Line{From: a, To: b, Width: cfg.LineWidth, Color: pal.line})

	f.Markers = []Marker{
		{At: a, Radius: cfg.MarkerRadius, Color: pal.marker},
		{At: b, Radius: cfg.MarkerRadius, Color: pal.marker},
	}
	// far to near
	sort.SliceStable(f.Markers, func(i, j int) bool {
		return f.Markers[i].At.Depth > f.Markers[j].At.Depth
	})

	anchor := AnnotationAnchor(p1, p2, cfg.AverageAnchorX)
	f.Labels = append(f.Labels, Label{
		At:    cam.Project(anchor),
		Text:  FormatDistance(d, cfg.LabelPrefix, cfg.LabelDecimals),
		Color: pal.label,
	})

	if cfg.Title != "" {
		f.Labels = append(f.Labels, Label{
			At:    ScreenPoint{X: titleMargin, Y: titleMargin},
			Text:  cfg.Title,
			Color: pal.label,
		})
	}
	return f, nil
}

// axisLabels puts "X", "Y" and "Z" beside the middle of one box edge per
// axis, pushed away from the projected box centre.
func axisLabels(box Box, cam *Camera, clr color.RGBA) []Label {
	mid := box.Center()
	anchors := []struct {
		text string
		at   Point3d
	}{
		{"X", Point3d{X: mid.X, Y: box.Min.Y, Z: box.Min.Z}},
		{"Y", Point3d{X: box.Max.X, Y: mid.Y, Z: box.Min.Z}},
		{"Z", Point3d{X: box.Min.X, Y: box.Min.Y, Z: mid.Z}},
	}

	c := cam.Project(mid)
	labels := make([]Label, 0, len(anchors))
	for _, a := range anchors {
		p := cam.Project(a.at)
		dir := Vector2{X: p.X - c.X, Y: p.Y - c.Y}.Normalize().Mult(axisLabelOffset)
		p.X += dir.X
		p.Y += dir.Y
		labels = append(labels, Label{At: p, Text: a.text, Color: clr})
	}
	return labels
}

// Paint draws the axis box first, then the segment, markers and labels.
func (f *Figure) Paint(c Canvas) {
	for _, l := range f.Axes {
		c.DrawLine(l.From, l.To, l.Width, l.Color)
	}
	for _, l := range f.Segments {
		c.DrawLine(l.From, l.To, l.Width, l.Color)
	}
	for _, m := range f.Markers {
		c.DrawMarker(m.At, m.Radius, m.Color)
	}
	for _, l := range f.Labels {
		c.DrawText(l.At, l.Text, l.Color)
	}
}
