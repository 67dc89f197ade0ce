package pointdist

import "image/color"

type drawnLine struct {
	From, To ScreenPoint
	Width    float64
	Color    color.RGBA
}

type drawnMarker struct {
	At     ScreenPoint
	Radius float64
	Color  color.RGBA
}

type drawnText struct {
	At    ScreenPoint
	Text  string
	Color color.RGBA
}

// recordingCanvas is a mock Canvas that remembers every call, in order.
type recordingCanvas struct {
	lines   []drawnLine
	markers []drawnMarker
	texts   []drawnText
	calls   []string
}

func (c *recordingCanvas) DrawLine(from, to ScreenPoint, width float64, clr color.RGBA) {
	c.lines = append(c.lines, drawnLine{From: from, To: to, Width: width, Color: clr})
	c.calls = append(c.calls, "line")
}

func (c *recordingCanvas) DrawMarker(at ScreenPoint, radius float64, clr color.RGBA) {
	c.markers = append(c.markers, drawnMarker{At: at, Radius: radius, Color: clr})
	c.calls = append(c.calls, "marker")
}

func (c *recordingCanvas) DrawText(at ScreenPoint, text string, clr color.RGBA) {
	c.texts = append(c.texts, drawnText{At: at, Text: text, Color: clr})
	c.calls = append(c.calls, "text")
}

// recordingDisplay is a mock Display that keeps the last figure shown.
type recordingDisplay struct {
	shown []*Figure
	err   error
}

func (d *recordingDisplay) Show(fig *Figure) error {
	d.shown = append(d.shown, fig)
	return d.err
}
