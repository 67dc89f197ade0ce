package pointdist

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// PlotConfig controls how a distance figure is laid out and coloured.
type PlotConfig struct {
	Width         int         `yaml:"width"`
	Height        int         `yaml:"height"`
	Azimuth       float64     `yaml:"azimuth"`   // degrees
	Elevation     float64     `yaml:"elevation"` // degrees
	Title         string      `yaml:"title"`
	LabelPrefix   string      `yaml:"label_prefix"`
	LabelDecimals int32       `yaml:"label_decimals"`
	MarkerRadius  float64     `yaml:"marker_radius"`
	LineWidth     float64     `yaml:"line_width"`
	Colors        ColorConfig `yaml:"colors"`

	// AverageAnchorX places the distance label at the true midpoint of the
	// segment. When false the label x is x1+x2.
	AverageAnchorX bool `yaml:"average_anchor_x"`
}

// ColorConfig holds colours as "#rrggbb", "#rrggbbaa" or one of the names in
// namedColors.
type ColorConfig struct {
	Background string `yaml:"background"`
	Marker     string `yaml:"marker"`
	Line       string `yaml:"line"`
	Label      string `yaml:"label"`
	Axis       string `yaml:"axis"`
}

var namedColors = map[string]color.RGBA{
	"black":    {R: 0, G: 0, B: 0, A: 255},
	"white":    {R: 255, G: 255, B: 255, A: 255},
	"grey":     {R: 128, G: 128, B: 128, A: 255},
	"gray":     {R: 128, G: 128, B: 128, A: 255},
	"red":      {R: 255, G: 0, B: 0, A: 255},
	"darkred":  {R: 139, G: 0, B: 0, A: 255},
	"blue":     {R: 0, G: 0, B: 255, A: 255},
	"darkblue": {R: 0, G: 0, B: 139, A: 255},
}

func DefaultConfig() PlotConfig {
	return PlotConfig{
		Width:         640,
		Height:        480,
		Azimuth:       -60,
		Elevation:     30,
		LabelPrefix:   "Distance: ",
		LabelDecimals: 2,
		MarkerRadius:  4,
		LineWidth:     1.5,
		Colors: ColorConfig{
			Background: "white",
			Marker:     "darkred",
			Line:       "blue",
			Label:      "darkblue",
			Axis:       "grey",
		},
	}
}

// LoadConfig reads a YAML config from r. Keys that are absent keep their
// DefaultConfig value; unknown keys are an error.
func LoadConfig(r io.Reader) (PlotConfig, error) {
	cfg := DefaultConfig()
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c PlotConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid config: size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.LabelDecimals < 0 {
		return fmt.Errorf("invalid config: label_decimals must not be negative, got %d", c.LabelDecimals)
	}
	if c.MarkerRadius <= 0 || c.LineWidth <= 0 {
		return errors.New("invalid config: marker_radius and line_width must be positive")
	}
	_, err := c.Colors.palette()
	return err
}

type palette struct {
	background color.RGBA
	marker     color.RGBA
	line       color.RGBA
	label      color.RGBA
	axis       color.RGBA
}

func (cc ColorConfig) palette() (palette, error) {
	var p palette
	fields := []struct {
		key string
		val string
		dst *color.RGBA
	}{
		{"background", cc.Background, &p.background},
		{"marker", cc.Marker, &p.marker},
		{"line", cc.Line, &p.line},
		{"label", cc.Label, &p.label},
		{"axis", cc.Axis, &p.axis},
	}
	for _, f := range fields {
		clr, err := ParseColor(f.val)
		if err != nil {
			return p, fmt.Errorf("invalid config: colors.%s: %w", f.key, err)
		}
		*f.dst = clr
	}
	return p, nil
}

// ParseColor accepts "#rrggbb", "#rrggbbaa" or a known colour name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if clr, ok := namedColors[s]; ok {
		return clr, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unknown color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
