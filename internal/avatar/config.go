package avatar

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

const (
	// Unspecified as a width or height sizes that axis to its content.
	Unspecified = -1
	// FullText as an initials length keeps the whole source text.
	FullText = -1

	// DefaultInitials is the number of runes kept when only a text is given.
	DefaultInitials = 2
	// Padding is the inset between the shape bounds and the text box, in
	// pixels, on every side.
	Padding = 24
)

// Shape is the background drawn behind the text.
type Shape int

const (
	RoundedRectangle Shape = iota
	Oval
)

func (s Shape) String() string {
	switch s {
	case Oval:
		return "oval"
	case RoundedRectangle:
		return "rect"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseShape accepts "oval"/"circle" and "rect"/"rectangle"/"rounded".
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oval", "circle", "ellipse":
		return Oval, nil
	case "rect", "rectangle", "rounded", "rounded-rectangle":
		return RoundedRectangle, nil
	default:
		return 0, fmt.Errorf("unknown shape %q", s)
	}
}

// TextSizeUnit tags a text size the way display densities are expressed on
// handheld platforms. Sizes are resolved to pixels by DisplayMetrics.
type TextSizeUnit int

const (
	UnitPx TextSizeUnit = iota
	UnitDp
	UnitSp
	UnitPt
	UnitIn
	UnitMm
)

var unitNames = map[TextSizeUnit]string{
	UnitPx: "px",
	UnitDp: "dp",
	UnitSp: "sp",
	UnitPt: "pt",
	UnitIn: "in",
	UnitMm: "mm",
}

func (u TextSizeUnit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// ParseTextSizeUnit accepts the unit names, and "dip" as an alias of dp.
func ParseTextSizeUnit(s string) (TextSizeUnit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "dip" {
		return UnitDp, nil
	}
	for unit, name := range unitNames {
		if name == s {
			return unit, nil
		}
	}
	return 0, fmt.Errorf("unknown text size unit %q", s)
}

// DisplayMetrics describes the target display for unit resolution.
// Density-independent pixels are defined against 160 DPI.
type DisplayMetrics struct {
	DPI       float64
	FontScale float64
}

const baselineDPI = 160

// Pixels resolves value in unit to absolute pixels.
func (m DisplayMetrics) Pixels(value float64, unit TextSizeUnit) float64 {
	dpi := m.DPI
	if dpi <= 0 {
		dpi = baselineDPI
	}
	scale := m.FontScale
	if scale <= 0 {
		scale = 1
	}
	switch unit {
	case UnitDp:
		return value * dpi / baselineDPI
	case UnitSp:
		return value * dpi / baselineDPI * scale
	case UnitPt:
		return value * dpi / 72
	case UnitIn:
		return value * dpi
	case UnitMm:
		return value * dpi / 25.4
	default:
		return value
	}
}

// Defaults is the constants table a Builder starts from.
type Defaults struct {
	Width        int
	Height       int
	StrokeWidth  int
	CornerRadius float64
	TextSize     float64
	TextSizeUnit TextSizeUnit
	Display      DisplayMetrics
}

// DefaultDefaults is the built-in table used when no configuration is
// loaded.
func DefaultDefaults() Defaults {
	return Defaults{
		Width:        128,
		Height:       128,
		StrokeWidth:  0,
		CornerRadius: 16,
		TextSize:     48,
		TextSizeUnit: UnitPx,
		Display:      DisplayMetrics{DPI: baselineDPI, FontScale: 1},
	}
}

// Config is a fully resolved avatar description. It is a comparable value
// and can be used as a map or cache key.
type Config struct {
	Width       int
	Height      int
	FitToSquare bool

	RandomColors bool
	Shape        Shape
	Background   color.NRGBA
	Stroke       color.NRGBA
	TextColor    color.NRGBA
	StrokeWidth  int
	CornerRadius float64

	Text           string
	InitialsLength int
	TextSize       float64
	TextSizeUnit   TextSizeUnit
	AllCaps        bool
	FontFamily     string
}

// Validate reports the first field outside its range, wrapped around the
// matching Err sentinel. NaN and infinite sizes are rejected.
func (c Config) Validate() error {
	if !validDimension(c.Width) {
		return fmt.Errorf("width %d: %w", c.Width, ErrInvalidDimension)
	}
	if !validDimension(c.Height) {
		return fmt.Errorf("height %d: %w", c.Height, ErrInvalidDimension)
	}
	if c.StrokeWidth < 0 {
		return fmt.Errorf("stroke width %d: %w", c.StrokeWidth, ErrInvalidStroke)
	}
	if c.CornerRadius < 0 || !finite(c.CornerRadius) {
		return fmt.Errorf("corner radius %g: %w", c.CornerRadius, ErrInvalidCornerRadius)
	}
	if c.InitialsLength < FullText {
		return fmt.Errorf("initials length %d: %w", c.InitialsLength, ErrInvalidInitials)
	}
	if c.TextSize < 0 || !finite(c.TextSize) {
		return fmt.Errorf("text size %g: %w", c.TextSize, ErrInvalidTextSize)
	}
	return nil
}

// Palette returns the configured colors, ignoring RandomColors.
func (c Config) Palette() Palette {
	return Palette{Background: c.Background, Stroke: c.Stroke, Text: c.TextColor}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validDimension(v int) bool {
	return v == Unspecified || v > 0
}
