package avatar

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math/rand"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const strokeShade = 20

var (
	// DarkText is used on light random backgrounds.
	DarkText = color.NRGBA{R: 34, G: 34, B: 34, A: 0xFF}
	// LightText is used on dark random backgrounds.
	LightText = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Palette is the resolved set of colors used by one render pass.
type Palette struct {
	Background color.NRGBA
	Stroke     color.NRGBA
	Text       color.NRGBA
}

// FromARGB converts a packed 0xAARRGGBB integer into a color. Every value is
// accepted.
func FromARGB(argb uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}

// ARGB packs c back into 0xAARRGGBB.
func ARGB(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ParseHexColor parses #RGB, #RRGGBB and #AARRGGBB. The leading '#' is
// optional.
func ParseHexColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) == 3 {
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, s, err)
	}
	switch len(b) {
	case 3:
		return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xFF}, nil
	case 4:
		return color.NRGBA{A: b[0], R: b[1], G: b[2], B: b[3]}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("%w %q: expected 3, 6 or 8 hex digits", ErrInvalidColor, s)
	}
}

// HexString formats c as #RRGGBB, or #AARRGGBB when it is not opaque.
func HexString(c color.NRGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// Luminance returns the relative luminance of c in [0, 1], using linearised
// sRGB channels and Rec. 709 weights. Alpha is ignored.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	col := colorful.Color{R: float64(r>>8) / 255, G: float64(g>>8) / 255, B: float64(b>>8) / 255}
	lr, lg, lb := col.LinearRgb()
	return 0.2126*lr + 0.7152*lg + 0.0722*lb
}

// RandomPalette draws a background uniformly from the RGB cube and derives a
// slightly darker stroke and a legible text color from it. intn must return
// a value in [0, n); nil uses math/rand.
func RandomPalette(intn func(n int) int) Palette {
	if intn == nil {
		intn = rand.Intn
	}
	base := color.NRGBA{
		R: uint8(intn(256)),
		G: uint8(intn(256)),
		B: uint8(intn(256)),
		A: 0xFF,
	}
	return PaletteFor(base)
}

// PaletteFor derives the stroke and text colors for a background.
func PaletteFor(base color.NRGBA) Palette {
	text := LightText
	if Luminance(base) > 0.5 {
		text = DarkText
	}
	return Palette{
		Background: base,
		Stroke: color.NRGBA{
			R: shade(base.R),
			G: shade(base.G),
			B: shade(base.B),
			A: 0xFF,
		},
		Text: text,
	}
}

// shade darkens one channel, stopping at zero instead of wrapping.
func shade(v uint8) uint8 {
	if v < strokeShade {
		return 0
	}
	return v - strokeShade
}
