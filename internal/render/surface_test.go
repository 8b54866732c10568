package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/avatarmaker/internal/avatar"
)

var (
	blue  = color.NRGBA{R: 0x1F, G: 0xA8, B: 0xF1, A: 0xFF}
	navy  = color.NRGBA{R: 0x0B, G: 0x20, B: 0x60, A: 0xFF}
	white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

func rgba(c color.NRGBA) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func composition(shape avatar.Shape, stroke int) avatar.Composition {
	return avatar.Composition{
		Text:  "AL",
		Style: avatar.TextStyle{Size: 48, Color: white, Padding: avatar.Padding},
		Shape: avatar.ShapeStyle{
			Shape:        shape,
			Fill:         blue,
			Stroke:       navy,
			StrokeWidth:  stroke,
			CornerRadius: 16,
		},
	}
}

func newTestRenderer() *avatar.Renderer {
	return avatar.NewRenderer(NewSurface(NewFonts(nil)), avatar.DisplayMetrics{})
}

func fixedConfig() avatar.Config {
	return avatar.Config{
		Width:          avatar.Unspecified,
		Height:         avatar.Unspecified,
		Shape:          avatar.Oval,
		Background:     blue,
		Stroke:         navy,
		TextColor:      white,
		StrokeWidth:    4,
		Text:           "Alexandra",
		InitialsLength: 2,
		TextSize:       48,
		AllCaps:        true,
	}
}

func TestSurfaceMeasureNatural(t *testing.T) {
	s := NewSurface(nil)
	c := composition(avatar.Oval, 0)

	face := s.Fonts.Face("", 48)
	m := MeasureText(face, "AL")
	face.Close()
	require.Greater(t, m.Width, 0)
	require.Greater(t, m.Height, 0)
	assert.Equal(t, m.Ascent+m.Descent, m.Height)

	size := s.Measure(c, avatar.Unconstrained, avatar.Unconstrained)
	assert.Equal(t, image.Pt(m.Width+48, m.Height+48), size)

	size = s.Measure(c, avatar.Exactly(100), avatar.Unconstrained)
	assert.Equal(t, image.Pt(100, m.Height+48), size)

	size = s.Measure(c, avatar.Exactly(30), avatar.Exactly(40))
	assert.Equal(t, image.Pt(30, 40), size)
}

func TestSurfaceMeasureGrowsWithText(t *testing.T) {
	s := NewSurface(nil)
	short := composition(avatar.Oval, 0)
	long := short
	long.Text = "ALEXANDRA"

	a := s.Measure(short, avatar.Unconstrained, avatar.Unconstrained)
	b := s.Measure(long, avatar.Unconstrained, avatar.Unconstrained)
	assert.Greater(t, b.X, a.X)
	assert.Equal(t, a.Y, b.Y)
}

func TestSurfaceDrawOval(t *testing.T) {
	s := NewSurface(nil)
	dst := image.NewRGBA(image.Rect(0, 0, 128, 128))
	require.NoError(t, s.Draw(composition(avatar.Oval, 0), dst))

	assert.Equal(t, color.RGBA{}, dst.RGBAAt(0, 0), "corners are outside the oval")
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(127, 127))
	assert.Equal(t, rgba(blue), dst.RGBAAt(64, 4))
	assert.Equal(t, rgba(blue), dst.RGBAAt(4, 64))
	assertHasColor(t, dst, dst.Bounds(), rgba(white))
}

func TestSurfaceDrawRoundedRectangleWithStroke(t *testing.T) {
	s := NewSurface(nil)
	dst := image.NewRGBA(image.Rect(0, 0, 128, 96))
	require.NoError(t, s.Draw(composition(avatar.RoundedRectangle, 6), dst))

	assert.Equal(t, color.RGBA{}, dst.RGBAAt(0, 0), "rounded corner is cut")
	assert.Equal(t, rgba(navy), dst.RGBAAt(64, 2))
	assert.Equal(t, rgba(navy), dst.RGBAAt(2, 48))
	assert.Equal(t, rgba(blue), dst.RGBAAt(64, 12))
	assert.Equal(t, rgba(blue), dst.RGBAAt(10, 48))
}

func TestSurfaceDrawSharpRectangle(t *testing.T) {
	s := NewSurface(nil)
	c := composition(avatar.RoundedRectangle, 0)
	c.Shape.CornerRadius = 0
	dst := image.NewRGBA(image.Rect(0, 0, 64, 64))
	require.NoError(t, s.Draw(c, dst))

	assert.Equal(t, rgba(blue), dst.RGBAAt(0, 0))
	assert.Equal(t, rgba(blue), dst.RGBAAt(63, 63))
}

func TestSurfaceDrawStrokeWiderThanShape(t *testing.T) {
	s := NewSurface(nil)
	c := composition(avatar.RoundedRectangle, 40)
	c.Shape.CornerRadius = 0
	c.Text = ""
	dst := image.NewRGBA(image.Rect(0, 0, 32, 32))
	require.NoError(t, s.Draw(c, dst))
	assert.Equal(t, rgba(navy), dst.RGBAAt(16, 16))
}

func TestSurfaceDrawEmptyTarget(t *testing.T) {
	s := NewSurface(nil)
	assert.Error(t, s.Draw(composition(avatar.Oval, 0), &image.RGBA{}))
}

func TestRenderSizing(t *testing.T) {
	r := newTestRenderer()
	natural, err := r.Render(fixedConfig())
	require.NoError(t, err)

	cfg := fixedConfig()
	cfg.Width = 100
	res, err := r.Render(cfg)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Width)
	assert.Equal(t, natural.Height, res.Height)
	assert.Equal(t, image.Rect(0, 0, 100, natural.Height), res.Image.Bounds())
	assert.Len(t, res.Image.Pix, 100*natural.Height*4)

	cfg = fixedConfig()
	cfg.FitToSquare = true
	res, err = r.Render(cfg)
	require.NoError(t, err)
	side := max(natural.Width, natural.Height)
	assert.Equal(t, side, res.Width)
	assert.Equal(t, side, res.Height)
}

func TestRenderIdempotent(t *testing.T) {
	r := newTestRenderer()
	cfg := fixedConfig()
	cfg.Shape = avatar.RoundedRectangle
	cfg.Width, cfg.Height = 96, 96

	first, err := r.Render(cfg)
	require.NoError(t, err)
	second, err := r.Render(cfg)
	require.NoError(t, err)
	assert.Equal(t, first.Image.Pix, second.Image.Pix)
}

func TestRenderRandomPaletteIsConsistent(t *testing.T) {
	r := newTestRenderer()
	draws := []int{10, 200, 30}
	i := 0
	r.Intn = func(int) int {
		v := draws[i%len(draws)]
		i++
		return v
	}
	cfg := fixedConfig()
	cfg.RandomColors = true
	cfg.StrokeWidth = 0
	cfg.Width, cfg.Height = 128, 128

	res, err := r.Render(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, i, "one palette per render")
	assert.Equal(t, color.RGBA{R: 10, G: 200, B: 30, A: 0xFF}, res.Image.RGBAAt(64, 4))
}

func assertHasColor(t *testing.T, img *image.RGBA, area image.Rectangle, want color.RGBA) {
	t.Helper()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if img.RGBAAt(x, y) == want {
				return
			}
		}
	}
	t.Errorf("no pixel of color %v in %v", want, area)
}

func TestSurfaceDrawTextWiderThanBox(t *testing.T) {
	cfg := fixedConfig()
	cfg.Width = 40
	cfg.StrokeWidth = 0
	cfg.InitialsLength = avatar.FullText
	cfg.Text = "Alexandra Lovelace"

	res, err := newTestRenderer().Render(cfg)
	require.NoError(t, err)
	assert.Equal(t, 40, res.Width)

	// The label stays on one line and is clipped, so glyph pixels reach
	// the buffer on the center row.
	midY := res.Height / 2
	lit := 0
	for x := 0; x < res.Width; x++ {
		if res.Image.RGBAAt(x, midY).R > 0x80 {
			lit++
		}
	}
	assert.Positive(t, lit)
}
