package render

import (
	"errors"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/avatarmaker/internal/avatar"
	"github.com/rook-computer/avatarmaker/internal/render/layout"
)

var errEmptyTarget = errors.New("draw target has no pixels")

// TextMetrics is the measured box of a single line of text.
type TextMetrics struct {
	Width   int
	Height  int
	Ascent  int
	Descent int
}

// MeasureText measures text on one line with face.
func MeasureText(face font.Face, text string) TextMetrics {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	return TextMetrics{
		Width:   font.MeasureString(face, text).Ceil(),
		Height:  ascent + descent,
		Ascent:  ascent,
		Descent: descent,
	}
}

// Surface is the software avatar.TextSurface: shapes go through the
// x/image vector rasterizer and text through a font.Drawer. It keeps no
// per-call state, faces are created and closed within each call.
type Surface struct {
	Fonts *Fonts
}

var _ avatar.TextSurface = (*Surface)(nil)

// NewSurface draws with fonts, or a fresh registry when fonts is nil.
func NewSurface(fonts *Fonts) *Surface {
	if fonts == nil {
		fonts = NewFonts(nil)
	}
	return &Surface{Fonts: fonts}
}

// Measure sizes the padded text box on unconstrained axes.
func (s *Surface) Measure(c avatar.Composition, width, height avatar.Constraint) image.Point {
	face := s.Fonts.Face(c.Style.Family, c.Style.Size)
	defer face.Close()

	m := MeasureText(face, c.Text)
	size := image.Pt(m.Width+2*c.Style.Padding, m.Height+2*c.Style.Padding)
	if width.Exact {
		size.X = width.Size
	}
	if height.Exact {
		size.Y = height.Size
	}
	return size
}

// Draw paints the shape over the whole of dst and the text centered in its
// padded content box. Text wider than the box overflows evenly and is
// clipped by dst.
func (s *Surface) Draw(c avatar.Composition, dst *image.RGBA) error {
	bounds := dst.Bounds()
	if bounds.Empty() {
		return errEmptyTarget
	}
	drawShape(dst, bounds, c.Shape)

	face := s.Fonts.Face(c.Style.Family, c.Style.Size)
	defer face.Close()

	m := MeasureText(face, c.Text)
	box := layout.Center(layout.Inset(bounds, c.Style.Padding), m.Width, m.Height)
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.Style.Color),
		Face: face,
		Dot:  fixed.P(box.Min.X, box.Min.Y+m.Ascent),
	}
	drawer.DrawString(c.Text)
	return nil
}
