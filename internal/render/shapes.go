package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/rook-computer/avatarmaker/internal/avatar"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498307936

type rectF struct {
	x0, y0, x1, y1 float64
}

func rectFrom(r image.Rectangle) rectF {
	return rectF{float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y)}
}

func (r rectF) inset(d float64) rectF {
	return rectF{r.x0 + d, r.y0 + d, r.x1 - d, r.y1 - d}
}

func (r rectF) width() float64  { return r.x1 - r.x0 }
func (r rectF) height() float64 { return r.y1 - r.y0 }
func (r rectF) empty() bool     { return r.width() <= 0 || r.height() <= 0 }

// pen writes path segments into a rasterizer. With mirror set it reflects
// every point across the horizontal center line of bounds, which traces the
// same symmetric outline in the opposite direction; the rasterizer's signed
// area then cancels and punches a hole.
type pen struct {
	z      *vector.Rasterizer
	origin image.Point
	midY   float64
	mirror bool
}

func (p pen) pt(x, y float64) (float32, float32) {
	if p.mirror {
		y = 2*p.midY - y
	}
	return float32(x - float64(p.origin.X)), float32(y - float64(p.origin.Y))
}

func (p pen) moveTo(x, y float64) { p.z.MoveTo(p.pt(x, y)) }
func (p pen) lineTo(x, y float64) { p.z.LineTo(p.pt(x, y)) }

func (p pen) cubeTo(bx, by, cx, cy, dx, dy float64) {
	x1, y1 := p.pt(bx, by)
	x2, y2 := p.pt(cx, cy)
	x3, y3 := p.pt(dx, dy)
	p.z.CubeTo(x1, y1, x2, y2, x3, y3)
}

func (p pen) ellipse(r rectF) {
	cx, cy := (r.x0+r.x1)/2, (r.y0+r.y1)/2
	rx, ry := r.width()/2, r.height()/2
	ox, oy := rx*kappa, ry*kappa

	p.moveTo(cx+rx, cy)
	p.cubeTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.cubeTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.cubeTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.cubeTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.z.ClosePath()
}

func (p pen) roundedRect(r rectF, radius float64) {
	radius = clampRadius(r, radius)
	k := radius * (1 - kappa)

	p.moveTo(r.x0+radius, r.y0)
	p.lineTo(r.x1-radius, r.y0)
	p.cubeTo(r.x1-k, r.y0, r.x1, r.y0+k, r.x1, r.y0+radius)
	p.lineTo(r.x1, r.y1-radius)
	p.cubeTo(r.x1, r.y1-k, r.x1-k, r.y1, r.x1-radius, r.y1)
	p.lineTo(r.x0+radius, r.y1)
	p.cubeTo(r.x0+k, r.y1, r.x0, r.y1-k, r.x0, r.y1-radius)
	p.lineTo(r.x0, r.y0+radius)
	p.cubeTo(r.x0, r.y0+k, r.x0+k, r.y0, r.x0+radius, r.y0)
	p.z.ClosePath()
}

func clampRadius(r rectF, radius float64) float64 {
	limit := math.Min(r.width(), r.height()) / 2
	if radius > limit {
		radius = limit
	}
	if radius < 0 {
		radius = 0
	}
	return radius
}

func (p pen) outline(s avatar.ShapeStyle, r rectF, radius float64) {
	if s.Shape == avatar.Oval {
		p.ellipse(r)
		return
	}
	p.roundedRect(r, radius)
}

// drawShape fills the shape with the path centered on the stroke, then lays
// a ring of StrokeWidth pixels over its edge, both within bounds.
func drawShape(dst draw.Image, bounds image.Rectangle, s avatar.ShapeStyle) {
	outer := rectFrom(bounds)
	half := float64(s.StrokeWidth) / 2
	midY := (outer.y0 + outer.y1) / 2

	fill := outer.inset(half)
	if !fill.empty() {
		z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
		pen{z: z, origin: bounds.Min, midY: midY}.outline(s, fill, s.CornerRadius)
		paint(dst, bounds, z, s.Fill)
	}

	if s.StrokeWidth <= 0 {
		return
	}
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	pen{z: z, origin: bounds.Min, midY: midY}.outline(s, outer, s.CornerRadius+half)
	if inner := outer.inset(float64(s.StrokeWidth)); !inner.empty() {
		pen{z: z, origin: bounds.Min, midY: midY, mirror: true}.outline(s, inner, math.Max(s.CornerRadius-half, 0))
	}
	paint(dst, bounds, z, s.Stroke)
}

func paint(dst draw.Image, bounds image.Rectangle, z *vector.Rasterizer, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	z.DrawOp = draw.Over
	z.Draw(dst, bounds, image.NewUniform(c), image.Point{})
}
