package avatar

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rook-computer/avatarmaker/internal/logger"
)

const (
	// MaxPixels bounds the buffer a single render may allocate.
	MaxPixels = 8192 * 8192
	// MaxTextSize bounds the resolved text size in pixels. Glyph masks are
	// allocated at this size before the buffer is measured.
	MaxTextSize = 1024
)

// Constraint is a measurement bound on one axis: either an exact size or
// none at all.
type Constraint struct {
	Exact bool
	Size  int
}

// Unconstrained lets the surface pick the natural size of the content.
var Unconstrained = Constraint{}

// Exactly constrains an axis to size pixels.
func Exactly(size int) Constraint { return Constraint{Exact: true, Size: size} }

func constraintFor(dimension int) Constraint {
	if dimension == Unspecified {
		return Unconstrained
	}
	return Exactly(dimension)
}

// ShapeStyle describes the filled and stroked background shape.
type ShapeStyle struct {
	Shape        Shape
	Fill         color.NRGBA
	Stroke       color.NRGBA
	StrokeWidth  int
	CornerRadius float64
}

// TextStyle describes the label. Size is already resolved to pixels.
type TextStyle struct {
	Size    float64
	Family  string
	Color   color.NRGBA
	Padding int
}

// Composition is what a TextSurface measures and draws: a shape with a
// label centered inside it.
type Composition struct {
	Text  string
	Style TextStyle
	Shape ShapeStyle
}

// TextSurface is the platform capability the renderer relies on.
//
// Measure returns the size of the composition under the given constraints:
// an exact axis must come back as exactly that size. Draw composites the
// shape and label into dst, filling its bounds.
type TextSurface interface {
	Measure(c Composition, width, height Constraint) image.Point
	Draw(c Composition, dst *image.RGBA) error
}

// Result is a rendered avatar. The caller owns Image.
type Result struct {
	Image  *image.RGBA
	Width  int
	Height int
}

// Renderer turns configs into avatars. It holds no per-render state and
// can be shared as long as its Surface can.
type Renderer struct {
	Surface TextSurface
	Display DisplayMetrics
	// Intn is the entropy source for random palettes; nil uses math/rand.
	Intn   func(n int) int
	Logger logger.Logger
}

// NewRenderer returns a renderer drawing through surface, with text units
// resolved against display.
func NewRenderer(surface TextSurface, display DisplayMetrics) *Renderer {
	return &Renderer{Surface: surface, Display: display, Logger: logger.Noop{}}
}

// Compose resolves colors and text for cfg. A random palette is drawn
// here, once, so measurement and drawing see the same colors.
func (r *Renderer) Compose(cfg Config) Composition {
	palette := cfg.Palette()
	if cfg.RandomColors {
		palette = RandomPalette(r.Intn)
	}
	return Composition{
		Text: displayText(cfg),
		Style: TextStyle{
			Size:    r.Display.Pixels(cfg.TextSize, cfg.TextSizeUnit),
			Family:  cfg.FontFamily,
			Color:   palette.Text,
			Padding: Padding,
		},
		Shape: ShapeStyle{
			Shape:        cfg.Shape,
			Fill:         palette.Background,
			Stroke:       palette.Stroke,
			StrokeWidth:  cfg.StrokeWidth,
			CornerRadius: cfg.CornerRadius,
		},
	}
}

// Measure returns the final avatar size for a composition.
func (r *Renderer) Measure(cfg Config, c Composition) image.Point {
	size := r.Surface.Measure(c, constraintFor(cfg.Width), constraintFor(cfg.Height))
	if cfg.FitToSquare {
		side := max(size.X, size.Y)
		size = r.Surface.Measure(c, Exactly(side), Exactly(side))
	}
	return size
}

// Render validates cfg, sizes the avatar and draws it into a new buffer.
// Any config it accepts renders without error unless the surface fails.
func (r *Renderer) Render(cfg Config) (Result, error) {
	if r.Surface == nil {
		return Result{}, ErrNoSurface
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	log := r.Logger
	if log == nil {
		log = logger.Noop{}
	}

	c := r.Compose(cfg)
	if px := c.Style.Size; !finite(px) || px > MaxTextSize {
		return Result{}, fmt.Errorf("text size %g %s resolves to %gpx: %w", cfg.TextSize, cfg.TextSizeUnit, px, ErrInvalidTextSize)
	}
	size := r.Measure(cfg, c)

	img, err := newBuffer(size.X, size.Y)
	if err != nil {
		log.Errorf("avatar", "allocate %dx%d: %v", size.X, size.Y, err)
		return Result{}, err
	}
	if err := r.Surface.Draw(c, img); err != nil {
		log.Errorf("avatar", "draw %q: %v", c.Text, err)
		return Result{}, fmt.Errorf("draw avatar: %w", err)
	}
	log.Debugf("avatar", "rendered %q at %dx%d", c.Text, size.X, size.Y)
	return Result{Image: img, Width: size.X, Height: size.Y}, nil
}

func newBuffer(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimension)
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrBufferTooLarge)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}
