package avatar

import "image/color"

// Builder assembles a Config. It is a value type: every With method returns
// a modified copy and leaves the receiver untouched, so a partially
// configured Builder can be shared as a template.
type Builder struct {
	cfg Config
}

// NewBuilder starts from the defaults table with random colors, an oval
// shape, two initials and all caps.
func NewBuilder(d Defaults) Builder {
	return Builder{cfg: Config{
		Width:          d.Width,
		Height:         d.Height,
		RandomColors:   true,
		Shape:          Oval,
		StrokeWidth:    d.StrokeWidth,
		CornerRadius:   d.CornerRadius,
		InitialsLength: DefaultInitials,
		TextSize:       d.TextSize,
		TextSizeUnit:   d.TextSizeUnit,
		AllCaps:        true,
	}}
}

// From returns a builder holding a copy of cfg.
func From(cfg Config) Builder { return Builder{cfg: cfg} }

func (b Builder) WithSize(width, height int) Builder {
	b.cfg.Width, b.cfg.Height = width, height
	return b
}

func (b Builder) WithFitToSquare(fit bool) Builder {
	b.cfg.FitToSquare = fit
	return b
}

func (b Builder) WithRandomColors(random bool) Builder {
	b.cfg.RandomColors = random
	return b
}

func (b Builder) WithShape(shape Shape) Builder {
	b.cfg.Shape = shape
	return b
}

func (b Builder) WithBackgroundColor(c color.NRGBA) Builder {
	b.cfg.Background = c
	return b
}

func (b Builder) WithStrokeColor(c color.NRGBA) Builder {
	b.cfg.Stroke = c
	return b
}

func (b Builder) WithStrokeWidth(width int) Builder {
	b.cfg.StrokeWidth = width
	return b
}

func (b Builder) WithCornerRadius(radius float64) Builder {
	b.cfg.CornerRadius = radius
	return b
}

// WithInitials sets how many leading runes of the text are drawn.
func (b Builder) WithInitials(n int) Builder {
	b.cfg.InitialsLength = n
	return b
}

// WithText sets the source text and resets the initials length to two.
func (b Builder) WithText(text string) Builder {
	return b.WithTextLength(text, DefaultInitials)
}

func (b Builder) WithTextLength(text string, n int) Builder {
	b.cfg.Text = text
	b.cfg.InitialsLength = n
	return b
}

// WithFullText disables truncation.
func (b Builder) WithFullText() Builder {
	b.cfg.InitialsLength = FullText
	return b
}

func (b Builder) WithTextColor(c color.NRGBA) Builder {
	b.cfg.TextColor = c
	return b
}

// WithTextSize sets the text size in scale-independent pixels.
func (b Builder) WithTextSize(size float64) Builder {
	return b.WithTextSizeUnit(UnitSp, size)
}

func (b Builder) WithTextSizeUnit(unit TextSizeUnit, size float64) Builder {
	b.cfg.TextSizeUnit = unit
	b.cfg.TextSize = size
	return b
}

func (b Builder) WithAllCaps(caps bool) Builder {
	b.cfg.AllCaps = caps
	return b
}

func (b Builder) WithFontFamily(family string) Builder {
	b.cfg.FontFamily = family
	return b
}

// Config returns the assembled configuration once it validates.
func (b Builder) Config() (Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return Config{}, err
	}
	return b.cfg, nil
}

// Build renders the assembled configuration.
func (b Builder) Build(r *Renderer) (Result, error) {
	cfg, err := b.Config()
	if err != nil {
		return Result{}, err
	}
	return r.Render(cfg)
}
