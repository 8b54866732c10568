package avatar

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderDefaults(t *testing.T) {
	cfg, err := NewBuilder(DefaultDefaults()).Config()
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
	assert.True(t, cfg.RandomColors)
	assert.True(t, cfg.AllCaps)
	assert.Equal(t, Oval, cfg.Shape)
	assert.Equal(t, DefaultInitials, cfg.InitialsLength)
	assert.Equal(t, UnitPx, cfg.TextSizeUnit)
	assert.Equal(t, 48.0, cfg.TextSize)
	assert.Equal(t, 16.0, cfg.CornerRadius)
	assert.Empty(t, cfg.Text)
}

func TestBuilderIsImmutable(t *testing.T) {
	base := NewBuilder(DefaultDefaults()).WithText("Alexandra")
	wide := base.WithSize(300, Unspecified).WithFullText()

	baseCfg, err := base.Config()
	require.NoError(t, err)
	wideCfg, err := wide.Config()
	require.NoError(t, err)

	assert.Equal(t, 128, baseCfg.Width)
	assert.Equal(t, DefaultInitials, baseCfg.InitialsLength)
	assert.Equal(t, 300, wideCfg.Width)
	assert.Equal(t, Unspecified, wideCfg.Height)
	assert.Equal(t, FullText, wideCfg.InitialsLength)
}

func TestBuilderSetters(t *testing.T) {
	bg := color.NRGBA{R: 1, G: 2, B: 3, A: 0xFF}
	stroke := color.NRGBA{R: 4, G: 5, B: 6, A: 0xFF}
	text := color.NRGBA{R: 7, G: 8, B: 9, A: 0xFF}

	cfg, err := NewBuilder(DefaultDefaults()).
		WithFitToSquare(true).
		WithRandomColors(false).
		WithShape(RoundedRectangle).
		WithBackgroundColor(bg).
		WithStrokeColor(stroke).
		WithStrokeWidth(3).
		WithCornerRadius(8).
		WithTextLength("Jean Dupont", 3).
		WithTextColor(text).
		WithTextSize(14).
		WithAllCaps(false).
		WithFontFamily("go-mono").
		Config()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Width:          128,
		Height:         128,
		FitToSquare:    true,
		Shape:          RoundedRectangle,
		Background:     bg,
		Stroke:         stroke,
		TextColor:      text,
		StrokeWidth:    3,
		CornerRadius:   8,
		Text:           "Jean Dupont",
		InitialsLength: 3,
		TextSize:       14,
		TextSizeUnit:   UnitSp,
		FontFamily:     "go-mono",
	}, cfg)

	again, err := From(cfg).WithInitials(1).WithTextSizeUnit(UnitPt, 12).Config()
	require.NoError(t, err)
	assert.Equal(t, 1, again.InitialsLength)
	assert.Equal(t, UnitPt, again.TextSizeUnit)
	assert.Equal(t, "Jean Dupont", again.Text)
}

func TestBuilderRejectsInvalid(t *testing.T) {
	_, err := NewBuilder(DefaultDefaults()).WithStrokeWidth(-3).Config()
	assert.ErrorIs(t, err, ErrInvalidStroke)

	_, err = NewBuilder(DefaultDefaults()).WithSize(0, 10).Build(NewRenderer(&fakeSurface{}, DisplayMetrics{}))
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestBuilderBuild(t *testing.T) {
	surface := &fakeSurface{natural: image.Pt(90, 60)}
	res, err := NewBuilder(DefaultDefaults()).
		WithSize(Unspecified, Unspecified).
		WithFitToSquare(true).
		WithText("Zoé").
		Build(NewRenderer(surface, DisplayMetrics{}))
	require.NoError(t, err)
	assert.Equal(t, 90, res.Width)
	assert.Equal(t, 90, res.Height)
	require.Len(t, surface.drawn, 1)
	assert.Equal(t, "ZO", surface.drawn[0].Text)
}
