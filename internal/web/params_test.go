package web

import (
	"image/color"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/avatarmaker/internal/avatar"
)

func TestConfigFromQueryDefaults(t *testing.T) {
	cfg, err := ConfigFromQuery(url.Values{"text": {"Alexandra"}}, avatar.DefaultDefaults())
	require.NoError(t, err)

	want, err := avatar.NewBuilder(avatar.DefaultDefaults()).WithText("Alexandra").Config()
	require.NoError(t, err)
	assert.Equal(t, want, cfg)
	assert.True(t, cfg.RandomColors)
}

func TestConfigFromQueryAll(t *testing.T) {
	q := url.Values{
		"text":        {"Jean Dupont"},
		"initials":    {"-1"},
		"width":       {"200"},
		"height":      {"-1"},
		"fit":         {"true"},
		"caps":        {"false"},
		"shape":       {"rect"},
		"strokeWidth": {"3"},
		"radius":      {"12.5"},
		"bg":          {"#1FA8F1"},
		"stroke":      {"#0B94DD"},
		"color":       {"#FFF"},
		"textSize":    {"18"},
		"unit":        {"sp"},
		"font":        {"go-bold"},
	}
	cfg, err := ConfigFromQuery(q, avatar.DefaultDefaults())
	require.NoError(t, err)

	assert.Equal(t, avatar.Config{
		Width:          200,
		Height:         avatar.Unspecified,
		FitToSquare:    true,
		Shape:          avatar.RoundedRectangle,
		Background:     color.NRGBA{R: 0x1F, G: 0xA8, B: 0xF1, A: 0xFF},
		Stroke:         color.NRGBA{R: 0x0B, G: 0x94, B: 0xDD, A: 0xFF},
		TextColor:      avatar.LightText,
		StrokeWidth:    3,
		CornerRadius:   12.5,
		Text:           "Jean Dupont",
		InitialsLength: avatar.FullText,
		TextSize:       18,
		TextSizeUnit:   avatar.UnitSp,
		FontFamily:     "go-bold",
	}, cfg)
}

func TestConfigFromQuerySizeAndRandom(t *testing.T) {
	cfg, err := ConfigFromQuery(url.Values{"size": {"64"}, "bg": {"#000000"}, "random": {"true"}}, avatar.DefaultDefaults())
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 64, cfg.Height)
	assert.True(t, cfg.RandomColors, "explicit random wins over colors")

	cfg, err = ConfigFromQuery(url.Values{"size": {"64"}, "height": {"32"}}, avatar.DefaultDefaults())
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
}

func TestConfigFromQueryErrors(t *testing.T) {
	bad := []url.Values{
		{"width": {"wide"}},
		{"width": {"0"}},
		{"fit": {"maybe"}},
		{"radius": {"round"}},
		{"bg": {"blue"}},
		{"shape": {"star"}},
		{"unit": {"em"}},
		{"textSize": {"big"}},
		{"strokeWidth": {"-2"}},
		{"initials": {"-3"}},
		{"radius": {"NaN"}},
		{"radius": {"Inf"}},
		{"textSize": {"NaN"}},
		{"textSize": {"+Inf"}},
		{"font": {"/etc/fonts/private.ttf"}},
		{"font": {"comic-sans"}},
	}
	for _, q := range bad {
		_, err := ConfigFromQuery(q, avatar.DefaultDefaults())
		assert.Error(t, err, q.Encode())
	}
}
