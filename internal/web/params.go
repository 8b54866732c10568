package web

import (
	"fmt"
	"image/color"
	"net/url"
	"strconv"
	"strings"

	"github.com/rook-computer/avatarmaker/internal/assets"
	"github.com/rook-computer/avatarmaker/internal/avatar"
)

// ConfigFromQuery builds an avatar config from request parameters on top
// of the defaults table. Giving any explicit color turns random colors off
// unless random is also set. Only built-in font families are accepted, so
// a request can never name a file on the server.
func ConfigFromQuery(q url.Values, d avatar.Defaults) (avatar.Config, error) {
	b := avatar.NewBuilder(d).WithText(q.Get("text"))
	var err error

	intParam := func(name string, apply func(int)) {
		if err != nil || !q.Has(name) {
			return
		}
		v, perr := strconv.Atoi(q.Get(name))
		if perr != nil {
			err = fmt.Errorf("%s must be an integer (got %q)", name, q.Get(name))
			return
		}
		apply(v)
	}
	floatParam := func(name string, apply func(float64)) {
		if err != nil || !q.Has(name) {
			return
		}
		v, perr := strconv.ParseFloat(q.Get(name), 64)
		if perr != nil {
			err = fmt.Errorf("%s must be a number (got %q)", name, q.Get(name))
			return
		}
		apply(v)
	}
	boolParam := func(name string, apply func(bool)) {
		if err != nil || !q.Has(name) {
			return
		}
		v, perr := strconv.ParseBool(q.Get(name))
		if perr != nil {
			err = fmt.Errorf("%s must be a boolean (got %q)", name, q.Get(name))
			return
		}
		apply(v)
	}
	colorParam := func(name string, apply func(c color.NRGBA)) {
		if err != nil || !q.Has(name) {
			return
		}
		c, perr := avatar.ParseHexColor(q.Get(name))
		if perr != nil {
			err = fmt.Errorf("%s: %w", name, perr)
			return
		}
		b = b.WithRandomColors(false)
		apply(c)
	}

	intParam("initials", func(v int) { b = b.WithInitials(v) })
	width, height := d.Width, d.Height
	intParam("size", func(v int) { width, height = v, v })
	intParam("width", func(v int) { width = v })
	intParam("height", func(v int) { height = v })
	b = b.WithSize(width, height)
	boolParam("fit", func(v bool) { b = b.WithFitToSquare(v) })
	boolParam("caps", func(v bool) { b = b.WithAllCaps(v) })
	intParam("strokeWidth", func(v int) { b = b.WithStrokeWidth(v) })
	floatParam("radius", func(v float64) { b = b.WithCornerRadius(v) })
	colorParam("bg", func(c color.NRGBA) { b = b.WithBackgroundColor(c) })
	colorParam("stroke", func(c color.NRGBA) { b = b.WithStrokeColor(c) })
	colorParam("color", func(c color.NRGBA) { b = b.WithTextColor(c) })
	boolParam("random", func(v bool) { b = b.WithRandomColors(v) })
	if err != nil {
		return avatar.Config{}, err
	}

	if q.Has("shape") {
		shape, perr := avatar.ParseShape(q.Get("shape"))
		if perr != nil {
			return avatar.Config{}, perr
		}
		b = b.WithShape(shape)
	}
	unit, size := d.TextSizeUnit, d.TextSize
	if q.Has("unit") {
		u, perr := avatar.ParseTextSizeUnit(q.Get("unit"))
		if perr != nil {
			return avatar.Config{}, perr
		}
		unit = u
	}
	if q.Has("textSize") {
		v, perr := strconv.ParseFloat(q.Get("textSize"), 64)
		if perr != nil {
			return avatar.Config{}, fmt.Errorf("textSize must be a number (got %q)", q.Get("textSize"))
		}
		size = v
	}
	b = b.WithTextSizeUnit(unit, size)
	if q.Has("font") {
		family := q.Get("font")
		if _, ok := assets.Font(family); !ok {
			return avatar.Config{}, fmt.Errorf("unknown font %q (available: %s)", family, strings.Join(assets.Families(), ", "))
		}
		b = b.WithFontFamily(family)
	}
	return b.Config()
}
