package main

import (
	"net/url"

	"github.com/spf13/pflag"

	"github.com/rook-computer/avatarmaker/internal/avatar"
	"github.com/rook-computer/avatarmaker/internal/web"
)

// avatarFlagParams maps avatar flags to the HTTP query parameters they
// stand for, so the command line and the API parse options the same way.
var avatarFlagParams = map[string]string{
	"text":         "text",
	"initials":     "initials",
	"size":         "size",
	"width":        "width",
	"height":       "height",
	"fit":          "fit",
	"caps":         "caps",
	"shape":        "shape",
	"stroke-width": "strokeWidth",
	"radius":       "radius",
	"bg":           "bg",
	"stroke":       "stroke",
	"color":        "color",
	"random":       "random",
	"text-size":    "textSize",
	"unit":         "unit",
}

func addAvatarFlags(flags *pflag.FlagSet) {
	flags.StringP("text", "t", "", "name or text to take the initials from")
	flags.IntP("initials", "n", avatar.DefaultInitials, "number of leading characters drawn, -1 for the whole text")
	flags.IntP("size", "s", 0, "width and height in pixels")
	flags.Int("width", 0, "width in pixels, -1 to size to the text")
	flags.Int("height", 0, "height in pixels, -1 to size to the text")
	flags.Bool("fit", false, "grow the avatar to a square")
	flags.Bool("caps", true, "upper-case the drawn text")
	flags.String("shape", "oval", "oval or rect")
	flags.Int("stroke-width", 0, "outline width in pixels")
	flags.Float64("radius", 0, "corner radius of rect avatars in pixels")
	flags.String("bg", "", "background color, #RGB, #RRGGBB or #AARRGGBB")
	flags.String("stroke", "", "outline color")
	flags.String("color", "", "text color")
	flags.Bool("random", false, "pick random colors even when colors are given")
	flags.Float64("text-size", 0, "text size in the chosen unit")
	flags.String("unit", "px", "text size unit: px, dp, sp, pt, in or mm")
	flags.String("font", "", "font family (go, go-bold, go-italic, go-medium, go-mono) or a font file")
}

// avatarConfig builds a config from the flags the user set. A positional
// argument stands in for --text. Unlike the HTTP API, --font may name a
// font file.
func avatarConfig(flags *pflag.FlagSet, args []string, d avatar.Defaults) (avatar.Config, error) {
	q := url.Values{}
	flags.Visit(func(f *pflag.Flag) {
		if param, ok := avatarFlagParams[f.Name]; ok {
			q.Set(param, f.Value.String())
		}
	})
	if len(args) > 0 && !q.Has("text") {
		q.Set("text", args[0])
	}
	cfg, err := web.ConfigFromQuery(q, d)
	if err != nil || !flags.Changed("font") {
		return cfg, err
	}
	family, err := flags.GetString("font")
	if err != nil {
		return avatar.Config{}, err
	}
	return avatar.From(cfg).WithFontFamily(family).Config()
}
