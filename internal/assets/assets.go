// Package assets holds the font families compiled into the binary.
package assets

import (
	"sort"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFamily is used when no family, or an unknown one, is requested.
const DefaultFamily = "go"

var fonts = map[string][]byte{
	DefaultFamily: goregular.TTF,
	"go-bold":     gobold.TTF,
	"go-italic":   goitalic.TTF,
	"go-medium":   gomedium.TTF,
	"go-mono":     gomono.TTF,
}

// Font returns the raw TTF bytes of a built-in family.
func Font(family string) ([]byte, bool) {
	data, ok := fonts[family]
	return data, ok
}

// Families lists the built-in family names, sorted.
func Families() []string {
	names := make([]string, 0, len(fonts))
	for name := range fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
