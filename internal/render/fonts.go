package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/rook-computer/avatarmaker/internal/assets"
	"github.com/rook-computer/avatarmaker/internal/logger"
)

// typeface is a parsed font that can produce faces at any pixel size.
// Parsed fonts are read-only and safe to share; faces are not.
type typeface interface {
	newFace(sizePx float64) (font.Face, error)
}

type trueTypeface struct{ font *truetype.Font }

func (t trueTypeface) newFace(sizePx float64) (font.Face, error) {
	return truetype.NewFace(t.font, &truetype.Options{Size: sizePx, DPI: 72, Hinting: font.HintingFull}), nil
}

type openTypeface struct{ font *opentype.Font }

func (o openTypeface) newFace(sizePx float64) (font.Face, error) {
	return opentype.NewFace(o.font, &opentype.FaceOptions{Size: sizePx, DPI: 72, Hinting: font.HintingFull})
}

// parseTypeface tries the freetype parser first and falls back to the
// sfnt based one, which also handles CFF outlines.
func parseTypeface(data []byte) (typeface, error) {
	tt, terr := truetype.Parse(data)
	if terr == nil {
		return trueTypeface{font: tt}, nil
	}
	ot, oerr := opentype.Parse(data)
	if oerr == nil {
		return openTypeface{font: ot}, nil
	}
	return nil, fmt.Errorf("truetype: %v; opentype: %w", terr, oerr)
}

// Fonts resolves font family references to faces. A family is either a
// built-in name from the assets package or a path to a .ttf/.otf file.
// Resolution never fails: unknown or broken families fall back to the
// default family, and if that cannot be used either, to basicfont.
type Fonts struct {
	Logger logger.Logger

	mu     sync.RWMutex
	loaded map[string]typeface
}

// NewFonts returns an empty registry; fonts are parsed on first use.
func NewFonts(log logger.Logger) *Fonts {
	if log == nil {
		log = logger.Noop{}
	}
	return &Fonts{Logger: log, loaded: make(map[string]typeface)}
}

// Face returns a new face for family at sizePx. The caller closes it.
func (f *Fonts) Face(family string, sizePx float64) font.Face {
	tf := f.lookup(family)
	if tf == nil {
		return basicfont.Face7x13
	}
	face, err := tf.newFace(sizePx)
	if err != nil {
		f.Logger.Errorf("fonts", "face for %q at %.1fpx failed, using basicfont: %v", family, sizePx, err)
		return basicfont.Face7x13
	}
	return face
}

func (f *Fonts) lookup(family string) typeface {
	if family == "" {
		family = assets.DefaultFamily
	}
	f.mu.RLock()
	tf, ok := f.loaded[family]
	f.mu.RUnlock()
	if ok {
		return tf
	}

	tf, err := f.load(family)
	if err != nil {
		f.Logger.Errorf("fonts", "font %q unavailable, using default: %v", family, err)
		if family == assets.DefaultFamily {
			return nil
		}
		return f.lookup(assets.DefaultFamily)
	}
	f.Logger.Infof("fonts", "loaded font %q", family)

	// Only parsed fonts are kept, so arbitrary names cannot grow the map.
	f.mu.Lock()
	f.loaded[family] = tf
	f.mu.Unlock()
	return tf
}

func (f *Fonts) load(family string) (typeface, error) {
	if data, ok := assets.Font(family); ok {
		return parseTypeface(data)
	}
	if !isFontPath(family) {
		return nil, fmt.Errorf("unknown font family %q", family)
	}
	data, err := os.ReadFile(family)
	if err != nil {
		return nil, err
	}
	return parseTypeface(data)
}

func isFontPath(family string) bool {
	switch strings.ToLower(filepath.Ext(family)) {
	case ".ttf", ".otf", ".ttc":
		return true
	}
	return false
}
