package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayShowCentersAndScales(t *testing.T) {
	screen := image.NewRGBA(image.Rect(0, 0, 200, 100))
	d := &Display{Background: color.Black, sink: screen}

	avatarImg := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := color.RGBA{R: 0xFF, A: 0xFF}
	draw.Draw(avatarImg, avatarImg.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)

	d.Show(avatarImg, 0)

	assert.Equal(t, red, screen.RGBAAt(50, 0))
	assert.Equal(t, red, screen.RGBAAt(149, 99))
	assert.Equal(t, color.RGBA{A: 0xFF}, screen.RGBAAt(49, 50))
	assert.Equal(t, color.RGBA{A: 0xFF}, screen.RGBAAt(150, 50))
}

func TestDisplayShowKeepsOutputOpaque(t *testing.T) {
	screen := image.NewRGBA(image.Rect(0, 0, 20, 20))
	d := &Display{Background: color.Transparent, sink: screen}

	d.Show(image.NewRGBA(image.Rect(0, 0, 4, 4)), 2)
	for _, p := range []image.Point{{0, 0}, {10, 10}, {19, 19}} {
		assert.Equal(t, uint8(0xFF), screen.RGBAAt(p.X, p.Y).A)
	}
}
