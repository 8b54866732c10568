package render

import (
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/avatarmaker/internal/logger"
	"github.com/rook-computer/avatarmaker/internal/render/layout"
)

// DefaultFramebuffer is the device opened by OpenDisplay when no path is
// given.
const DefaultFramebuffer = "/dev/fb0"

// pixelSink is the part of a framebuffer device Display writes to.
type pixelSink interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// Display shows images centered on a framebuffer, scaled by an integer
// factor with nearest-neighbor sampling so avatar edges stay crisp.
type Display struct {
	Background color.Color
	Logger     logger.Logger

	sink  pixelSink
	close func()
}

// OpenDisplay opens the framebuffer at path, DefaultFramebuffer when empty.
func OpenDisplay(path string, log logger.Logger) (*Display, error) {
	if path == "" {
		path = DefaultFramebuffer
	}
	if log == nil {
		log = logger.Noop{}
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, err
	}
	bounds := dev.Bounds()
	log.Infof("fb", "framebuffer %s open, bounds=%dx%d", path, bounds.Dx(), bounds.Dy())
	return &Display{
		Background: color.Black,
		Logger:     log,
		sink:       dev,
		close:      func() { dev.Close() },
	}, nil
}

// Show clears the screen to Background and draws img at its center. A
// scale of 0 or less picks the largest factor that fits.
func (d *Display) Show(img image.Image, scale int) {
	bounds := d.sink.Bounds()
	src := img.Bounds()
	if scale <= 0 {
		scale = layout.FitScale(bounds, src.Dx(), src.Dy())
	}

	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: d.Background}, image.Point{}, draw.Src)
	target := layout.Center(canvas.Bounds(), src.Dx()*scale, src.Dy()*scale)
	xdraw.NearestNeighbor.Scale(canvas, target, img, src, xdraw.Over, nil)

	blit(d.sink, canvas)
	if d.Logger != nil {
		d.Logger.Infof("fb", "showing %dx%d avatar at %dx", src.Dx(), src.Dy(), scale)
	}
}

func (d *Display) Close() {
	if d.close != nil {
		d.close()
	}
}

// blit copies canvas onto the sink pixel by pixel, forcing opaque output
// since most framebuffers ignore alpha.
func blit(sink pixelSink, canvas *image.RGBA) {
	bounds := sink.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			pixel := canvas.RGBAAt(x, y)
			sink.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
