package layout

import "image"

// Inset shrinks rect by paddingPx on all sides. When the padding exceeds
// half the rect, the result is normalized and keeps the original center.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Center returns a widthPx x heightPx rectangle centered on rect. It is not
// clipped: content larger than rect overflows evenly on both sides.
func Center(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

// FitScale returns the largest integer factor by which a widthPx x heightPx
// image still fits inside rect. It never returns less than 1.
func FitScale(rect image.Rectangle, widthPx, heightPx int) int {
	rect = Normalize(rect)
	if widthPx <= 0 || heightPx <= 0 {
		return 1
	}
	scale := rect.Dx() / widthPx
	if s := rect.Dy() / heightPx; s < scale {
		scale = s
	}
	if scale < 1 {
		scale = 1
	}
	return scale
}
