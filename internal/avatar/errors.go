package avatar

import "errors"

var (
	ErrInvalidDimension    = errors.New("dimension must be -1 or greater than 0")
	ErrInvalidStroke       = errors.New("stroke width must not be negative")
	ErrInvalidCornerRadius = errors.New("corner radius must be finite and non-negative")
	ErrInvalidInitials     = errors.New("initials length must be -1 or greater")
	ErrInvalidTextSize     = errors.New("text size must be finite, non-negative and at most MaxTextSize pixels")
	ErrInvalidColor        = errors.New("invalid color")

	// ErrBufferTooLarge is returned when the measured avatar would need a
	// pixel buffer beyond MaxPixels.
	ErrBufferTooLarge = errors.New("avatar buffer too large")

	ErrNoSurface = errors.New("no text surface configured")
)

// IsConfigError reports whether err was caused by an invalid config rather
// than by rendering it.
func IsConfigError(err error) bool {
	for _, target := range []error{
		ErrInvalidDimension, ErrInvalidStroke, ErrInvalidCornerRadius,
		ErrInvalidInitials, ErrInvalidTextSize, ErrInvalidColor,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
