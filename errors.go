package img2ascii

import "errors"

var (
	// ErrInvalidMaxSize is returned when the size bound is not positive.
	ErrInvalidMaxSize = errors.New("max size must be greater than zero")

	// ErrEmptyImage is returned for nil images and images with a zero
	// width or height.
	ErrEmptyImage = errors.New("image has zero width or height")

	// ErrInvalidRamp is returned when a density ramp has fewer than two
	// glyphs or contains a control or otherwise unprintable rune.
	ErrInvalidRamp = errors.New("density ramp needs at least two printable glyphs")
)
