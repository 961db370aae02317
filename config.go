package img2ascii

import (
	"fmt"

	"github.com/wbrown/img2ascii/imageutil"
)

// DefaultMaxSize is the default bound, in character cells, for both the
// width and the height of the rendered image.
const DefaultMaxSize = 100

// Config holds everything a render needs besides the image itself.
// Build it with NewConfig; it is not modified by rendering.
type Config struct {
	// MaxSize bounds both output dimensions, in character cells.
	MaxSize int
	// Color wraps every non-empty glyph in a true-color escape.
	Color bool
	// CorrectAspect doubles the horizontal pixel count before bounding,
	// compensating for character cells being about twice as tall as
	// they are wide.
	CorrectAspect bool
	// Antialias selects bilinear resampling instead of nearest-neighbor.
	Antialias bool
	// Ramp is the density ramp glyphs are picked from.
	Ramp Ramp
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// NewConfig creates a Config with the given options applied.
// Default values: MaxSize=100, Color=false, CorrectAspect=true,
// Antialias=true, Ramp=DefaultRamp().
func NewConfig(opts ...Option) Config {
	c := Config{
		MaxSize:       DefaultMaxSize,
		CorrectAspect: true,
		Antialias:     true,
		Ramp:          DefaultRamp(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithMaxSize sets the size bound in character cells.
func WithMaxSize(n int) Option {
	return func(c *Config) {
		c.MaxSize = n
	}
}

// WithColor enables or disables true-color output.
func WithColor(enabled bool) Option {
	return func(c *Config) {
		c.Color = enabled
	}
}

// WithAspectCorrection enables or disables the horizontal pre-stretch.
func WithAspectCorrection(enabled bool) Option {
	return func(c *Config) {
		c.CorrectAspect = enabled
	}
}

// WithAntialias enables or disables bilinear resampling.
func WithAntialias(enabled bool) Option {
	return func(c *Config) {
		c.Antialias = enabled
	}
}

// WithRamp sets the density ramp.
func WithRamp(r Ramp) Option {
	return func(c *Config) {
		c.Ramp = r
	}
}

// Validate reports whether the configuration can drive a render.
func (c Config) Validate() error {
	if c.MaxSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxSize, c.MaxSize)
	}
	if c.Ramp.Len() < 2 {
		return ErrInvalidRamp
	}
	return nil
}

// interpolation returns the resampling filter selected by Antialias.
func (c Config) interpolation() imageutil.Interpolation {
	if c.Antialias {
		return imageutil.InterpolationLinear
	}
	return imageutil.InterpolationNearest
}

// bytesPerCell estimates the output bytes produced by one pixel.
func (c Config) bytesPerCell() int {
	n := c.Ramp.maxGlyphBytes()
	if c.Color {
		n += colorOverhead
	}
	return n
}
