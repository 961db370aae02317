package img2ascii

import (
	"fmt"
	"image/color"
	"math"
	"unicode"
	"unicode/utf8"
)

// DefaultDensity is the built-in density ramp, from the emptiest glyph to
// the densest one.
const DefaultDensity = " _.,-=+:;cba!?0123456789$W#@Ñ"

// Ramp is an ordered, read-only sequence of glyphs used to approximate
// brightness. Index 0 is the emptiest glyph and is never colorized.
type Ramp struct {
	glyphs []rune
}

// NewRamp builds a Ramp from the runes of s. Every glyph must be
// printable, so a cell always occupies exactly one rune of output.
func NewRamp(s string) (Ramp, error) {
	glyphs := []rune(s)
	if len(glyphs) < 2 {
		return Ramp{}, ErrInvalidRamp
	}
	for _, g := range glyphs {
		if g == utf8.RuneError || unicode.IsControl(g) || !unicode.IsPrint(g) {
			return Ramp{}, fmt.Errorf("%w: unprintable glyph %U", ErrInvalidRamp, g)
		}
	}
	return Ramp{glyphs: glyphs}, nil
}

// DefaultRamp returns the ramp built from DefaultDensity.
func DefaultRamp() Ramp {
	return Ramp{glyphs: []rune(DefaultDensity)}
}

// Len returns the number of glyphs in the ramp.
func (r Ramp) Len() int {
	return len(r.glyphs)
}

// Glyph returns the glyph at index i. i must be within [0, Len()-1].
func (r Ramp) Glyph(i int) rune {
	return r.glyphs[i]
}

// String returns the ramp as a string.
func (r Ramp) String() string {
	return string(r.glyphs)
}

// maxGlyphBytes returns the widest UTF-8 encoding among the glyphs.
func (r Ramp) maxGlyphBytes() int {
	widest := 1
	for _, g := range r.glyphs {
		widest = max(widest, utf8.RuneLen(g))
	}
	return widest
}

// Index maps a brightness in [0, 1] to a ramp index using
// round(brightness*len - 1). The result is clamped to [0, len-1], so
// brightness 0 lands on the empty glyph, 1 lands exactly on the last one,
// and NaN or out-of-range input can never index outside the ramp.
func (r Ramp) Index(brightness float64) int {
	if math.IsNaN(brightness) || brightness <= 0 {
		return 0
	}
	last := len(r.glyphs) - 1
	if brightness >= 1 {
		return last
	}
	i := int(math.Round(brightness*float64(len(r.glyphs)) - 1))
	return min(max(i, 0), last)
}

// Brightness returns the perceived brightness of c in [0, 1]: the mean of
// the three channels attenuated by opacity. A fully transparent pixel is
// always 0, whatever its color.
func Brightness(c color.NRGBA) float64 {
	mean := (float64(c.R) + float64(c.G) + float64(c.B)) / 3 / 255
	return mean * (float64(c.A) / 255)
}

// Cell is one mapped pixel: the glyph chosen for it, the glyph's ramp
// index, and the pixel's color.
type Cell struct {
	Rune  rune
	Index int
	Color color.NRGBA
}

// Empty reports whether the cell holds the ramp's empty glyph.
func (c Cell) Empty() bool {
	return c.Index == 0
}

// MapPixel maps a pixel to its cell on ramp r.
func (r Ramp) MapPixel(c color.NRGBA) Cell {
	i := r.Index(Brightness(c))
	return Cell{Rune: r.glyphs[i], Index: i, Color: c}
}

// AppendTo appends the cell's glyph to buf. With colorize set, non-empty
// glyphs are wrapped in a true-color foreground escape and a reset.
// Alpha never reaches the escape.
func (c Cell) AppendTo(buf []byte, colorize bool) []byte {
	if !colorize || c.Empty() {
		return utf8.AppendRune(buf, c.Rune)
	}
	buf = appendTrueColorFG(buf, c.Color.R, c.Color.G, c.Color.B)
	buf = utf8.AppendRune(buf, c.Rune)
	return append(buf, Reset...)
}
