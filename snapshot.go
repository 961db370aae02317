package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/wbrown/img2ascii/imageutil"
)

const (
	// GlyphWidth and GlyphHeight define the snapshot character cell,
	// 1:2 like a terminal cell.
	GlyphWidth  = 8
	GlyphHeight = 16

	// glyphFontSize is the point size, at 72 DPI, that fits a monospace
	// glyph into one cell.
	glyphFontSize = 13

	// coverageThreshold is the minimum alpha coverage (25%) for a glyph
	// pixel to be set. Lower than half so thin strokes survive.
	coverageThreshold = 64
)

// GlyphBitmap is a rasterized glyph, one byte per row, bit x set when
// pixel x of that row is foreground.
type GlyphBitmap [GlyphHeight]uint8

// getBit checks if a specific bit is set in the bitmap
func (g GlyphBitmap) getBit(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return g[y]&(1<<x) != 0
}

// setBit sets a specific bit in the bitmap
func (g *GlyphBitmap) setBit(x, y int, value bool) {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return
	}
	if value {
		g[y] |= 1 << x
	} else {
		g[y] &^= 1 << x
	}
}

// FontBitmaps holds pre-rendered bitmaps for the glyphs of one ramp.
// Glyphs outside that ramp are rasterized on first use and cached, so a
// FontBitmaps is not safe for concurrent use.
type FontBitmaps struct {
	ttf      *truetype.Font
	baseline int
	glyphs   map[rune]GlyphBitmap
	name     string
}

// LoadFontBitmaps rasterizes every glyph of ramp with the TrueType font at
// path. An empty path selects the embedded Go Mono font.
func LoadFontBitmaps(path string, ramp Ramp) (*FontBitmaps, error) {
	name := "Go Mono"
	fontBytes := gomono.TTF
	if path != "" {
		var err error
		fontBytes, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
		name = path
	}

	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}

	fb := &FontBitmaps{
		ttf:      ttf,
		baseline: glyphBaseline(ttf),
		glyphs:   make(map[rune]GlyphBitmap, ramp.Len()),
		name:     name,
	}
	for i := 0; i < ramp.Len(); i++ {
		r := ramp.Glyph(i)
		fb.glyphs[r] = renderGlyphToBitmap(ttf, fb.baseline, r)
	}
	return fb, nil
}

// Name returns the font the bitmaps were rendered from.
func (fb *FontBitmaps) Name() string {
	return fb.name
}

// Glyph returns the bitmap for a character, if it has been rasterized.
func (fb *FontBitmaps) Glyph(r rune) (GlyphBitmap, bool) {
	bitmap, ok := fb.glyphs[r]
	return bitmap, ok
}

// bitmap returns the bitmap for r, rasterizing and caching it when r was
// not part of the ramp the font was loaded with.
func (fb *FontBitmaps) bitmap(r rune) GlyphBitmap {
	if bitmap, ok := fb.glyphs[r]; ok {
		return bitmap
	}
	bitmap := renderGlyphToBitmap(fb.ttf, fb.baseline, r)
	fb.glyphs[r] = bitmap
	return bitmap
}

// glyphBaseline centers the font's ascent and descent in one cell, so
// descenders are not clipped.
func glyphBaseline(ttf *truetype.Font) int {
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    glyphFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	return (GlyphHeight + metrics.Ascent.Round() - metrics.Descent.Round()) / 2
}

// renderGlyphToBitmap renders a single glyph into one cell. The glyph is
// drawn into an alpha image on the given baseline and thresholded at
// coverageThreshold.
func renderGlyphToBitmap(ttf *truetype.Font, baseline int, r rune) GlyphBitmap {
	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(glyphFontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	var bitmap GlyphBitmap
	if _, err := ctx.DrawString(string(r), freetype.Pt(0, baseline)); err != nil {
		return bitmap
	}

	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if img.AlphaAt(x, y).A > coverageThreshold {
				bitmap.setBit(x, y, true)
			}
		}
	}
	return bitmap
}

// RenderCells draws a glyph grid on a black background. Glyphs are white,
// or their cell's color when colorize is set. Glyphs the font was not
// loaded with are rasterized on demand. Each cell covers
// GlyphWidth*scale by GlyphHeight*scale pixels.
func (fb *FontBitmaps) RenderCells(cells [][]Cell, colorize bool, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	height := len(cells)
	if height == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	width := len(cells[0])

	cellW, cellH := GlyphWidth*scale, GlyphHeight*scale
	img := image.NewRGBA(image.Rect(0, 0, width*cellW, height*cellH))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	for y, row := range cells {
		for x, cell := range row {
			if cell.Empty() {
				continue
			}
			fg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if colorize {
				fg = color.RGBA{R: cell.Color.R, G: cell.Color.G, B: cell.Color.B, A: 255}
			}
			fb.renderBitmap(img, fb.bitmap(cell.Rune), x*cellW, y*cellH, scale, fg)
		}
	}
	return img
}

// renderBitmap paints the set bits of bitmap at the given position.
func (fb *FontBitmaps) renderBitmap(img *image.RGBA, bitmap GlyphBitmap, startX, startY, scale int, fg color.RGBA) {
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if !bitmap.getBit(x, y) {
				continue
			}
			rect := image.Rect(
				startX+x*scale, startY+y*scale,
				startX+(x+1)*scale, startY+(y+1)*scale)
			draw.Draw(img, rect, &image.Uniform{C: fg}, image.Point{}, draw.Src)
		}
	}
}

// Snapshot renders img as a picture of its text rendering.
func Snapshot(img *imageutil.NRGBAImage, cfg Config, fb *FontBitmaps, scale int) (*image.RGBA, error) {
	cells, err := Cells(img, cfg)
	if err != nil {
		return nil, err
	}
	return fb.RenderCells(cells, cfg.Color, scale), nil
}

// SaveSnapshot renders img with Snapshot and writes it as a PNG file.
func SaveSnapshot(path string, img *imageutil.NRGBAImage, cfg Config, fb *FontBitmaps, scale int) error {
	snap, err := Snapshot(img, cfg, fb, scale)
	if err != nil {
		return err
	}
	return imageutil.SavePNG(snap, path)
}
