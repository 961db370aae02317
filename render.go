// Package img2ascii renders raster images as text for terminal display.
// Each pixel of a scaled copy of the image becomes one glyph from a
// brightness-ordered density ramp, optionally colored with a 24-bit
// foreground escape.
package img2ascii

import (
	"io"

	"github.com/wbrown/img2ascii/imageutil"
)

// Render scales img according to cfg and returns the rendered text: one
// line per scaled row, each terminated by a newline. The buffer is sized
// up front from the scaled dimensions so assembly never reallocates.
func Render(img *imageutil.NRGBAImage, cfg Config) ([]byte, error) {
	scaled, err := Scale(img, cfg)
	if err != nil {
		return nil, err
	}
	return paint(scaled, cfg), nil
}

// paint maps every pixel of an already scaled image, row-major.
func paint(scaled *imageutil.NRGBAImage, cfg Config) []byte {
	width, height := scaled.Width(), scaled.Height()
	buf := make([]byte, 0, width*height*cfg.bytesPerCell()+height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := cfg.Ramp.MapPixel(scaled.NRGBAAt(x, y))
			buf = cell.AppendTo(buf, cfg.Color)
		}
		buf = append(buf, '\n')
	}
	return buf
}

// Paint renders img and writes the whole result to w with a single Write
// call. Nothing is written when rendering fails.
func Paint(w io.Writer, img *imageutil.NRGBAImage, cfg Config) error {
	out, err := Render(img, cfg)
	if err != nil {
		return err
	}
	n, err := w.Write(out)
	if err != nil {
		return err
	}
	if n != len(out) {
		return io.ErrShortWrite
	}
	return nil
}

// Cells scales img and returns the mapped glyph grid, indexed [y][x].
func Cells(img *imageutil.NRGBAImage, cfg Config) ([][]Cell, error) {
	scaled, err := Scale(img, cfg)
	if err != nil {
		return nil, err
	}

	width, height := scaled.Width(), scaled.Height()
	grid := make([][]Cell, height)
	for y := range grid {
		row := make([]Cell, width)
		for x := range row {
			row[x] = cfg.Ramp.MapPixel(scaled.NRGBAAt(x, y))
		}
		grid[y] = row
	}
	return grid, nil
}
