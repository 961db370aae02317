// Package imageutil provides the raster plumbing used by img2ascii:
// decoding, non-premultiplied pixel access and resampling.
package imageutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.NRGBA.
func (rgb RGB) ToColor() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// NRGBAImage wraps image.NRGBA with convenience methods for pixel access.
// Channels are stored straight (not alpha-premultiplied), so the color
// values read back are the ones the source image carried.
type NRGBAImage struct {
	*image.NRGBA
}

// NewNRGBAImage creates a new, fully transparent NRGBAImage with the
// specified dimensions.
func NewNRGBAImage(width, height int) *NRGBAImage {
	return &NRGBAImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// NRGBAImageFromImage converts any image.Image to an NRGBAImage whose
// bounds start at the origin and whose rows are tightly packed. An
// *image.NRGBA already in that layout is wrapped without copying; sub-images
// of a larger buffer are copied.
func NRGBAImageFromImage(img image.Image) *NRGBAImage {
	bounds := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && bounds.Min == (image.Point{}) && n.Stride == 4*bounds.Dx() {
		return &NRGBAImage{NRGBA: n}
	}
	dst := NewNRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(dst.NRGBA, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Width returns the image width.
func (img *NRGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *NRGBAImage) Height() int {
	return img.Bounds().Dy()
}

// Empty reports whether the image has no pixels.
func (img *NRGBAImage) Empty() bool {
	return img.NRGBA == nil || img.Width() <= 0 || img.Height() <= 0
}

// SetRGB sets an opaque RGB value at (x, y).
func (img *NRGBAImage) SetRGB(x, y int, c RGB) {
	img.SetNRGBA(x, y, c.ToColor())
}

// Clone creates a deep, tightly packed copy of the image.
func (img *NRGBAImage) Clone() *NRGBAImage {
	clone := NewNRGBAImage(img.Width(), img.Height())
	rowBytes := 4 * img.Width()
	for y := 0; y < img.Height(); y++ {
		src := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(clone.Pix[y*clone.Stride:y*clone.Stride+rowBytes], img.Pix[src:src+rowBytes])
	}
	return clone
}
