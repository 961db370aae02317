package imageutil

import (
	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationLinear uses a triangle (bilinear) kernel. When
	// downscaling, the kernel support widens with the scale so every
	// source pixel contributes, which is what smooths the result.
	InterpolationLinear Interpolation = iota

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest, and keeps hard pixel edges.
	InterpolationNearest
)

// String returns a short name for logging.
func (i Interpolation) String() string {
	switch i {
	case InterpolationLinear:
		return "bilinear"
	case InterpolationNearest:
		return "nearest"
	default:
		return "unknown"
	}
}

// scaler returns the draw.Scaler implementing the interpolation.
func (i Interpolation) scaler() draw.Scaler {
	switch i {
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.BiLinear
	}
}

// Resize resizes an image to exactly width x height using the given
// interpolation method. The source is left untouched. Alpha is carried
// through, so transparent regions stay transparent.
func Resize(img *NRGBAImage, width, height int, interp Interpolation) *NRGBAImage {
	dst := NewNRGBAImage(width, height)
	interp.scaler().Scale(dst.NRGBA, dst.Bounds(), img.NRGBA, img.Bounds(), draw.Src, nil)
	return dst
}
