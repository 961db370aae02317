package img2ascii

import (
	"image"
	"math"

	"github.com/wbrown/img2ascii/imageutil"
)

// ScaledSize computes the dimensions the scaler produces for a w x h
// source. intermediate is the size after aspect correction (2w x h when
// enabled, w x h otherwise); final is intermediate bounded to
// cfg.MaxSize on its larger side, keeping the intermediate aspect ratio.
// w, h and cfg.MaxSize must be positive.
func ScaledSize(w, h int, cfg Config) (intermediate, final image.Point) {
	intermediate = image.Pt(w, h)
	if cfg.CorrectAspect {
		intermediate.X *= 2
	}
	return intermediate, boundSize(intermediate, cfg.MaxSize)
}

// boundSize fits p inside a maxSize square. Sizes that already fit are
// returned unchanged; otherwise the larger side becomes maxSize and the
// smaller one is rounded, never dropping below one cell.
func boundSize(p image.Point, maxSize int) image.Point {
	if p.X <= maxSize && p.Y <= maxSize {
		return p
	}
	if p.X >= p.Y {
		ratio := float64(p.Y) / float64(p.X)
		return image.Pt(maxSize, max(1, int(math.Round(float64(maxSize)*ratio))))
	}
	ratio := float64(p.X) / float64(p.Y)
	return image.Pt(max(1, int(math.Round(float64(maxSize)*ratio))), maxSize)
}

// Scale resamples img for one-glyph-per-pixel rendering: an optional
// width-only stretch for aspect correction, then a bounding downscale when
// the stretched image exceeds cfg.MaxSize. The same filter is used for
// both steps. img is never modified, and is returned as is when neither
// step applies.
func Scale(img *imageutil.NRGBAImage, cfg Config) (*imageutil.NRGBAImage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if img == nil || img.Empty() {
		return nil, ErrEmptyImage
	}

	interp := cfg.interpolation()
	intermediate, final := ScaledSize(img.Width(), img.Height(), cfg)

	scaled := img
	if intermediate.X != img.Width() {
		scaled = imageutil.Resize(img, intermediate.X, intermediate.Y, interp)
	}
	if final != intermediate {
		scaled = imageutil.Resize(scaled, final.X, final.Y, interp)
	}
	return scaled, nil
}
