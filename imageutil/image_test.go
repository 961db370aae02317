package imageutil

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestNewNRGBAImage(t *testing.T) {
	img := NewNRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
	if img.Empty() {
		t.Error("100x50 image should not be empty")
	}
	if !NewNRGBAImage(0, 10).Empty() {
		t.Error("0x10 image should be empty")
	}
}

func TestNRGBAImageSetRGB(t *testing.T) {
	img := NewNRGBAImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 100, G: 150, B: 200})

	want := color.NRGBA{R: 100, G: 150, B: 200, A: 255}
	if got := img.NRGBAAt(5, 5); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestNRGBAImageFromImageWrapsPackedNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	if got := NRGBAImageFromImage(src); got.NRGBA != src {
		t.Error("A packed, origin-based NRGBA should be wrapped, not copied")
	}
}

func TestNRGBAImageFromImageCopiesSubImage(t *testing.T) {
	// Each row of the parent gets its own red value, so a row read through
	// the wrong stride shows up as the wrong color.
	parent := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			parent.SetNRGBA(x, y, color.NRGBA{R: uint8(10 * (y + 1)), G: uint8(x), A: 255})
		}
	}
	sub := parent.SubImage(image.Rect(0, 0, 2, 2)).(*image.NRGBA)

	got := NRGBAImageFromImage(sub)
	if got.Stride != 4*got.Width() {
		t.Errorf("Expected packed stride %d, got %d", 4*got.Width(), got.Stride)
	}
	if len(got.Pix) != 4*2*2 {
		t.Errorf("Expected %d bytes of pixels, got %d", 4*2*2, len(got.Pix))
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c, want := got.NRGBAAt(x, y), parent.NRGBAAt(x, y); c != want {
				t.Errorf("(%d,%d): expected %v, got %v", x, y, want, c)
			}
		}
	}

	got.SetNRGBA(0, 1, color.NRGBA{A: 255})
	if parent.NRGBAAt(0, 1).R != 20 {
		t.Error("Writing the converted image should not touch the parent")
	}
}

func TestNRGBAImageClone(t *testing.T) {
	img := NewNRGBAImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := img.Clone()
	if clone.NRGBAAt(5, 5) != img.NRGBAAt(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	if img.NRGBAAt(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestNRGBAImageCloneSubImage(t *testing.T) {
	parent := NewNRGBAImage(4, 4)
	for y := 0; y < 4; y++ {
		parent.SetRGB(0, y, RGB{R: uint8(10 * (y + 1))})
	}
	sub := &NRGBAImage{NRGBA: parent.SubImage(image.Rect(0, 1, 2, 3)).(*image.NRGBA)}

	clone := sub.Clone()
	if clone.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Expected 2x2 at the origin, got %v", clone.Bounds())
	}
	for y, want := range []uint8{20, 30} {
		if got := clone.NRGBAAt(0, y).R; got != want {
			t.Errorf("row %d: expected red %d, got %d", y, want, got)
		}
	}
}

func TestNRGBAImageFromImageKeepsStraightAlpha(t *testing.T) {
	// A premultiplied half-transparent white pixel must come back as
	// straight white with alpha 128.
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 128, G: 128, B: 128, A: 128})

	got := NRGBAImageFromImage(src).NRGBAAt(0, 0)
	if got.A != 128 {
		t.Errorf("Expected alpha 128, got %d", got.A)
	}
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("Expected straight white, got %v", got)
	}
}

func TestNRGBAImageFromImageRebasesBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 14, 23))
	src.SetNRGBA(10, 20, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	got := NRGBAImageFromImage(src)
	if got.Bounds().Min != (image.Point{}) {
		t.Errorf("Expected origin bounds, got %v", got.Bounds())
	}
	if got.Width() != 4 || got.Height() != 3 {
		t.Errorf("Expected 4x3, got %dx%d", got.Width(), got.Height())
	}
	if c := got.NRGBAAt(0, 0); c.R != 9 || c.G != 8 || c.B != 7 {
		t.Errorf("Expected top-left pixel to move to origin, got %v", c)
	}
}

func TestResize(t *testing.T) {
	img := CreateGradientImage(100, 100)

	tests := []struct {
		name   string
		w, h   int
		interp Interpolation
	}{
		{"downscale linear", 50, 50, InterpolationLinear},
		{"downscale nearest", 10, 7, InterpolationNearest},
		{"upscale linear", 200, 200, InterpolationLinear},
		{"width only nearest", 200, 100, InterpolationNearest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resized := Resize(img, tt.w, tt.h, tt.interp)
			if resized.Width() != tt.w || resized.Height() != tt.h {
				t.Errorf("Expected %dx%d, got %dx%d",
					tt.w, tt.h, resized.Width(), resized.Height())
			}
		})
	}
}

func TestResizeNearestDuplicatesColumns(t *testing.T) {
	img := CreateColorBarsImage(8, 2)
	resized := Resize(img, 16, 2, InterpolationNearest)

	for y := 0; y < 2; y++ {
		for x := 0; x < 8; x++ {
			want := img.NRGBAAt(x, y)
			for _, dx := range []int{2 * x, 2*x + 1} {
				if got := resized.NRGBAAt(dx, y); got != want {
					t.Errorf("(%d,%d): expected %v, got %v", dx, y, want, got)
				}
			}
		}
	}
}

func TestResizeSolidIsStable(t *testing.T) {
	c := RGB{R: 40, G: 80, B: 120}
	img := CreateSolidImage(30, 20, c)

	for _, interp := range []Interpolation{InterpolationLinear, InterpolationNearest} {
		resized := Resize(img, 7, 5, interp)
		want := CreateSolidImage(7, 5, c)
		if mse := CalculateMSE(resized, want); mse > 0.5 {
			t.Errorf("%v: solid image should stay solid, MSE=%f", interp, mse)
		}
	}
}

func TestResizeKeepsTransparency(t *testing.T) {
	img := NewNRGBAImage(10, 10)
	resized := Resize(img, 20, 10, InterpolationLinear)
	for y := 0; y < resized.Height(); y++ {
		for x := 0; x < resized.Width(); x++ {
			if a := resized.NRGBAAt(x, y).A; a != 0 {
				t.Fatalf("(%d,%d): expected transparent pixel, got alpha %d", x, y, a)
			}
		}
	}
}

func TestLoadSavePNG(t *testing.T) {
	tmpDir := t.TempDir()

	img := CreateColorBarsImage(64, 64)

	pngPath := filepath.Join(tmpDir, "test.png")
	if err := SavePNG(img.NRGBA, pngPath); err != nil {
		t.Fatalf("Failed to save PNG: %v", err)
	}

	loaded, err := LoadImage(pngPath)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}

	// PNG should be lossless
	if mse := CalculateMSE(img, loaded); mse > 0.01 {
		t.Errorf("PNG should be lossless, MSE=%f", mse)
	}
}

func TestLoadImageErrors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadImage(filepath.Join(tmpDir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	garbage := filepath.Join(tmpDir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(garbage); err == nil {
		t.Error("Expected error for undecodable file")
	}
}

func TestCalculateMSE(t *testing.T) {
	img1 := NewNRGBAImage(10, 10)
	img2 := NewNRGBAImage(10, 10)

	if mse := CalculateMSE(img1, img2); mse != 0 {
		t.Errorf("Identical images should have MSE=0, got %f", mse)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img1.SetRGB(x, y, RGB{R: 0, G: 0, B: 0})
			img2.SetRGB(x, y, RGB{R: 20, G: 20, B: 20})
		}
	}
	// 3 channels differ by 20, alpha is equal: 3*400/4
	if mse := CalculateMSE(img1, img2); mse != 300 {
		t.Errorf("Expected MSE=300, got %f", mse)
	}
}
