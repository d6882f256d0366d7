package icons

import (
	"image"
	"image/color"
	"testing"
)

func TestTint_PreservesAlpha(t *testing.T) {
	src := newGradientIcon()
	red := color.NRGBA{R: 0xff, A: 0xff}

	result := Tint(src, red)

	if result.Bounds() != src.Bounds() {
		t.Fatalf("Expected bounds %v, got %v", src.Bounds(), result.Bounds())
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			in := src.NRGBAAt(x, y)
			out := result.NRGBAAt(x, y)
			if out.A != in.A {
				t.Errorf("Pixel (%d,%d): alpha %d, expected %d", x, y, out.A, in.A)
			}
			if in.A > 0 && (out.R != 0xff || out.G != 0 || out.B != 0) {
				t.Errorf("Pixel (%d,%d): expected red, got %v", x, y, out)
			}
			if in.A == 0 && out != (color.NRGBA{}) {
				t.Errorf("Pixel (%d,%d): transparent pixel changed to %v", x, y, out)
			}
		}
	}
}

func TestTint_TranslucentColorScalesAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{A: 0xff})

	result := Tint(src, color.NRGBA{G: 0xff, A: 0x80})

	out := result.NRGBAAt(0, 0)
	if out.A != 0x80 || out.G != 0xff {
		t.Errorf("Expected half transparent green, got %v", out)
	}
}

func TestTint_RebasesOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	src.SetNRGBA(6, 6, color.NRGBA{A: 0xff})

	result := Tint(src, color.White)

	if result.Bounds().Min != (image.Point{}) {
		t.Fatalf("Expected origin at 0,0, got %v", result.Bounds().Min)
	}
	if result.NRGBAAt(1, 1).A != 0xff {
		t.Errorf("Expected opaque pixel at 1,1")
	}
}

func TestTint16_KeepsLowAlpha(t *testing.T) {
	src := image.NewNRGBA64(image.Rect(0, 0, 2, 1))
	src.SetNRGBA64(0, 0, color.NRGBA64{A: 0x0080})
	src.SetNRGBA64(1, 0, color.NRGBA64{A: 0xffff})

	result := TintImage(src, color.NRGBA{G: 0xff, A: 0xff})

	deep, ok := result.(*image.NRGBA64)
	if !ok {
		t.Fatalf("Expected *image.NRGBA64 for a 16-bit source, got %T", result)
	}
	expected := []color.NRGBA64{
		{G: 0xffff, A: 0x0080},
		{G: 0xffff, A: 0xffff},
	}
	for x, want := range expected {
		if got := deep.NRGBA64At(x, 0); got != want {
			t.Errorf("Pixel %d: expected %v, got %v", x, want, got)
		}
	}
}

func TestTint_LowAlphaStaysVisible(t *testing.T) {
	src := image.NewRGBA64(image.Rect(0, 0, 1, 1))
	src.SetRGBA64(0, 0, color.RGBA64{A: 0x0040})

	result := Tint(src, color.NRGBA{B: 0xff, A: 0xff})

	out := result.NRGBAAt(0, 0)
	if out.A == 0 || out.B != 0xff {
		t.Errorf("Expected a visible blue pixel, got %v", out)
	}
}

func TestTintImage_EightBitSource(t *testing.T) {
	result := TintImage(newGradientIcon(), color.White)
	if _, ok := result.(*image.NRGBA); !ok {
		t.Errorf("Expected *image.NRGBA for an 8-bit source, got %T", result)
	}
}
