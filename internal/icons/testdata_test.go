package icons

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// newGradientIcon returns a 4x4 icon: a transparent first column, opaque blue
// center and semi transparent edges.
func newGradientIcon() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			var a uint8
			switch x {
			case 0:
				a = 0
			case 1, 2:
				a = 0xff
			case 3:
				a = uint8(40 * (y + 1))
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 200, A: a})
		}
	}
	return img
}

func writeIcon(t *testing.T, dir, name string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create icon dir: %v", err)
	}
	f, err := os.Create(filepath.Join(dir, name+".png"))
	if err != nil {
		t.Fatalf("Failed to create icon: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode icon: %v", err)
	}
}
