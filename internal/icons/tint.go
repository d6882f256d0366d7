package icons

import (
	"image"
	"image/color"
)

// Tint paints c over every non-transparent pixel of src (a source-in composite).
// The result has its origin at (0,0). With an opaque color the alpha channel
// is copied unchanged; a translucent color scales it.
//
// Tint works at 8 bits per channel. Any non-zero source alpha stays non-zero;
// use TintImage to keep the alpha of 16-bit sources exact.
func Tint(src image.Image, c color.Color) *image.NRGBA {
	overlay := color.NRGBAModel.Convert(c).(color.NRGBA)
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			alpha := sourceAlpha(src, x, y)
			if alpha == 0 {
				continue
			}
			if overlay.A != 0xff {
				alpha = uint8((uint32(alpha)*uint32(overlay.A) + 127) / 255)
			}
			dst.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.NRGBA{
				R: overlay.R,
				G: overlay.G,
				B: overlay.B,
				A: alpha,
			})
		}
	}
	return dst
}

// Tint16 is Tint at 16 bits per channel.
func Tint16(src image.Image, c color.Color) *image.NRGBA64 {
	overlay := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	bounds := src.Bounds()
	dst := image.NewNRGBA64(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := src.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			if overlay.A != 0xffff {
				a = (a*uint32(overlay.A) + 0x7fff) / 0xffff
			}
			dst.SetNRGBA64(x-bounds.Min.X, y-bounds.Min.Y, color.NRGBA64{
				R: overlay.R,
				G: overlay.G,
				B: overlay.B,
				A: uint16(a),
			})
		}
	}
	return dst
}

// TintImage tints src at the channel depth of its color model.
func TintImage(src image.Image, c color.Color) image.Image {
	if isDeep(src) {
		return Tint16(src, c)
	}
	return Tint(src, c)
}

// isDeep reports whether src carries 16 bits per channel.
func isDeep(src image.Image) bool {
	switch src.ColorModel() {
	case color.NRGBA64Model, color.RGBA64Model, color.Gray16Model, color.Alpha16Model:
		return true
	}
	return false
}

func sourceAlpha(src image.Image, x, y int) uint8 {
	switch img := src.(type) {
	case *image.NRGBA:
		return img.NRGBAAt(x, y).A
	case *image.RGBA:
		return img.RGBAAt(x, y).A
	}
	_, _, _, a := src.At(x, y).RGBA()
	if a > 0 && a < 0x100 {
		return 1
	}
	return uint8(a >> 8)
}
