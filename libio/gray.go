package libio

import (
	goimg "image"
	"image/color"
)

// BT.601 luma weights in 16.16 fixed point, they sum to 0x10000.
const (
	lumaR = 19595
	lumaG = 38470
	lumaB = 7471
)

// Luma converts a non-premultiplied 8-bit RGB triple to luminance.
//
//	L = (19595*R + 38470*G + 7471*B + 0x8000) >> 16
func Luma(r, g, b uint8) uint8 {
	return uint8((lumaR*uint32(r) + lumaG*uint32(g) + lumaB*uint32(b) + 0x8000) >> 16)
}

// Gray converts any decoded image to a single channel luminance image.
// The result always starts at (0,0), regardless of src.Bounds().Min.
// Alpha is ignored, the color channels are used unpremultiplied.
func Gray(src goimg.Image) *IntImage {
	b := src.Bounds()
	dst := NewBlankImage(1, b.Dx(), b.Dy())

	switch s := src.(type) {
	case *goimg.Gray:
		for y := 0; y < dst.Height; y++ {
			row := s.Pix[s.PixOffset(b.Min.X, b.Min.Y+y):]
			copy(dst.Pix[y*dst.Width:(y+1)*dst.Width], row[:dst.Width])
		}
	case *goimg.Gray16:
		for y := 0; y < dst.Height; y++ {
			for x := 0; x < dst.Width; x++ {
				// high byte of the big endian sample
				dst.Pix[y*dst.Width+x] = s.Pix[s.PixOffset(b.Min.X+x, b.Min.Y+y)]
			}
		}
	case *goimg.YCbCr:
		for y := 0; y < dst.Height; y++ {
			for x := 0; x < dst.Width; x++ {
				yi := s.YOffset(b.Min.X+x, b.Min.Y+y)
				ci := s.COffset(b.Min.X+x, b.Min.Y+y)
				dst.Pix[y*dst.Width+x] = Luma(color.YCbCrToRGB(s.Y[yi], s.Cb[ci], s.Cr[ci]))
			}
		}
	case *goimg.NRGBA:
		for y := 0; y < dst.Height; y++ {
			for x := 0; x < dst.Width; x++ {
				i := s.PixOffset(b.Min.X+x, b.Min.Y+y)
				dst.Pix[y*dst.Width+x] = Luma(s.Pix[i], s.Pix[i+1], s.Pix[i+2])
			}
		}
	default:
		for y := 0; y < dst.Height; y++ {
			for x := 0; x < dst.Width; x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				dst.Pix[y*dst.Width+x] = Luma(c.R, c.G, c.B)
			}
		}
	}

	return dst
}
