package libio

import (
	goimg "image"
)

type image struct {
	Channels      int
	Width, Height int
}

// Calculates the tuple index into the images data.
//
// The origin (0,0) is the top left, same as Go's image package.
func (img *image) Index(x, y int) int {
	return x*img.Channels + y*img.Channels*img.Width
}

func (img *image) Count() int {
	return img.Width * img.Height
}

// IntImage is an interleaved 8-bit raster with an arbitrary channel count.
type IntImage struct {
	image
	Pix []uint8
}

func NewIntImage(pix []uint8, channels int, width, height int) *IntImage {
	return &IntImage{
		Pix: pix,
		image: image{
			Channels: channels,
			Width:    width,
			Height:   height,
		},
	}
}

// NewBlankImage allocates a zero filled image.
func NewBlankImage(channels int, width, height int) *IntImage {
	return NewIntImage(make([]uint8, channels*width*height), channels, width, height)
}

func (img *IntImage) Bytes() int {
	return img.Width * img.Height * img.Channels
}

func (img *IntImage) At(x, y, c int) uint8 {
	return img.Pix[img.Index(x, y)+c]
}

func (img *IntImage) ToChannels(nr int, defaults ...uint8) *IntImage {
	dst := toChannels(img.Channels, nr, img.Count(), img.Pix, defaults...)

	return NewIntImage(dst, nr, img.Width, img.Height)
}

func toChannels[P ~[]E, E any](srcCh, dstCh int, count int, pix P, defaults ...E) P {
	if srcCh == dstCh {
		return pix
	}

	if len(defaults) < dstCh {
		missing := dstCh - len(defaults)
		defaults = append(defaults, make([]E, missing)...)
	}

	dst := make([]E, count*dstCh)

	if dstCh > srcCh {
		for i := 0; i < count; i++ {
			for c := 0; c < srcCh; c++ {
				dst[i*dstCh+c] = pix[i*srcCh+c]
			}
			for c := srcCh; c < dstCh; c++ {
				dst[i*dstCh+c] = defaults[c]
			}
		}
	}

	if dstCh < srcCh {
		for i := 0; i < count; i++ {
			for c := 0; c < dstCh; c++ {
				dst[i*dstCh+c] = pix[i*srcCh+c]
			}
		}
	}

	return dst
}

// ToImage converts to a standard library image.
// One channel yields *image.Gray, anything else an opaque *image.NRGBA.
func (img *IntImage) ToImage() goimg.Image {
	if img.Channels == 1 {
		gray := goimg.NewGray(goimg.Rect(0, 0, img.Width, img.Height))
		for y := 0; y < img.Height; y++ {
			copy(gray.Pix[y*gray.Stride:y*gray.Stride+img.Width], img.Pix[y*img.Width:(y+1)*img.Width])
		}
		return gray
	}

	nrgba := goimg.NewNRGBA(goimg.Rect(0, 0, img.Width, img.Height))
	ch := img.Channels
	if ch > 4 {
		ch = 4
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := img.Index(x, y)
			j := nrgba.PixOffset(x, y)
			for c := 0; c < ch; c++ {
				nrgba.Pix[j+c] = img.Pix[i+c]
			}
			for c := ch; c < 3; c++ {
				nrgba.Pix[j+c] = 0
			}
			if ch < 4 {
				nrgba.Pix[j+3] = 0xff
			}
		}
	}

	return nrgba
}
