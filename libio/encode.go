package libio

import (
	"fmt"
	"image/png"
	"io"
	"strings"
)

// EncodePNG writes img as an 8-bit PNG.
// One channel is written as grayscale, two or three channels as truecolor without alpha.
func EncodePNG(w io.Writer, img *IntImage, level png.CompressionLevel) error {
	if img.Width == 0 || img.Height == 0 {
		return fmt.Errorf("image has zero size %dx%d", img.Width, img.Height)
	}
	if len(img.Pix) != img.Bytes() {
		return fmt.Errorf("pixel buffer holds %d bytes, expected %d", len(img.Pix), img.Bytes())
	}

	enc := png.Encoder{CompressionLevel: level}
	return enc.Encode(w, img.ToImage())
}

// ParseCompression maps a level name to a png compression level.
func ParseCompression(s string) (png.CompressionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed", "fast":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return png.DefaultCompression, fmt.Errorf("%s is not a valid compression level", s)
	}
}
