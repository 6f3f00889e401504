package libio

import (
	"fmt"
	goimg "image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes any registered raster format.
func DecodeImage(r io.Reader) (goimg.Image, string, error) {
	img, format, err := goimg.Decode(r)
	if err != nil {
		return nil, "", err
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, format, fmt.Errorf("image has zero size %dx%d", b.Dx(), b.Dy())
	}

	return img, format, nil
}

// DecodeGrayFile loads the image at name and converts it to luminance.
func DecodeGrayFile(name string) (*IntImage, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", name, err)
	}

	return Gray(img), nil
}
