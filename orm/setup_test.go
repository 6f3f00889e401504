package orm_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeGray writes a grayscale png with the given row-major values.
func writeGray(t *testing.T, name string, w, h int, values ...uint8) {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, w, h))
	copy(img.Pix, values)

	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	require.NoError(t, os.WriteFile(name, buf.Bytes(), 0666))
}

// writeGrayJPEG writes a grayscale jpeg at maximum quality.
func writeGrayJPEG(t *testing.T, name string, w, h int, values ...uint8) {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, w, h))
	copy(img.Pix, values)

	buf := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(buf, img, &jpeg.Options{Quality: 100}))
	require.NoError(t, os.WriteFile(name, buf.Bytes(), 0666))
}

func writeRGB(t *testing.T, name string, w, h int, c color.NRGBA) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	require.NoError(t, os.WriteFile(name, buf.Bytes(), 0666))
}

func touch(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(name, nil, 0666))
}

// readOutput decodes the packed texture into rgb triples in row-major order.
func readOutput(t *testing.T, name string) (image.Image, [][3]uint8) {
	t.Helper()

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)

	b := img.Bounds()
	var px [][3]uint8
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			require.Equal(t, uint8(0xff), c.A)
			px = append(px, [3]uint8{c.R, c.G, c.B})
		}
	}
	return img, px
}

func namedDir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.Mkdir(dir, 0777))
	return dir
}
