package orm

import (
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"orm-texture-builder/libio"
)

// WriteTexture encodes img as png and atomically replaces the file at name.
// The data goes to a temporary file in the same directory first, so a failed
// write never leaves a partial texture behind.
//
// A replaced file keeps its permission bits, a new one is created with 0666
// minus the process umask.
func WriteTexture(name string, img *libio.IntImage, level png.CompressionLevel) (err error) {
	perm, keep := fs.FileMode(0666), false
	if fi, err := os.Stat(name); err == nil {
		perm, keep = fi.Mode().Perm(), true
	}

	tmp, err := createTemp(filepath.Dir(name), perm)
	if err != nil {
		return fmt.Errorf("cannot create output in %q: %w", filepath.Dir(name), err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = libio.EncodePNG(tmp, img, level); err != nil {
		return fmt.Errorf("cannot encode %q: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", name, err)
	}
	// the umask may have narrowed the mode on creation
	if keep {
		if err = os.Chmod(tmp.Name(), perm); err != nil {
			return fmt.Errorf("cannot set mode of %q: %w", name, err)
		}
	}
	if err = os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("cannot replace %q: %w", name, err)
	}

	return nil
}

// createTemp is os.CreateTemp with a caller chosen mode, which is still
// subject to the umask.
func createTemp(dir string, perm fs.FileMode) (*os.File, error) {
	for try := 0; ; try++ {
		name := filepath.Join(dir, ".orm-"+strconv.FormatUint(uint64(rand.Uint32()), 36)+".png.tmp")
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
		if errors.Is(err, fs.ErrExist) && try < 100 {
			continue
		}
		return f, err
	}
}
