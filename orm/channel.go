package orm

import (
	"fmt"

	"orm-texture-builder/libio"
)

// Channels holds one single channel buffer per role.
type Channels [len(Roles)]*libio.IntImage

// LoadChannel produces the buffer of one role: the luminance of the source
// file when there is one, otherwise a zero filled buffer of size res.
func LoadChannel(r Role, source string, res *Resolution) (*libio.IntImage, error) {
	if source != "" {
		img, err := libio.DecodeGrayFile(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q: %w", ErrDecode, r, source, err)
		}
		return img, nil
	}

	if res == nil {
		return nil, fmt.Errorf("%w: no source and no resolution for %s", ErrUsage, r)
	}

	return libio.NewBlankImage(1, res.Width, res.Height), nil
}

// Materialize loads or synthesizes every channel. Loaded images keep their
// native size; nothing is resampled.
func Materialize(sources Sources, res *Resolution) (Channels, error) {
	var ch Channels
	for _, r := range Roles {
		img, err := LoadChannel(r, sources.Get(r), res)
		if err != nil {
			return Channels{}, err
		}
		ch[r] = img
	}
	return ch, nil
}
