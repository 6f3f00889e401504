package orm

import (
	"fmt"
	"strings"

	"orm-texture-builder/libio"
)

// CheckDimensions verifies that all channels share one size.
func CheckDimensions(ch Channels) error {
	for _, r := range Roles {
		if ch[r] == nil {
			return fmt.Errorf("%s channel is missing", r)
		}
		if ch[r].Channels != 1 {
			return fmt.Errorf("%s channel has %d components, expected 1", r, ch[r].Channels)
		}
	}

	first := ch[Roles[0]]
	for _, r := range Roles[1:] {
		if ch[r].Width != first.Width || ch[r].Height != first.Height {
			return fmt.Errorf("%w: %s", ErrDimensionMismatch, describeSizes(ch))
		}
	}
	return nil
}

func describeSizes(ch Channels) string {
	parts := make([]string, len(Roles))
	for i, r := range Roles {
		parts[i] = fmt.Sprintf("%s %dx%d", r, ch[r].Width, ch[r].Height)
	}
	return strings.Join(parts, ", ")
}

// Pack interleaves the channels into one three channel image:
// red is ambient occlusion, green roughness and blue metalness.
func Pack(ch Channels) (*libio.IntImage, error) {
	if err := CheckDimensions(ch); err != nil {
		return nil, err
	}

	// red comes along with the expansion, the other channels start at zero
	packed := ch[AmbientOcclusion].ToChannels(len(Roles))

	count := packed.Count()
	for _, r := range Roles[1:] {
		src := ch[r].Pix
		for i := 0; i < count; i++ {
			packed.Pix[i*packed.Channels+int(r)] = src[i]
		}
	}

	return packed, nil
}
