package orm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxDimension is the largest width or height a png can hold.
const MaxDimension = 1<<31 - 1

// Resolution is the size of synthesized channels.
type Resolution struct {
	Width, Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ParseResolution parses "WIDTHxHEIGHT". Both parts must be plain decimal
// digits and non-zero.
func ParseResolution(s string) (Resolution, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 || !isDigits(parts[0]) || !isDigits(parts[1]) {
		return Resolution{}, fmt.Errorf("%w: specify resolution as (WIDTH)x(HEIGHT) with a decimal numeric value for width and height, got %q", ErrUsage, s)
	}

	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: invalid width %q: %v", ErrUsage, parts[0], err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: invalid height %q: %v", ErrUsage, parts[1], err)
	}

	if w == 0 || h == 0 {
		return Resolution{}, fmt.Errorf("%w: resolution %q has zero area", ErrUsage, s)
	}

	res := Resolution{Width: w, Height: h}
	if err := res.check(); err != nil {
		return Resolution{}, err
	}
	return res, nil
}

// check rejects sizes that cannot be allocated as a packed texture or
// encoded as png.
func (r Resolution) check() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: resolution %s must be positive", ErrUsage, r)
	}
	if r.Width > MaxDimension || r.Height > MaxDimension {
		return fmt.Errorf("%w: resolution %s exceeds the png limit of %d pixels per side", ErrUsage, r, MaxDimension)
	}
	// 4 bytes per pixel is the widest buffer the encoder builds
	if r.Width > math.MaxInt/4/r.Height {
		return fmt.Errorf("%w: resolution %s is too large to allocate", ErrUsage, r)
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Validate checks that every channel can be produced: either a source exists
// or a resolution to synthesize a blank channel was given.
func Validate(sources Sources, res *Resolution) error {
	if res != nil {
		if err := res.check(); err != nil {
			return err
		}
	}

	missing := sources.Missing()
	if len(missing) == 0 || res != nil {
		return nil
	}

	names := make([]string, len(missing))
	for i, r := range missing {
		names[i] = r.String()
	}
	return fmt.Errorf("%w: no source for %s, a resolution must be specified when a file is missing", ErrUsage, strings.Join(names, ", "))
}
