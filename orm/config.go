package orm

import (
	"image/png"
	"path/filepath"
	"strings"
)

// DefaultSuffix is appended to the directory name to form the output file name.
const DefaultSuffix = "_orm_map.png"

// Config is the complete, immutable input of one build.
type Config struct {
	// Directory is scanned for sources and receives the output. Defaults to ".".
	Directory string
	// Overrides are explicit source paths that bypass discovery.
	Overrides Sources
	// Resolution is used for roles without a source. Nil when not given.
	Resolution *Resolution
	// Naming controls source discovery, nil means DefaultNaming.
	Naming *Naming
	// Suffix of the output file name, DefaultSuffix when empty.
	Suffix string
	// Compression is the png compression level of the output.
	Compression png.CompressionLevel
}

// normalize normalizes the Config.
func (c *Config) normalize() Config {
	if c == nil {
		return Config{Directory: ".", Suffix: DefaultSuffix}
	}

	out := *c
	if strings.TrimSpace(out.Directory) == "" {
		out.Directory = "."
	}
	if out.Suffix == "" {
		out.Suffix = DefaultSuffix
	}
	if out.Resolution != nil {
		res := *out.Resolution
		out.Resolution = &res
	}
	n := out.Naming.normalize()
	out.Naming = &n

	return out
}

// OutputPath is "<dir>/<base(dir)><suffix>". The base name is taken from the
// absolute directory so "." and trailing separators name the folder itself.
func OutputPath(dir, suffix string) (string, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	base := filepath.Base(abs)
	if base == string(filepath.Separator) || base == "." || filepath.VolumeName(abs)+string(filepath.Separator) == abs {
		base = ""
	}

	return filepath.Join(dir, base+suffix), nil
}
