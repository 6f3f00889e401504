package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"orm-texture-builder/orm"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the command line arguments in a TOML file.
type fileConfig struct {
	Directory        string       `toml:"directory"`
	Resolution       string       `toml:"resolution"`
	AmbientOcclusion string       `toml:"ambient_occlusion"`
	Roughness        string       `toml:"roughness"`
	Metalness        string       `toml:"metalness"`
	Suffix           string       `toml:"suffix"`
	Compress         string       `toml:"compress"`
	Quiet            bool         `toml:"quiet"`
	Verbose          bool         `toml:"verbose"`
	Naming           namingConfig `toml:"naming"`
}

type namingConfig struct {
	AmbientOcclusion string   `toml:"ambient_occlusion"`
	Roughness        string   `toml:"roughness"`
	Metalness        string   `toml:"metalness"`
	Extensions       []string `toml:"extensions"`
}

// loadConfigFile decodes the TOML file at name. Relative paths inside the file
// are resolved against the directory containing it.
func loadConfigFile(name string) (*fileConfig, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	cfg := &fileConfig{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: cannot parse config %q: %v", orm.ErrUsage, name, err)
	}

	base := filepath.Dir(name)
	for _, p := range []*string{&cfg.Directory, &cfg.AmbientOcclusion, &cfg.Roughness, &cfg.Metalness} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}

	return cfg, nil
}
