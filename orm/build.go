package orm

// Plan is the outcome of source resolution and validation, ready to be built.
type Plan struct {
	Config      Config
	Sources     Sources
	Ambiguities []Ambiguity
	Output      string
}

// Prepare resolves the sources and validates the parameters. It performs no
// image I/O, so usage errors surface before anything is read or written.
func Prepare(cfg *Config) (*Plan, error) {
	c := cfg.normalize()

	sources, ambiguities, err := ResolveSources(c.Directory, c.Overrides, c.Naming)
	if err != nil {
		return nil, err
	}

	if err := Validate(sources, c.Resolution); err != nil {
		return nil, err
	}

	out, err := OutputPath(c.Directory, c.Suffix)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Config:      c,
		Sources:     sources,
		Ambiguities: ambiguities,
		Output:      out,
	}, nil
}

// Build materializes the channels, packs them and writes the output file.
func (p *Plan) Build() error {
	ch, err := Materialize(p.Sources, p.Config.Resolution)
	if err != nil {
		return err
	}

	packed, err := Pack(ch)
	if err != nil {
		return err
	}

	return WriteTexture(p.Output, packed, p.Config.Compression)
}

// Build runs the whole pipeline and returns the plan it executed.
func Build(cfg *Config) (*Plan, error) {
	p, err := Prepare(cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Build(); err != nil {
		return p, err
	}
	return p, nil
}
