package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"orm-texture-builder/libio"
	"orm-texture-builder/orm"

	"github.com/charmbracelet/log"
)

const (
	exitOk    = 0
	exitErr   = 1
	exitUsage = 2
)

type cliArgs struct {
	config     string
	directory  string
	ao         string
	roughness  string
	metalness  string
	resolution string
	suffix     string
	compress   string
	quiet      bool
	verbose    bool
}

// short flag name -> long flag name
var aliases = map[string]string{
	"d":   "directory",
	"ao":  "ambient_occlusion",
	"r":   "roughness",
	"m":   "metalness",
	"res": "resolution",
	"c":   "config",
	"q":   "quiet",
	"v":   "verbose",
}

func registerFlags(flags *flag.FlagSet, args *cliArgs) {
	flags.StringVar(&args.directory, "directory", args.directory, "directory to look for files and deposit the final ORM map")
	flags.StringVar(&args.directory, "d", args.directory, "shorthand for directory")
	flags.StringVar(&args.ao, "ambient_occlusion", args.ao, "ambient occlusion image location")
	flags.StringVar(&args.ao, "ao", args.ao, "shorthand for ambient_occlusion")
	flags.StringVar(&args.roughness, "roughness", args.roughness, "roughness image location")
	flags.StringVar(&args.roughness, "r", args.roughness, "shorthand for roughness")
	flags.StringVar(&args.metalness, "metalness", args.metalness, "metalness image location")
	flags.StringVar(&args.metalness, "m", args.metalness, "shorthand for metalness")
	flags.StringVar(&args.resolution, "resolution", args.resolution, "resolution specified as {width}x{height}, required when a file is missing")
	flags.StringVar(&args.resolution, "res", args.resolution, "shorthand for resolution")
	flags.StringVar(&args.config, "config", args.config, "toml file with default arguments")
	flags.StringVar(&args.config, "c", args.config, "shorthand for config")
	flags.StringVar(&args.suffix, "suffix", args.suffix, "the result file suffix")
	flags.StringVar(&args.compress, "compress", args.compress, "png compression; default, none, speed or best")
	flags.BoolVar(&args.quiet, "quiet", args.quiet, "disables informational logging")
	flags.BoolVar(&args.quiet, "q", args.quiet, "shorthand for quiet")
	flags.BoolVar(&args.verbose, "verbose", args.verbose, "enables debug logging")
	flags.BoolVar(&args.verbose, "v", args.verbose, "shorthand for verbose")
}

func printUsage(flags *flag.FlagSet, w io.Writer) {
	exe := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "Usage: %s [arguments]\n\n", exe)
	fmt.Fprintf(w, "Packs *.AmbientOcclusion, *.Roughness and *.Metalness images (.png, .jpg, .jpeg)\n")
	fmt.Fprintf(w, "into the red, green and blue channels of <directory>/<directory name>%s.\n", orm.DefaultSuffix)
	fmt.Fprintf(w, "Files that do not follow the naming convention can be given with their flag.\n")
	fmt.Fprintf(w, "If one of the three files is missing a resolution must be given to create an empty channel.\n\n")
	fmt.Fprintf(w, "The arguments are:\n\n")
	flags.SetOutput(w)
	flags.PrintDefaults()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(argv []string, stderr io.Writer) int {
	args := cliArgs{}
	flags := flag.NewFlagSet("ormbuild", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	registerFlags(flags, &args)

	if err := flags.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(flags, stderr)
			return exitOk
		}
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(flags, stderr)
		return exitUsage
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments %q\n\n", flags.Args())
		printUsage(flags, stderr)
		return exitUsage
	}

	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := aliases[name]; ok {
			name = long
		}
		set[name] = true
	})

	logger := newLogger(stderr)

	cfg, err := buildConfig(args, set, logger)
	if err != nil {
		return report(logger, flags, stderr, err)
	}

	start := time.Now()
	plan, err := orm.Prepare(cfg)
	if err != nil {
		return report(logger, flags, stderr, err)
	}

	for _, a := range plan.Ambiguities {
		logger.Warn("several files match, using the first", "role", a.Role.Short(), "path", a.Chosen, "ignored", a.Rejected)
	}
	for _, r := range orm.Roles {
		path := plan.Sources.Get(r)
		if path == "" {
			path = "None"
		}
		logger.Infof("%s file: %s", r.Short(), path)
	}
	if res := plan.Config.Resolution; res != nil && plan.Sources.Complete() {
		logger.Debug("all files present, ignoring resolution", "resolution", res.String())
	}

	if err := plan.Build(); err != nil {
		return report(logger, flags, stderr, err)
	}

	logger.Info("wrote ORM map", "path", filepath.ToSlash(filepath.Clean(plan.Output)), "took", time.Since(start).Round(time.Millisecond))
	return exitOk
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "ormbuild",
		Level:  log.InfoLevel,
	})
}

// buildConfig merges defaults, the optional config file and the flags that
// were given explicitly, in that order of precedence.
func buildConfig(args cliArgs, set map[string]bool, logger *log.Logger) (*orm.Config, error) {
	merged := fileConfig{}
	if args.config != "" {
		fc, err := loadConfigFile(args.config)
		if err != nil {
			return nil, err
		}
		merged = *fc
		logger.Debug("loaded config", "path", args.config)
	}

	override := func(name string, dst *string, v string) {
		if set[name] {
			*dst = v
		}
	}
	override("directory", &merged.Directory, args.directory)
	override("ambient_occlusion", &merged.AmbientOcclusion, args.ao)
	override("roughness", &merged.Roughness, args.roughness)
	override("metalness", &merged.Metalness, args.metalness)
	override("resolution", &merged.Resolution, args.resolution)
	override("suffix", &merged.Suffix, args.suffix)
	override("compress", &merged.Compress, args.compress)
	if set["quiet"] {
		merged.Quiet = args.quiet
	}
	if set["verbose"] {
		merged.Verbose = args.verbose
	}

	switch {
	case merged.Verbose:
		logger.SetLevel(log.DebugLevel)
	case merged.Quiet:
		logger.SetLevel(log.WarnLevel)
	}

	cfg := &orm.Config{
		Directory: merged.Directory,
		Overrides: orm.Sources{merged.AmbientOcclusion, merged.Roughness, merged.Metalness},
		Suffix:    merged.Suffix,
		Naming: &orm.Naming{
			Tokens:     [len(orm.Roles)]string{merged.Naming.AmbientOcclusion, merged.Naming.Roughness, merged.Naming.Metalness},
			Extensions: merged.Naming.Extensions,
		},
	}

	if merged.Resolution != "" {
		res, err := orm.ParseResolution(merged.Resolution)
		if err != nil {
			return nil, err
		}
		cfg.Resolution = &res
	}

	level, err := libio.ParseCompression(merged.Compress)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", orm.ErrUsage, err)
	}
	cfg.Compression = level

	return cfg, nil
}

// report logs err and maps it to the process exit code.
func report(logger *log.Logger, flags *flag.FlagSet, stderr io.Writer, err error) int {
	logger.Error(err.Error())
	if errors.Is(err, orm.ErrUsage) {
		fmt.Fprintln(stderr)
		printUsage(flags, stderr)
		return exitUsage
	}
	return exitErr
}
