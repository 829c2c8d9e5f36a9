package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/fpskit/internal/core/observability/log"
	"github.com/zeusync/fpskit/internal/injector"
	"github.com/zeusync/fpskit/pkg/constants"
	"github.com/zeusync/fpskit/pkg/general"
)

var errValidationFailed = errors.New("validation failed")

type commonFlags struct {
	config   string
	logLevel string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "constants.yaml", "constants file (.yaml, .yml, .toml, .json)")
	fs.StringVar(&c.logLevel, "log-level", "warn", "debug, info, warn or error")
}

func (c *commonFlags) toolkit() (*injector.Toolkit, error) {
	toolkit, err := injector.InitializeToolkit(log.ParseLevel(c.logLevel), injector.ConstantsPath(c.config))
	if err != nil {
		return nil, err
	}
	constants.Install(toolkit.Constants)
	return toolkit, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func runExport(args []string, stdout io.Writer) error {
	var common commonFlags
	fs := newFlagSet("export")
	common.register(fs)
	format := fs.String("format", "json", "json, yaml, toml or js")
	global := fs.String("global", constants.DefaultGlobalName, "window property assigned by -format js")
	if err := fs.Parse(args); err != nil {
		return err
	}

	toolkit, err := common.toolkit()
	if err != nil {
		return err
	}
	toolkit.Logger.Info("exporting constants",
		log.String("format", *format),
		log.String("fingerprint", toolkit.Constants.Fingerprint()),
	)

	switch *format {
	case "js":
		script, err := constants.MarshalGlobalScript(toolkit.Constants, *global)
		if err != nil {
			return err
		}
		_, err = stdout.Write(script)
		return err
	case "json":
		return constants.Encode(stdout, toolkit.Constants, constants.FormatJSON)
	case "yaml":
		return constants.Encode(stdout, toolkit.Constants, constants.FormatYAML)
	case "toml":
		return constants.Encode(stdout, toolkit.Constants, constants.FormatTOML)
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownFormat, *format)
	}
}

func runValidate(args []string, stdout io.Writer) error {
	fs := newFlagSet("validate")
	logLevel := fs.String("log-level", "warn", "debug, info, warn or error")
	parallel := fs.Int("parallel", 4, "files checked at once")
	if err := fs.Parse(args); err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) == 0 {
		return errors.New("validate: no files given")
	}
	if *parallel < 1 {
		return fmt.Errorf("validate: -parallel must be at least 1, got %d", *parallel)
	}

	logger := log.New(log.ParseLevel(*logLevel), log.WithEncoding("console"))
	results := make([]string, len(paths))
	var failed atomic.Int32

	var g errgroup.Group
	g.SetLimit(*parallel)
	for i, path := range paths {
		g.Go(func() error {
			if _, err := os.Stat(path); err != nil {
				failed.Add(1)
				results[i] = fmt.Sprintf("FAIL %s: %v", path, err)
				return nil
			}
			c, err := constants.Load(path, constants.WithLogger(logger))
			if err != nil {
				failed.Add(1)
				logger.Warn("invalid constants", log.String("path", path), log.Error(err))
				results[i] = fmt.Sprintf("FAIL %s: %v", path, err)
				return nil
			}
			results[i] = fmt.Sprintf("ok   %s %s", path, c.Fingerprint())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, line := range results {
		if _, err := fmt.Fprintln(stdout, line); err != nil {
			return err
		}
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%w: %d of %d files", errValidationFailed, n, len(paths))
	}
	return nil
}

func runFingerprint(args []string, stdout io.Writer) error {
	var common commonFlags
	fs := newFlagSet("fingerprint")
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	toolkit, err := common.toolkit()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, toolkit.Constants.Fingerprint())
	return err
}

func runDamage(args []string, stdout io.Writer) error {
	var common commonFlags
	fs := newFlagSet("damage")
	common.register(fs)
	base := fs.Float64("base", 0, "base damage, defaults to the rifle's")
	distance := fs.Float64("distance", 0, "distance to target")
	if err := fs.Parse(args); err != nil {
		return err
	}

	toolkit, err := common.toolkit()
	if err != nil {
		return err
	}
	if *base == 0 {
		*base = toolkit.Constants.Weapons.Rifle.Damage
	}

	damage := toolkit.Utils.Game.CalculateDamage(*base, *distance)
	_, err = fmt.Fprintf(stdout, "%v damage at %v\n", general.FormatNumber(damage, 2), general.FormatNumber(*distance, 2))
	return err
}
