package constants

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/fpskit/internal/core/observability/log"
)

// Format names a constants file encoding.
type Format uint8

const (
	FormatYAML Format = iota
	FormatTOML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

type loadOptions struct {
	logger log.Log
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithLogger makes Load report what it read. Load is silent by default.
func WithLogger(logger log.Log) LoadOption {
	return func(o *loadOptions) { o.logger = logger }
}

// Load reads a table from path on top of Default. A missing file yields the
// defaults. The result is validated.
func Load(path string, opts ...LoadOption) (*Constants, error) {
	o := loadOptions{logger: log.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.With(log.String("path", path))

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("constants file not found, using defaults")
			return Default(), nil
		}
		return nil, fmt.Errorf("reading constants %s: %w", path, err)
	}

	c, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("parsing constants %s: %w", path, err)
	}
	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf("constants %s: %w", path, err)
	}

	logger.Debug("constants loaded",
		log.String("format", format.String()),
		log.String("fingerprint", c.Fingerprint()),
	)
	return c, nil
}

// Decode reads a table in the given format on top of Default. Unknown keys
// are rejected. An empty document yields the defaults. Decode does not
// validate.
func Decode(r io.Reader, format Format) (*Constants, error) {
	c := Default()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(c)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys: %v", undecoded)
		}

	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return c, nil
}

// Encode writes c in the given format using the same keys Decode accepts.
func Encode(w io.Writer, c *Constants, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(c)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
