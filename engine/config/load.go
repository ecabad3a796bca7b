package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a configuration file.
type Format int

const (
	// FormatTOML is the default encoding, used for ".toml" and extensionless files.
	FormatTOML Format = iota
	// FormatYAML is used for ".yaml" and ".yml" files.
	FormatYAML
)

// ErrUnsupportedFormat is returned for configuration files with an unknown extension.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath picks the encoding from a file extension.
//
// Parameters:
//   - path: the configuration file path
//
// Returns:
//   - Format: the encoding
//   - error: ErrUnsupportedFormat (wrapped) for unknown extensions
func FormatForPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatTOML, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Load reads a configuration file on top of Default and validates the result. An empty
// path returns the validated defaults. A leading "~" in the path is expanded to the home
// directory.
//
// Parameters:
//   - path: the configuration file path, or ""
//
// Returns:
//   - Config: the loaded configuration
//   - error: an open, decode or validation error
func Load(path string) (Config, error) {
	if path == "" {
		c := Default()
		return c, c.Validate()
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: expand %q: %w", path, err)
	}
	format, err := FormatForPath(expanded)
	if err != nil {
		return Config{}, err
	}

	f, err := os.Open(expanded)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return LoadReader(f, format)
}

// LoadReader decodes a configuration on top of Default and validates the result. Keys the
// Config does not know are rejected so typos do not go unnoticed.
//
// Parameters:
//   - r: the encoded configuration
//   - format: its encoding
//
// Returns:
//   - Config: the decoded configuration
//   - error: a decode or validation error
func LoadReader(r io.Reader, format Format) (Config, error) {
	c := Default()
	switch format {
	case FormatTOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&c); err != nil {
			return Config{}, fmt.Errorf("config: decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
