package config

import (
	"flag"
	"io"

	"github.com/dleeaw/my3dObject/common"
)

// Flags are the command line overrides of the viewer. Zero values leave the configuration
// untouched.
type Flags struct {
	ConfigPath string
	Shape      string
	Width      int
	Height     int
	Profile    bool
}

// ParseFlags parses the viewer's command line.
//
// Parameters:
//   - name: the program name used in usage output
//   - args: the arguments without the program name
//   - output: where usage and parse errors are written
//
// Returns:
//   - Flags: the parsed overrides
//   - error: flag.ErrHelp for -h, or a parse error
func ParseFlags(name string, args []string, output io.Writer) (Flags, error) {
	var f Flags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.ConfigPath, "config", "", "path to a .toml or .yaml configuration file")
	fs.StringVar(&f.Shape, "shape", "", "initial shape: triangle, square, circle, cube, sphere or cone")
	fs.IntVar(&f.Width, "width", 0, "window width in pixels")
	fs.IntVar(&f.Height, "height", 0, "window height in pixels")
	fs.BoolVar(&f.Profile, "profile", false, "log frame statistics periodically")
	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	return f, nil
}

// ApplyFlags overrides the configuration with the non-zero flags and validates the result.
//
// Parameters:
//   - f: the parsed flags
//
// Returns:
//   - error: the validation error, or nil
func (c *Config) ApplyFlags(f Flags) error {
	c.Scene.Shape = common.Coalesce(f.Shape, c.Scene.Shape)
	c.Window.Width = common.Coalesce(f.Width, c.Window.Width)
	c.Window.Height = common.Coalesce(f.Height, c.Window.Height)
	c.Profile.Enabled = c.Profile.Enabled || f.Profile
	return c.Validate()
}
