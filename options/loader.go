package options

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the options file name searched for in the
// current working directory.
const DefaultConfigFile = "pagegrid.yaml"

// appName is the application name used for XDG directory paths.
const appName = "pagegrid"

// Load reads options from a YAML file.
// Missing keys keep their default values, so a partial file that only
// overrides a single option is valid. If the file does not exist,
// ErrConfigNotFound is returned.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided options path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Save writes the options to a YAML file at path.
func (o *Options) Save(path string) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Find searches for an options file in the following order:
//  1. If explicit is non-empty, use it directly
//  2. pagegrid.yaml in the current directory
//  3. config.yaml in the XDG config directory (~/.config/pagegrid)
//
// Returns the path of the first file found, or empty string if none
// exists. Finding nothing is not an error: callers fall back to
// Default().
func Find(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(xdg.ConfigHome, appName, "config.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}
