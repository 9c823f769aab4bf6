package site

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the settings file at the root of the site.
const ConfigFile = "blog.cfg"

// Config contains configuration data from the blog.cfg file.
type Config struct {
	Title   string            `toml:"title"`
	Expires Duration          `toml:"expires"`
	Headers map[string]string `toml:"headers"`
}

// Config returns configuration from the blog.cfg file.
// It is not an error if the file does not exist; the zero Config is returned.
func (s *Site) Config() (*Config, error) {
	if s == nil || s.fs == nil {
		return nil, ErrNotLoaded
	}
	var cfg Config
	cfgBytes, err := fs.ReadFile(s.fs, ConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("Cannot read config file: %w", err)
	}
	err = toml.Unmarshal(cfgBytes, &cfg)
	if err != nil {
		return nil, fmt.Errorf("Cannot parse config file: %w", err)
	}
	return &cfg, nil
}
