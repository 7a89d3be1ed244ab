package osm2lanes

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config Optional file-based tuning of the inference defaults, meant for the
// command line tool. Everything here maps onto engine options.
type Config struct {
	Country           string         `yaml:"country"`
	Subdivision       string         `yaml:"subdivision"`
	InferredSidewalks bool           `yaml:"inferred_sidewalks"`
	ErrorOnWarnings   bool           `yaml:"error_on_warnings"`
	DefaultLanes      map[string]int `yaml:"default_lanes"`
}

// ReadConfig Loads a YAML configuration file
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Config file open")
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "Config file decode")
	}
	return cfg, nil
}

// EngineOptions Translates the file into engine options
func (cfg *Config) EngineOptions() []func(*Engine) {
	options := []func(*Engine){
		WithInferredSidewalks(cfg.InferredSidewalks),
		WithErrorOnWarnings(cfg.ErrorOnWarnings),
	}
	if cfg.DefaultLanes != nil {
		options = append(options, WithDefaultLanes(cfg.DefaultLanes))
	}
	return options
}

// Locale Resolves the configured locale
func (cfg *Config) Locale() Locale {
	return ResolveLocale(cfg.Country, cfg.Subdivision)
}
