package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/haa-logo/asset"
	"github.com/lixenwraith/haa-logo/parameter"
)

// LoadAuto loads config with priority: customPath > DefaultConfigFile > embedded,
// then applies HAA_* environment overrides and validates the result
func LoadAuto(customPath string) (Config, error) {
	var (
		cfg    Config
		err    error
		source string
	)

	switch {
	case customPath != "":
		source = customPath
		cfg, err = LoadFile(customPath)
	case fileExists(parameter.DefaultConfigFile):
		source = parameter.DefaultConfigFile
		cfg, err = LoadFile(parameter.DefaultConfigFile)
	default:
		source = "embedded"
		cfg, err = Parse([]byte(asset.DefaultConfig))
	}
	if err != nil {
		return Config{}, err
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config from %s: %w", source, err)
	}

	log.WithField("source", source).Debug("Config loaded")
	return cfg, nil
}

// LoadFile parses a YAML config file over the defaults
func LoadFile(path string) (Config, error) {
	if !fileExists(path) {
		return Config{}, fmt.Errorf("config file not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default, so partial documents keep the built-in values
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables: HAA_<KEY> for runtime,
// HAA_VISUAL_<KEY> and HAA_TIMING_<KEY> for the matching sections, where KEY
// is the field name split on words. Unset variables leave the current values
// untouched
func ApplyEnv(cfg *Config) error {
	sections := []struct {
		prefix string
		target any
	}{
		{parameter.EnvPrefix, &cfg.Runtime},
		{parameter.EnvPrefix + "_VISUAL", &cfg.Visual},
		{parameter.EnvPrefix + "_TIMING", &cfg.Timing},
	}
	for _, s := range sections {
		if err := envconfig.Process(s.prefix, s.target); err != nil {
			return fmt.Errorf("env overrides (%s_*): %w", s.prefix, err)
		}
	}
	return nil
}

// Marshal renders the effective config as YAML
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
