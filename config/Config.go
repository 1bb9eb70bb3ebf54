// Package config loads the optional per-project snapreview settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/reaandrew/snapreview/utils"
)

// DefaultFiles are tried in order when no config file is given explicitly.
var DefaultFiles = []string{".snapreview.yaml", ".snapreview.yml", ".snapreview.toml"}

type Config struct {
	// Ignore holds glob patterns matched against finding identifiers.
	Ignore         []string `yaml:"ignore" toml:"ignore"`
	Reports        []string `yaml:"reports" toml:"reports"`
	OutputDir      string   `yaml:"output_dir" toml:"output_dir"`
	FailOnFindings bool     `yaml:"fail_on_findings" toml:"fail_on_findings"`
}

// Load reads path, or the first of DefaultFiles found in dir when path is
// empty. A missing default file is not an error.
func Load(dir, path string) (Config, error) {
	if path == "" {
		candidates := make([]string, len(DefaultFiles))
		for i, name := range DefaultFiles {
			candidates[i] = filepath.Join(dir, name)
		}
		found, ok := utils.FirstExisting(candidates...)
		if !ok {
			log.Debug("No snapreview config file found")
			return Config{}, nil
		}
		path = found
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config file format '%s'", path)
	}

	log.Debugf("Loaded config from %s", path)
	return cfg, nil
}
