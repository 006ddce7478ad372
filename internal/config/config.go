package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "$HOME/.config/lifo/config.yaml"

const (
	FormatJSON = "json"
	FormatText = "text"
)

// Load reads the YAML config at path after expanding environment variables in it.
// A missing file at DefaultPath is not an error.
func Load(path string) (ret Config, _ error) {
	ret = Default()

	marshaled, err := os.ReadFile(os.ExpandEnv(path))
	if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
		return ret, nil
	}

	if err != nil {
		return ret, err
	}

	if err := yaml.Unmarshal(marshaled, &ret); err != nil {
		return ret, fmt.Errorf("parse %s: %w", path, err)
	}

	switch ret.Format {
	case FormatJSON, FormatText:
	default:
		return ret, fmt.Errorf("invalid format [%s]", ret.Format)
	}

	return ret, nil
}

func Default() Config {
	return Config{
		Format: FormatJSON,
	}
}

type Config struct {
	Debug   bool     `yaml:"debug"`
	Format  string   `yaml:"format"`
	Tags    []string `yaml:"tags"`
	LogFile string   `yaml:"log_file"`
}
