package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	OutputText   OutputFormat = "text"
	OutputJSON   OutputFormat = "json"
	OutputSExpr  OutputFormat = "sexpr"
	OutputLitter OutputFormat = "litter"
	OutputSource OutputFormat = "source"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// DefaultFileNames are searched, in order, in the working directory when no
// config file is given explicitly.
var DefaultFileNames = []string{"elgol.toml", "elgol.yaml", "elgol.yml"}

// Config holds the CLI settings. The lexer and parser take no configuration.
type Config struct {
	Output   OutputFormat `toml:"output" yaml:"output"`
	Color    bool         `toml:"color" yaml:"color"`
	Snippets bool         `toml:"snippets" yaml:"snippets"`
	LogLevel string       `toml:"log_level" yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Output:   OutputText,
		Color:    true,
		Snippets: true,
		LogLevel: "warn",
	}
}

// Load reads path, or the first default file found when path is empty.
// A missing default file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, name := range DefaultFileNames {
			cfg, err := LoadFile(name)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return cfg, err
		}
		return Default(), nil
	}

	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := LoadFromBytes(content, detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromBytes decodes content over the defaults and validates the result.
func LoadFromBytes(content []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputSExpr, OutputLitter, OutputSource:
	default:
		return fmt.Errorf("invalid output format %q", c.Output)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	return nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
