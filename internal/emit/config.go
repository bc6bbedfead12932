package emit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"traitgen/internal/schema"
)

// Config holds configuration for module emission.
type Config struct {
	// ModuleName is the name of the generated module directory.
	ModuleName string `yaml:"module"`

	// RootName is the classname assigned to the document root.
	RootName string `yaml:"root_name"`

	// OutputDir is the directory the module is written into.
	OutputDir string `yaml:"output_dir"`

	// Encoding is recorded in every generated file header.
	Encoding string `yaml:"encoding"`

	// ExtraImports are appended verbatim to the module's import list.
	ExtraImports []string `yaml:"extra_imports"`
}

// DefaultConfig returns the default emission configuration.
func DefaultConfig() Config {
	return Config{
		ModuleName: "api",
		RootName:   schema.DefaultRootName,
		OutputDir:  ".",
		Encoding:   "utf-8",
	}
}

// LoadConfig loads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML data into a Config, filling defaults for omitted
// fields.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return cfg, nil
}

// applyDefaults fills in default values for empty fields.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()

	if cfg.ModuleName == "" {
		cfg.ModuleName = def.ModuleName
	}

	if cfg.RootName == "" {
		cfg.RootName = def.RootName
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}

	if cfg.Encoding == "" {
		cfg.Encoding = def.Encoding
	}
}
