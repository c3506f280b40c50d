// Package config loads crowbar's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/mouse-blink/crowbar/internal/domain"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".crowbar.yaml"

// Config is the root of the configuration file.
type Config struct {
	Toolchain Toolchain `yaml:"toolchain"`
	Workspace Workspace `yaml:"workspace"`
	Log       Log       `yaml:"log"`
}

// Toolchain selects the compiler used by run and edit.
type Toolchain struct {
	Compiler string   `yaml:"compiler"`
	Args     []string `yaml:"args"`
	// Timeout bounds one compile and run, as a Go duration string.
	Timeout string `yaml:"timeout"`
}

// Workspace controls the scratch directories builds run in.
type Workspace struct {
	Pattern string `yaml:"pattern"`
}

// Log selects the logger's level and format.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// Caller adds the source location to every record.
	Caller bool `yaml:"caller"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Toolchain: Toolchain{
			Compiler: "rustc",
			Timeout:  "30s",
		},
		Workspace: Workspace{
			Pattern: domain.DefaultWorkspacePattern,
		},
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults; a malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks fields that YAML decoding cannot.
func (c Config) Validate() error {
	if c.Toolchain.Compiler == "" {
		return errors.New("toolchain.compiler must not be empty")
	}

	if _, err := c.Toolchain.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// TimeoutDuration parses Timeout. An empty value means no timeout.
func (t Toolchain) TimeoutDuration() (time.Duration, error) {
	if t.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(t.Timeout)
	if err != nil {
		return 0, fmt.Errorf("toolchain.timeout: %w", err)
	}

	if d < 0 {
		return 0, fmt.Errorf("toolchain.timeout: negative duration %s", t.Timeout)
	}

	return d, nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.MarshalWithOptions(c, yaml.Indent(2))
}
