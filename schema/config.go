// Package schema loads variable-pattern rule sets for the parser.
//
// A schema file describes everything a ReaderParser needs: the
// delimiter alphabet and an ordered list of named variable patterns.
// Order matters: the first variable is the header pattern, and
// earlier variables win priority ties.
//
// Example schema file (.logsurgeon.yaml):
//
//	delimiters: " \t\r\n:,!;%@/()[]."
//	variables:
//	  - name: TIMESTAMP
//	    pattern: '(?<hour>\d{2}):(?<minute>\d{2}):(?<second>\d{2})'
//	  - name: LEVEL
//	    pattern: '(?<level>(INFO)|(WARN)|(ERROR))'
package schema

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	logsurgeon "github.com/y-scope/log-surgeon"
)

type (
	// VariableRule is one named variable pattern of a schema, in
	// declaration order.
	VariableRule struct {
		Name    string `yaml:"name"`
		Pattern string `yaml:"pattern"`
	}

	// Config is a rule set loaded from a schema file or built in code.
	Config struct {
		// Delimiters overrides the default delimiter alphabet when
		// non-empty.
		Delimiters string `yaml:"delimiters,omitempty"`

		// Variables is the ordered pattern list; the first entry is
		// the header pattern.
		Variables []VariableRule `yaml:"variables"`
	}
)

const (
	// DefaultConfigPath is the conventional schema file location.
	DefaultConfigPath = ".logsurgeon.yaml"

	// ConfigPathEnvVar overrides the schema file location.
	ConfigPathEnvVar = "LOG_SURGEON_SCHEMA"
)

// Sentinel errors for schema loading.
var (
	ErrNoVariables = errors.New("schema declares no variables")
)

// LoadConfig reads a schema file. Unlike optional feature config, a
// parser cannot run without patterns, so every failure is an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", path, err)
	}

	if len(cfg.Variables) == 0 {
		return nil, fmt.Errorf("schema %s: %w", path, ErrNoVariables)
	}

	slog.Debug("Loaded schema",
		slog.String("path", path),
		slog.Int("variables", len(cfg.Variables)),
	)

	return cfg, nil
}

// ConfigPath resolves the schema location: the environment override if
// set, else the conventional path.
func ConfigPath() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		return path
	}
	return DefaultConfigPath
}

// NewParser builds and compiles a ReaderParser from the rule set.
func (c *Config) NewParser() (*logsurgeon.ReaderParser, error) {
	p := logsurgeon.NewReaderParser()

	if c.Delimiters != "" {
		if err := p.SetDelimiters(c.Delimiters); err != nil {
			return nil, err
		}
	}

	for _, rule := range c.Variables {
		if err := p.AddVariablePattern(rule.Name, rule.Pattern); err != nil {
			return nil, fmt.Errorf("variable %q: %w", rule.Name, err)
		}
	}

	if err := p.Compile(); err != nil {
		return nil, err
	}

	return p, nil
}
