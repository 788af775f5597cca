// Package config holds the driver configuration.
//
// Values are layered: Default, then an optional YAML file, then command-line
// flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Mode selects the parser entry point.
type Mode string

const (
	// ModeLiteral parses the first literal of the input and ignores the rest.
	ModeLiteral Mode = "literal"
	// ModeExpression parses a full arithmetic expression.
	ModeExpression Mode = "expression"
)

// DefaultSourcePath is read when no path is given on the command line.
const DefaultSourcePath = "./test/parser_test1.nc"

// ErrUnknownMode is returned for a Mode other than literal or expression.
var ErrUnknownMode = errors.New("unknown parse mode")

// Config is the driver configuration. Field tags name the YAML keys.
type Config struct {
	SourcePath string `yaml:"source"`
	Mode       Mode   `yaml:"mode"`
	Debug      bool   `yaml:"debug"`
	DumpTokens bool   `yaml:"dumpTokens"`
	Snippet    bool   `yaml:"snippet"`
	Metrics    bool   `yaml:"metrics"`
}

// Default returns the configuration used when neither a file nor flags say
// otherwise.
func Default() *Config {
	return &Config{
		SourcePath: DefaultSourcePath,
		Mode:       ModeLiteral,
		DumpTokens: true,
	}
}

// LoadFile overlays the YAML document at path onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(raw, c); err != nil {
		return fmt.Errorf("decoding config %s: %w", path, err)
	}
	return nil
}

// Bind registers flags for every field on set. Flag defaults are the current
// values of c, so bind after loading any config file.
func (c *Config) Bind(set *flag.FlagSet) {
	set.Func("mode", fmt.Sprintf("Parse mode: %q or %q (default %q)", ModeLiteral, ModeExpression, c.Mode), func(s string) error {
		c.Mode = Mode(s)
		return nil
	})
	set.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging")
	set.BoolVar(&c.DumpTokens, "tokens", c.DumpTokens, "Print every token before parsing")
	set.BoolVar(&c.Snippet, "snippet", c.Snippet, "Render diagnostics with a source snippet")
	set.BoolVar(&c.Metrics, "metrics", c.Metrics, "Print Prometheus metrics after the run")
}

// Validate reports configuration values the driver cannot act on.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeLiteral, ModeExpression:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
	}
	if c.SourcePath == "" {
		return errors.New("source path is empty")
	}
	return nil
}
