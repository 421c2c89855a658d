// Package config loads sweep profiles from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lukaszgryglicki/gcomplex/internal/sweep"
	"gopkg.in/yaml.v3"
)

// Profile holds the settings of one accuracy sweep.
type Profile struct {
	Seed          uint64   `toml:"seed" yaml:"seed"`
	Samples       int      `toml:"samples" yaml:"samples"`
	ToleranceULPs float64  `toml:"tolerance_ulps" yaml:"tolerance_ulps"`
	Precisions    []string `toml:"precisions" yaml:"precisions"`
	Functions     []string `toml:"functions" yaml:"functions"`
	Domain        string   `toml:"domain" yaml:"domain"`
	Workers       int      `toml:"workers" yaml:"workers"`
	Timeout       Duration `toml:"timeout" yaml:"timeout"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in profile: 100 moderate samples per function in
// single and double precision, 16 ulps.
func Default() *Profile {
	return &Profile{
		Seed:          1,
		Samples:       100,
		ToleranceULPs: 16,
		Precisions:    []string{string(sweep.Single), string(sweep.Double)},
		Domain:        string(sweep.Moderate),
		Timeout:       Duration{time.Minute},
	}
}

// Format of a profile file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Load reads a profile, picking the format from the file extension. Keys
// missing from the file keep their Default values.
func Load(path string) (*Profile, error) {
	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data, detectFormat(path))
}

// Parse decodes a profile from memory.
func Parse(data []byte, format Format) (*Profile, error) {
	p := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("parse yaml profile: %w", err)
		}
	default:
		md, err := toml.Decode(string(data), p)
		if err != nil {
			return nil, fmt.Errorf("parse toml profile: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse toml profile: unknown key %q", undecoded[0].String())
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks every field and reports all problems at once.
func (p *Profile) Validate() error {
	var errs []error
	if p.Samples <= 0 {
		errs = append(errs, fmt.Errorf("samples must be positive, got %d", p.Samples))
	}
	if p.ToleranceULPs <= 0 {
		errs = append(errs, fmt.Errorf("tolerance_ulps must be positive, got %g", p.ToleranceULPs))
	}
	if p.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", p.Workers))
	}
	if p.Timeout.Duration < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", p.Timeout))
	}
	if len(p.Precisions) == 0 {
		errs = append(errs, errors.New("at least one precision is required"))
	}
	for _, s := range p.Precisions {
		if _, err := sweep.ParsePrecision(s); err != nil {
			errs = append(errs, err)
		}
	}
	known := sweep.Functions()
	for _, fn := range p.Functions {
		if !contains(known, fn) {
			errs = append(errs, fmt.Errorf("unknown function %q", fn))
		}
	}
	if _, err := sweep.ParseDomain(p.Domain); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Options converts a validated profile for sweep.Run.
func (p *Profile) Options() sweep.Options {
	precs := make([]sweep.Precision, 0, len(p.Precisions))
	for _, s := range p.Precisions {
		precs = append(precs, sweep.Precision(s))
	}
	return sweep.Options{
		Seed:          p.Seed,
		Samples:       p.Samples,
		ToleranceULPs: p.ToleranceULPs,
		Precisions:    precs,
		Functions:     p.Functions,
		Domain:        sweep.Domain(p.Domain),
		Workers:       p.Workers,
		Timeout:       p.Timeout.Duration,
	}
}
