package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lukaszgryglicki/gcomplex/internal/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	opts := p.Options()
	assert.Equal(t, 100, opts.Samples)
	assert.Equal(t, 16.0, opts.ToleranceULPs)
	assert.Equal(t, []sweep.Precision{sweep.Single, sweep.Double}, opts.Precisions)
	assert.Equal(t, sweep.Moderate, opts.Domain)
	assert.Empty(t, opts.Functions)
	assert.Equal(t, time.Minute, opts.Timeout)
}

func TestDefaultPasses(t *testing.T) {
	for seed := uint64(1); seed <= 3; seed++ {
		p := Default()
		p.Seed = seed
		rep, err := sweep.Run(context.Background(), p.Options())
		require.NoError(t, err)
		for _, r := range rep.Failures() {
			t.Errorf("seed %d: %s %s failed %d times, worst %s", seed, r.Precision, r.Function, r.Failures, r.Worst)
		}
	}
}

func TestParseTOML(t *testing.T) {
	src := `
seed = 42
samples = 500
tolerance_ulps = 8
precisions = ["double", "extended"]
functions = ["exp", "log"]
domain = "unit"
workers = 2
timeout = "30s"
`
	p, err := Parse([]byte(src), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), p.Seed)
	assert.Equal(t, 500, p.Samples)
	assert.Equal(t, 8.0, p.ToleranceULPs)
	assert.Equal(t, []string{"double", "extended"}, p.Precisions)
	assert.Equal(t, []string{"exp", "log"}, p.Functions)
	assert.Equal(t, "unit", p.Domain)
	assert.Equal(t, 2, p.Workers)
	assert.Equal(t, 30*time.Second, p.Timeout.Duration)
}

func TestParseYAMLKeepsDefaults(t *testing.T) {
	src := `
samples: 20
domain: moderate
timeout: 1m30s
`
	p, err := Parse([]byte(src), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 20, p.Samples)
	assert.Equal(t, "moderate", p.Domain)
	assert.Equal(t, 90*time.Second, p.Timeout.Duration)
	// untouched keys
	assert.Equal(t, uint64(1), p.Seed)
	assert.Equal(t, 16.0, p.ToleranceULPs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
		want   string
	}{
		{"samples", func(p *Profile) { p.Samples = 0 }, "samples must be positive"},
		{"tolerance", func(p *Profile) { p.ToleranceULPs = -1 }, "tolerance_ulps"},
		{"workers", func(p *Profile) { p.Workers = -3 }, "workers"},
		{"precision", func(p *Profile) { p.Precisions = []string{"half"} }, `unknown precision "half"`},
		{"no precision", func(p *Profile) { p.Precisions = nil }, "at least one precision"},
		{"function", func(p *Profile) { p.Functions = []string{"gamma"} }, `unknown function "gamma"`},
		{"domain", func(p *Profile) { p.Domain = "everywhere" }, `unknown domain "everywhere"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Default()
			tc.mutate(p)
			assert.ErrorContains(t, p.Validate(), tc.want)
		})
	}

	p := Default()
	p.Samples, p.Domain = 0, "nowhere"
	err := p.Validate()
	assert.ErrorContains(t, err, "samples")
	assert.ErrorContains(t, err, "nowhere")
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`samples = "many"`), FormatTOML)
	assert.Error(t, err)
	_, err = Parse([]byte(`sampels = 10`), FormatTOML)
	assert.ErrorContains(t, err, "sampels")
	_, err = Parse([]byte("timeout: soon\n"), FormatYAML)
	assert.Error(t, err)
	_, err = Parse([]byte("samples: -1\n"), FormatYAML)
	assert.ErrorContains(t, err, "samples must be positive")
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "profile.toml")
	yamlPath := filepath.Join(dir, "profile.YML")
	require.NoError(t, os.WriteFile(tomlPath, []byte("samples = 7\n"), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte("samples: 9\n"), 0o644))

	p, err := Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Samples)

	p, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 9, p.Samples)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "read profile")

	assert.Equal(t, FormatYAML, detectFormat("a.yaml"))
	assert.Equal(t, FormatTOML, detectFormat("a.conf"))
	assert.Equal(t, "yaml", FormatYAML.String())
}

func TestDurationText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("250ms")))
	assert.Equal(t, 250*time.Millisecond, d.Duration)
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "250ms", string(b))
	assert.Error(t, d.UnmarshalText([]byte("later")))
}
