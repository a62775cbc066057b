package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, DefaultYearsAhead, cfg.YearsAhead)
	assert.Equal(t, DefaultSchoolDir, cfg.SchoolDir)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ferienkalender.yaml")
	data := `base_url: "https://ferien.example.org/"
school_dir: "public/school"
years_ahead: 2
log_level: "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"base_url", cfg.BaseURL, "https://ferien.example.org"},
		{"school_dir", cfg.SchoolDir, "public/school"},
		{"output_dir", cfg.OutputDir, DefaultOutputDir},
		{"years_ahead", cfg.YearsAhead, 2},
		{"log_level", cfg.LogLevel, "debug"},
		{"uid_domain", cfg.UIDDomain, DefaultUIDDomain},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
	assert.False(t, cfg.BaseURLIsPlaceholder())
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"negative years": "years_ahead: -1\n",
		"bad log level":  "log_level: loud\n",
		"broken yaml":    "base_url: [\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ferienkalender.yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestBaseURLIsPlaceholder(t *testing.T) {
	cfg := Config{BaseURL: PlaceholderBaseURL}
	cfg.SetDefaults()
	assert.True(t, cfg.BaseURLIsPlaceholder())
}

func TestLoadConfigAllowsZeroYearsAhead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ferienkalender.yaml")
	require.NoError(t, os.WriteFile(path, []byte("years_ahead: 0\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.YearsAhead)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
}

func TestLoadConfigExampleRegion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ferienkalender.yaml")
	require.NoError(t, os.WriteFile(path, []byte("example_region: \"Kärnten\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Kaernten, cfg.Example())

	require.NoError(t, os.WriteFile(path, []byte("example_region: Bayern\n"), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrUnknownRegion)
}
