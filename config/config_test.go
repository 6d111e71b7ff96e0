package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 2, cfg.MaxScore)
	assert.True(t, cfg.Overwrite)
	assert.Equal(t, "replace", cfg.Policy)
	assert.Equal(t, "tutorials_merged", cfg.Roster)
	assert.Equal(t, "bot_input", cfg.Attendance)
	assert.Equal(t, "bot", cfg.Format)
	assert.Equal(t, ".", cfg.Workdir)
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rollcall.yaml")

	yaml := `tutorial: 6
max_score: 3
overwrite: false
policy: monotonic
roster: gradebook
`

	require.NoError(t, os.WriteFile(file, []byte(yaml), 0660))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Tutorial)
	assert.Equal(t, 3, cfg.MaxScore)
	assert.False(t, cfg.Overwrite)
	assert.Equal(t, "monotonic", cfg.Policy)
	assert.Equal(t, "gradebook", cfg.Roster)

	// unset keys keep their defaults
	assert.Equal(t, "bot_input", cfg.Attendance)
	assert.Equal(t, "bot", cfg.Format)
}

func TestLoadWithMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Tutorial = 6

	require.NoError(t, cfg.Validate())

	tests := []struct {
		name   string
		redact func(*Config)
	}{
		{"missing tutorial", func(c *Config) { c.Tutorial = 0 }},
		{"invalid max score", func(c *Config) { c.MaxScore = 0 }},
		{"unknown policy", func(c *Config) { c.Policy = "additive" }},
		{"unknown format", func(c *Config) { c.Format = "json" }},
		{"missing roster prefix", func(c *Config) { c.Roster = "" }},
		{"missing attendance prefix", func(c *Config) { c.Attendance = "" }},
	}

	for _, test := range tests {
		invalid := cfg
		test.redact(&invalid)

		assert.Error(t, invalid.Validate(), test.name)
	}
}
