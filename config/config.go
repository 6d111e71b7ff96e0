// Package config holds the run configuration for rollcall-app-sheets. The
// defaults match the conventions of the attendance bot tooling; a YAML file
// and/or command line flags override them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Tutorial number for the week. Names the 'Tutorial <N>' worksheet and
	// has to be set for every run.
	Tutorial int `yaml:"tutorial"`

	// Maximum score a student can get for the session.
	MaxScore int `yaml:"max_score"`

	// Carry scores already in the worksheet forward into the run. With
	// overwrite off the sheet's scores are reset to 0 before updating,
	// which is gated by a confirmation prompt.
	Overwrite bool `yaml:"overwrite"`

	// Scoring rule - 'replace' or 'monotonic'.
	Policy string `yaml:"policy"`

	// Filename prefixes for the gradebook workbook and the bot attendance
	// log, matched against the working directory listing.
	Roster     string `yaml:"roster"`
	Attendance string `yaml:"attendance"`

	// Attendance log flavour - 'bot' or 'plain'.
	Format string `yaml:"format"`

	// Directory scanned for the input files.
	Workdir string `yaml:"workdir"`
}

func Default() Config {
	return Config{
		Tutorial:   0,
		MaxScore:   2,
		Overwrite:  true,
		Policy:     "replace",
		Roster:     "tutorials_merged",
		Attendance: "bot_input",
		Format:     "bot",
		Workdir:    ".",
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(file string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(file)
	if err != nil {
		return cfg, fmt.Errorf("unable to read configuration %s (%w)", file, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("unable to parse configuration %s (%w)", file, err)
	}

	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.Tutorial < 1 {
		return fmt.Errorf("missing/invalid tutorial number (%v)", cfg.Tutorial)
	}

	if cfg.MaxScore < 1 {
		return fmt.Errorf("missing/invalid maximum score (%v)", cfg.MaxScore)
	}

	if cfg.Policy != "replace" && cfg.Policy != "monotonic" {
		return fmt.Errorf("unknown scoring policy '%s'", cfg.Policy)
	}

	if cfg.Format != "bot" && cfg.Format != "plain" {
		return fmt.Errorf("unknown attendance log format '%s'", cfg.Format)
	}

	if cfg.Roster == "" {
		return fmt.Errorf("missing gradebook filename prefix")
	}

	if cfg.Attendance == "" {
		return fmt.Errorf("missing attendance log filename prefix")
	}

	return nil
}
