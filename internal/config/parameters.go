// Package config provides a centralized entrypoint for the application parameters.
// Parameters are read once at startup and never changed afterwards.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"go.yaml.in/yaml/v3"
)

var (
	// Global is a struct that contains the global configuration.
	Global global
	// Service is a struct that contains the configuration for the listener.
	Service service
	// Target is a struct that contains the configuration for the destination URL.
	Target target
	// Opener is a struct that contains the configuration for the browser opener.
	Opener opener
)

type global struct {
	// Logging is a struct that contains the logging configuration.
	Logging struct {
		// Verbosity is the verbosity level of the application. It represents slog levels.
		Verbosity int `yaml:"verbosity,omitempty"`
		// CallerTrace is a flag that enables the caller trace in the logger.
		CallerTrace bool `yaml:"callerTrace,omitempty"`
	} `yaml:"logging,omitempty"`
	// NoColor disables coloured console output.
	NoColor bool `yaml:"noColor,omitempty"`
}

type service struct {
	Addr        string        `yaml:"addr,omitempty" default:"localhost"`
	Port        string        `yaml:"port,omitempty" default:"3000"`
	ReadTimeout time.Duration `yaml:"readTimeout,omitempty" default:"5s"`
}

type target struct {
	BaseURL string `yaml:"baseURL,omitempty" default:"https://machineschedule.netlify.app/ship"`
	// EscapeValues query-escapes company and order before substitution.
	EscapeValues bool `yaml:"escapeValues,omitempty"`
}

type opener struct {
	// Driver is one of 'system', 'rod' or 'print'.
	Driver string `yaml:"driver,omitempty" default:"system"`
	Rod    struct {
		Bin        string `yaml:"bin,omitempty"`
		ControlURL string `yaml:"controlURL,omitempty"`
		Headless   bool   `yaml:"headless,omitempty"`
		UserMode   bool   `yaml:"userMode,omitempty"`
	} `yaml:"rod,omitempty"`
}

// SetDefaults sets the default values for the configuration.
func SetDefaults() error {
	return errors.Join(
		defaults.Set(&Global),
		defaults.Set(&Service),
		defaults.Set(&Target),
		defaults.Set(&Opener),
	)
}

// LoadFromFile loads the configuration from a file. A missing file is not an error.
func LoadFromFile(path string) error {
	if len(path) == 0 {
		return nil
	}
	fstat, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // If the file does not exist, we ignore it.
	}
	if fstat.IsDir() {
		return fmt.Errorf("configuration file %s is a directory", path)
	}
	if !fstat.Mode().IsRegular() {
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	type all struct {
		Global  global  `yaml:"global,omitempty"`
		Service service `yaml:"service,omitempty"`
		Target  target  `yaml:"target,omitempty"`
		Opener  opener  `yaml:"opener,omitempty"`
	}
	var a all
	if err = yaml.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	Global = a.Global
	Service = a.Service
	Target = a.Target
	Opener = a.Opener

	return nil
}

// Reset clears every parameter back to its zero value.
func Reset() {
	Global = global{}
	Service = service{}
	Target = target{}
	Opener = opener{}
}
