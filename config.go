// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package damage

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default surface size used until the first Resize.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Config holds the tunables of a Driver.
//
// A Config can be loaded from TOML:
//
//	history_capacity = 10
//	fallback_age = 4
//	width = 1280
//	height = 720
type Config struct {
	// HistoryCapacity is the number of frame damages remembered.
	HistoryCapacity int `toml:"history_capacity"`

	// FallbackAge is the buffer age assumed when the driver cannot
	// report one.
	FallbackAge int `toml:"fallback_age"`

	// Width and Height are the initial surface size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// DefaultConfig returns the default driver configuration.
func DefaultConfig() Config {
	return Config{
		HistoryCapacity: DefaultHistoryCapacity,
		FallbackAge:     DefaultFallbackAge,
		Width:           DefaultWidth,
		Height:          DefaultHeight,
	}
}

// Validate reports a *ConfigurationError for unusable settings.
func (c Config) Validate() error {
	switch {
	case c.HistoryCapacity < 1:
		return &ConfigurationError{Reason: fmt.Sprintf("history capacity %d < 1", c.HistoryCapacity)}
	case c.FallbackAge < 0:
		return &ConfigurationError{Reason: fmt.Sprintf("fallback age %d < 0", c.FallbackAge)}
	case c.Width < 0 || c.Height < 0:
		return &ConfigurationError{Reason: fmt.Sprintf("surface size %dx%d", c.Width, c.Height)}
	}
	return nil
}

// DecodeConfig reads a TOML configuration from r. Keys missing from the
// input keep their defaults; unknown keys are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("damage: decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, &ConfigurationError{Reason: "unknown keys " + strings.Join(keys, ", ")}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("damage: load config: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}
