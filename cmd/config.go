// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// config is read from a TOML file; command line flags override it
type config struct {
	// default element kind for vectors written on the command line
	Kind string `toml:"kind"`
	// 10 or 16
	Radix int `toml:"radix"`
	// commonlog verbosity; 0 logs errors only
	Verbosity int `toml:"verbosity"`
	// REPL history file, "~/" is expanded
	History string `toml:"history"`
}

func defaultConfig() config {
	return config{
		Kind:    "i32",
		Radix:   10,
		History: "~/.vecval_history",
	}
}

// defaultConfigPath is $XDG_CONFIG_HOME/vecval/config.toml or the
// platform equivalent
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vecval", "config.toml")
}

// loadConfig reads path over the defaults.  A missing file is only an
// error when the path was given explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.Radix != 10 && c.Radix != 16 {
		return fmt.Errorf("config: radix must be 10 or 16, not %d", c.Radix)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("config: verbosity must not be negative")
	}
	return nil
}

func (c config) historyPath() string {
	if strings.HasPrefix(c.History, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, c.History[2:])
		}
	}
	return c.History
}
