// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"cogentcore.org/sprite/base/iox/tomlx"
	"cogentcore.org/sprite/tree"
)

// Config is the configuration information for the sprite cli.
// It is read from a TOML file and then overridden by any flags
// that are set on the command line.
type Config struct {

	// Bus is the name of the bus that events end up on.
	Bus string

	// Trace logs every step of events bubbling up through trees,
	// along with the commands run by scripts.
	Trace bool

	// Color is whether to color the output of the emit command.
	Color bool

	// Indent is the indentation used when printing trees.
	Indent string
}

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Bus:    "sprite",
		Color:  true,
		Indent: "  ",
	}
}

// DefaultConfigFile is the config file that is used if it exists
// and no other config file is specified.
const DefaultConfigFile = "sprite.toml"

// LoadConfig returns the configuration from the given config file
// and the given flags. If filename is empty, [DefaultConfigFile] is
// used if it exists. A leading ~ in filename is expanded to the home
// directory.
func LoadConfig(filename string, flags *pflag.FlagSet) (*Config, error) {
	c := Defaults()
	if filename == "" {
		if err := tomlx.OpenFiles(c, DefaultConfigFile); err != nil {
			return nil, err
		}
	} else {
		fn, err := homedir.Expand(filename)
		if err != nil {
			return nil, err
		}
		if err := tomlx.Open(c, fn); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	}
	if flags.Changed("trace") {
		c.Trace, _ = flags.GetBool("trace")
	}
	if flags.Changed("color") {
		c.Color, _ = flags.GetBool("color")
	}
	if flags.Changed("bus") {
		c.Bus, _ = flags.GetString("bus")
	}
	return c, nil
}

// Apply sets up logging and tracing for the configuration.
func (c *Config) Apply() {
	level := slog.LevelInfo
	if c.Trace {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	tree.TraceEmit = c.Trace
}

// Profile returns the color profile to use for output.
func (c *Config) Profile() termenv.Profile {
	if !c.Color {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
