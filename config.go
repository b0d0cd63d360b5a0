/*
 * config.go, part of goseis
 *
 * Copyright 2022 Raul Mera Adasme <rmera_changeforat_chem-dot-helsinki-dot-fi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package seis

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/rmera/goseis/segy"
)

// EnvPrefix is the prefix of the environment variables read by ConfigFromEnv.
const EnvPrefix = "SEGYCONV"

// Config holds everything a conversion needs. It is passed explicitly to Convert;
// nothing in this package reads global state.
type Config struct {
	Input        string  `yaml:"input" envconfig:"INPUT" validate:"required"`
	Selection    string  `yaml:"columns" envconfig:"COLUMNS" validate:"oneof=vx vz both"`
	Window       Window  `yaml:"receivers" ignored:"true" validate:"-"`
	Prefix       string  `yaml:"prefix" envconfig:"PREFIX"`
	Groups       int     `yaml:"groups" envconfig:"GROUPS" validate:"gte=0"`
	PerGroup     int     `yaml:"per_group" envconfig:"PER_GROUP" validate:"gte=0"`
	OutputDir    string  `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	SampleFormat string  `yaml:"format" envconfig:"FORMAT" validate:"oneof=ieee ibm"`
	ASCIIHeader  bool    `yaml:"ascii_header" envconfig:"ASCII_HEADER"`
	TimeScale    float64 `yaml:"time_scale" envconfig:"TIME_SCALE" validate:"gt=0"`
	Preview      bool    `yaml:"preview" envconfig:"PREVIEW"`
	StrictHeader bool    `yaml:"strict_header" envconfig:"STRICT_HEADER"`
	Labels       Labels  `yaml:"labels" envconfig:"LABELS"`

	//SpacingTolerance is the relative deviation of the time steps above which a warning is issued.
	SpacingTolerance float64 `yaml:"spacing_tolerance" envconfig:"SPACING_TOLERANCE" validate:"gte=0"`

	LogFile string `yaml:"log_file" envconfig:"LOG_FILE"`
	NoLog   bool   `yaml:"nolog" envconfig:"NOLOG"`

	Logger *slog.Logger `yaml:"-" ignored:"true" validate:"-"`
}

// UnmarshalYAML reads a window written as a two-element list, [N, M].
func (w *Window) UnmarshalYAML(n *yaml.Node) error {
	var v []int
	if err := n.Decode(&v); err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("receiver window needs 2 values, got %d", len(v))
	}
	w.Lo, w.Hi = v[0], v[1]
	return nil
}

// MarshalYAML writes the window as a two-element list
func (w Window) MarshalYAML() (interface{}, error) {
	return []int{w.Lo, w.Hi}, nil
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Selection:        SelectBoth,
		Window:           Full,
		OutputDir:        ".",
		SampleFormat:     "ieee",
		TimeScale:        1e6,
		Labels:           DefaultLabels(),
		SpacingTolerance: 1e-3,
		LogFile:          "segyconv.log",
	}
}

// ConfigFromEnv overrides the fields of cfg with the SEGYCONV_* environment variables that are set.
func ConfigFromEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return newError(ConfigError, "", "bad environment", "ConfigFromEnv", err)
	}
	return nil
}

// LoadConfig overrides the fields of cfg with those present in the YAML file name.
func LoadConfig(name string, cfg *Config) error {
	f, err := os.Open(name)
	if err != nil {
		return newError(IOError, name, "unable to open configuration", "LoadConfig", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return newError(ConfigError, name, "bad configuration", "LoadConfig", err)
	}
	return nil
}

var validate = validator.New()

// Validate checks that the configuration makes sense.
func (C *Config) Validate() error {
	if err := validate.Struct(C); err != nil {
		var msgs []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, v := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %q", v.Namespace(), v.Tag()))
			}
		} else {
			msgs = append(msgs, err.Error())
		}
		return newError(ConfigError, C.Input, strings.Join(msgs, "; "), "Validate", nil)
	}
	if C.Groups > 0 && C.PerGroup <= 0 {
		return newError(ConfigError, C.Input, fmt.Sprintf("%d groups requested with %d receivers per group", C.Groups, C.PerGroup), "Validate", nil)
	}
	return nil
}

// SegyFormat returns the SEG-Y sample format code for the configuration.
func (C *Config) SegyFormat() int16 {
	if C.SampleFormat == "ibm" {
		return segy.IBMFloat
	}
	return segy.IEEEFloat
}

func (C *Config) logger() *slog.Logger {
	if C.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return C.Logger
}
