/*
 * config_test.go, part of goseis
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
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(Te *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = "receivers.csv"
	if err := cfg.Validate(); err != nil {
		Te.Error(err)
	}
	cfg.Input = ""
	if err := cfg.Validate(); !IsKind(err, ConfigError) {
		Te.Errorf("missing input should be a ConfigError, got %v", err)
	}
}

func TestConfigValidate(Te *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.Selection = "all" },
		func(c *Config) { c.SampleFormat = "float" },
		func(c *Config) { c.TimeScale = 0 },
		func(c *Config) { c.Groups = -1 },
		func(c *Config) { c.Groups, c.PerGroup = 2, 0 },
		func(c *Config) { c.Labels.Time = "" },
	}
	for i, f := range bad {
		cfg := DefaultConfig()
		cfg.Input = "receivers.csv"
		f(&cfg)
		if err := cfg.Validate(); !IsKind(err, ConfigError) {
			Te.Errorf("case %d: expected a ConfigError, got %v", i, err)
		}
	}
}

func TestLoadConfig(Te *testing.T) {
	yml := `columns: vz
receivers: [-3, 0]
prefix: trial
groups: 4
per_group: 10
format: ibm
labels:
  time: t
  a: Ux
  b: Uz
`
	name := filepath.Join(Te.TempDir(), "segyconv.yml")
	if err := os.WriteFile(name, []byte(yml), 0644); err != nil {
		Te.Fatal(err)
	}
	cfg := DefaultConfig()
	if err := LoadConfig(name, &cfg); err != nil {
		Te.Fatal(err)
	}
	if cfg.Selection != "vz" || cfg.Window != (Window{-3, 0}) || cfg.Prefix != "trial" || cfg.Groups != 4 || cfg.PerGroup != 10 {
		Te.Errorf("unexpected configuration %+v", cfg)
	}
	if cfg.SegyFormat() != 1 || cfg.Labels.B != "Uz" {
		Te.Errorf("unexpected format %d or labels %+v", cfg.SegyFormat(), cfg.Labels)
	}
	if cfg.TimeScale != 1e6 || cfg.OutputDir != "." {
		Te.Errorf("defaults not kept: %+v", cfg)
	}

	if err := os.WriteFile(name, []byte("colums: vz\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if err := LoadConfig(name, &cfg); !IsKind(err, ConfigError) {
		Te.Errorf("unknown keys should give a ConfigError, got %v", err)
	}
}

func TestConfigFromEnv(Te *testing.T) {
	Te.Setenv("SEGYCONV_PREFIX", "env")
	Te.Setenv("SEGYCONV_GROUPS", "3")
	Te.Setenv("SEGYCONV_LABELS_A_LABEL", "Ux")
	cfg := DefaultConfig()
	if err := ConfigFromEnv(&cfg); err != nil {
		Te.Fatal(err)
	}
	if cfg.Prefix != "env" || cfg.Groups != 3 || cfg.Labels.A != "Ux" {
		Te.Errorf("environment not applied: %+v", cfg)
	}
	if cfg.Selection != SelectBoth || cfg.Labels.Time != "Time" {
		Te.Errorf("defaults not kept: %+v", cfg)
	}
	Te.Setenv("SEGYCONV_GROUPS", "many")
	if err := ConfigFromEnv(&cfg); !IsKind(err, ConfigError) {
		Te.Errorf("expected a ConfigError, got %v", err)
	}
}
