/*
 * root.go, part of goseis
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

package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	seis "github.com/rmera/goseis"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

type options struct {
	configFile string
	receivers  []int
	split      []int
	cfg        seis.Config
}

// NewRootCmd returns the segyconv command, with the inspect subcommand attached.
func NewRootCmd() *cobra.Command {
	o := &options{cfg: seis.DefaultConfig()}
	cmd := &cobra.Command{
		Use:   "segyconv [flags] FILE.csv",
		Short: "Convert receiver tables into SEG-Y files",
		Long: `segyconv converts the ';'-separated receiver tables written by wave simulations
into SEG-Y files, one per velocity component (vx, vz) and, optionally, per
group of receivers.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0])
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.cfg.Selection, "columns", "c", o.cfg.Selection, "columns to be converted to individual files: vx, vz or both")
	f.IntSliceVarP(&o.receivers, "receivers", "r", []int{0, 0}, "receivers N,M to convert, M excluded. Negative values count from the end, M=0 means the last one")
	f.StringVarP(&o.cfg.Prefix, "prefix", "p", o.cfg.Prefix, "prefix to be added to output files")
	f.IntSliceVarP(&o.split, "split", "s", []int{0, 0}, "split the receivers in S groups of R receivers: S,R. If set, --receivers is ignored")
	f.BoolVar(&o.cfg.NoLog, "nolog", o.cfg.NoLog, "log to the standard output instead of the log file")
	f.StringVar(&o.cfg.LogFile, "log-file", o.cfg.LogFile, "log file")
	f.StringVarP(&o.cfg.OutputDir, "outdir", "o", o.cfg.OutputDir, "directory for the output files")
	f.StringVar(&o.cfg.SampleFormat, "format", o.cfg.SampleFormat, "sample format: ieee or ibm")
	f.BoolVar(&o.cfg.ASCIIHeader, "ascii-header", o.cfg.ASCIIHeader, "write the textual header in ASCII instead of EBCDIC")
	f.Float64Var(&o.cfg.TimeScale, "time-scale", o.cfg.TimeScale, "factor that takes the table time unit to microseconds")
	f.BoolVar(&o.cfg.Preview, "preview", o.cfg.Preview, "also save a PNG wiggle plot for each output")
	f.BoolVar(&o.cfg.StrictHeader, "strict", o.cfg.StrictHeader, "abort if the table header doesn't conform")
	f.StringVar(&o.configFile, "config", "", "YAML file with the conversion settings")
	cmd.AddCommand(newInspectCmd())
	return cmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil {
		red.Fprintf(os.Stderr, "segyconv: %v\n", err)
	}
	return err
}

func pair(name string, v []int) ([2]int, error) {
	if len(v) != 2 {
		return [2]int{}, fmt.Errorf("--%s needs 2 values, got %d", name, len(v))
	}
	return [2]int{v[0], v[1]}, nil
}

// config puts together the settings: defaults, then environment, then the config
// file, then the flags the user actually set.
func (o *options) config(cmd *cobra.Command, input string) (seis.Config, error) {
	cfg := seis.DefaultConfig()
	if err := seis.ConfigFromEnv(&cfg); err != nil {
		return cfg, err
	}
	if o.configFile != "" {
		if err := seis.LoadConfig(o.configFile, &cfg); err != nil {
			return cfg, err
		}
	}
	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("columns", func() { cfg.Selection = o.cfg.Selection })
	set("prefix", func() { cfg.Prefix = o.cfg.Prefix })
	set("nolog", func() { cfg.NoLog = o.cfg.NoLog })
	set("log-file", func() { cfg.LogFile = o.cfg.LogFile })
	set("outdir", func() { cfg.OutputDir = o.cfg.OutputDir })
	set("format", func() { cfg.SampleFormat = o.cfg.SampleFormat })
	set("ascii-header", func() { cfg.ASCIIHeader = o.cfg.ASCIIHeader })
	set("time-scale", func() { cfg.TimeScale = o.cfg.TimeScale })
	set("preview", func() { cfg.Preview = o.cfg.Preview })
	set("strict", func() { cfg.StrictHeader = o.cfg.StrictHeader })
	if f.Changed("receivers") {
		r, err := pair("receivers", o.receivers)
		if err != nil {
			return cfg, err
		}
		cfg.Window = seis.Window{Lo: r[0], Hi: r[1]}
	}
	if f.Changed("split") {
		s, err := pair("split", o.split)
		if err != nil {
			return cfg, err
		}
		cfg.Groups, cfg.PerGroup = s[0], s[1]
	}
	cfg.Input = input
	return cfg, nil
}

// newLogger returns the logger for the conversion, and a function to close its file.
func newLogger(cfg seis.Config, stdout io.Writer) (*slog.Logger, func(), error) {
	if cfg.NoLog || cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(stdout, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening log file %s", cfg.LogFile)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}

func (o *options) run(cmd *cobra.Command, input string) error {
	cfg, err := o.config(cmd, input)
	if err != nil {
		return errors.Wrap(err, "configuration")
	}
	logger, closelog, err := newLogger(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closelog()
	cfg.Logger = logger
	logger.Info("Executing converter", slog.String("input", cfg.Input), slog.String("columns", cfg.Selection),
		slog.String("receivers", cfg.Window.String()), slog.String("prefix", cfg.Prefix), slog.Int("groups", cfg.Groups), slog.Int("per_group", cfg.PerGroup))
	rep, err := seis.Convert(cfg)
	out := cmd.OutOrStdout()
	for _, w := range rep.Warnings {
		yellow.Fprintf(out, "warning: %s\n", w.Msg)
	}
	for _, name := range rep.Outputs {
		green.Fprintf(out, "wrote %s\n", name)
	}
	for _, name := range rep.Previews {
		green.Fprintf(out, "wrote %s\n", name)
	}
	if err != nil {
		return errors.Wrapf(err, "converting %s", input)
	}
	return nil
}
