/*
 * pipeline.go, part of goseis
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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/rmera/goseis/segy"
	"github.com/rmera/goseis/seisplot"
)

// Report summarizes a conversion.
type Report struct {
	Input     string
	Receivers int
	Samples   int
	Interval  float64
	Warnings  []Warning
	Outputs   []string //SEG-Y files written, in the order they were produced
	Previews  []string
}

// Convert reads the table in cfg.Input and writes one SEG-Y file per planned output.
// The first fatal error stops the conversion; the outputs completed before it are kept
// and listed in the returned report, which is never nil.
func Convert(cfg Config) (*Report, error) {
	log := cfg.logger()
	rep := &Report{Input: cfg.Input}
	if err := cfg.Validate(); err != nil {
		return rep, errDecorate(err, "Convert")
	}
	comps, err := ParseSelection(cfg.Selection)
	if err != nil {
		return rep, errDecorate(err, "Convert")
	}
	log.Info("Trying to open table", slog.String("input", cfg.Input))
	T, err := ReadTable(cfg.Input)
	if err != nil {
		return rep, errDecorate(err, "Convert")
	}
	rep.Receivers = T.Receivers()
	rep.Samples = T.Len()

	//Only the header is checked; all the rows are assumed to be aligned the same way.
	for _, w := range CheckHeader(T.Header, cfg.Labels) {
		rep.Warnings = append(rep.Warnings, w)
		log.Warn("Table header doesn't conform, SEG-Y files may be nonsense", slog.String("input", cfg.Input), slog.Int("column", w.Column), slog.String("label", w.Label))
	}
	if cfg.StrictHeader && len(rep.Warnings) > 0 {
		return rep, newError(FormatError, cfg.Input, rep.Warnings[0].Msg, "Convert", nil)
	}

	dt, err := SamplingInterval(T)
	if err != nil {
		return rep, errDecorate(err, "Convert")
	}
	rep.Interval = dt
	dev, err := SpacingDeviation(T)
	if err != nil {
		return rep, errDecorate(err, "Convert")
	}
	if dev > cfg.SpacingTolerance {
		w := Warning{Kind: SpacingWarning, Column: 0, Label: T.Header[0], Msg: fmt.Sprintf("time steps are unevenly spaced (max relative deviation %.3g), interval %g assumed", dev, dt)}
		rep.Warnings = append(rep.Warnings, w)
		log.Warn("Uneven time steps", slog.String("input", cfg.Input), slog.Float64("deviation", dev))
	}
	log.Info("Table read", slog.String("input", cfg.Input), slog.Int("receivers", rep.Receivers), slog.Int("samples", rep.Samples), slog.Float64("interval", dt))

	window := cfg.Window
	if cfg.Groups > 0 {
		log.Info("Splitting receivers in groups, receiver window ignored", slog.Int("groups", cfg.Groups), slog.Int("per_group", cfg.PerGroup))
	}
	jobs, err := Plan(T.Receivers(), Grouping{cfg.Groups, cfg.PerGroup}, window, comps)
	if err != nil {
		return rep, errDecorate(err, "Convert")
	}
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return rep, newError(IOError, cfg.OutputDir, "unable to create output directory", "Convert", err)
		}
	}
	for _, job := range jobs {
		name := job.OutputName(cfg.OutputDir, cfg.Prefix)
		data, err := convertJob(T, job, dt, name, &cfg)
		if err != nil {
			err = errDecorate(err, "Convert")
			log.Error("Conversion aborted", slog.String("input", cfg.Input), slog.String("output", name), slog.String("error", err.Error()), slog.String("trail", trail(err)))
			return rep, err
		}
		rep.Outputs = append(rep.Outputs, name)
		log.Info("Wrote SEG-Y file", slog.String("output", name), slog.String("component", job.Component.Tag()), slog.String("receivers", job.Window.String()))
		if cfg.Preview {
			png := strings.TrimSuffix(name, Extension) + ".png"
			if err := preview(T, job, data, dt, png); err != nil {
				return rep, errDecorate(err, "Convert")
			}
			rep.Previews = append(rep.Previews, png)
		}
	}
	return rep, nil
}

// trail returns the functions a ConvertError went through, or an empty string
// for other errors.
func trail(err error) string {
	var e *ConvertError
	if errors.As(err, &e) {
		return e.Trail()
	}
	return ""
}

func textLines(T *Table, job Job, dt float64, lo, hi int) []string {
	return []string{
		"SEG-Y converted from receiver table " + filepath.Base(T.FileName()),
		fmt.Sprintf("COMPONENT %s  RECEIVERS %d-%d OF %d  %s", strings.ToUpper(job.Component.Tag()), lo+1, hi, T.Receivers(), job.Label),
		fmt.Sprintf("SAMPLES PER TRACE %d  SAMPLE INTERVAL %g", T.Len(), dt),
		fmt.Sprintf("FIRST COLUMN %s  LAST COLUMN %s", T.Header[job.Component.offset()+2*lo], T.Header[job.Component.offset()+2*(hi-1)]),
	}
}

// convertJob extracts the samples for job and writes them to name. The samples are returned
// for the preview, if any.
func convertJob(T *Table, job Job, dt float64, name string, cfg *Config) (*mat.Dense, error) {
	data, err := Extract(T, job.Component, job.Window)
	if err != nil {
		return nil, errDecorate(err, "convertJob")
	}
	lo, hi := job.Window.Resolve(T.Receivers())
	opts := segy.Options{
		Format:      cfg.SegyFormat(),
		ASCIIHeader: cfg.ASCIIHeader,
		TimeScale:   cfg.TimeScale,
		Text:        textLines(T, job, dt, lo, hi),
		FirstTrace:  lo + 1,
	}
	err = segy.WriteFile(name, data, dt, opts)
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, segy.ErrInterval), errors.Is(err, segy.ErrSamples), errors.Is(err, segy.ErrEmpty), errors.Is(err, segy.ErrFormat):
		return nil, newError(RangeError, T.FileName(), "data can't be written as SEG-Y", "convertJob", err)
	default:
		return nil, newError(IOError, name, "unable to write SEG-Y file", "convertJob", err)
	}
}

func preview(T *Table, job Job, data *mat.Dense, dt float64, name string) error {
	title := fmt.Sprintf("%s %s %s", filepath.Base(T.FileName()), job.Component.Tag(), job.Label)
	if err := seisplot.Wiggle(data, dt, title, name); err != nil {
		return newError(IOError, name, "unable to write preview", "preview", err)
	}
	return nil
}
