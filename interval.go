/*
 * interval.go, part of goseis
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
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// time returns the time value of the i-th data row.
func (T *Table) time(i int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(T.Rows[i][0]), 64)
	if err != nil {
		return 0, newError(ParseError, T.filename, fmt.Sprintf("data row %d, time column: %q is not a number", i+1, T.Rows[i][0]), "time", nil)
	}
	return v, nil
}

// Times returns the time column of the table.
func (T *Table) Times() ([]float64, error) {
	ret := make([]float64, T.Len())
	for i := range T.Rows {
		v, err := T.time(i)
		if err != nil {
			return nil, errDecorate(err, "Times")
		}
		ret[i] = v
	}
	return ret, nil
}

// SamplingInterval returns the time step of the table, computed as (last-first)/(rows-1).
// The time steps are assumed to be evenly spaced. This is not checked.
func SamplingInterval(T *Table) (float64, error) {
	n := T.Len()
	if n < 2 {
		return 0, newError(InsufficientDataError, T.filename, fmt.Sprintf("%d time steps, at least 2 needed", n), "SamplingInterval", nil)
	}
	first, err := T.time(0)
	if err != nil {
		return 0, errDecorate(err, "SamplingInterval")
	}
	last, err := T.time(n - 1)
	if err != nil {
		return 0, errDecorate(err, "SamplingInterval")
	}
	return (last - first) / float64(n-1), nil
}

// SpacingDeviation returns the largest deviation of a time step from the mean step, relative
// to the mean step. It is 0 for perfectly even spacing.
func SpacingDeviation(T *Table) (float64, error) {
	t, err := T.Times()
	if err != nil {
		return 0, errDecorate(err, "SpacingDeviation")
	}
	if len(t) < 2 {
		return 0, newError(InsufficientDataError, T.filename, fmt.Sprintf("%d time steps, at least 2 needed", len(t)), "SpacingDeviation", nil)
	}
	steps := make([]float64, len(t)-1)
	floats.SubTo(steps, t[1:], t[:len(t)-1])
	mean := floats.Sum(steps) / float64(len(steps))
	if mean == 0 {
		return math.Inf(1), nil
	}
	maxdev := math.Max(math.Abs(floats.Max(steps)-mean), math.Abs(floats.Min(steps)-mean))
	return maxdev / math.Abs(mean), nil
}
