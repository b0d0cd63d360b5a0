/*
 * extract.go, part of goseis
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
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Window is a half-open range [Lo, Hi) of receiver indexes. Hi=0 means
// "through the last receiver". Negative values count from the end, so -1 is
// the last receiver.
type Window struct {
	Lo, Hi int
}

// Full is the window spanning all receivers.
var Full = Window{0, 0}

func (w Window) String() string {
	return fmt.Sprintf("[%d,%d)", w.Lo, w.Hi)
}

// Resolve translates the window into absolute indexes for a set of n
// receivers. Indexes beyond either end are clamped, as in a slice expression.
// The returned range may be empty (lo==hi).
func (w Window) Resolve(n int) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			i += n
		}
		if i < 0 {
			return 0
		}
		if i > n {
			return n
		}
		return i
	}
	lo := clamp(w.Lo)
	hi := n
	if w.Hi != 0 {
		hi = clamp(w.Hi)
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Extract returns the samples of component c for the receivers in window w, one column per
// receiver, one row per time step. The returned matrix belongs to the caller.
func Extract(T *Table, c Component, w Window) (*mat.Dense, error) {
	n := T.Receivers()
	lo, hi := w.Resolve(n)
	if lo == hi {
		return nil, newError(RangeError, T.filename, fmt.Sprintf("receiver window %v is empty for %d receivers", w, n), "Extract", nil)
	}
	if T.Len() == 0 {
		return nil, newError(InsufficientDataError, T.filename, "table has no data rows", "Extract", nil)
	}
	ret := mat.NewDense(T.Len(), hi-lo, nil)
	for i, row := range T.Rows {
		for j := lo; j < hi; j++ {
			col := c.offset() + 2*j
			v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				return nil, newError(ParseError, T.filename,
					fmt.Sprintf("data row %d, column %d (%s): %q is not a number", i+1, col, T.Header[col], row[col]), "Extract", nil)
			}
			ret.Set(i, j-lo, v)
		}
	}
	return ret, nil
}
