/*
 * extract_test.go, part of goseis
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
	"strconv"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestWindowResolve(Te *testing.T) {
	cases := []struct {
		w      Window
		n      int
		lo, hi int
	}{
		{Full, 10, 0, 10},
		{Window{2, 5}, 10, 2, 5},
		{Window{3, 0}, 10, 3, 10},
		{Window{-2, 0}, 10, 8, 10},
		{Window{-3, -1}, 10, 7, 9},
		{Window{0, 20}, 10, 0, 10},
		{Window{-20, 2}, 10, 0, 2},
		{Window{5, 2}, 10, 5, 5},
		{Window{12, 0}, 10, 10, 10},
	}
	for _, c := range cases {
		lo, hi := c.w.Resolve(c.n)
		if lo != c.lo || hi != c.hi {
			Te.Errorf("%v on %d: got [%d,%d), expected [%d,%d)", c.w, c.n, lo, hi, c.lo, c.hi)
		}
	}
}

// reference slices the table by hand, the slow way.
func reference(T *Table, c Component, lo, hi int) *mat.Dense {
	ret := mat.NewDense(T.Len(), hi-lo, nil)
	for i, row := range T.Rows {
		var sel []string
		for k := c.offset(); k < len(row); k += 2 {
			sel = append(sel, row[k])
		}
		for j, v := range sel[lo:hi] {
			f, _ := strconv.ParseFloat(v, 64)
			ret.Set(i, j, f)
		}
	}
	return ret
}

func TestExtractFullComponentA(Te *testing.T) {
	const R = 7
	T := mustRead(Te, makeTable(R, 5, 0.1))
	m, err := Extract(T, ComponentA, Full)
	if err != nil {
		Te.Fatal(err)
	}
	r, c := m.Dims()
	if r != 5 || c != R {
		Te.Fatalf("got a %dx%d grid, expected 5x%d", r, c, R)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != sample(i, j, ComponentA) {
				Te.Errorf("(%d,%d): got %g, expected %g", i, j, m.At(i, j), sample(i, j, ComponentA))
			}
		}
	}
}

func TestExtractWindowComponentB(Te *testing.T) {
	const R = 10
	T := mustRead(Te, makeTable(R, 4, 0.5))
	for _, w := range []Window{{2, 6}, {3, 0}, {-2, 0}, {-4, -1}} {
		lo, hi := w.Resolve(R)
		m, err := Extract(T, ComponentB, w)
		if err != nil {
			Te.Fatal(err)
		}
		if _, c := m.Dims(); c != hi-lo {
			Te.Errorf("%v: %d columns, expected %d", w, c, hi-lo)
		}
		if !mat.Equal(m, reference(T, ComponentB, lo, hi)) {
			Te.Errorf("%v: grid doesn't match the reference:\n%v", w, mat.Formatted(m))
		}
	}
}

func TestExtractNegativeMatchesPositive(Te *testing.T) {
	T := mustRead(Te, makeTable(10, 3, 1))
	neg, err := Extract(T, ComponentA, Window{-2, 0})
	if err != nil {
		Te.Fatal(err)
	}
	pos, err := Extract(T, ComponentA, Window{8, 10})
	if err != nil {
		Te.Fatal(err)
	}
	if !mat.Equal(neg, pos) {
		Te.Errorf("[-2,0) and [8,10) differ")
	}
}

func TestExtractErrors(Te *testing.T) {
	content := makeTable(3, 3, 1)
	T := mustRead(Te, content)
	if _, err := Extract(T, ComponentA, Window{2, 1}); !IsKind(err, RangeError) {
		Te.Errorf("expected a RangeError for an empty window, got %v", err)
	}
	lines := strings.Split(content, "\n")
	f := strings.Split(lines[2], Delimiter)
	f[4] = "abc"
	lines[2] = strings.Join(f, Delimiter)
	T = mustRead(Te, strings.Join(lines, "\n"))
	_, err := Extract(T, ComponentB, Full)
	if !IsKind(err, ParseError) {
		Te.Fatalf("expected a ParseError, got %v", err)
	}
	if !strings.Contains(err.Error(), "Vy 2") {
		Te.Errorf("error doesn't name the column: %v", err)
	}
	//the bad field is only in component B
	if _, err := Extract(T, ComponentA, Full); err != nil {
		Te.Errorf("component A should be fine, got %v", err)
	}
}
