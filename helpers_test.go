/*
 * helpers_test.go, part of goseis
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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// sample returns the value stored for receiver r, component c, at time step i
// in the tables built by makeTable.
func sample(i, r int, c Component) float64 {
	return float64(i)*100 + float64(r) + 0.5*float64(c)
}

// makeTable returns the text of a receiver table with the given receivers and time steps,
// sampled every dt.
func makeTable(receivers, steps int, dt float64) string {
	var b strings.Builder
	b.WriteString("Time")
	for r := 0; r < receivers; r++ {
		fmt.Fprintf(&b, ";Vx %d;Vy %d", r+1, r+1)
	}
	b.WriteString("\n")
	for i := 0; i < steps; i++ {
		fmt.Fprintf(&b, "%g", float64(i)*dt)
		for r := 0; r < receivers; r++ {
			fmt.Fprintf(&b, ";%g;%g", sample(i, r, ComponentA), sample(i, r, ComponentB))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeTable(Te *testing.T, name, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func mustRead(Te *testing.T, content string) *Table {
	Te.Helper()
	T, err := ReadTableFrom(strings.NewReader(content), "test.csv")
	if err != nil {
		Te.Fatal(err)
	}
	return T
}
