/*
 * interval_test.go, part of goseis
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
	"math"
	"testing"
)

func TestSamplingInterval(Te *testing.T) {
	T := mustRead(Te, "Time;Vx 1;Vy 1\n0.0;1;2\n0.5;1;2\n1.0;1;2\n1.5;1;2\n")
	dt, err := SamplingInterval(T)
	if err != nil {
		Te.Fatal(err)
	}
	if dt != 0.5 {
		Te.Errorf("got interval %g, expected 0.5", dt)
	}
	dev, err := SpacingDeviation(T)
	if err != nil {
		Te.Fatal(err)
	}
	if dev != 0 {
		Te.Errorf("evenly spaced table gave deviation %g", dev)
	}
}

func TestSamplingIntervalSmallSteps(Te *testing.T) {
	T := mustRead(Te, makeTable(2, 11, 0.002))
	dt, err := SamplingInterval(T)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(dt-0.002) > 1e-12 {
		Te.Errorf("got interval %g, expected 0.002", dt)
	}
}

func TestSamplingIntervalUneven(Te *testing.T) {
	T := mustRead(Te, "Time;Vx 1;Vy 1\n0;1;2\n0.1;1;2\n0.5;1;2\n0.6;1;2\n")
	dt, err := SamplingInterval(T)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(dt-0.2) > 1e-12 {
		Te.Errorf("got interval %g, expected 0.2", dt)
	}
	dev, err := SpacingDeviation(T)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(dev-1) > 1e-9 {
		Te.Errorf("got deviation %g, expected 1", dev)
	}
}

func TestSamplingIntervalErrors(Te *testing.T) {
	T := mustRead(Te, "Time;Vx 1;Vy 1\n0.0;1;2\n")
	if _, err := SamplingInterval(T); !IsKind(err, InsufficientDataError) {
		Te.Errorf("expected an InsufficientDataError, got %v", err)
	}
	T = mustRead(Te, "Time;Vx 1;Vy 1\n")
	if _, err := SamplingInterval(T); !IsKind(err, InsufficientDataError) {
		Te.Errorf("expected an InsufficientDataError with no rows, got %v", err)
	}
	T = mustRead(Te, "Time;Vx 1;Vy 1\n0;1;2\nlate;1;2\n")
	if _, err := SamplingInterval(T); !IsKind(err, ParseError) {
		Te.Errorf("expected a ParseError, got %v", err)
	}
}
