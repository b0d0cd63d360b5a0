/*
 * wiggle.go, part of goseis
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

//Package seisplot draws quick previews of seismic sections.
package seisplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Excursion is the largest horizontal deflection of a wiggle, in trace spacings.
const Excursion = 0.45

// maxAbs returns the largest absolute value in data
func maxAbs(data mat.Matrix) float64 {
	r, c := data.Dims()
	col := make([]float64, r)
	var ret float64
	for j := 0; j < c; j++ {
		mat.Col(col, j, data)
		ret = math.Max(ret, math.Max(math.Abs(floats.Max(col)), math.Abs(floats.Min(col))))
	}
	return ret
}

// Wiggles returns one line per column of data, placed at x=column and deflected
// proportionally to the sample value. dt is the time between rows.
func Wiggles(data mat.Matrix, dt float64) ([]plotter.XYs, error) {
	r, c := data.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("seisplot: empty data")
	}
	scale := maxAbs(data)
	if scale == 0 {
		scale = 1
	}
	ret := make([]plotter.XYs, c)
	for j := 0; j < c; j++ {
		pts := make(plotter.XYs, r)
		for i := 0; i < r; i++ {
			pts[i].X = float64(j) + Excursion*data.At(i, j)/scale
			pts[i].Y = float64(i) * dt
		}
		ret[j] = pts
	}
	return ret, nil
}

// Wiggle saves a wiggle plot of data, one trace per column, to filename. The format
// is taken from the extension (png, svg, pdf...).
func Wiggle(data mat.Matrix, dt float64, title, filename string) error {
	lines, err := Wiggles(data, dt)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Trace"
	p.Y.Label.Text = "Time"
	p.X.Min = -1
	p.X.Max = float64(len(lines))
	p.Add(plotter.NewGrid())
	for _, pts := range lines {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(0.5)
		l.LineStyle.Color = color.Black
		p.Add(l)
	}
	//here I  intentionally shadow err.
	if err := p.Save(20*vg.Centimeter, 15*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}
