/*
 * read.go, part of goseis
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

package segy

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Trace is one trace read from a SEG-Y file.
type Trace struct {
	Header  TraceHeader
	Samples []float64
}

// File is a SEG-Y file read into memory.
type File struct {
	Text     string
	Binary   BinaryHeader
	Traces   []Trace
	filename string
}

// Interval returns the sampling interval in microseconds.
func (F *File) Interval() int {
	return int(F.Binary.SampleInterval)
}

// Len returns the number of traces in the file.
func (F *File) Len() int {
	return len(F.Traces)
}

// Data returns the samples as a matrix with one column per trace.
func (F *File) Data() *mat.Dense {
	if len(F.Traces) == 0 {
		return nil
	}
	ret := mat.NewDense(len(F.Traces[0].Samples), len(F.Traces), nil)
	for j, t := range F.Traces {
		ret.SetCol(j, t.Samples)
	}
	return ret
}

// Open reads the fixed-length SEG-Y file filename. IBM and IEEE samples are supported.
func Open(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, newError(UnableToOpen, filename, "Open", err)
	}
	defer f.Close()
	F, err := Read(bufio.NewReader(f), filename)
	return F, errDecorate(err, "Open")
}

// Read reads a fixed-length SEG-Y file from r. filename is only used in errors.
func Read(r io.Reader, filename string) (*File, error) {
	F := &File{filename: filename}
	raw := make([]byte, TextualSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, newError(ReadError, filename, "Read", err)
	}
	var err error
	F.Text, err = decodeTextual(raw)
	if err != nil {
		return nil, newError("can't decode textual header", filename, "Read", err)
	}
	if err := binary.Read(r, binary.BigEndian, &F.Binary); err != nil {
		return nil, newError(ReadError, filename, "Read", err)
	}
	format := F.Binary.FormatCode
	if format != IEEEFloat && format != IBMFloat {
		return nil, newError(fmt.Sprintf("format code %d", format), filename, "Read", ErrFormat)
	}
	ns := int(F.Binary.SamplesPerTrace)
	buf := make([]byte, 4*ns)
	for {
		var t Trace
		err := binary.Read(r, binary.BigEndian, &t.Header)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newError(ReadError, filename, "Read", err)
		}
		if int(t.Header.Samples) != ns {
			return nil, newError(fmt.Sprintf("%s: trace %d has %d samples, expected %d", WrongTraceLen, len(F.Traces)+1, t.Header.Samples, ns), filename, "Read", nil)
		}
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, newError(ReadError, filename, "Read", err)
		}
		t.Samples = make([]float64, ns)
		for i := range t.Samples {
			u := binary.BigEndian.Uint32(buf[4*i:])
			if format == IBMFloat {
				t.Samples[i] = float64(IBMToIEEE(u))
			} else {
				t.Samples[i] = float64(math.Float32frombits(u))
			}
		}
		F.Traces = append(F.Traces, t)
	}
	return F, nil
}
