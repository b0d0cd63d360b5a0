/*
 * write.go, part of goseis
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
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
)

// Options control how a SEG-Y file is written.
type Options struct {
	Format      int16    //IEEEFloat or IBMFloat. Zero means IEEEFloat.
	ASCIIHeader bool     //write the textual header in ASCII instead of EBCDIC
	TimeScale   float64  //factor that takes the sampling interval to microseconds. Zero means 1e6 (seconds).
	Text        []string //lines for the textual header
	FirstTrace  int      //number of the first trace, used for the trace number field. Zero means 1.
}

// DefaultOptions returns IEEE samples, an EBCDIC header and intervals in seconds.
func DefaultOptions() Options {
	return Options{Format: IEEEFloat, TimeScale: 1e6, FirstTrace: 1}
}

func (O *Options) fill() {
	if O.Format == 0 {
		O.Format = IEEEFloat
	}
	if O.TimeScale == 0 {
		O.TimeScale = 1e6
	}
	if O.FirstTrace == 0 {
		O.FirstTrace = 1
	}
}

// Microseconds converts the interval dt to the integer microseconds stored in the headers.
func Microseconds(dt, scale float64) (uint16, error) {
	us := math.Round(dt * scale)
	if math.IsNaN(us) || us < 1 || us > MaxSamples {
		return 0, fmt.Errorf("%w: %g gives %g microseconds", ErrInterval, dt, us)
	}
	return uint16(us), nil
}

// Writer is a SEG-Y file opened for writing. The file is built under a temporary name,
// and only gets its final name when Close succeeds.
type Writer struct {
	f        *os.File
	w        *bufio.Writer
	filename string
	tmpname  string
	ntraces  int
	nsamples int
	written  int
	interval uint16
	opts     Options
	writable bool
	buffer   []byte
	endian   binary.ByteOrder
}

// NewWriter starts a SEG-Y file for ntraces traces of nsamples samples each, sampled every
// dt units (see Options.TimeScale). The textual and binary headers are written right away.
func NewWriter(filename string, ntraces, nsamples int, dt float64, opts Options) (*Writer, error) {
	opts.fill()
	if ntraces <= 0 || nsamples <= 0 {
		return nil, newError(fmt.Sprintf("%d traces of %d samples", ntraces, nsamples), filename, "NewWriter", ErrEmpty)
	}
	if nsamples > MaxSamples {
		return nil, newError(fmt.Sprintf("%d samples per trace, at most %d allowed", nsamples, MaxSamples), filename, "NewWriter", ErrSamples)
	}
	if opts.Format != IEEEFloat && opts.Format != IBMFloat {
		return nil, newError(fmt.Sprintf("format code %d", opts.Format), filename, "NewWriter", ErrFormat)
	}
	us, err := Microseconds(dt, opts.TimeScale)
	if err != nil {
		return nil, newError("invalid interval", filename, "NewWriter", err)
	}
	W := &Writer{filename: filename, ntraces: ntraces, nsamples: nsamples, interval: us, opts: opts, endian: binary.BigEndian}
	W.f, err = os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp-*")
	if err != nil {
		return nil, newError(UnableToCreate, filename, "NewWriter", err)
	}
	W.tmpname = W.f.Name()
	W.w = bufio.NewWriter(W.f)
	W.writable = true
	if err := W.writeHeaders(); err != nil {
		W.Abort()
		return nil, errDecorate(err, "NewWriter")
	}
	W.buffer = make([]byte, 4*nsamples)
	return W, nil
}

func (W *Writer) writeHeaders() error {
	text, err := encodeTextual(Textual(W.opts.Text), W.opts.ASCIIHeader)
	if err != nil {
		return newError("can't encode textual header", W.filename, "writeHeaders", err)
	}
	if _, err := W.w.Write(text); err != nil {
		return newError(WriteError, W.filename, "writeHeaders", err)
	}
	bh := BinaryHeader{
		JobID:                   1,
		LineNumber:              1,
		ReelNumber:              1,
		TracesPerEnsemble:       int16(min(W.ntraces, math.MaxInt16)),
		SampleInterval:          W.interval,
		OriginalSampleInterval:  W.interval,
		SamplesPerTrace:         uint16(W.nsamples),
		OriginalSamplesPerTrace: uint16(W.nsamples),
		FormatCode:              W.opts.Format,
		EnsembleFold:            1,
		SortingCode:             1, //as recorded
		MeasurementSystem:       1, //meters
		Revision:                Revision1,
		FixedLength:             1,
	}
	if err := binary.Write(W.w, W.endian, &bh); err != nil {
		return newError(WriteError, W.filename, "writeHeaders", err)
	}
	return nil
}

// Len returns the number of samples per trace.
func (W *Writer) Len() int {
	return W.nsamples
}

// WNext writes the next trace, which must have exactly Len() samples.
func (W *Writer) WNext(trace []float64) error {
	if !W.writable {
		return newError(WriterClosed, W.filename, "WNext", nil)
	}
	if len(trace) != W.nsamples {
		return newError(fmt.Sprintf("%s: %d samples, expected %d", WrongTraceLen, len(trace), W.nsamples), W.filename, "WNext", nil)
	}
	if W.written >= W.ntraces {
		return newError(fmt.Sprintf("all %d traces already written", W.ntraces), W.filename, "WNext", nil)
	}
	W.written++
	th := TraceHeader{
		SeqLine:        int32(W.written),
		SeqFile:        int32(W.written),
		FieldRecord:    1,
		TraceNumber:    int32(W.opts.FirstTrace + W.written - 1),
		CDP:            int32(W.opts.FirstTrace + W.written - 1),
		CDPTrace:       1,
		TraceID:        1, //seismic data
		VerticalSum:    1,
		HorizontalSum:  1,
		DataUse:        1, //production
		Samples:        uint16(W.nsamples),
		SampleInterval: W.interval,
	}
	if err := binary.Write(W.w, W.endian, &th); err != nil {
		return newError(WriteError, W.filename, "WNext", err)
	}
	for i, v := range trace {
		var u uint32
		if W.opts.Format == IBMFloat {
			u = IEEEToIBM(float32(v))
		} else {
			u = math.Float32bits(float32(v))
		}
		W.endian.PutUint32(W.buffer[4*i:], u)
	}
	if _, err := W.w.Write(W.buffer); err != nil {
		return newError(WriteError, W.filename, "WNext", err)
	}
	return nil
}

// Close flushes the file and gives it its final name. If not all the traces were
// written, or anything fails, the file is removed and an error is returned.
func (W *Writer) Close() error {
	if !W.writable {
		return newError(WriterClosed, W.filename, "Close", nil)
	}
	if W.written != W.ntraces {
		W.Abort()
		return newError(fmt.Sprintf("only %d of %d traces written", W.written, W.ntraces), W.filename, "Close", nil)
	}
	fail := func(err error) error {
		W.Abort()
		return newError(WriteError, W.filename, "Close", err)
	}
	if err := W.w.Flush(); err != nil {
		return fail(err)
	}
	if err := W.f.Sync(); err != nil {
		return fail(err)
	}
	if err := W.f.Close(); err != nil {
		return fail(err)
	}
	W.writable = false
	if err := os.Rename(W.tmpname, W.filename); err != nil {
		os.Remove(W.tmpname)
		return newError(WriteError, W.filename, "Close", err)
	}
	W.tmpname = ""
	return nil
}

// Abort discards the file being written. It is safe to call more than once.
func (W *Writer) Abort() {
	if W.f != nil && W.writable {
		W.f.Close()
	}
	W.writable = false
	if W.tmpname != "" {
		os.Remove(W.tmpname)
	}
}

// WriteFile writes data to a new SEG-Y file, one trace per column of the matrix
// and one sample per row. dt is the sampling interval.
func WriteFile(filename string, data mat.Matrix, dt float64, opts Options) error {
	r, c := data.Dims()
	W, err := NewWriter(filename, c, r, dt, opts)
	if err != nil {
		return errDecorate(err, "WriteFile")
	}
	trace := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(trace, j, data)
		if err := W.WNext(trace); err != nil {
			W.Abort()
			return errDecorate(err, "WriteFile")
		}
	}
	return errDecorate(W.Close(), "WriteFile")
}
