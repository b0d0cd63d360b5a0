/*
 * headers.go, part of goseis
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
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Sizes, in bytes, of the fixed parts of a SEG-Y file.
const (
	TextualSize     = 3200
	BinarySize      = 400
	TraceHeaderSize = 240
	cardLen         = 80
	cards           = 40
)

// Sample format codes of the binary header
const (
	IBMFloat  int16 = 1
	IEEEFloat int16 = 5
)

// Revision1 is the revision number stored in the binary header (0x0100, rev 1.0)
const Revision1 uint16 = 0x0100

// MaxSamples is the largest number of samples per trace, or microseconds per sample,
// that fits in the header fields.
const MaxSamples = 65535

// BinaryHeader is the 400-byte header that follows the textual one. Fields are in file order,
// so the struct can be read and written with encoding/binary.
type BinaryHeader struct {
	JobID                   int32
	LineNumber              int32
	ReelNumber              int32
	TracesPerEnsemble       int16
	AuxTracesPerEnsemble    int16
	SampleInterval          uint16 //microseconds
	OriginalSampleInterval  uint16
	SamplesPerTrace         uint16
	OriginalSamplesPerTrace uint16
	FormatCode              int16
	EnsembleFold            int16
	SortingCode             int16
	VerticalSumCode         int16
	SweepStart              int16
	SweepEnd                int16
	SweepLength             int16
	SweepType               int16
	SweepChannel            int16
	SweepTaperStart         int16
	SweepTaperEnd           int16
	TaperType               int16
	CorrelatedTraces        int16
	GainRecovered           int16
	AmplitudeRecovery       int16
	MeasurementSystem       int16
	ImpulsePolarity         int16
	VibratoryPolarity       int16
	_                       [240]byte
	Revision                uint16
	FixedLength             int16
	ExtendedHeaders         int16
	_                       [94]byte
}

// TraceHeader is the 240-byte header that precedes the samples of each trace.
// Only the fields filled by this package are named.
type TraceHeader struct {
	SeqLine          int32
	SeqFile          int32
	FieldRecord      int32
	TraceNumber      int32
	EnergySource     int32
	CDP              int32
	CDPTrace         int32
	TraceID          int16
	VerticalSum      int16
	HorizontalSum    int16
	DataUse          int16
	Offset           int32
	_                [28]byte
	ElevationScalar  int16
	CoordinateScalar int16
	SourceX          int32
	SourceY          int32
	GroupX           int32
	GroupY           int32
	CoordinateUnits  int16
	_                [24]byte
	Samples          uint16
	SampleInterval   uint16
	_                [122]byte
}

// Textual builds a 3200-byte textual header with the lines given, one per 80-character
// card. Each card gets the customary "Cnn " prefix; longer lines are cut and missing ones are
// left blank. The last two cards state the revision and the end of the header.
func Textual(lines []string) string {
	var b strings.Builder
	for i := 0; i < cards; i++ {
		var l string
		switch {
		case i == cards-2:
			l = "SEG Y REV1"
		case i == cards-1:
			l = "END TEXTUAL HEADER"
		case i < len(lines):
			l = lines[i]
		}
		card := fmt.Sprintf("C%2d %s", i+1, asciiOnly(l))
		if len(card) > cardLen {
			card = card[:cardLen]
		}
		b.WriteString(card)
		b.WriteString(strings.Repeat(" ", cardLen-len(card)))
	}
	return b.String()
}

// asciiOnly replaces non-printable or non-ASCII characters with '?'
func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return '?'
		}
		return r
	}, s)
}

// encodeTextual returns the bytes of the textual header, in EBCDIC unless ascii is true.
func encodeTextual(text string, ascii bool) ([]byte, error) {
	if ascii {
		return []byte(text), nil
	}
	return charmap.CodePage037.NewEncoder().Bytes([]byte(text))
}

// decodeTextual returns the textual header as a string, guessing its encoding:
// ASCII headers start with 'C', EBCDIC ones with 0xC3.
func decodeTextual(raw []byte) (string, error) {
	if len(raw) > 0 && raw[0] == 'C' {
		return string(raw), nil
	}
	b, err := charmap.CodePage037.NewDecoder().Bytes(raw)
	return string(b), err
}
