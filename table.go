/*
 * table.go, part of goseis
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Delimiter separates the fields of a receiver table.
const Delimiter = ";"

// Table is a receiver table read into memory. The header row is kept apart
// from the data rows, and every data row has as many fields as the header.
type Table struct {
	Header   []string
	Rows     [][]string
	filename string
}

// Len returns the number of data rows (time steps) in the table
func (T *Table) Len() int {
	return len(T.Rows)
}

// Receivers returns the number of receivers in the table, i.e. the number
// of Component A/B column pairs.
func (T *Table) Receivers() int {
	return (len(T.Header) - 1) / 2
}

// FileName returns the name of the file the table was read from.
func (T *Table) FileName() string {
	return T.filename
}

// zstd.Decoder has Close() without an error, so it doesn't implement io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// decompressor returns a reader that decompresses r according to the extension of
// name. Files with unknown extensions are returned as they are.
func decompressor(name string, r io.Reader) (io.ReadCloser, error) {
	lname := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lname, ".gz"):
		g, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return g, nil
	case strings.HasSuffix(lname, ".zst"), strings.HasSuffix(lname, ".zstd"):
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdCloser{d}, nil
	}
	return io.NopCloser(r), nil
}

// ReadTable reads the receiver table in the file name. Files ending in .gz
// or .zst/.zstd are decompressed on the fly.
func ReadTable(name string) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(IOError, name, "unable to open table", "ReadTable", err)
	}
	defer f.Close()
	r, err := decompressor(name, f)
	if err != nil {
		return nil, newError(IOError, name, "unable to decompress table", "ReadTable", err)
	}
	defer r.Close()
	t, err := ReadTableFrom(r, name)
	return t, errDecorate(err, "ReadTable")
}

// ReadTableFrom reads a receiver table from r. name is only used to
// identify the source in errors.
func ReadTableFrom(r io.Reader, name string) (*Table, error) {
	T := &Table{filename: name}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024) //rows with thousands of receivers are long
	line := 0
	for sc.Scan() {
		line++
		str := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(str) == "" {
			continue
		}
		fields := strings.Split(str, Delimiter)
		if T.Header == nil {
			if len(fields) < 3 || len(fields)%2 == 0 {
				return nil, newError(FormatError, name, fmt.Sprintf("header has %d fields, expected 1+2*receivers", len(fields)), "ReadTableFrom", nil)
			}
			for i, v := range fields {
				fields[i] = strings.TrimSpace(v)
			}
			T.Header = fields
			continue
		}
		if len(fields) != len(T.Header) {
			return nil, newError(FormatError, name, fmt.Sprintf("line %d has %d fields, the header has %d", line, len(fields), len(T.Header)), "ReadTableFrom", nil)
		}
		T.Rows = append(T.Rows, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, newError(IOError, name, "error reading table", "ReadTableFrom", err)
	}
	if T.Header == nil {
		return nil, newError(FormatError, name, "empty table", "ReadTableFrom", nil)
	}
	return T, nil
}
