/*
 * errors.go, part of goseis
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
	"errors"
	"fmt"
)

// Causes a SEG-Y file can't be written for. They are wrapped by Error.
var (
	ErrInterval = errors.New("sample interval out of the range the format can hold")
	ErrSamples  = errors.New("too many samples per trace")
	ErrEmpty    = errors.New("no traces or no samples to write")
	ErrFormat   = errors.New("unsupported sample format")
)

// errDecorate decorates the error with the caller's name before returning it.
// The error is returned as it was given, wrappers included.
func errDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

// Error is the general structure for SEG-Y errors.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     *[]string
	critical bool
	err      error
}

func newError(message, filename, caller string, cause error) Error {
	d := []string{caller}
	return Error{message, filename, &d, true, cause}
}

func (err Error) Error() string {
	msg := err.message
	if err.err != nil {
		msg += ": " + err.err.Error()
	}
	return fmt.Sprintf("segy file %s error: %s", err.filename, msg)
}

// Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	if E.deco == nil {
		return nil
	}
	if deco != "" {
		*E.deco = append(*E.deco, deco)
	}
	return *E.deco
}

func (err Error) Unwrap() error { return err.err }

// Filename returns the file to which the failing operation was associated
func (err Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen   = "Unable to open file"
	UnableToCreate = "Unable to create file"
	WriterClosed   = "Writer is not open for writing"
	WrongTraceLen  = "Trace length doesn't match the file"
	ReadError      = "Error reading file"
	WriteError     = "Error writing file"
)
