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

package seis

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies the errors returned by the conversion pipeline.
type Kind int

const (
	IOError               Kind = iota //open, read or write failures
	FormatError                       //row or header shape mismatch
	ParseError                        //non-numeric field where a number was expected
	InsufficientDataError             //fewer than 2 time steps
	RangeError                        //empty receiver windows, impossible grouping, values the output format can't hold
	ConfigError                       //invalid configuration
)

func (k Kind) String() string {
	switch k {
	case IOError:
		return "IOError"
	case FormatError:
		return "FormatError"
	case ParseError:
		return "ParseError"
	case InsufficientDataError:
		return "InsufficientDataError"
	case RangeError:
		return "RangeError"
	case ConfigError:
		return "ConfigError"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ConvertError is the general structure for conversion errors. It fullfills Error and ConvError
type ConvertError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	kind     Kind
	critical bool
	err      error //the underlying cause, if any
}

func newError(k Kind, filename, message string, caller string, cause error) *ConvertError {
	return &ConvertError{message: message, filename: filename, deco: []string{caller}, kind: k, critical: true, err: cause}
}

func (err *ConvertError) Error() string {
	msg := err.message
	if err.err != nil {
		msg += ": " + err.err.Error()
	}
	if err.filename == "" {
		return fmt.Sprintf("%s: %s", err.kind, msg)
	}
	return fmt.Sprintf("%s in %s: %s", err.kind, err.filename, msg)
}

// Decorate Adds new information to the error
func (err *ConvertError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing operation was associated
func (err *ConvertError) FileName() string { return err.filename }

// Kind returns the class of the error
func (err *ConvertError) Kind() Kind { return err.kind }

// Critical returns true if the error is critical, false otherwise
func (err *ConvertError) Critical() bool { return err.critical }

func (err *ConvertError) Unwrap() error { return err.err }

// Trail returns the chain of functions the error went through, innermost first.
func (err *ConvertError) Trail() string { return strings.Join(err.deco, " <- ") }

// errDecorate decorates err with the caller's name if err implements Error, and returns it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

// IsKind returns true if err, or an error it wraps, is a ConvError of kind k.
func IsKind(err error, k Kind) bool {
	var e ConvError
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind() == k
}
