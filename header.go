/*
 * header.go, part of goseis
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
	"strings"
)

// Labels holds the expected names for the columns of a receiver table.
type Labels struct {
	Time string `yaml:"time" envconfig:"TIME_LABEL" validate:"required"`
	A    string `yaml:"a" envconfig:"A_LABEL" validate:"required"`
	B    string `yaml:"b" envconfig:"B_LABEL" validate:"required"`
}

// DefaultLabels returns the labels written by the simulator: Time, then "Vx <id>" and "Vy <id>"
// for each receiver.
func DefaultLabels() Labels {
	return Labels{Time: "Time", A: "Vx", B: "Vy"}
}

// WarningKind tells which check produced a Warning.
type WarningKind int

const (
	TimeLabelWarning WarningKind = iota
	ALabelWarning
	BLabelWarning
	SpacingWarning
)

// Warning is an advisory message about a table that doesn't conform to
// the expected layout. The conversion goes on anyway, but the output may be nonsense.
type Warning struct {
	Kind   WarningKind
	Column int    //column of the header where the problem was found, -1 if not applicable.
	Label  string //offending label, if any.
	Msg    string
}

func (W Warning) Error() string {
	return "HeaderWarning: " + W.Msg
}

// firstToken returns the first whitespace-separated token in s, or an
// empty string if s is blank.
func firstToken(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// CheckHeader checks header against the labels given. It is a sanity check, not a strict validation:
// only the first offending column of each class is reported.
func CheckHeader(header []string, labels Labels) []Warning {
	var ret []Warning
	if len(header) == 0 {
		return []Warning{{Kind: TimeLabelWarning, Column: 0, Msg: "empty header"}}
	}
	if header[0] != labels.Time {
		ret = append(ret, Warning{TimeLabelWarning, 0, header[0],
			fmt.Sprintf("header doesn't conform (%s column): got %q", labels.Time, header[0])})
	}
	for i := 1; i < len(header); i += 2 {
		if firstToken(header[i]) != labels.A {
			ret = append(ret, Warning{ALabelWarning, i, header[i],
				fmt.Sprintf("header doesn't conform (%s columns): column %d is %q", labels.A, i, header[i])})
			break
		}
	}
	for i := 2; i < len(header); i += 2 {
		if firstToken(header[i]) != labels.B {
			ret = append(ret, Warning{BLabelWarning, i, header[i],
				fmt.Sprintf("header doesn't conform (%s columns): column %d is %q", labels.B, i, header[i])})
			break
		}
	}
	return ret
}
