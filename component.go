/*
 * component.go, part of goseis
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

import "fmt"

// Component selects one of the two velocity channels of a receiver.
type Component int

const (
	ComponentA Component = iota //Vx, odd columns
	ComponentB                  //Vy aka Vz, even columns
)

// Tag returns the short name used for the component in output files.
func (c Component) Tag() string {
	if c == ComponentB {
		return "vz"
	}
	return "vx"
}

func (c Component) String() string {
	return c.Tag()
}

// offset returns the position of the first column of the component in a table row.
func (c Component) offset() int {
	return int(c) + 1
}

// Selection values accepted by ParseSelection
const (
	SelectA    = "vx"
	SelectB    = "vz"
	SelectBoth = "both"
)

// ParseSelection returns the components named by sel, in output order.
func ParseSelection(sel string) ([]Component, error) {
	switch sel {
	case SelectA:
		return []Component{ComponentA}, nil
	case SelectB:
		return []Component{ComponentB}, nil
	case SelectBoth, "":
		return []Component{ComponentA, ComponentB}, nil
	}
	return nil, newError(ConfigError, "", fmt.Sprintf("unknown component selection %q", sel), "ParseSelection", nil)
}
