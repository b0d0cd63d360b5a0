/*
 * ibm.go, part of goseis
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

import "math"

// IEEEToIBM converts f to a big-endian IBM System/360 single precision float.
// Values too large for the IBM format are saturated, too small ones become 0.
func IEEEToIBM(f float32) uint32 {
	bits := math.Float32bits(f)
	sign := bits & 0x80000000
	if f == 0 || math.IsNaN(float64(f)) {
		return 0
	}
	if math.IsInf(float64(f), 0) {
		return sign | 0x7fffffff
	}
	exp := int((bits>>23)&0xff) - 127
	frac := bits & 0x7fffff
	if exp == -127 { //denormal
		exp = -126
	} else {
		frac |= 0x800000
	}
	//normalize so the leading bit sits at position 23
	for frac&0x800000 == 0 {
		frac <<= 1
		exp--
	}
	//f = 0.frac * 2^(exp+1); IBM wants 0.frac16 * 16^(e16-64)
	e2 := exp + 1
	e16 := (e2 + 3) >> 2 //ceil(e2/4)
	frac >>= uint(4*e16 - e2)
	ibmexp := e16 + 64
	if ibmexp > 127 {
		return sign | 0x7fffffff
	}
	if ibmexp < 0 {
		return 0
	}
	return sign | uint32(ibmexp)<<24 | frac
}

// IBMToIEEE converts an IBM System/360 single precision float to a float32.
func IBMToIEEE(u uint32) float32 {
	frac := u & 0xffffff
	if frac == 0 {
		return 0
	}
	exp := int((u>>24)&0x7f) - 64
	v := float64(frac) / 16777216.0 * math.Pow(16, float64(exp))
	if u&0x80000000 != 0 {
		v = -v
	}
	return float32(v)
}
