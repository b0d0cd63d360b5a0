/*
 * doc.go, part of goseis
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

//Package segy writes and reads fixed-length SEG-Y (revision 1) files, the container
//format used to exchange seismic traces.

/******************** Format Summary   ***************************************************

A SEG-Y file, as written by this package, has:

A 3200-byte textual header of 40 cards of 80 characters each, in EBCDIC (code page 037)
or, if requested, ASCII. Each card starts with "C", the card number and a space. The 39th
card reads "SEG Y REV1" and the last one "END TEXTUAL HEADER".

A 400-byte binary header. All integers are big-endian. The sample interval (microseconds),
samples per trace and sample format code are the fields readers need. The revision field is
0x0100 and the fixed-length flag is 1, so every trace has the same number of samples.

One block per trace: a 240-byte trace header, followed by the samples as 4-byte floats,
either IEEE (format code 5, the default) or IBM System/360 (format code 1).

The sample interval must be an integer number of microseconds between 1 and 65535, and a
trace can't have more than 65535 samples.

***************************************************************************************************/

package segy
