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

/*Package seis converts the receiver tables written by seismic wave simulations into SEG-Y files.

A receiver table is a text file with one row per time step, and fields separated by ';'. The first
row is a header: "Time", then a "Vx <id>" and a "Vy <id>" column for each receiver. The two velocity
components are independent SEG-Y files; each receiver becomes a trace.

	**goseis Capabilities**

    Reads plain, gzip or zstd compressed receiver tables.

    Checks the header against the expected column names (advisory, or strict).

    Extracts either velocity component for any window of receivers, with
	negative indexes counting from the end.

    Splits the receivers in contiguous groups, each in its own files.

    Writes SEG-Y rev 1 files with IEEE or IBM samples (package segy).

    Draws wiggle previews of the output (package seisplot).

The whole conversion is driven by a Config value given to Convert.

*/
package seis
