/*
 * inspect.go, part of goseis
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

package commands

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rmera/goseis/segy"
)

// textLinesShown is how many cards of the textual header inspect prints.
const textLinesShown = 4

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE.sgy",
		Short: "Print a summary of a SEG-Y file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			F, err := segy.Open(args[0])
			if err != nil {
				return errors.Wrapf(err, "inspecting %s", args[0])
			}
			out := cmd.OutOrStdout()
			format := "ieee"
			if F.Binary.FormatCode == segy.IBMFloat {
				format = "ibm"
			}
			fmt.Fprintf(out, "file:     %s\n", args[0])
			fmt.Fprintf(out, "traces:   %d\n", F.Len())
			fmt.Fprintf(out, "samples:  %d\n", F.Binary.SamplesPerTrace)
			fmt.Fprintf(out, "interval: %d us\n", F.Interval())
			fmt.Fprintf(out, "format:   %s\n", format)
			for i := 0; i < textLinesShown && 80*(i+1) <= len(F.Text); i++ {
				fmt.Fprintln(out, strings.TrimRight(F.Text[80*i:80*(i+1)], " "))
			}
			return nil
		},
	}
}
