/*
 * plan.go, part of goseis
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
	"path/filepath"
	"strings"
)

// Grouping requests the receiver set to be split in Groups contiguous windows of
// PerGroup receivers each. Groups=0 disables the splitting.
type Grouping struct {
	Groups   int
	PerGroup int
}

// Job is one output to be produced: the samples of Component for the receivers
// in Window. Label tells apart the outputs of different groups.
type Job struct {
	Label     string
	Component Component
	Window    Window
}

// Plan returns the jobs needed to convert a table with the given number of receivers.
// If grouping is requested, it takes precedence over the explicit window, which is then ignored.
func Plan(receivers int, g Grouping, explicit Window, comps []Component) ([]Job, error) {
	if len(comps) == 0 {
		return nil, newError(ConfigError, "", "no components selected", "Plan", nil)
	}
	if g.Groups <= 0 {
		jobs := make([]Job, 0, len(comps))
		for _, c := range comps {
			jobs = append(jobs, Job{Component: c, Window: explicit})
		}
		return jobs, nil
	}
	if g.PerGroup <= 0 {
		return nil, newError(RangeError, "", fmt.Sprintf("%d groups requested with %d receivers per group", g.Groups, g.PerGroup), "Plan", nil)
	}
	if g.PerGroup > receivers || g.Groups > receivers/g.PerGroup {
		return nil, newError(RangeError, "", fmt.Sprintf("%d groups of %d receivers requested, but there are only %d receivers", g.Groups, g.PerGroup, receivers), "Plan", nil)
	}
	jobs := make([]Job, 0, g.Groups*len(comps))
	for i := 0; i < g.Groups; i++ {
		w := Window{i * g.PerGroup, (i + 1) * g.PerGroup}
		for _, c := range comps {
			jobs = append(jobs, Job{Label: fmt.Sprintf("group_%d", i), Component: c, Window: w})
		}
	}
	return jobs, nil
}

// Extension of the SEG-Y files written.
const Extension = ".sgy"

// BaseName returns the output name for the job, without directory or extension:
// prefix, label and component tag, joined by underscores. Empty parts are left out.
func (J Job) BaseName(prefix string) string {
	parts := make([]string, 0, 3)
	for _, v := range []string{prefix, J.Label, J.Component.Tag()} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "_")
}

// OutputName returns the path of the SEG-Y file for the job.
func (J Job) OutputName(dir, prefix string) string {
	return filepath.Join(dir, J.BaseName(prefix)+Extension)
}
