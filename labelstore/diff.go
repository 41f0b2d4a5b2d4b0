// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package labelstore

import (
	"fmt"

	"github.com/salikh/dts/dts"
)

// Diff reports structural differences between got and want, walking
// properties and children pairwise. It is grounded on the reference
// codebase's tree.Diff: a slice of readable messages rather than a
// single bool, so a failing test can show exactly what diverged.
func Diff(got, want *dts.Node) []string {
	if got == nil && want == nil {
		return nil
	}
	if got == nil {
		return []string{fmt.Sprintf("expected node %q, got nil", want.Name)}
	}
	if want == nil {
		return []string{fmt.Sprintf("expected nil, got node %q", got.Name)}
	}
	var diff []string
	if got.Name != want.Name {
		diff = append(diff, fmt.Sprintf("node name: expected %q, got %q", want.Name, got.Name))
	}
	if got.State != want.State {
		diff = append(diff, fmt.Sprintf("node %q state: expected %v, got %v", want.Name, want.State, got.State))
	}
	if d := diffStrings(got.Labels, want.Labels); d != "" {
		diff = append(diff, fmt.Sprintf("node %q labels: %s", want.Name, d))
	}
	gotProps, wantProps := got.Properties.All(), want.Properties.All()
	if len(gotProps) != len(wantProps) {
		diff = append(diff, fmt.Sprintf("node %q: expected %d properties, got %d", want.Name, len(wantProps), len(gotProps)))
	}
	for i := 0; i < minInt(len(gotProps), len(wantProps)); i++ {
		diff = append(diff, diffProperty(gotProps[i], wantProps[i])...)
	}
	gotChildren, wantChildren := got.Children.All(), want.Children.All()
	if len(gotChildren) != len(wantChildren) {
		diff = append(diff, fmt.Sprintf("node %q: expected %d children, got %d", want.Name, len(wantChildren), len(gotChildren)))
	}
	for i := 0; i < minInt(len(gotChildren), len(wantChildren)); i++ {
		diff = append(diff, Diff(gotChildren[i], wantChildren[i])...)
	}
	return diff
}

func diffProperty(got, want *dts.Property) []string {
	var diff []string
	if got.Name != want.Name {
		diff = append(diff, fmt.Sprintf("property name: expected %q, got %q", want.Name, got.Name))
	}
	if got.State != want.State {
		diff = append(diff, fmt.Sprintf("property %q state: expected %v, got %v", want.Name, want.State, got.State))
	}
	if d := diffStrings(got.Labels, want.Labels); d != "" {
		diff = append(diff, fmt.Sprintf("property %q labels: %s", want.Name, d))
	}
	if len(got.Value) != len(want.Value) {
		diff = append(diff, fmt.Sprintf("property %q: expected %d data items, got %d", want.Name, len(want.Value), len(got.Value)))
	}
	return diff
}

func diffStrings(got, want []string) string {
	if len(got) != len(want) {
		return fmt.Sprintf("expected %v, got %v", want, got)
	}
	for i := range got {
		if got[i] != want[i] {
			return fmt.Sprintf("expected %v, got %v", want, got)
		}
	}
	return ""
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
