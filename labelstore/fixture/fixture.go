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

// Package fixture loads YAML-declared golden test cases for the
// labelstore package: a base document, an optional overlay of
// amendments, and a set of path-level assertions to check against the
// resulting Store. This plays the role the reference codebase's
// generator/testing/gentests.go fills for the parsing engine (a
// declared {input, expected outcome} table), but expressed as data
// rather than generated Go source, since this module has no
// code-generation step to feed.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Check is one assertion against a resolved Store, keyed by path.
type Check struct {
	// Path is the store path this check examines.
	Path string `yaml:"path"`
	// Label, if set, asserts that PathOfLabel(Label) == Path.
	Label string `yaml:"label,omitempty"`
	// HistoryLen, if non-zero, asserts len(HistoryAt(Path)) == HistoryLen.
	HistoryLen int `yaml:"history_len,omitempty"`
	// Deleted asserts the last history element at Path has State == Deleted.
	Deleted bool `yaml:"deleted,omitempty"`
}

// Case is one golden fixture: a base document, an optional amendment
// overlay, and either an expected failure substring or a list of
// checks to run against the filled/applied Store.
type Case struct {
	Name       string  `yaml:"name"`
	Input      string  `yaml:"input"`
	Amendments string  `yaml:"amendments,omitempty"`
	WantErr    string  `yaml:"want_err,omitempty"`
	Checks     []Check `yaml:"checks,omitempty"`
}

// Suite is the collection of Cases loaded from one YAML file.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

// Load reads and parses a YAML fixture file at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("fixture: parsing %s: %w", path, err)
	}
	return &s, nil
}
