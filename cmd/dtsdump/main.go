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

// Command dtsdump parses a DTS file, optionally applies an overlay of
// amendments from a second file, and prints the history of a
// requested path plus the number of top-level children in the folded
// effective tree; it does not print the folded tree itself. It exists to
// illustrate wiring dts and labelstore together; it is not part of
// the core module.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/salikh/dts/dts"
	"github.com/salikh/dts/labelstore"
)

var (
	input   = flag.String("input", "", "path to the base DTS file (required)")
	overlay = flag.String("overlay", "", "path to an amendment overlay file (optional)")
	path    = flag.String("path", "/", "store path to print the history of")
)

func main() {
	flag.Parse()
	if *input == "" {
		glog.Exitf("-input is required")
	}
	if err := run(); err != nil {
		glog.Exitf("%v", err)
	}
}

func run() error {
	src, err := os.ReadFile(*input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *input, err)
	}
	boot, err := dts.ParseDocument(src)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", *input, err)
	}

	store := labelstore.New()
	if err := store.Fill(boot.Root); err != nil {
		return fmt.Errorf("filling base tree: %w", err)
	}
	if err := store.Apply(boot.Amendments); err != nil {
		return fmt.Errorf("applying inline amendments: %w", err)
	}

	if *overlay != "" {
		overlaySrc, err := os.ReadFile(*overlay)
		if err != nil {
			return fmt.Errorf("reading %s: %w", *overlay, err)
		}
		amendments, err := dts.ParseAmendments(overlaySrc)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", *overlay, err)
		}
		if err := store.Apply(amendments); err != nil {
			return fmt.Errorf("applying %s: %w", *overlay, err)
		}
	}

	hist, ok := store.HistoryAt(*path)
	if !ok {
		fmt.Printf("no history at path %q\n", *path)
	} else {
		fmt.Printf("history at %q (%d entries):\n", *path, len(hist))
		for i, e := range hist {
			if e.Kind == labelstore.ElementNode {
				fmt.Printf("  [%d] node %q state=%v\n", i, e.Node.Name, e.Node.State)
			} else {
				fmt.Printf("  [%d] property %q state=%v\n", i, e.Property.Name, e.Property.State)
			}
		}
	}

	folded, err := store.Fold(boot)
	if err != nil {
		return fmt.Errorf("folding effective tree: %w", err)
	}
	fmt.Printf("effective root has %d children\n", folded.Root.Children.Len())
	return nil
}
