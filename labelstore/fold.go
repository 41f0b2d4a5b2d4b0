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
	"sort"
	"strings"

	"github.com/salikh/dts/dts"
)

// Fold builds the effective tree: for every live path (history ending
// in Existing), the result overlays every Existing element in order;
// a path whose history ends in Deleted is dropped entirely. ReserveInfo
// and BootCPUIDPhys are carried over unchanged from base, since the
// label store does not track them.
func (s *Store) Fold(base *dts.BootInfo) (*dts.BootInfo, error) {
	root, err := s.foldNode("/")
	if err != nil {
		return nil, err
	}
	return &dts.BootInfo{
		ReserveInfo:   base.ReserveInfo,
		BootCPUIDPhys: base.BootCPUIDPhys,
		Root:          root,
	}, nil
}

func pathBase(path string) string {
	if path == "/" {
		return "/"
	}
	idx := strings.LastIndex(path, "/")
	return path[idx+1:]
}

func mergeNodeLabels(hist []Element) []string {
	var out []string
	seen := map[string]bool{}
	for _, e := range hist {
		if e.Kind != ElementNode || e.State() != dts.Existing {
			continue
		}
		for _, l := range e.Node.Labels {
			if !seen[l] {
				seen[l] = true
				out = append(out, l)
			}
		}
	}
	return out
}

func mergePropertyLabels(hist []Element) []string {
	var out []string
	seen := map[string]bool{}
	for _, e := range hist {
		if e.Kind != ElementProperty || e.State() != dts.Existing {
			continue
		}
		for _, l := range e.Property.Labels {
			if !seen[l] {
				seen[l] = true
				out = append(out, l)
			}
		}
	}
	return out
}

func firstNodeName(hist []Element, path string) string {
	for _, e := range hist {
		if e.Kind == ElementNode && e.Node.Name != "" {
			return e.Node.Name
		}
	}
	return pathBase(path)
}

// foldNode reconstructs the effective node at path from its history
// plus the history of its direct children, recursing into child node
// paths. Direct children are found by scanning the store's path keys
// for a "path/segment" with no further "/" in the remainder; the
// result is ordered by each path's creationOrder (the sequence number
// it was first touched in), not by path string, so the folded tree
// preserves the original declaration order instead of alphabetizing
// it.
func (s *Store) foldNode(path string) (*dts.Node, error) {
	hist, ok := s.paths[path]
	if !ok || len(hist) == 0 {
		return nil, fmt.Errorf("labelstore: no history at path %q", path)
	}
	last := hist[len(hist)-1]
	if last.Kind != ElementNode {
		return nil, fmt.Errorf("labelstore: path %q is a property, not a node", path)
	}
	if last.State() != dts.Existing {
		return nil, nil
	}
	node := &dts.Node{
		Name:       firstNodeName(hist, path),
		Labels:     mergeNodeLabels(hist),
		Properties: dts.NewPropertyList(),
		Children:   dts.NewNodeList(),
		State:      dts.Existing,
	}
	prefix := path
	if prefix != "/" {
		prefix += "/"
	}
	var childPaths []string
	for p := range s.paths {
		if p == path || !strings.HasPrefix(p, prefix) {
			continue
		}
		if strings.Contains(p[len(prefix):], "/") {
			continue
		}
		childPaths = append(childPaths, p)
	}
	sort.Slice(childPaths, func(i, j int) bool {
		return s.creationOrder(childPaths[i]) < s.creationOrder(childPaths[j])
	})
	for _, cp := range childPaths {
		chist := s.paths[cp]
		clast := chist[len(chist)-1]
		if clast.State() != dts.Existing {
			continue
		}
		if clast.Kind == ElementProperty {
			node.Properties.Set(&dts.Property{
				Name:   clast.Property.Name,
				Labels: mergePropertyLabels(chist),
				Value:  clast.Property.Value,
				State:  dts.Existing,
			})
			continue
		}
		child, err := s.foldNode(cp)
		if err != nil {
			return nil, err
		}
		if child != nil {
			node.Children.Set(child)
		}
	}
	return node, nil
}
