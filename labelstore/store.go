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
	"sort"
	"strings"

	"github.com/golang/glog"

	"github.com/salikh/dts/dts"
)

// ElementKind discriminates the two kinds of history entry a path can
// accumulate.
type ElementKind int

const (
	// ElementNode marks a history entry produced by the node itself
	// (recorded after its properties and children are processed).
	ElementNode ElementKind = iota
	// ElementProperty marks a history entry produced by a property.
	ElementProperty
)

// Element is one entry in a path's history: a snapshot of the Node or
// Property that touched that path, in the order it was applied.
type Element struct {
	Kind     ElementKind
	Node     *dts.Node
	Property *dts.Property
}

// State returns the Existing/Deleted state of whichever of Node or
// Property this element wraps.
func (e Element) State() dts.State {
	if e.Kind == ElementNode {
		return e.Node.State
	}
	return e.Property.State
}

// Store holds the path-indexed history and the live label index built
// by Fill and Apply.
type Store struct {
	paths  map[string][]Element
	labels map[string]string
	// ghosts records the last path a label pointed to before it was
	// dropped by a deletion, for diagnostic tooling. It is not
	// consulted by PathOfLabel or reference resolution.
	ghosts map[string]string
	// order records, for every path, the sequence number it was first
	// touched in, so Fold can rebuild sibling order without relying on
	// path-string sort order. seq is the next number to hand out.
	order map[string]int
	seq   int
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		paths:  map[string][]Element{},
		labels: map[string]string{},
		ghosts: map[string]string{},
		order:  map[string]int{},
	}
}

// joinPath appends a literal child name to a parent path, handling the
// root specially: the root's own name is always "/".
func joinPath(parent, name string) string {
	if name == "/" {
		return "/"
	}
	if parent == "/" {
		return "/" + name
	}
	return parent + "/" + name
}

// Fill runs Pass 1: a base walk over root that registers every label
// and appends the initial history entry for every node and property
// path.
func (s *Store) Fill(root *dts.Node) error {
	return s.applyNode("/", root)
}

// Apply runs Pass 2: each amendment is resolved against the current
// label/path index (populated by Fill and by earlier amendments in
// this same call) and applied in order.
func (s *Store) Apply(amendments []*dts.Node) error {
	for _, amendment := range amendments {
		if err := s.applyAmendment(amendment); err != nil {
			return err
		}
	}
	return nil
}

// resolvedPath determines the path a node occupies: joined to its
// parent by literal name, or resolved through the label/path index
// when the node is named by reference.
func (s *Store) resolvedPath(parentPath string, node *dts.Node) (string, error) {
	if node.NameRef != nil {
		return s.resolveReference(node.NameRef)
	}
	return joinPath(parentPath, node.Name), nil
}

// resolveReference resolves a "&label" or "&{path}" reference to a
// path that must already exist in the store.
func (s *Store) resolveReference(ref *dts.Reference) (string, error) {
	switch ref.Kind {
	case dts.RefLabel:
		path, ok := s.labels[ref.Value]
		if !ok {
			return "", &dts.Error{Kind: dts.UnresolvedReference, Offset: -1, Msg: "unresolved label reference &" + ref.Value}
		}
		return path, nil
	case dts.RefPath:
		path := ref.Value
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		if _, ok := s.paths[path]; !ok {
			return "", &dts.Error{Kind: dts.UnresolvedReference, Offset: -1, Msg: "unresolved path reference &{" + ref.Value + "}"}
		}
		return path, nil
	default:
		return "", &dts.Error{Kind: dts.UnresolvedReference, Offset: -1, Msg: "reference of unknown kind"}
	}
}

// insertLabels binds each of labels to path, failing if any of them
// already points at a different path.
func (s *Store) insertLabels(path string, labels []string) error {
	for _, l := range labels {
		if existing, ok := s.labels[l]; ok {
			if existing != path {
				return &dts.Error{
					Kind:   dts.DuplicateLabel,
					Offset: -1,
					Msg:    "label " + l + " already points to " + existing + ", cannot also point to " + path,
				}
			}
			continue
		}
		s.labels[l] = path
	}
	return nil
}

// deleteLabels drops every label whose path is path itself or a
// descendant of path, recording where each one pointed in ghosts.
func (s *Store) deleteLabels(path string) {
	prefix := path + "/"
	if path == "/" {
		prefix = "/"
	}
	for l, p := range s.labels {
		if p == path || strings.HasPrefix(p, prefix) {
			s.ghosts[l] = p
			delete(s.labels, l)
		}
	}
}

func (s *Store) appendHistory(path string, e Element) {
	if _, ok := s.paths[path]; !ok {
		s.order[path] = s.seq
		s.seq++
	}
	s.paths[path] = append(s.paths[path], e)
}

// creationOrder returns the sequence number path was first touched in,
// for ordering siblings in Fold.
func (s *Store) creationOrder(path string) int {
	return s.order[path]
}

// applyNode walks node recursively, processing it and its descendants
// exactly as Pass 1 does: node.Name (or node.NameRef) is joined/
// resolved relative to parentPath, and node's own history entry is
// appended last, after its properties and children.
func (s *Store) applyNode(parentPath string, node *dts.Node) error {
	nodePath, err := s.resolvedPath(parentPath, node)
	if err != nil {
		return err
	}
	if node.State == dts.Deleted {
		return s.applyNodeDeletion(nodePath, node)
	}
	if err := s.insertLabels(nodePath, node.Labels); err != nil {
		return err
	}
	for _, prop := range node.Properties.All() {
		if err := s.applyProperty(nodePath, prop); err != nil {
			return err
		}
	}
	for _, child := range node.Children.All() {
		if err := s.applyNode(nodePath, child); err != nil {
			return err
		}
	}
	glog.V(3).Infof("node %s: %d properties, %d children", nodePath, node.Properties.Len(), node.Children.Len())
	s.appendHistory(nodePath, Element{Kind: ElementNode, Node: node})
	return nil
}

// applyNodeAt applies node's properties and children directly at path,
// without joining node.Name onto path: used when path was already
// resolved as the amendment's own target, so node.Name (if literal) is
// the target name, not a child name to append.
func (s *Store) applyNodeAt(path string, node *dts.Node) error {
	if err := s.insertLabels(path, node.Labels); err != nil {
		return err
	}
	for _, prop := range node.Properties.All() {
		if err := s.applyProperty(path, prop); err != nil {
			return err
		}
	}
	for _, child := range node.Children.All() {
		if err := s.applyNode(path, child); err != nil {
			return err
		}
	}
	s.appendHistory(path, Element{Kind: ElementNode, Node: node})
	return nil
}

func (s *Store) applyProperty(nodePath string, prop *dts.Property) error {
	propPath := joinPath(nodePath, prop.Name)
	if prop.State == dts.Deleted {
		s.deleteLabels(propPath)
		s.appendHistory(propPath, Element{Kind: ElementProperty, Property: prop})
		return nil
	}
	if err := s.insertLabels(propPath, prop.Labels); err != nil {
		return err
	}
	s.appendHistory(propPath, Element{Kind: ElementProperty, Property: prop})
	return nil
}

// applyNodeDeletion records a node tombstone at nodePath, drops labels
// rooted there, and propagates the deletion to every currently-live
// path under nodePath (properties and descendant nodes alike), so a
// later history lookup for any of them also ends in Deleted.
func (s *Store) applyNodeDeletion(nodePath string, node *dts.Node) error {
	s.deleteLabels(nodePath)
	s.appendHistory(nodePath, Element{Kind: ElementNode, Node: node})
	prefix := nodePath + "/"
	if nodePath == "/" {
		prefix = "/"
	}
	var affected []string
	for p, hist := range s.paths {
		if p == nodePath || !strings.HasPrefix(p, prefix) {
			continue
		}
		if len(hist) == 0 {
			continue
		}
		if hist[len(hist)-1].State() == dts.Existing {
			affected = append(affected, p)
		}
	}
	sort.Strings(affected)
	for _, p := range affected {
		s.deleteLabels(p)
		s.appendHistory(p, Element{Kind: ElementNode, Node: node})
	}
	glog.V(2).Infof("deleted node %s, propagated to %d descendant paths", nodePath, len(affected))
	return nil
}

// applyAmendment resolves an amendment's target and applies it: a
// modification merges the amendment's properties/children into the
// target path, a deletion tombstones it.
func (s *Store) applyAmendment(node *dts.Node) error {
	targetPath, err := s.amendmentTargetPath(node)
	if err != nil {
		return err
	}
	if node.State == dts.Deleted {
		return s.applyNodeDeletion(targetPath, node)
	}
	return s.applyNodeAt(targetPath, node)
}

// amendmentTargetPath resolves the path an amendment applies to: a
// reference resolves through the label/path index; a literal "/"
// targets the root; any other literal name that happens to match a
// registered label resolves to that label's path; otherwise the
// amendment targets the root.
func (s *Store) amendmentTargetPath(node *dts.Node) (string, error) {
	if node.NameRef != nil {
		return s.resolveReference(node.NameRef)
	}
	if node.Name == "/" {
		return "/", nil
	}
	if path, ok := s.labels[node.Name]; ok {
		return path, nil
	}
	return "/", nil
}

// HistoryAt returns the ordered history recorded for path, and whether
// any history exists there at all.
func (s *Store) HistoryAt(path string) ([]Element, bool) {
	h, ok := s.paths[path]
	if !ok {
		return nil, false
	}
	cp := make([]Element, len(h))
	copy(cp, h)
	return cp, true
}

// PathOfLabel returns the current path a live label points to.
func (s *Store) PathOfLabel(label string) (string, bool) {
	p, ok := s.labels[label]
	return p, ok
}

// GhostPathOfLabel returns the path a now-dropped label last pointed
// to, for diagnostic tooling. It does not affect PathOfLabel or
// reference resolution.
func (s *Store) GhostPathOfLabel(label string) (string, bool) {
	p, ok := s.ghosts[label]
	return p, ok
}
