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

package dts

// State is the lifecycle state of a Node or Property: whether it is
// currently live, or was removed by a later amendment.
type State int

const (
	// Existing marks a node or property that is currently live.
	Existing State = iota
	// Deleted marks a tombstone left behind by a /delete-node/ or
	// /delete-property/ directive.
	Deleted
)

func (s State) String() string {
	if s == Deleted {
		return "Deleted"
	}
	return "Existing"
}

// RefKind distinguishes the two reference syntaxes.
type RefKind int

const (
	// RefLabel is a bare "&label" reference.
	RefLabel RefKind = iota
	// RefPath is an absolute "&{/a/b}" path reference.
	RefPath
)

// Reference is a parsed "&label" or "&{/abs/path}" occurrence. It is
// resolved against a label/path index by labelstore, not by this
// package.
type Reference struct {
	Kind RefKind
	// Value holds the label name for RefLabel, or the path text
	// (without the "&{" "}" delimiters) for RefPath.
	Value string
}

// Cell is one element of a "< ... >" cell list: either a literal
// 64-bit value, or a deferred reference in which case Value is left at
// its zero placeholder until a consumer resolves Ref.
type Cell struct {
	Value uint64
	Ref   *Reference
}

// DataKind discriminates the variants of DataItem.
type DataKind int

const (
	// DataString is a double-quoted, escape-decoded byte string.
	DataString DataKind = iota
	// DataCells is a "< ... >" list of 64-bit cells and references.
	DataCells
	// DataByteArray is a "[ hex hex ... ]" list of raw bytes.
	DataByteArray
	// DataReference is a bare "&label" or "&{path}" used directly as a
	// property value (outside of a cell list).
	DataReference
)

// DataItem is one comma-separated element of a property's value list.
type DataItem struct {
	Kind DataKind
	Str  []byte     // valid when Kind == DataString
	Cells []Cell    // valid when Kind == DataCells
	Bytes []byte    // valid when Kind == DataByteArray
	Ref   *Reference // valid when Kind == DataReference
}

// ReserveInfo is one "/memreserve/ addr size;" entry.
type ReserveInfo struct {
	Address uint64
	Size    uint64
	Labels  []string
}

// Property is a name bound to an optional ordered list of DataItems.
// A nil Value means the property is present with no value ("foo;").
type Property struct {
	Name   string
	Labels []string
	Value  []DataItem
	State  State
	// Offset is the byte offset of the property's first label or name
	// token, used for error reporting and tracing.
	Offset int
}

// Node is a devicetree node: a name (or, for amendment targets, a
// reference in place of a name), an ordered property list, an ordered
// child list, and a lifecycle state.
type Node struct {
	// Name is the literal node name ("/" for the root, "cpu@0" for a
	// unit-addressed child). Empty when NameRef is set instead.
	Name string
	// NameRef is set instead of Name when a node is named by reference
	// ("&label { ... };" or "&{/a/b} { ... };"), which only occurs for
	// amendment targets.
	NameRef *Reference
	Labels  []string
	Properties *PropertyList
	Children   *NodeList
	State      State
	Offset     int
}

// BootInfo is the parsed result of a full document: the reserved
// memory list, the boot CPU id, the root node tree, and the flat list
// of trailing amendment nodes.
type BootInfo struct {
	ReserveInfo   []ReserveInfo
	BootCPUIDPhys uint32
	Root          *Node
	Amendments    []*Node
}

// PropertyList is an insertion-ordered mapping from property name to
// Property. Setting a name already present overwrites the property in
// place, preserving the original slot's position.
type PropertyList struct {
	order []*Property
	index map[string]int
}

// NewPropertyList returns an empty PropertyList.
func NewPropertyList() *PropertyList {
	return &PropertyList{index: map[string]int{}}
}

// Set inserts p, or overwrites the existing entry with the same name
// in place.
func (l *PropertyList) Set(p *Property) {
	if i, ok := l.index[p.Name]; ok {
		l.order[i] = p
		return
	}
	l.index[p.Name] = len(l.order)
	l.order = append(l.order, p)
}

// Get returns the property named name, if any.
func (l *PropertyList) Get(name string) (*Property, bool) {
	i, ok := l.index[name]
	if !ok {
		return nil, false
	}
	return l.order[i], true
}

// All returns the properties in insertion order. The returned slice
// must not be mutated.
func (l *PropertyList) All() []*Property {
	return l.order
}

// Len returns the number of properties.
func (l *PropertyList) Len() int { return len(l.order) }

// NodeList is an insertion-ordered mapping from child node name to
// Node, with the same overwrite-in-place semantics as PropertyList.
type NodeList struct {
	order []*Node
	index map[string]int
}

// NewNodeList returns an empty NodeList.
func NewNodeList() *NodeList {
	return &NodeList{index: map[string]int{}}
}

// Set inserts n, or overwrites the existing entry with the same name
// in place.
func (l *NodeList) Set(n *Node) {
	if i, ok := l.index[n.Name]; ok {
		l.order[i] = n
		return
	}
	l.index[n.Name] = len(l.order)
	l.order = append(l.order, n)
}

// Get returns the child named name, if any.
func (l *NodeList) Get(name string) (*Node, bool) {
	i, ok := l.index[name]
	if !ok {
		return nil, false
	}
	return l.order[i], true
}

// All returns the children in insertion order. The returned slice must
// not be mutated.
func (l *NodeList) All() []*Node {
	return l.order
}

// Len returns the number of children.
func (l *NodeList) Len() int { return len(l.order) }
