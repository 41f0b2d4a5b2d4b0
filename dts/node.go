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

const (
	deleteNodeKeyword     = "/delete-node/"
	deletePropertyKeyword = "/delete-property/"
)

// parseNodeNameOrRef scans a node's name position, which accepts three
// forms: the literal root token "/", a literal name-char run, or (for
// amendment targets only) a "&label"/"&{path}" reference.
func (p *parser) parseNodeNameOrRef() (name string, ref *Reference, err error) {
	if p.pos < len(p.src) && p.src[p.pos] == '/' {
		p.pos++
		return "/", nil, nil
	}
	if p.pos < len(p.src) && p.src[p.pos] == '&' {
		r, err := p.parseReference()
		if err != nil {
			return "", nil, err
		}
		return "", r, nil
	}
	name, err = p.parseNameRun()
	if err != nil {
		return "", nil, err
	}
	return name, nil, nil
}

// parseNodeBody parses the "{ member* } ;" body of a node whose labels,
// name (or name reference), and start offset have already been
// determined by the caller. Members are properties, child nodes,
// /delete-property/ directives, or /delete-node/ directives; they may
// be freely interleaved, since nothing downstream depends on properties
// strictly preceding children.
func (p *parser) parseNodeBody(labels []string, name string, ref *Reference, offset int) (*Node, error) {
	p.skipTrivia()
	if !p.consumeLiteral("{") {
		return nil, p.errf(SyntaxError, "expected '{' to open node body")
	}
	node := &Node{
		Name:       name,
		NameRef:    ref,
		Labels:     labels,
		Properties: NewPropertyList(),
		Children:   NewNodeList(),
		State:      Existing,
		Offset:     offset,
	}
	for {
		p.skipTrivia()
		if p.pos < len(p.src) && p.src[p.pos] == '}' {
			break
		}
		if p.pos >= len(p.src) {
			return nil, p.errf(SyntaxError, "unterminated node body for %q", displayName(name, ref))
		}
		prop, child, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		if prop != nil {
			node.Properties.Set(prop)
		}
		if child != nil {
			node.Children.Set(child)
		}
	}
	p.pos++ // consume '}'
	p.skipTrivia()
	if !p.consumeLiteral(";") {
		return nil, p.errf(SyntaxError, "expected ';' after node %q", displayName(name, ref))
	}
	return node, nil
}

// parseMember parses one member of a node body: a child node, a
// property, or a deletion directive. Exactly one of the two return
// values is non-nil on success.
func (p *parser) parseMember() (*Property, *Node, error) {
	p.skipTrivia()
	offset := p.pos
	if p.peekLiteral(deleteNodeKeyword) {
		p.pos += len(deleteNodeKeyword)
		p.skipTrivia()
		target, err := p.parseNameRun()
		if err != nil {
			return nil, nil, err
		}
		p.skipTrivia()
		if !p.consumeLiteral(";") {
			return nil, nil, p.errf(SyntaxError, "expected ';' after /delete-node/ %q", target)
		}
		return nil, &Node{Name: target, State: Deleted, Offset: offset}, nil
	}
	if p.peekLiteral(deletePropertyKeyword) {
		p.pos += len(deletePropertyKeyword)
		p.skipTrivia()
		target, err := p.parseNameRun()
		if err != nil {
			return nil, nil, err
		}
		p.skipTrivia()
		if !p.consumeLiteral(";") {
			return nil, nil, p.errf(SyntaxError, "expected ';' after /delete-property/ %q", target)
		}
		return &Property{Name: target, State: Deleted, Offset: offset}, nil, nil
	}
	labels := p.parseLabelPrefixes()
	p.skipTrivia()
	name, err := p.parseNameRun()
	if err != nil {
		return nil, nil, err
	}
	p.skipTrivia()
	if p.pos < len(p.src) && p.src[p.pos] == '{' {
		node, err := p.parseNodeBody(labels, name, nil, offset)
		return nil, node, err
	}
	prop, err := p.parsePropertyTail(labels, name, offset)
	return prop, nil, err
}

// parseTopLevelNode parses a node at document scope: the root node, or
// an amendment block naming its target by literal name or by
// reference.
func (p *parser) parseTopLevelNode() (*Node, error) {
	offset := p.pos
	labels := p.parseLabelPrefixes()
	p.skipTrivia()
	name, ref, err := p.parseNodeNameOrRef()
	if err != nil {
		return nil, err
	}
	return p.parseNodeBody(labels, name, ref, offset)
}

// parseDeleteTarget parses the target of a top-level "/delete-node/"
// directive, which may name its target either by literal name or by
// reference.
func (p *parser) parseDeleteTarget() (string, *Reference, error) {
	if p.pos < len(p.src) && p.src[p.pos] == '&' {
		ref, err := p.parseReference()
		return "", ref, err
	}
	name, err := p.parseNameRun()
	return name, nil, err
}

// parseAmendment parses one top-level amendment: either a bare
// "/delete-node/ target;" directive, or a "target { member* };" block.
func (p *parser) parseAmendment() (*Node, error) {
	p.skipTrivia()
	offset := p.pos
	if p.peekLiteral(deleteNodeKeyword) {
		p.pos += len(deleteNodeKeyword)
		p.skipTrivia()
		name, ref, err := p.parseDeleteTarget()
		if err != nil {
			return nil, err
		}
		p.skipTrivia()
		if !p.consumeLiteral(";") {
			return nil, p.errf(SyntaxError, "expected ';' after /delete-node/")
		}
		return &Node{Name: name, NameRef: ref, State: Deleted, Offset: offset}, nil
	}
	return p.parseTopLevelNode()
}

func displayName(name string, ref *Reference) string {
	if ref != nil {
		if ref.Kind == RefPath {
			return "&{" + ref.Value + "}"
		}
		return "&" + ref.Value
	}
	return name
}
