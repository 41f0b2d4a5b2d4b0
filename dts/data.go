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

import (
	"strconv"

	"github.com/salikh/dts/dts/charclass"
)

// parseDataItem dispatches on the lookahead byte to one of the four
// data item forms: a quoted string, a "< >" cell list, a "[ ]" byte
// array, or a bare reference.
func (p *parser) parseDataItem() (*DataItem, error) {
	p.skipTrivia()
	if p.pos >= len(p.src) {
		return nil, p.errf(SyntaxError, "expected a data item, reached end of input")
	}
	switch p.src[p.pos] {
	case '"':
		s, err := p.parseEscapedString()
		if err != nil {
			return nil, err
		}
		return &DataItem{Kind: DataString, Str: s}, nil
	case '<':
		return p.parseCells()
	case '[':
		return p.parseByteArray()
	case '&':
		ref, err := p.parseReference()
		if err != nil {
			return nil, err
		}
		return &DataItem{Kind: DataReference, Ref: ref}, nil
	default:
		return nil, p.errf(SyntaxError, "unrecognized data item starting with %q", p.src[p.pos])
	}
}

// parseCells scans a "< cell cell ... >" list. pos must be at '<'. At
// least one cell is required: an empty "< >" is a syntax error.
func (p *parser) parseCells() (*DataItem, error) {
	p.pos++ // consume '<'
	var cells []Cell
	for {
		p.skipTrivia()
		if p.pos < len(p.src) && p.src[p.pos] == '>' {
			break
		}
		cell, err := p.parseCell()
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	if len(cells) == 0 {
		return nil, p.errf(SyntaxError, "cell list must contain at least one cell")
	}
	if !p.consumeLiteral(">") {
		return nil, p.errf(SyntaxError, "expected '>' to close cell list")
	}
	return &DataItem{Kind: DataCells, Cells: cells}, nil
}

// parseCell scans one cell: either a u64 numeric literal, or a
// reference used in place of a value (the reference is left
// unresolved, with Value at its zero placeholder, per the
// reference-as-cell-value design decision).
func (p *parser) parseCell() (Cell, error) {
	p.skipTrivia()
	if p.pos < len(p.src) && p.src[p.pos] == '&' {
		ref, err := p.parseReference()
		if err != nil {
			return Cell{}, err
		}
		return Cell{Ref: ref}, nil
	}
	if p.pos < len(p.src) && charclass.IsDecimalDigit(p.src[p.pos]) {
		v, err := p.parseUint(64)
		if err != nil {
			return Cell{}, err
		}
		return Cell{Value: v}, nil
	}
	return Cell{}, p.errf(SyntaxError, "expected a numeric literal or a reference in a cell list")
}

// parseByteArray scans a "[ hh hh ... ]" list of hex-pair bytes. The
// inter-pair separator is the standard skip, so "[12 34]" and
// "[1234]" both parse to the same two bytes. A run with an odd count
// of hex digits is rejected, since the final lone digit fails to find
// a partner.
func (p *parser) parseByteArray() (*DataItem, error) {
	p.pos++ // consume '['
	var out []byte
	for {
		p.skipTrivia()
		if p.pos < len(p.src) && p.src[p.pos] == ']' {
			break
		}
		if p.pos+1 >= len(p.src) || !charclass.IsHexDigit(p.src[p.pos]) || !charclass.IsHexDigit(p.src[p.pos+1]) {
			return nil, p.errf(SyntaxError, "expected a two-digit hex byte in byte array")
		}
		v, _ := strconv.ParseUint(string(p.src[p.pos:p.pos+2]), 16, 64)
		out = append(out, byte(v))
		p.pos += 2
	}
	if len(out) == 0 {
		return nil, p.errf(SyntaxError, "byte array must contain at least one byte")
	}
	if !p.consumeLiteral("]") {
		return nil, p.errf(SyntaxError, "expected ']' to close byte array")
	}
	return &DataItem{Kind: DataByteArray, Bytes: out}, nil
}
