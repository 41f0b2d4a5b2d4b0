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

// parsePropertyTail parses the part of a property that follows its
// already-consumed labels and name: an optional "= data, data, ..."
// value list, then the terminating ';'.
func (p *parser) parsePropertyTail(labels []string, name string, offset int) (*Property, error) {
	p.skipTrivia()
	var value []DataItem
	if p.pos < len(p.src) && p.src[p.pos] == '=' {
		p.pos++
		for {
			item, err := p.parseDataItem()
			if err != nil {
				return nil, err
			}
			value = append(value, *item)
			p.skipTrivia()
			if p.pos < len(p.src) && p.src[p.pos] == ',' {
				p.pos++
				continue
			}
			break
		}
	}
	p.skipTrivia()
	if !p.consumeLiteral(";") {
		return nil, p.errf(SyntaxError, "expected ';' after property %q", name)
	}
	return &Property{Name: name, Labels: labels, Value: value, State: Existing, Offset: offset}, nil
}
