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

import "github.com/golang/glog"

const dtsVersionMarker = "/dts-v1/;"

// ParseDocument parses a full DTS document: the "/dts-v1/;" marker,
// zero or more "/memreserve/" entries, the root node, and any number
// of trailing amendment blocks. boot_cpuid_phys always comes back 0:
// the grammar has no surface syntax for it, matching the reference
// implementation this module is grounded on.
func ParseDocument(src []byte) (*BootInfo, error) {
	p := &parser{src: src}
	p.skipTrivia()
	if !p.consumeLiteral(dtsVersionMarker) {
		return nil, p.errf(SyntaxError, "expected '%s' marker", dtsVersionMarker)
	}
	var reserves []ReserveInfo
	for {
		save := p.pos
		p.skipTrivia()
		labels := p.parseLabelPrefixes()
		p.skipTrivia()
		if !p.consumeLiteral("/memreserve/") {
			p.pos = save
			break
		}
		p.skipTrivia()
		addr, err := p.parseUint(64)
		if err != nil {
			return nil, err
		}
		p.skipTrivia()
		size, err := p.parseUint(64)
		if err != nil {
			return nil, err
		}
		p.skipTrivia()
		if !p.consumeLiteral(";") {
			return nil, p.errf(SyntaxError, "expected ';' after /memreserve/")
		}
		glog.V(2).Infof("memreserve 0x%x 0x%x", addr, size)
		reserves = append(reserves, ReserveInfo{Address: addr, Size: size, Labels: labels})
	}
	root, err := p.parseTopLevelNode()
	if err != nil {
		return nil, err
	}
	if root.Name != "/" {
		return nil, newError(SyntaxError, root.Offset, "expected the root node '/', got %q", displayName(root.Name, root.NameRef))
	}
	var amendments []*Node
	for {
		p.skipTrivia()
		if p.pos >= len(p.src) {
			break
		}
		amendment, err := p.parseAmendment()
		if err != nil {
			return nil, err
		}
		glog.V(2).Infof("amendment targeting %q", displayName(amendment.Name, amendment.NameRef))
		amendments = append(amendments, amendment)
	}
	return &BootInfo{
		ReserveInfo:   reserves,
		BootCPUIDPhys: 0,
		Root:          root,
		Amendments:    amendments,
	}, nil
}

// ParseAmendments parses a standalone buffer containing only a list of
// amendment blocks, with no "/dts-v1/;" marker or root node. This is
// the shape an overlay file takes when it is not itself a full
// document.
func ParseAmendments(src []byte) ([]*Node, error) {
	p := &parser{src: src}
	var amendments []*Node
	for {
		p.skipTrivia()
		if p.pos >= len(p.src) {
			break
		}
		a, err := p.parseAmendment()
		if err != nil {
			return nil, err
		}
		amendments = append(amendments, a)
	}
	return amendments, nil
}
