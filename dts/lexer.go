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
	"bytes"

	"github.com/golang/glog"

	"github.com/salikh/dts/dts/charclass"
)

// parser walks src byte by byte, never backing up past a point it has
// already committed to returning. Every parse* method either advances
// pos and returns a value, or leaves pos at the point of failure and
// returns a non-nil error, mirroring the reference engine's handler
// shape of (advance int, err error).
type parser struct {
	src []byte
	pos int
}

func (p *parser) errf(kind ErrorKind, format string, args ...interface{}) error {
	return newError(kind, p.pos, format, args...)
}

// skipTrivia consumes whitespace and both comment forms ("//..." and
// "/*...*/"). It never fails: an unterminated block comment simply
// consumes to end of input, since recovering a useful position from a
// truncated comment isn't worth the complexity here.
func (p *parser) skipTrivia() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case charclass.IsWhitespace(c):
			p.pos++
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*':
			p.pos += 2
			if idx := bytes.Index(p.src[p.pos:], []byte("*/")); idx >= 0 {
				p.pos += idx + 2
			} else {
				glog.V(2).Infof("unterminated block comment at offset %d", p.pos-2)
				p.pos = len(p.src)
			}
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/':
			p.pos += 2
			if idx := bytes.IndexByte(p.src[p.pos:], '\n'); idx >= 0 {
				p.pos += idx + 1
			} else {
				p.pos = len(p.src)
			}
		default:
			return
		}
	}
}

// peekLiteral reports whether lit occurs at the current position,
// without consuming it.
func (p *parser) peekLiteral(lit string) bool {
	if p.pos+len(lit) > len(p.src) {
		return false
	}
	return string(p.src[p.pos:p.pos+len(lit)]) == lit
}

// consumeLiteral consumes lit if it occurs at the current position and
// reports whether it did.
func (p *parser) consumeLiteral(lit string) bool {
	if !p.peekLiteral(lit) {
		return false
	}
	p.pos += len(lit)
	return true
}
