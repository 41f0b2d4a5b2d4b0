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

// Package charclass provides the fixed ASCII character classes used by
// the DTS lexer. Unlike a general-purpose char-class parser, every
// class here is known at compile time, so each is a flat 256-entry
// membership table built once in init.
package charclass

var (
	nameChar     [256]bool
	pathChar     [256]bool
	labelStart   [256]bool
	labelCont    [256]bool
	hexDigit     [256]bool
	octalDigit   [256]bool
	decimalDigit [256]bool
	whitespace   [256]bool
)

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		nameChar[c] = true
		labelStart[c] = true
		labelCont[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		nameChar[c] = true
		labelStart[c] = true
		labelCont[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		nameChar[c] = true
		labelCont[c] = true
		decimalDigit[c] = true
	}
	for c := byte('0'); c <= '7'; c++ {
		octalDigit[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		hexDigit[c] = true
	}
	for c := byte('a'); c <= 'f'; c++ {
		hexDigit[c] = true
	}
	for c := byte('A'); c <= 'F'; c++ {
		hexDigit[c] = true
	}
	nameChar['_'] = true
	labelStart['_'] = true
	labelCont['_'] = true
	for _, c := range []byte{',', '.', '_', '+', '*', '#', '?', '@', '-'} {
		nameChar[c] = true
	}
	pathChar = nameChar
	pathChar['/'] = true
	for _, c := range []byte{' ', '\t', '\n', '\r', '\f', '\v'} {
		whitespace[c] = true
	}
}

// IsNameChar reports whether b is a valid node/property name character.
func IsNameChar(b byte) bool { return nameChar[b] }

// IsPathChar reports whether b is a valid path character (name chars plus '/').
func IsPathChar(b byte) bool { return pathChar[b] }

// IsLabelStart reports whether b may begin a label identifier.
func IsLabelStart(b byte) bool { return labelStart[b] }

// IsLabelCont reports whether b may continue a label identifier.
func IsLabelCont(b byte) bool { return labelCont[b] }

// IsHexDigit reports whether b is one of [0-9a-fA-F].
func IsHexDigit(b byte) bool { return hexDigit[b] }

// IsOctalDigit reports whether b is one of [0-7].
func IsOctalDigit(b byte) bool { return octalDigit[b] }

// IsDecimalDigit reports whether b is one of [0-9].
func IsDecimalDigit(b byte) bool { return decimalDigit[b] }

// IsWhitespace reports whether b is ASCII whitespace, including line endings.
func IsWhitespace(b byte) bool { return whitespace[b] }
