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

package charclass

import "testing"

func TestIsNameChar(t *testing.T) {
	for _, c := range []byte("abcZZ9_,.+*#?@-") {
		if !IsNameChar(c) {
			t.Errorf("IsNameChar(%q) = false, want true", c)
		}
	}
	for _, c := range []byte(" \t;{}<>[]&\"") {
		if IsNameChar(c) {
			t.Errorf("IsNameChar(%q) = true, want false", c)
		}
	}
}

func TestIsPathChar(t *testing.T) {
	if !IsPathChar('/') {
		t.Error("IsPathChar('/') = false, want true")
	}
	if !IsPathChar('a') {
		t.Error("IsPathChar('a') = false, want true")
	}
	if IsPathChar(' ') {
		t.Error("IsPathChar(' ') = true, want false")
	}
}

func TestIsLabelStartAndCont(t *testing.T) {
	if IsLabelStart('0') {
		t.Error("IsLabelStart('0') = true, want false")
	}
	if !IsLabelCont('0') {
		t.Error("IsLabelCont('0') = false, want true")
	}
	if !IsLabelStart('_') || !IsLabelStart('a') || !IsLabelStart('Z') {
		t.Error("IsLabelStart should accept '_' and letters")
	}
}

func TestDigitClasses(t *testing.T) {
	for c := byte('0'); c <= '7'; c++ {
		if !IsOctalDigit(c) {
			t.Errorf("IsOctalDigit(%q) = false, want true", c)
		}
	}
	if IsOctalDigit('8') || IsOctalDigit('9') {
		t.Error("IsOctalDigit should reject 8 and 9")
	}
	if !IsHexDigit('a') || !IsHexDigit('F') || !IsHexDigit('9') {
		t.Error("IsHexDigit should accept a-f, A-F, 0-9")
	}
	if IsHexDigit('g') {
		t.Error("IsHexDigit('g') = true, want false")
	}
}

func TestIsWhitespace(t *testing.T) {
	for _, c := range []byte(" \t\n\r\f\v") {
		if !IsWhitespace(c) {
			t.Errorf("IsWhitespace(%q) = false, want true", c)
		}
	}
	if IsWhitespace('a') {
		t.Error("IsWhitespace('a') = true, want false")
	}
}
