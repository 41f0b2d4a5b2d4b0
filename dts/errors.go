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

import "fmt"

// ErrorKind classifies the errors this module can return, spanning both
// the grammar front end and the change tracker that consumes it.
type ErrorKind int

const (
	// SyntaxError marks a grammar violation: an unexpected byte, a
	// missing terminator, an unclosed construct.
	SyntaxError ErrorKind = iota
	// NumericOverflow marks a numeric literal whose value does not fit
	// in the width it was parsed for.
	NumericOverflow
	// EscapeOutOfRange marks a string escape sequence whose decoded
	// value does not fit in a byte (octal escapes) or exceeds the
	// 7-bit range accepted for \x escapes.
	EscapeOutOfRange
	// UnresolvedReference marks a "&label" or "&{path}" reference that
	// does not resolve to a known path at the time it is resolved.
	UnresolvedReference
	// DuplicateLabel marks a label bound to two different paths.
	DuplicateLabel
	// DanglingAmendment marks an amendment whose target cannot be
	// determined at all (distinct from an unresolved reference: the
	// amendment itself is malformed, not merely unresolved).
	DanglingAmendment
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case NumericOverflow:
		return "NumericOverflow"
	case EscapeOutOfRange:
		return "EscapeOutOfRange"
	case UnresolvedReference:
		return "UnresolvedReference"
	case DuplicateLabel:
		return "DuplicateLabel"
	case DanglingAmendment:
		return "DanglingAmendment"
	default:
		return "UnknownError"
	}
}

// Error is the concrete error type returned by this module and by
// labelstore. Offset is a byte offset into the originating buffer where
// applicable, and -1 otherwise.
type Error struct {
	Kind   ErrorKind
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(kind ErrorKind, offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
