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

// Package dts is a recursive-descent front end for Devicetree Source
// text. It turns an input buffer into a BootInfo: a reserved-memory
// list, a root Node tree, and a flat list of amendment Nodes collected
// from any trailing overlay blocks. It does not resolve references or
// track history across amendments; that is labelstore's job.
package dts
