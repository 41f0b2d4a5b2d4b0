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

// Package labelstore tracks the full amendment history of a parsed
// devicetree: every path's sequence of Existing/Deleted elements, a
// live label-to-path index, and reference resolution for amendments.
// Store.Fill walks a base tree (Pass 1); Store.Apply walks a list of
// amendments against the paths and labels Fill produced (Pass 2).
package labelstore
