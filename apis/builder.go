/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// Recognized member option keys.
const (
	// OptID overrides the auto-assigned identifier. The value must be an integer.
	OptID = "id"
	// OptObject overrides the associated value. Any value is accepted.
	OptObject = "object"
)

// Options carries per-member declaration options keyed by OptID/OptObject.
// Any other key is invalid.
type Options map[string]any

// Builder collects member declarations during a single declaration block.
// A Builder is single-use and not safe for concurrent use.
type Builder interface {
	// Member declares a member named name. opts may be nil.
	// Validation failures are reported immediately and the declaration is dropped.
	Member(name string, opts Options) error
}

// Declaration is a validated, not yet committed member declaration.
type Declaration struct {
	// Name is the member name.
	Name string
	// ID is the requested identifier; meaningful only if HasID.
	ID int
	// HasID reports whether an explicit identifier was requested.
	HasID bool
	// Object is the requested associated value; meaningful only if HasObject.
	Object any
	// HasObject reports whether an explicit value was supplied.
	HasObject bool
}
