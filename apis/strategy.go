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

import (
	"reflect"
	"strconv"
)

// Strategy is a pluggable step for building default member values. A Factory
// can chain multiple strategies in order (e.g., Initializer -> Reflect -> Marker).
type Strategy interface {
	// TryBuild attempts to build the value of member (id, name) of host.
	// It returns (v, true) if handled; otherwise (nil, false) to fall through.
	TryBuild(host reflect.Type, id int, name string) (v any, handled bool)
}

// Factory builds the associated value of members declared without an object.
type Factory interface {
	// Build returns a new value for member (id, name) of host. host may be nil.
	// Every call returns a distinct value.
	Build(host reflect.Type, id int, name string) any
}

// Initializer is implemented by host types that want to know which member
// an instance stands for. It is called on a freshly allocated *Host.
type Initializer interface {
	InitEnumMember(id int, name string)
}

// Marker is the placeholder value of members that have neither an object
// nor a host type able to produce one.
type Marker struct {
	ID   int
	Name string
}

// String returns "name(id)".
func (m *Marker) String() string {
	return m.Name + "(" + strconv.Itoa(m.ID) + ")"
}
