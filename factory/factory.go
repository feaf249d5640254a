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

package factory

import (
	"reflect"

	"dirpx.dev/enumx/apis"
)

// New constructs an apis.Factory that tries the given strategies in order.
// Nil strategies are ignored. If no strategy handles a member, Build returns
// an *apis.Marker. The returned factory is safe for concurrent use provided
// strategies themselves are safe for concurrent TryBuild calls.
func New(strategies ...apis.Strategy) apis.Factory {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return &chain{strats: out}
}

// chain is an immutable, order-preserving factory over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Build runs strategies in order until one handles the member.
func (f *chain) Build(host reflect.Type, id int, name string) any {
	for _, s := range f.strats {
		if v, ok := s.TryBuild(host, id, name); ok {
			return v
		}
	}
	return &apis.Marker{ID: id, Name: name}
}
