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

package strategy

import (
	"reflect"

	"dirpx.dev/enumx/apis"
)

// NewReflectStrategy creates an apis.Strategy that allocates a new zero
// instance of the host type via reflection.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy returns reflect.New(host) for every member. Zero-size hosts
// are left to the next strategy: their allocations may share an address.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// TryBuild returns a new *Host, or falls through for a nil or zero-size host.
func (reflectStrategy) TryBuild(host reflect.Type, _ int, _ string) (any, bool) {
	if host == nil || host.Size() == 0 {
		return nil, false
	}
	return reflect.New(host).Interface(), true
}
