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

// initializerType is the reflect.Type of apis.Initializer.
var initializerType = reflect.TypeFor[apis.Initializer]()

// NewInitializerStrategy creates an apis.Strategy that uses apis.Initializer.
func NewInitializerStrategy() apis.Strategy {
	return &initializerStrategy{}
}

// initializerStrategy handles hosts whose pointer type implements
// apis.Initializer: it allocates a new *Host and tells it which member it is.
type initializerStrategy struct{}

// Ensure initializerStrategy implements apis.Strategy.
var _ apis.Strategy = (*initializerStrategy)(nil)

// TryBuild allocates a *Host and calls InitEnumMember(id, name) on it.
// Zero-size hosts fall through.
func (*initializerStrategy) TryBuild(host reflect.Type, id int, name string) (any, bool) {
	if host == nil || host.Size() == 0 || !reflect.PointerTo(host).Implements(initializerType) {
		return nil, false
	}
	v := reflect.New(host).Interface()
	v.(apis.Initializer).InitEnumMember(id, name)
	return v, true
}
