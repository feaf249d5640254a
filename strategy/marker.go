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

// NewMarkerStrategy creates an apis.Strategy that returns an *apis.Marker.
func NewMarkerStrategy() apis.Strategy {
	return markerStrategy{}
}

// markerStrategy is the universal fallback. It ignores the host type.
type markerStrategy struct{}

var _ apis.Strategy = (*markerStrategy)(nil)

// TryBuild always handles.
func (markerStrategy) TryBuild(_ reflect.Type, id int, name string) (any, bool) {
	return &apis.Marker{ID: id, Name: name}, true
}
