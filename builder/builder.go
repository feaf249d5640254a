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

package builder

import (
	"errors"
	"fmt"
	"slices"

	"dirpx.dev/enumx/apis"
	uref "dirpx.dev/enumx/utils/reflect"
)

var (
	// ErrInvalidOptions is returned when a member option key is neither
	// apis.OptID nor apis.OptObject.
	ErrInvalidOptions = errors.New("enumx(builder): invalid member options")
	// ErrInvalidID is returned when the id option is not an integer.
	ErrInvalidID = errors.New("enumx(builder): invalid member id")
	// ErrEmptyName is returned when an empty member name is provided.
	ErrEmptyName = errors.New("enumx(builder): empty member name")
)

// New creates an empty Builder for one declaration block.
func New() *Builder {
	return &Builder{}
}

// Builder accumulates validated declarations in call order.
// It performs no id collision checks; those belong to the Registry.
type Builder struct {
	// decls holds the accepted declarations.
	decls []apis.Declaration
	// err is the first validation failure, if any.
	err error
}

// Ensure Builder implements apis.Builder.
var _ apis.Builder = (*Builder)(nil)

// Member validates and records a declaration. On failure nothing is recorded,
// and the Builder remembers the error so the block cannot be committed.
func (b *Builder) Member(name string, opts apis.Options) error {
	d, err := declare(name, opts)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return err
	}
	b.decls = append(b.decls, d)
	return nil
}

// declare turns (name, opts) into a Declaration.
func declare(name string, opts apis.Options) (apis.Declaration, error) {
	if name == "" {
		return apis.Declaration{}, ErrEmptyName
	}
	d := apis.Declaration{Name: name}

	// Reject unknown keys first, in a stable order.
	keys := make([]string, 0, len(opts))
	for k := range opts {
		if k != apis.OptID && k != apis.OptObject {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		slices.Sort(keys)
		return apis.Declaration{}, fmt.Errorf("%w: member %q: unknown option %q", ErrInvalidOptions, name, keys[0])
	}

	if raw, ok := opts[apis.OptID]; ok {
		id, ok := uref.ToInt(raw)
		if !ok {
			return apis.Declaration{}, fmt.Errorf("%w: member %q: id %v (%T) is not an integer", ErrInvalidID, name, raw, raw)
		}
		d.ID, d.HasID = id, true
	}
	if obj, ok := opts[apis.OptObject]; ok {
		d.Object, d.HasObject = obj, true
	}
	return d, nil
}

// Declarations returns a copy of the accepted declarations in call order.
func (b *Builder) Declarations() []apis.Declaration {
	return slices.Clone(b.decls)
}

// Err returns the first validation failure, or nil.
func (b *Builder) Err() error {
	return b.err
}

// Len returns the number of accepted declarations.
func (b *Builder) Len() int {
	return len(b.decls)
}
