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

package enumx

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/registry"
	uref "dirpx.dev/enumx/utils/reflect"
)

// init publishes an empty table with the default configuration.
func init() {
	st.Store(&state{cfg: config.DefaultConfig(), regs: map[reflect.Type]apis.Registry{}})
}

// ErrInvalidHost is returned when the host type is nil or not a named type.
var ErrInvalidHost = errors.New("enumx: invalid host type")

// Errors raised by declaration blocks and lookups, re-exported so callers
// only need this package for errors.Is checks.
var (
	ErrInvalidOptions = builder.ErrInvalidOptions
	ErrInvalidID      = builder.ErrInvalidID
	ErrEmptyName      = builder.ErrEmptyName
	ErrRepeatedID     = registry.ErrRepeatedID
	ErrRepeatedName   = registry.ErrRepeatedName
	ErrObjectNotFound = registry.ErrObjectNotFound
	ErrNoMembers      = registry.ErrNoMembers
	ErrIDsExhausted   = registry.ErrIDsExhausted
	ErrUnknownName    = registry.ErrUnknownName
)

// DefineEnum runs fn with a fresh Builder and commits its declarations into
// the registry of host, creating the registry on first success. host is
// normalized so that T and *T share one registry.
//
// If fn returns an error, or any Member call failed, nothing is committed and
// that error is returned. opts only take effect when the registry is created;
// they are applied on top of the package Config.
func DefineEnum(host reflect.Type, fn func(b apis.Builder) error, opts ...config.Option) (apis.Registry, error) {
	t, err := uref.Normalize(host)
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrInvalidHost, host, err)
	}

	b := builder.New()
	if fn != nil {
		if err := fn(b); err != nil {
			return nil, err
		}
	}
	if err := b.Err(); err != nil {
		return nil, err
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	reg, ok := old.regs[t]
	if !ok {
		cfg := old.cfg
		for _, opt := range opts {
			opt(&cfg)
		}
		reg = registry.New(t, cfg)
	}
	if err := reg.Commit(b.Declarations()); err != nil {
		return nil, err
	}
	if ok {
		return reg, nil
	}

	// Publish the new registry atomically.
	regs := maps.Clone(old.regs)
	regs[t] = reg
	st.Store(&state{cfg: old.cfg, regs: regs})
	return reg, nil
}

// Define is DefineEnum keyed on the type parameter.
func Define[T any](fn func(b apis.Builder) error, opts ...config.Option) (apis.Registry, error) {
	return DefineEnum(reflect.TypeFor[T](), fn, opts...)
}

// MustDefine is Define that panics on error. It is meant for package-level
// variable initialization:
//
//	var Colors = enumx.MustDefine[Color](func(b apis.Builder) error { ... })
func MustDefine[T any](fn func(b apis.Builder) error, opts ...config.Option) apis.Registry {
	reg, err := Define[T](fn, opts...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Lookup returns the registry of host, if one has been defined.
func Lookup(host reflect.Type) (apis.Registry, bool) {
	t, err := uref.Normalize(host)
	if err != nil {
		return nil, false
	}
	reg, ok := st.Load().regs[t]
	return reg, ok
}

// For is Lookup keyed on the type parameter.
func For[T any]() (apis.Registry, bool) {
	return Lookup(reflect.TypeFor[T]())
}

// Registries returns a snapshot of every defined registry, ordered by host
// type name, for diagnostics/docs.
func Registries() []apis.Registry {
	regs := slices.Collect(maps.Values(st.Load().regs))
	slices.SortFunc(regs, func(a, b apis.Registry) int {
		return strings.Compare(a.Host().String(), b.Host().String())
	})
	return regs
}

// Config returns the configuration new registries are created with.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the configuration for registries created afterwards.
// Existing registries keep the configuration they were created with.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: cfg, regs: old.regs})
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global enumx state.
var st atomic.Pointer[state]

// state is the global enumx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the configuration for new registries.
	cfg apis.Config
	// regs maps normalized host types to their registries.
	regs map[reflect.Type]apis.Registry
}
