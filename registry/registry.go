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

package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/factory"
)

var (
	// ErrRepeatedID is returned when a resolved member id is already taken.
	ErrRepeatedID = errors.New("enumx(registry): repeated member id")
	// ErrRepeatedName is returned under apis.NameReject when a member name
	// is already bound.
	ErrRepeatedName = errors.New("enumx(registry): repeated member name")
	// ErrObjectNotFound is returned by Find for an unknown id.
	ErrObjectNotFound = errors.New("enumx(registry): object not found")
	// ErrNoMembers is the panic value of First/Last on an empty registry.
	ErrNoMembers = errors.New("enumx(registry): no members defined")
	// ErrIDsExhausted is returned when auto-assignment would have to move
	// past math.MaxInt.
	ErrIDsExhausted = errors.New("enumx(registry): auto ids exhausted")
	// ErrUnknownName is the panic value of MustGet for an unknown name.
	ErrUnknownName = errors.New("enumx(registry): unknown member name")
)

// New constructs a Registry for host (which may be nil) configured by cfg.
// A nil cfg.Factory falls back to *apis.Marker values and a nil cfg.Logger
// disables logging.
func New(host reflect.Type, cfg apis.Config) apis.Registry {
	if cfg.Factory == nil {
		cfg.Factory = factory.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	r := &registry{host: host, cfg: cfg}
	r.st.Store(&snapshot{
		byID:   map[int]int{},
		byName: map[string]int{},
		nextID: cfg.FirstID,
	})
	return r
}

// registry publishes immutable snapshots; readers never lock.
type registry struct {
	// host is the type members belong to; may be nil.
	host reflect.Type
	// cfg is the configuration the registry was created with.
	cfg apis.Config
	// mu serializes commits so we never publish partially-built snapshots.
	mu sync.Mutex
	// st is the current snapshot.
	st atomic.Pointer[snapshot]
}

// snapshot is never mutated once published.
type snapshot struct {
	// members in declaration order.
	members []apis.Member
	// byID maps id to index in members.
	byID map[int]int
	// byName maps name to index in members of the latest binding.
	byName map[string]int
	// names in first-binding order.
	names []string
	// nextID is where the next auto-assignment starts searching.
	nextID int
	// exhausted is set once math.MaxInt has been auto-assigned.
	exhausted bool
}

// clone returns a private copy for a commit to work on.
func (s *snapshot) clone() *snapshot {
	return &snapshot{
		members:   slices.Clone(s.members),
		byID:      maps.Clone(s.byID),
		byName:    maps.Clone(s.byName),
		names:     slices.Clone(s.names),
		nextID:    s.nextID,
		exhausted: s.exhausted,
	}
}

// Commit applies decls in order on a private copy and publishes it only if
// every declaration succeeds. Log records are emitted after publishing.
func (r *registry) Commit(decls []apis.Declaration) error {
	if len(decls) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.st.Load().clone()
	done := make([]applied, 0, len(decls))
	for _, d := range decls {
		a, err := r.apply(next, d)
		if err != nil {
			r.cfg.Logger.Debug("enum commit rejected",
				"host", r.hostName(), "member", d.Name, "error", err)
			return err
		}
		done = append(done, a)
	}
	r.st.Store(next)

	for _, a := range done {
		if a.rebound {
			r.cfg.Logger.Warn("enum member name rebound",
				"host", r.hostName(), "member", a.name, "old_id", a.oldID, "id", a.id)
		}
		r.cfg.Logger.Debug("enum member registered",
			"host", r.hostName(), "member", a.name, "id", a.id)
	}
	return nil
}

// applied records what apply did, for logging once the block is published.
type applied struct {
	name    string
	id      int
	oldID   int
	rebound bool
}

// apply commits a single declaration into s.
func (r *registry) apply(s *snapshot, d apis.Declaration) (applied, error) {
	id := d.ID
	if !d.HasID {
		var err error
		if id, err = autoID(s, d.Name); err != nil {
			return applied{}, err
		}
	}
	if _, taken := s.byID[id]; taken {
		return applied{}, fmt.Errorf("%w: member %q: id %d already used by %q",
			ErrRepeatedID, d.Name, id, s.members[s.byID[id]].Name)
	}

	prev, bound := s.byName[d.Name]
	if bound && r.cfg.NamePolicy == apis.NameReject {
		return applied{}, fmt.Errorf("%w: member %q already declared with id %d",
			ErrRepeatedName, d.Name, s.members[prev].ID)
	}

	v := d.Object
	if !d.HasObject {
		v = r.cfg.Factory.Build(r.host, id, d.Name)
	}

	a := applied{name: d.Name, id: id, rebound: bound}
	if bound {
		a.oldID = s.members[prev].ID
	} else {
		s.names = append(s.names, d.Name)
	}
	idx := len(s.members)
	s.members = append(s.members, apis.Member{ID: id, Name: d.Name, Value: v})
	s.byID[id] = idx
	s.byName[d.Name] = idx
	return a, nil
}

// autoID picks the first free id at or above the counter and moves the
// counter past it. Explicit ids never move the counter.
func autoID(s *snapshot, name string) (int, error) {
	if s.exhausted {
		return 0, fmt.Errorf("%w: member %q", ErrIDsExhausted, name)
	}
	id := s.nextID
	for {
		if _, taken := s.byID[id]; !taken {
			break
		}
		if id == math.MaxInt {
			return 0, fmt.Errorf("%w: member %q", ErrIDsExhausted, name)
		}
		id++
	}
	if id == math.MaxInt {
		s.exhausted = true
	} else {
		s.nextID = id + 1
	}
	return id, nil
}

// hostName formats the host for log records.
func (r *registry) hostName() string {
	if r.host == nil {
		return ""
	}
	return r.host.String()
}

// All returns a fresh slice of member values in declaration order.
func (r *registry) All() []any {
	s := r.st.Load()
	out := make([]any, len(s.members))
	for i, m := range s.members {
		out[i] = m.Value
	}
	return out
}

// Members returns a fresh slice of member records in declaration order.
func (r *registry) Members() []apis.Member {
	return slices.Clone(r.st.Load().members)
}

// First returns the value of the first declared member.
func (r *registry) First() any {
	s := r.st.Load()
	if len(s.members) == 0 {
		panic(ErrNoMembers)
	}
	return s.members[0].Value
}

// Last returns the value of the last declared member.
func (r *registry) Last() any {
	s := r.st.Load()
	if len(s.members) == 0 {
		panic(ErrNoMembers)
	}
	return s.members[len(s.members)-1].Value
}

// FindByID returns the value of the member with id, if present.
func (r *registry) FindByID(id int) (any, bool) {
	m, ok := r.MemberByID(id)
	return m.Value, ok
}

// Find returns the value of the member with id or ErrObjectNotFound.
func (r *registry) Find(id int) (any, error) {
	m, ok := r.MemberByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrObjectNotFound, id)
	}
	return m.Value, nil
}

// MemberByID returns the member record with id, if present.
func (r *registry) MemberByID(id int) (apis.Member, bool) {
	s := r.st.Load()
	if i, ok := s.byID[id]; ok {
		return s.members[i], true
	}
	return apis.Member{}, false
}

// Get returns the value bound to name.
func (r *registry) Get(name string) (any, bool) {
	m, ok := r.Member(name)
	return m.Value, ok
}

// MustGet returns the value bound to name and panics if there is none.
func (r *registry) MustGet(name string) any {
	m, ok := r.Member(name)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownName, name))
	}
	return m.Value
}

// Member returns the member record bound to name.
func (r *registry) Member(name string) (apis.Member, bool) {
	s := r.st.Load()
	if i, ok := s.byName[name]; ok {
		return s.members[i], true
	}
	return apis.Member{}, false
}

// Names returns the bound names in first-binding order.
func (r *registry) Names() []string {
	return slices.Clone(r.st.Load().names)
}

// Count returns the number of committed members.
func (r *registry) Count() int {
	return len(r.st.Load().members)
}

// Host returns the host type.
func (r *registry) Host() reflect.Type {
	return r.host
}
