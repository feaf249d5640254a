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

import "reflect"

// Registry owns the ordered, id-indexed members of one host type.
// Commit is append-only; all other methods are read-only and safe for
// concurrent use.
type Registry interface {
	// Commit appends decls in order. Either every declaration is committed
	// or none is. If a declaration fails, the declarations before it in the
	// same block are discarded too.
	Commit(decls []Declaration) error

	// All returns the member values in declaration order.
	All() []any
	// Members returns the member records in declaration order.
	Members() []Member
	// First returns the value of the first declared member.
	// It panics if no member has been committed.
	First() any
	// Last returns the value of the last declared member.
	// It panics if no member has been committed.
	Last() any
	// FindByID returns the value of the member with the given id, if any.
	FindByID(id int) (v any, ok bool)
	// Find is FindByID that reports absence as an error.
	Find(id int) (any, error)
	// MemberByID returns the member record with the given id, if any.
	MemberByID(id int) (Member, bool)

	// Get returns the value currently bound to name.
	Get(name string) (v any, ok bool)
	// MustGet is Get that panics for unknown names.
	MustGet(name string) any
	// Member returns the member record currently bound to name.
	Member(name string) (Member, bool)
	// Names returns the bound member names in first-binding order.
	Names() []string

	// Count returns the number of committed members.
	Count() int
	// Host returns the host type, or nil for an unbound registry.
	Host() reflect.Type
}

// Member is a single committed (id, name, value) entry.
type Member struct {
	// ID is the member identifier, unique within its Registry.
	ID int
	// Name is the member name.
	Name string
	// Value is what lookups and accessors return.
	Value any
}
