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

// Package enumx provides declarative, process-wide enumerations attached to
// Go host types.
//
// A host type declares a fixed, ordered set of named members. Each member has
// an integer id and an associated value: either an explicit object or, by
// default, a fresh instance of the host type. The resulting registry answers
// "all members", "member by id" and "member by name".
//
// # Declaring
//
//	type Color struct{ name string }
//
//	var Colors = enumx.MustDefine[Color](func(b apis.Builder) error {
//		if err := b.Member("red", nil); err != nil {
//			return err
//		}
//		if err := b.Member("green", nil); err != nil {
//			return err
//		}
//		return b.Member("blue", apis.Options{apis.OptObject: "blue"})
//	})
//
// Recognized member options are apis.OptID ("id", any Go integer) and
// apis.OptObject ("object", any value). Any other key fails with
// ErrInvalidOptions; a non-integer id fails with ErrInvalidID. A failing
// Member call poisons the block even if its error is ignored.
//
// Defining the same host type again appends to its registry. Every block is
// committed atomically: if any member fails (for example with ErrRepeatedID)
// none of the block's members become visible, including the ones declared
// before the failing member.
//
// # Identifiers
//
// Members without an explicit id receive the first free id starting from the
// auto counter (FirstID, 1 by default), which then moves past it. Explicit ids
// never move the counter, and the counter skips ids already taken:
//
//	small  id=1 (explicit)
//	medium      -> 2
//	large  id=10 (explicit)
//	huge        -> 3
//
// Collisions are only possible with explicit ids and are reported as
// ErrRepeatedID, checked against every block ever committed for the host.
// Once math.MaxInt has been handed out, further auto ids fail with
// ErrIDsExhausted; explicit ids keep working.
//
// # Default values
//
// A member without an object gets the value built by Config.Factory. The
// default factory tries, in order:
//
//  1. If *Host implements apis.Initializer, a new *Host whose
//     InitEnumMember(id, name) has been called.
//  2. A new zero *Host.
//  3. An *apis.Marker{ID, Name} when there is no host type, or when the host
//     has zero size (struct{}-like hosts may share one address, so they
//     get markers to keep member values distinct).
//
// # Names
//
// Registry.Get / MustGet / Member play the role of one accessor per member
// name. By default a repeated name is rebound to the newest member
// (apis.NameLastWriteWins); config.WithNamePolicy(apis.NameReject) turns a
// repeated name into ErrRepeatedName.
//
// # Concurrency model
//
// Declaration is meant to happen once, during package initialization.
// Defines and commits are nonetheless serialized with a mutex and publish
// immutable snapshots through atomic pointers, so lookups (For, Lookup and
// every Registry read method) are lock-free and always see a consistent
// state.
//
// # Scope
//
// enumx does not persist, serialize, map to database columns or format
// members for display. Registries are never reset or torn down.
package enumx
