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
	"fmt"
	"log/slog"
)

// Config carries the knobs a Registry is created with.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// FirstID is the first identifier handed out by auto-assignment.
	FirstID int

	// NamePolicy controls what happens when a member name is declared again
	// for the same host type.
	NamePolicy NamePolicy

	// Factory builds the associated value of members declared without an
	// explicit object. A nil Factory makes every such member a *Marker.
	Factory Factory

	// Logger receives commit diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// NamePolicy selects how repeated member names are handled on commit.
type NamePolicy int

const (
	// NameLastWriteWins rebinds the name to the newest member. Both members
	// stay visible through Registry.All and their ids.
	NameLastWriteWins NamePolicy = iota
	// NameReject fails the commit with a repeated-name error.
	NameReject
)

// String returns the policy name, e.g. "last-write-wins".
func (p NamePolicy) String() string {
	switch p {
	case NameLastWriteWins:
		return "last-write-wins"
	case NameReject:
		return "reject"
	default:
		return fmt.Sprintf("NamePolicy(%d)", int(p))
	}
}
