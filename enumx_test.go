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

package enumx_test

import (
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
)

// ---------------------- Host types ----------------------

// Every test uses its own host types; the table is process-wide.

type Colors struct{ N int }

var colors = enumx.MustDefine[Colors](func(b apis.Builder) error {
	if err := b.Member("red", nil); err != nil {
		return err
	}
	return b.Member("green", nil)
})

type Positions struct{ N int }
type Sizes struct{ N int }
type NotEnum struct{}
type Failing struct{}
type Poisoned struct{}
type Pointered struct{ N int }
type Strict struct{ N int }
type Configured struct{ N int }
type Empty struct{}
type Hammered struct{ N int }
type Heading struct{}

// PhoneType knows its own member.
type PhoneType struct {
	ID   int
	Kind string
}

func (p *PhoneType) InitEnumMember(id int, name string) {
	p.ID, p.Kind = id, name
}

// members declares names without options.
func members(names ...string) func(b apis.Builder) error {
	return func(b apis.Builder) error {
		for _, n := range names {
			if err := b.Member(n, nil); err != nil {
				return err
			}
		}
		return nil
	}
}

func memberID(t *testing.T, reg apis.Registry, name string) int {
	t.Helper()
	m, ok := reg.Member(name)
	require.True(t, ok, "member %q not found", name)
	return m.ID
}

// ---------------------- Tests ----------------------

func TestDefine_PackageLevel(t *testing.T) {
	reg, ok := enumx.For[Colors]()
	require.True(t, ok)
	require.Same(t, colors, reg)

	require.IsType(t, &Colors{}, reg.MustGet("red"))
	require.IsType(t, &Colors{}, reg.MustGet("green"))
	require.Equal(t, 1, memberID(t, reg, "red"))
	require.Equal(t, 2, memberID(t, reg, "green"))
}

func TestDefine_ExtendsAcrossBlocks(t *testing.T) {
	_, err := enumx.Define[Colors](func(b apis.Builder) error {
		return b.Member("blue", apis.Options{apis.OptObject: "blue"})
	})
	require.NoError(t, err)

	_, err = enumx.Define[Colors](func(b apis.Builder) error {
		return b.Member("yellow", apis.Options{apis.OptID: 98765})
	})
	require.NoError(t, err)

	require.Equal(t, "blue", colors.MustGet("blue"))
	require.IsType(t, &Colors{}, colors.MustGet("red"))
	require.Equal(t, 98765, memberID(t, colors, "yellow"))

	// brown collides with green from the first block.
	_, err = enumx.Define[Colors](func(b apis.Builder) error {
		return b.Member("brown", apis.Options{apis.OptID: 2})
	})
	require.ErrorIs(t, err, enumx.ErrRepeatedID)
	_, ok := colors.Get("brown")
	require.False(t, ok)
	require.Equal(t, 2, memberID(t, colors, "green"))

	_, err = enumx.Define[Colors](func(b apis.Builder) error {
		return b.Member("cyan", apis.Options{apis.OptID: "hola"})
	})
	require.ErrorIs(t, err, enumx.ErrInvalidID)

	_, err = enumx.Define[Colors](func(b apis.Builder) error {
		return b.Member("foo", apis.Options{"bar": 1})
	})
	require.ErrorIs(t, err, enumx.ErrInvalidOptions)
}

func TestDefine_Positions(t *testing.T) {
	reg, err := enumx.Define[Positions](func(b apis.Builder) error {
		for _, n := range []string{"top", "right", "bottom"} {
			if err := b.Member(n, nil); err != nil {
				return err
			}
		}
		return b.Member("left", apis.Options{apis.OptID: 100})
	})
	require.NoError(t, err)

	top, right, bottom, left := reg.MustGet("top"), reg.MustGet("right"), reg.MustGet("bottom"), reg.MustGet("left")
	if diff := cmp.Diff([]any{top, right, bottom, left}, reg.All()); diff != "" {
		t.Fatalf("All() mismatch (-want +got):\n%s", diff)
	}

	v, ok := reg.FindByID(1)
	require.True(t, ok)
	require.Same(t, top, v)
	v, err = reg.Find(1)
	require.NoError(t, err)
	require.Same(t, top, v)

	v, ok = reg.FindByID(100)
	require.True(t, ok)
	require.Same(t, left, v)

	_, ok = reg.FindByID(200)
	require.False(t, ok)
	_, err = reg.Find(200)
	require.ErrorIs(t, err, enumx.ErrObjectNotFound)

	require.Same(t, reg.All()[0], reg.First())
	require.Same(t, left, reg.Last())
}

func TestDefine_Sizes(t *testing.T) {
	reg, err := enumx.Define[Sizes](func(b apis.Builder) error {
		if err := b.Member("small", apis.Options{apis.OptID: 1}); err != nil {
			return err
		}
		return b.Member("medium", nil)
	})
	require.NoError(t, err)
	require.Equal(t, 1, memberID(t, reg, "small"))
	require.Equal(t, 2, memberID(t, reg, "medium"))

	_, err = enumx.Define[Sizes](func(b apis.Builder) error {
		return b.Member("large", apis.Options{apis.OptID: 10, apis.OptObject: "L"})
	})
	require.NoError(t, err)
	require.Equal(t, 10, memberID(t, reg, "large"))
	require.Equal(t, "L", reg.MustGet("large"))
}

func TestDefine_Initializer(t *testing.T) {
	reg, err := enumx.Define[PhoneType](members("home", "commercial", "mobile"))
	require.NoError(t, err)

	home := reg.MustGet("home").(*PhoneType)
	require.Equal(t, &PhoneType{ID: 1, Kind: "home"}, home)
	require.Equal(t, "mobile", reg.Last().(*PhoneType).Kind)
}

func TestDefine_ZeroSizeHostMembersAreDistinct(t *testing.T) {
	reg, err := enumx.Define[Heading](members("north", "south"))
	require.NoError(t, err)

	north, south := reg.MustGet("north"), reg.MustGet("south")
	require.True(t, north != south, "north and south must be different values")
	require.IsType(t, &apis.Marker{}, north)
	require.Equal(t, "south(2)", south.(*apis.Marker).String())
}

func TestNoDefine_NoRegistry(t *testing.T) {
	_, ok := enumx.For[NotEnum]()
	require.False(t, ok)
	_, ok = enumx.Lookup(nil)
	require.False(t, ok)
}

func TestDefine_FailedFirstBlock_LeavesNoRegistry(t *testing.T) {
	boom := errors.New("boom")

	_, err := enumx.Define[Failing](func(b apis.Builder) error {
		_ = b.Member("a", nil)
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = enumx.Define[Failing](func(b apis.Builder) error {
		_ = b.Member("a", apis.Options{apis.OptID: 1})
		_ = b.Member("b", apis.Options{apis.OptID: 1})
		return nil
	})
	require.ErrorIs(t, err, enumx.ErrRepeatedID)

	_, ok := enumx.For[Failing]()
	require.False(t, ok)
}

func TestDefine_IgnoredMemberErrorStillFails(t *testing.T) {
	_, err := enumx.Define[Poisoned](func(b apis.Builder) error {
		_ = b.Member("ok", nil)
		_ = b.Member("bad", apis.Options{"nope": 1})
		return nil
	})
	require.ErrorIs(t, err, enumx.ErrInvalidOptions)

	_, ok := enumx.For[Poisoned]()
	require.False(t, ok)
}

func TestDefine_PointerHostSharesRegistry(t *testing.T) {
	a, err := enumx.Define[Pointered](members("one"))
	require.NoError(t, err)
	b, err := enumx.Define[*Pointered](members("two"))
	require.NoError(t, err)

	require.Same(t, a, b)
	require.Equal(t, []string{"one", "two"}, a.Names())
	require.Equal(t, reflect.TypeOf(Pointered{}), a.Host())

	reg, ok := enumx.Lookup(reflect.TypeOf(&Pointered{}))
	require.True(t, ok)
	require.Same(t, a, reg)
}

func TestDefineEnum_InvalidHost(t *testing.T) {
	_, err := enumx.DefineEnum(nil, members("x"))
	require.ErrorIs(t, err, enumx.ErrInvalidHost)

	_, err = enumx.DefineEnum(reflect.TypeOf(struct{}{}), members("x"))
	require.ErrorIs(t, err, enumx.ErrInvalidHost)

	_, err = enumx.Define[[]Colors](members("x"))
	require.ErrorIs(t, err, enumx.ErrInvalidHost)
}

func TestDefine_EmptyBlockCreatesEmptyRegistry(t *testing.T) {
	reg, err := enumx.Define[Empty](nil)
	require.NoError(t, err)
	require.Zero(t, reg.Count())
	require.PanicsWithValue(t, enumx.ErrNoMembers, func() { reg.First() })

	got, ok := enumx.For[Empty]()
	require.True(t, ok)
	require.Same(t, reg, got)
}

func TestDefine_OptionsApplyOnCreation(t *testing.T) {
	reg, err := enumx.Define[Strict](members("a"), config.WithNamePolicy(apis.NameReject))
	require.NoError(t, err)

	_, err = enumx.Define[Strict](members("a"))
	require.ErrorIs(t, err, enumx.ErrRepeatedName)
	require.Equal(t, 1, reg.Count())
}

func TestSetConfig_AffectsNewRegistriesOnly(t *testing.T) {
	prev := enumx.Config()
	t.Cleanup(func() { enumx.SetConfig(prev) })

	enumx.SetConfig(config.NewConfig(config.WithFirstID(100)))
	require.Equal(t, 100, enumx.Config().FirstID)

	reg, err := enumx.Define[Configured](members("a", "b"))
	require.NoError(t, err)
	require.Equal(t, 100, memberID(t, reg, "a"))
	require.Equal(t, 101, memberID(t, reg, "b"))

	// colors was created with the default config.
	_, err = enumx.Define[Colors](members("magenta"))
	require.NoError(t, err)
	require.Less(t, memberID(t, colors, "magenta"), 100)
}

func TestRegistries_Snapshot(t *testing.T) {
	regs := enumx.Registries()
	require.NotEmpty(t, regs)

	var hosts []string
	for _, r := range regs {
		hosts = append(hosts, r.Host().String())
	}
	require.Contains(t, hosts, "enumx_test.Colors")
	require.IsIncreasing(t, hosts)
}

func TestConcurrentDefineAndLookup(t *testing.T) {
	reg, err := enumx.Define[Hammered](members("seed"))
	require.NoError(t, err)

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers * 2)

	// Readers
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				got, ok := enumx.For[Hammered]()
				if !ok || got != reg {
					t.Errorf("For[Hammered]: ok=%v same=%v", ok, got == reg)
					return
				}
				_ = got.All()
				_ = enumx.Registries()
			}
		}()
	}

	// Writers: each appends auto-id members.
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				if _, err := enumx.Define[Hammered](members("m")); err != nil {
					t.Errorf("Define: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1+workers*20, reg.Count())
	seen := map[int]bool{}
	for _, m := range reg.Members() {
		require.False(t, seen[m.ID], "duplicate id %d", m.ID)
		seen[m.ID] = true
	}
}
