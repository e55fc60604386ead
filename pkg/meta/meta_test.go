package meta

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/balatro-meta/pkg/catalog"
	"github.com/jwebster45206/balatro-meta/pkg/compress"
	"github.com/jwebster45206/balatro-meta/pkg/luatable"
)

func deflate(t *testing.T, text string) []byte {
	t.Helper()
	data, err := compress.Compress(text)
	require.NoError(t, err)
	return data
}

func state(t *testing.T, m *Meta, name string) [3]bool {
	t.Helper()
	it, ok := m.Item(name)
	require.True(t, ok, "item %s missing", name)
	return it.state()
}

func assertCapabilityInvariant(t *testing.T, m *Meta) {
	t.Helper()
	for _, name := range m.Names("") {
		it, _ := m.Item(name)
		assert.False(t, !it.CanAlert() && it.Alerted, "%s alerted without capability", name)
		assert.False(t, !it.CanDiscover() && it.Discovered, "%s discovered without capability", name)
		assert.False(t, !it.CanUnlock() && it.Unlocked, "%s unlocked without capability", name)
	}
}

func TestDefault(t *testing.T) {
	m := Default()

	assert.Equal(t, catalog.Len(), m.Len())
	assert.Empty(t, m.Modded())
	assert.Equal(t, [3]bool{true, false, true}, state(t, m, "j_joker"))
	assert.Equal(t, [3]bool{false, false, false}, state(t, m, "j_blueprint"))
	assert.Equal(t, [3]bool{true, true, false}, state(t, m, "e_base"))
	assertCapabilityInvariant(t, m)

	it, _ := m.Item("c_fool")
	assert.True(t, it.CanAlert())
	assert.True(t, it.CanDiscover())
	assert.False(t, it.CanUnlock())
}

func TestLoad_ModdedItemScenario(t *testing.T) {
	data := deflate(t, `return { ["alerted"]={["x_fooitem"]=true,}, ["discovered"]={}, ["unlocked"]={} }`)

	m, err := Load(data)
	require.NoError(t, err)

	it, ok := m.Item("x_fooitem")
	require.True(t, ok)
	assert.True(t, it.Alerted)
	assert.False(t, it.Discovered)
	assert.False(t, it.Unlocked)
	assert.True(t, it.CanAlert())
	assert.True(t, it.CanDiscover())
	assert.True(t, it.CanUnlock())

	assert.Equal(t, []string{"x_fooitem"}, m.Modded())
	assert.Equal(t, catalog.Len()+1, m.Len())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		kind     ErrorKind
		sentinel error
		wraps    error
		subtable string
		message  string
	}{
		{
			name:     "corrupt stream",
			data:     []byte{0xff, 0xff, 0xff, 0xff},
			kind:     KindCorruptStream,
			sentinel: ErrCorruptStream,
			wraps:    compress.ErrCorruptStream,
			message:  "not a valid save file",
		},
		{
			name:     "empty file",
			data:     nil,
			kind:     KindCorruptStream,
			sentinel: ErrCorruptStream,
			wraps:    compress.ErrCorruptStream,
			message:  "not a valid save file",
		},
		{
			name:     "not utf-8",
			data:     deflate(t, "return {[\"\xff\xfe\"]=true}"),
			kind:     KindInvalidEncoding,
			sentinel: ErrInvalidEncoding,
			wraps:    compress.ErrInvalidEncoding,
			message:  "not a valid save file",
		},
		{
			name:     "not a table literal",
			data:     deflate(t, `return {["alerted"]=`),
			kind:     KindParse,
			sentinel: ErrParse,
			wraps:    luatable.ErrSyntax,
			message:  "could not parse save data",
		},
		{
			name:     "missing unlocked",
			data:     deflate(t, `return {["alerted"]={},["discovered"]={},}`),
			kind:     KindMissingSubtable,
			sentinel: ErrMissingSubtable,
			wraps:    luatable.ErrMissingSubtable,
			subtable: "unlocked",
			message:  "not a recognized save kind",
		},
		{
			name:     "different save kind",
			data:     deflate(t, `return {["career_stats"]={["c_wins"]=3,},["name"]="P1",}`),
			kind:     KindMissingSubtable,
			sentinel: ErrMissingSubtable,
			wraps:    luatable.ErrMissingSubtable,
			subtable: "alerted",
			message:  "not a recognized save kind",
		},
		{
			name:     "subtable of wrong type",
			data:     deflate(t, `return {["alerted"]={},["discovered"]=true,["unlocked"]={},}`),
			kind:     KindMissingSubtable,
			sentinel: ErrMissingSubtable,
			wraps:    luatable.ErrMissingSubtable,
			subtable: "discovered",
			message:  "not a recognized save kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(tt.data)
			require.Error(t, err)
			assert.Nil(t, m)

			var me *Error
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.kind, me.Kind)
			assert.Equal(t, tt.subtable, me.Subtable)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, tt.wraps)
			assert.Equal(t, tt.message, UserMessage(err))

			for _, other := range []error{ErrCorruptStream, ErrInvalidEncoding, ErrParse, ErrMissingSubtable} {
				if other != tt.sentinel {
					assert.NotErrorIs(t, err, other)
				}
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	_, err := Load(deflate(t, `return {["alerted"]={},["discovered"]={},}`))
	assert.Equal(t, `meta: missing subtable "unlocked": subtable "unlocked" not found`, err.Error())

	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
}

func TestLoad_CatalogAbsence(t *testing.T) {
	m, err := Load(deflate(t, `return {["alerted"]={},["discovered"]={},["unlocked"]={},}`))
	require.NoError(t, err)

	assert.True(t, m.Equal(Default()), "an empty file yields the fresh profile")
	assert.Equal(t, [3]bool{true, false, true}, state(t, m, "j_joker"))
	assert.Equal(t, [3]bool{false, false, false}, state(t, m, "j_perkeo"))
	assert.Equal(t, [3]bool{true, true, false}, state(t, m, "bl_small"))
}

func TestLoad_DecodedPresenceWins(t *testing.T) {
	doc := `return {
		["alerted"]={["j_joker"]=false,},
		["discovered"]={["j_joker"]=true,["j_perkeo"]=true,},
		["unlocked"]={["j_perkeo"]=true,},
	}`
	m, err := Load(deflate(t, doc))
	require.NoError(t, err)

	// j_joker is mentioned, so its missing unlocked value reads as false
	// rather than falling back to the baseline.
	assert.Equal(t, [3]bool{false, true, false}, state(t, m, "j_joker"))
	assert.Equal(t, [3]bool{false, true, true}, state(t, m, "j_perkeo"))
	// Unmentioned items keep their baseline.
	assert.Equal(t, [3]bool{true, false, true}, state(t, m, "j_greedy_joker"))
}

func TestLoad_CapabilityInvariant(t *testing.T) {
	doc := `return {
		["alerted"]={["c_fool"]=true,["x_mod"]=true,},
		["discovered"]={["c_fool"]=true,},
		["unlocked"]={["c_fool"]=true,["e_foil"]=true,["x_mod"]=true,},
	}`
	m, err := Load(deflate(t, doc))
	require.NoError(t, err)

	assert.Equal(t, [3]bool{true, true, false}, state(t, m, "c_fool"))
	assert.Equal(t, [3]bool{false, false, false}, state(t, m, "e_foil"))
	assert.Equal(t, [3]bool{true, false, true}, state(t, m, "x_mod"))
	assertCapabilityInvariant(t, m)

	data, err := Save(m)
	require.NoError(t, err)
	reloaded, err := Load(data)
	require.NoError(t, err)
	assertCapabilityInvariant(t, reloaded)

	UnlockAll(reloaded, "")
	assertCapabilityInvariant(t, reloaded)
}

func TestLoad_IgnoresNonBooleanEntries(t *testing.T) {
	doc := `return {
		["alerted"]={[1]=true,["j_joker"]="yes",["x_mod"]=true,},
		["discovered"]={},
		["unlocked"]={},
		[7]={["nested"]={}},
	}`
	m, err := Load(deflate(t, doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"x_mod"}, m.Modded())
	assert.Equal(t, [3]bool{true, false, true}, state(t, m, "j_joker"))
}

func TestRoundTrip(t *testing.T) {
	docs := map[string][]byte{
		"default": func() []byte {
			data, err := Save(Default())
			require.NoError(t, err)
			return data
		}(),
		"edited": deflate(t, `return {
			["alerted"]={["j_joker"]=false,["x_fooitem"]=true,["c_fool"]=true,},
			["discovered"]={["j_blueprint"]=true,["tag_\"odd\"\nname"]=true,},
			["unlocked"]={["v_antimatter"]=true,["c_fool"]=true,},
		}`),
		"escaped non-utf8 name": deflate(t, `return {["alerted"]={["x_\255mod"]=true,},["discovered"]={},["unlocked"]={},}`),
	}

	for name, data := range docs {
		t.Run(name, func(t *testing.T) {
			first, err := Load(data)
			require.NoError(t, err)

			saved, err := Save(first)
			require.NoError(t, err)
			second, err := Load(saved)
			require.NoError(t, err)

			assert.True(t, first.Equal(second), "diff: %v", first.Diff(second))
			assert.Empty(t, first.Diff(second))
		})
	}

	t.Run("escaped name survives", func(t *testing.T) {
		m, err := Load(docs["escaped non-utf8 name"])
		require.NoError(t, err)
		it, ok := m.Item("x_\xffmod")
		require.True(t, ok)
		assert.True(t, it.Alerted)
		assert.True(t, utf8.ValidString(Text(m)))
	})

	t.Run("default", func(t *testing.T) {
		m, err := Load(docs["default"])
		require.NoError(t, err)
		assert.True(t, m.Equal(Default()))
	})
}

func TestSaveLevel_InvalidLevel(t *testing.T) {
	_, err := SaveLevel(Default(), 99)
	assert.ErrorIs(t, err, compress.ErrInvalidLevel)
}

func TestText(t *testing.T) {
	m := Reconcile(nil, nil, map[string]bool{"a_first": true})
	text := Text(m)

	assert.Contains(t, text[:40], `return {["alerted"]={["a_first"]=false,`)

	root, err := luatable.Parse(text)
	require.NoError(t, err)
	alerted, discovered, unlocked, err := Decode(root)
	require.NoError(t, err)
	assert.Len(t, alerted, m.Len())
	assert.Len(t, discovered, m.Len())
	assert.Len(t, unlocked, m.Len())
	assert.True(t, unlocked["a_first"])
	assert.True(t, alerted["j_joker"])
}

func TestToTable_SortedEntries(t *testing.T) {
	root := ToTable(Default())
	require.Equal(t, 3, root.Len())

	for _, name := range []string{SubtableAlerted, SubtableDiscovered, SubtableUnlocked} {
		sub, err := luatable.LookupSubtable(root, name)
		require.NoError(t, err)
		var prev string
		for i, e := range sub.Entries() {
			key, ok := e.Key.Str()
			require.True(t, ok)
			if i > 0 {
				assert.Less(t, prev, key)
			}
			prev = key
		}
	}
}

func TestAccessors(t *testing.T) {
	m := Reconcile(map[string]bool{"j_mod_thing": true, "zz_other": true}, nil, nil)

	jokers := m.Names("j_")
	assert.Len(t, jokers, 151)
	assert.Contains(t, jokers, "j_mod_thing")
	assert.IsIncreasing(t, jokers)

	assert.Equal(t, jokers, m.CategoryNames(catalog.Jokers))
	assert.Len(t, m.CategoryNames(catalog.Misc), 91)
	assert.Equal(t, []string{"j_mod_thing", "zz_other"}, m.Modded())
	assert.Len(t, m.Names(""), m.Len())
	assert.Empty(t, m.Names("nothing_"))

	_, ok := m.Item("missing")
	assert.False(t, ok)
}

func TestCloneAndDiff(t *testing.T) {
	m := Default()
	c := m.Clone()
	require.True(t, m.Equal(c))

	it, _ := c.Item("j_blueprint")
	it.Unlocked = true
	orig, _ := m.Item("j_blueprint")
	assert.False(t, orig.Unlocked, "clone shares no items")

	assert.False(t, m.Equal(c))
	assert.Equal(t, []string{"j_blueprint"}, m.Diff(c))

	extra := Reconcile(map[string]bool{"x_new": false}, nil, nil)
	assert.Equal(t, []string{"x_new"}, Default().Diff(extra))
	assert.False(t, Default().Equal(extra))

	var nilMeta *Meta
	assert.True(t, nilMeta.Equal(nil))
	assert.False(t, m.Equal(nil))
}
