package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncFlags_SetClearHas(t *testing.T) {
	var f SyncFlags

	assert.False(t, f.Has(FlagNeverSync))
	assert.False(t, f.Has(FlagConflict))

	f.Set(FlagNeverSync)
	assert.True(t, f.Has(FlagNeverSync))
	assert.False(t, f.Has(FlagConflict))

	f.Set(FlagConflict)
	assert.True(t, f.Has(FlagNeverSync))
	assert.True(t, f.Has(FlagConflict))
	assert.Equal(t, "never-sync|conflict", f.String())

	f.Clear(FlagNeverSync)
	assert.False(t, f.Has(FlagNeverSync))
	assert.True(t, f.Has(FlagConflict))
	assert.Equal(t, "conflict", f.String())

	f.Clear(FlagConflict)
	assert.Equal(t, SyncFlags(0), f)
	assert.Equal(t, "none", f.String())
}

func TestParseLegacyTag(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		expected SyncFlags
		ok       bool
	}{
		{name: "private", tag: "private", expected: FlagNeverSync, ok: true},
		{name: "local-only", tag: "local-only", expected: FlagNeverSync, ok: true},
		{name: "conflict", tag: "conflict", expected: FlagConflict, ok: true},
		{name: "ordinary tag", tag: "golang", expected: 0, ok: false},
		{name: "empty", tag: "", expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLegacyTag(tt.tag)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEffectiveFlags(t *testing.T) {
	flags := func(f SyncFlags) *SyncFlags { return &f }

	// Дерево коллекций: root → work → inbox, карточка в inbox
	root := &Entity{ID: "root", Type: TypeCollections, Flags: flags(FlagNeverSync)}
	work := &Entity{ID: "work", Type: TypeCollections, ParentID: "root"}
	inbox := &Entity{ID: "inbox", Type: TypeCollections, ParentID: "work"}
	collections := map[string]*Entity{"root": root, "work": work, "inbox": inbox}
	lookup := func(id string) *Entity { return collections[id] }

	tests := []struct {
		entity   *Entity
		name     string
		expected SyncFlags
	}{
		{
			name:     "explicit flags win over parent",
			entity:   &Entity{ID: "c1", ParentID: "root", Flags: flags(0)},
			expected: 0,
		},
		{
			name:     "inherited from direct parent",
			entity:   &Entity{ID: "c2", ParentID: "root"},
			expected: FlagNeverSync,
		},
		{
			name:     "inherited through chain",
			entity:   &Entity{ID: "c3", ParentID: "inbox"},
			expected: FlagNeverSync,
		},
		{
			name:     "no parent, no flags",
			entity:   &Entity{ID: "c4"},
			expected: 0,
		},
		{
			name:     "unknown parent",
			entity:   &Entity{ID: "c5", ParentID: "missing"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveFlags(tt.entity, lookup)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEffectiveFlags_CycleGuard(t *testing.T) {
	// a → b → a: цикл не должен зависнуть
	a := &Entity{ID: "a", Type: TypeCollections, ParentID: "b"}
	b := &Entity{ID: "b", Type: TypeCollections, ParentID: "a"}
	collections := map[string]*Entity{"a": a, "b": b}

	got := EffectiveFlags(&Entity{ID: "card", ParentID: "a"}, func(id string) *Entity {
		return collections[id]
	})
	assert.Equal(t, SyncFlags(0), got)
}

func TestEffectiveFlags_NilLookup(t *testing.T) {
	assert.Equal(t, SyncFlags(0), EffectiveFlags(&Entity{ID: "x", ParentID: "p"}, nil))
	assert.Equal(t, SyncFlags(0), EffectiveFlags(nil, nil))
}
