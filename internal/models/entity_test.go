package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPullOrder(t *testing.T) {
	order := PullOrder()

	// Родительские типы раньше ссылающихся: коллекции и теги до карточек
	require.Len(t, order, 3)
	assert.Equal(t, TypeCollections, order[0])
	assert.Equal(t, TypeTags, order[1])
	assert.Equal(t, TypeCards, order[2])
}

func TestEntityType_Versioned(t *testing.T) {
	assert.True(t, TypeCards.Versioned())
	assert.False(t, TypeCollections.Versioned())
	assert.False(t, TypeTags.Versioned())
}

func TestEntityType_Valid(t *testing.T) {
	assert.True(t, TypeCards.Valid())
	assert.True(t, TypeCollections.Valid())
	assert.True(t, TypeTags.Valid())
	assert.False(t, EntityType("bookmarks").Valid())
	assert.False(t, EntityType("").Valid())
}

func TestEntity_Clone(t *testing.T) {
	flags := FlagConflict
	original := &Entity{
		Metadata:       map[string]string{"og:site": "example"},
		ID:             "card-1",
		Type:           TypeCards,
		WorkspaceID:    "ws-1",
		ParentID:       "col-1",
		URL:            "https://example.com/post",
		Title:          "Example post",
		Tags:           []string{"reading", "go"},
		Flags:          &flags,
		ConflictWithID: "card-2",
		CreatedAt:      1000,
		UpdatedAt:      2000,
		LastModified:   1500,
		Version:        3,
		Synced:         true,
	}

	clone := original.Clone()

	assert.Equal(t, original, clone)

	// Модификация оригинала не должна влиять на клон
	original.Metadata["og:site"] = "changed"
	original.Tags[0] = "changed"
	*original.Flags = FlagNeverSync

	assert.Equal(t, "example", clone.Metadata["og:site"])
	assert.Equal(t, "reading", clone.Tags[0])
	assert.Equal(t, FlagConflict, *clone.Flags)
}

func TestEntity_WireRoundTrip(t *testing.T) {
	flags := FlagNeverSync
	local := &Entity{
		Metadata:     map[string]string{"og:type": "article"},
		ID:           "card-1",
		Type:         TypeCards,
		WorkspaceID:  "ws-1",
		ParentID:     "col-1",
		URL:          "https://example.com",
		Title:        "Example",
		Description:  "desc",
		Tags:         []string{"go"},
		Flags:        &flags,
		CreatedAt:    100,
		UpdatedAt:    200,
		Version:      2,
		Deleted:      true,
		DeletedAt:    250,
		LastModified: 150,
		Synced:       true,
	}

	wire := local.ToWire()
	back := FromWire(TypeCards, &wire)

	// Локальные поля на провод не попадают
	assert.False(t, back.Synced)
	assert.Zero(t, back.LastModified)
	assert.False(t, back.DeletedLocally)

	// Остальные поля переживают round-trip
	assert.Equal(t, local.ID, back.ID)
	assert.Equal(t, TypeCards, back.Type)
	assert.Equal(t, local.WorkspaceID, back.WorkspaceID)
	assert.Equal(t, local.ParentID, back.ParentID)
	assert.Equal(t, local.URL, back.URL)
	assert.Equal(t, local.Metadata, back.Metadata)
	assert.Equal(t, local.Tags, back.Tags)
	require.NotNil(t, back.Flags)
	assert.Equal(t, FlagNeverSync, *back.Flags)
	assert.Equal(t, local.Version, back.Version)
	assert.True(t, back.Deleted)
	assert.Equal(t, local.DeletedAt, back.DeletedAt)
}

func TestEntity_WireNilFlags(t *testing.T) {
	local := &Entity{ID: "c1", Type: TypeCollections, WorkspaceID: "ws-1"}

	wire := local.ToWire()
	assert.Nil(t, wire.Flags)

	back := FromWire(TypeCollections, &wire)
	assert.Nil(t, back.Flags)
}
