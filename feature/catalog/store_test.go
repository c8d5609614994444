package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shelfd/core/snapshot"
	"shelfd/feature/catalog/models"
)

func TestStoreOrdering(t *testing.T) {
	s := NewStore(nil, "")

	s.InsertFront(models.Book{ID: 1, Title: "First"})
	s.InsertFront(models.Book{ID: 2, Title: "Second"})
	s.InsertFront(models.Book{ID: 3, Title: "Third"})

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, 3, all[0].ID, "most recent insert comes first")
	assert.Equal(t, 2, all[1].ID)
	assert.Equal(t, 1, all[2].ID)
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore(nil, "")
	s.InsertFront(models.Book{ID: 1, Title: "Original"})

	all := s.All()
	all[0].Title = "Mutated"

	got, ok := s.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Original", got.Title)
}

func TestStoreFind(t *testing.T) {
	s := NewStore(nil, "")
	s.InsertFront(models.Book{ID: 7, Title: "Dune"})

	got, ok := s.Find(7)
	assert.True(t, ok)
	assert.Equal(t, "Dune", got.Title)

	_, ok = s.Find(99)
	assert.False(t, ok)
}

func TestStoreRemove(t *testing.T) {
	s := NewStore(nil, "")
	s.InsertFront(models.Book{ID: 1})
	s.InsertFront(models.Book{ID: 2})

	removed, err := s.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, 1, removed.ID)
	assert.Equal(t, 1, s.Len())

	_, err = s.Remove(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreReplaceFields(t *testing.T) {
	s := NewStore(nil, "")
	s.InsertFront(models.Book{ID: 5, Title: "Old", Author: "Someone", Year: "1965"})

	title := "New"
	prior, err := s.ReplaceFields(5, models.Patch{Title: &title})
	require.NoError(t, err)

	// The prior snapshot is the full pre-mutation record.
	assert.Equal(t, models.Book{ID: 5, Title: "Old", Author: "Someone", Year: "1965"}, prior)

	got, ok := s.Find(5)
	require.True(t, ok)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "Someone", got.Author, "untouched fields survive")

	_, err = s.ReplaceFields(99, models.Patch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreReplaceSwapsIdentity(t *testing.T) {
	s := NewStore(nil, "")
	s.InsertFront(models.Book{ID: 10})
	s.InsertFront(models.Book{ID: -1, Title: "Pending"})

	ok := s.Replace(-1, models.Book{ID: 42, Title: "Pending"})
	require.True(t, ok)

	all := s.All()
	assert.Equal(t, 42, all[0].ID, "replacement keeps the position")
	_, found := s.Find(-1)
	assert.False(t, found)

	assert.False(t, s.Replace(-1, models.Book{ID: 43}))
}

func TestStoreHydrate(t *testing.T) {
	s := NewStore(nil, "")
	s.InsertFront(models.Book{ID: 1})

	s.Hydrate([]models.Book{{ID: 2}, {ID: 3}})

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].ID)
}

func TestStoreSnapshotRoundTrip(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	snap, err := snapshot.NewStore(db)
	require.NoError(t, err)

	ctx := context.Background()

	s := NewStore(snap, "catalog")
	s.InsertFront(models.Book{ID: 1, Title: "Dune", Author: "Frank Herbert"})
	s.InsertFront(models.Book{ID: 2, Title: "Hyperion"})
	require.NoError(t, s.Snapshot(ctx))

	restored := NewStore(snap, "catalog")
	require.NoError(t, restored.Restore(ctx))
	assert.Equal(t, s.All(), restored.All())
}

func TestStoreRestoreWithoutSnapshot(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	snap, err := snapshot.NewStore(db)
	require.NoError(t, err)

	s := NewStore(snap, "catalog")
	require.NoError(t, s.Restore(context.Background()))
	assert.Equal(t, 0, s.Len())
}
