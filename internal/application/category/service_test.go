package category

import (
	"context"
	"testing"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/application/event"
	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	rows   map[int64]*domain.Category
	links  map[int64][]int64 // category_id -> event ids
	nextID int64
}

func newMemRepo() *memRepo {
	return &memRepo{rows: map[int64]*domain.Category{}, links: map[int64][]int64{}}
}

func (m *memRepo) LinkedEventIDs(ctx context.Context, id int64) ([]int64, error) {
	return m.links[id], nil
}

// keyCache records evictions and answers Get-style lookups by key presence.
type keyCache struct {
	keys    map[string]bool
	deleted []string
}

func (c *keyCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.keys, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func (m *memRepo) exists(name string, except int64) bool {
	for id, c := range m.rows {
		if id != except && c.Name == name {
			return true
		}
	}
	return false
}

func (m *memRepo) CreateMany(ctx context.Context, names []string) ([]*domain.Category, error) {
	for _, n := range names {
		if m.exists(n, 0) {
			return nil, domain.ErrConflict("category_exists", "Category already exists")
		}
	}
	out := make([]*domain.Category, 0, len(names))
	for _, n := range names {
		m.nextID++
		c := &domain.Category{ID: m.nextID, Name: n}
		m.rows[c.ID] = c
		out = append(out, &domain.Category{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (m *memRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound("category")
	}
	return &domain.Category{ID: c.ID, Name: c.Name}, nil
}

func (m *memRepo) List(ctx context.Context) ([]*domain.Category, error) {
	out := []*domain.Category{}
	for i := int64(1); i <= m.nextID; i++ {
		if c, ok := m.rows[i]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memRepo) Update(ctx context.Context, c *domain.Category) error {
	if m.exists(c.Name, c.ID) {
		return domain.ErrConflict("category_exists", "Category already exists")
	}
	m.rows[c.ID] = &domain.Category{ID: c.ID, Name: c.Name}
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound("category")
	}
	delete(m.rows, id)
	return nil
}

func TestService_CreateMany(t *testing.T) {
	ctx := context.Background()

	t.Run("bulk_create_collapses_duplicates", func(t *testing.T) {
		svc := New(newMemRepo(), nil)
		out, err := svc.CreateMany(ctx, []string{"Music", " Technology", "Music", "Food & Drink"})
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, "Technology", out[1].Name)
		for _, c := range out {
			assert.Positive(t, c.ID)
		}
	})

	t.Run("empty_and_blank_rejected", func(t *testing.T) {
		svc := New(newMemRepo(), nil)
		_, err := svc.CreateMany(ctx, nil)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		_, err = svc.CreateMany(ctx, []string{"ok", ""})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("existing_name_conflicts", func(t *testing.T) {
		svc := New(newMemRepo(), nil)
		_, err := svc.CreateMany(ctx, []string{"Music"})
		require.NoError(t, err)
		_, err = svc.CreateMany(ctx, []string{"Music"})
		assert.True(t, domain.Is(err, "category_exists"))
	})
}

func TestService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := New(newMemRepo(), nil)
	out, err := svc.CreateMany(ctx, []string{"Music", "Technology"})
	require.NoError(t, err)
	id := out[0].ID

	got, err := svc.Update(ctx, id, nil)
	require.NoError(t, err)
	assert.Equal(t, "Music", got.Name)

	name := "Live Music"
	got, err = svc.Update(ctx, id, &name)
	require.NoError(t, err)
	assert.Equal(t, "Live Music", got.Name)

	blank := " "
	_, err = svc.Update(ctx, id, &blank)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = svc.Update(ctx, 999, &name)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestService_Rename_EvictsLinkedEventDetails(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	cache := &keyCache{keys: map[string]bool{
		event.CacheKeyEventDetails(7): true,
		event.CacheKeyEventDetails(9): true,
		event.CacheKeyEventDetails(8): true,
	}}
	svc := New(repo, cache)

	out, err := svc.CreateMany(ctx, []string{"Music"})
	require.NoError(t, err)
	repo.links[out[0].ID] = []int64{7, 9}

	name := "Live Music"
	_, err = svc.Update(ctx, out[0].ID, &name)
	require.NoError(t, err)

	assert.False(t, cache.keys[event.CacheKeyEventDetails(7)], "next read of event 7 must miss")
	assert.False(t, cache.keys[event.CacheKeyEventDetails(9)], "next read of event 9 must miss")
	assert.True(t, cache.keys[event.CacheKeyEventDetails(8)], "unlinked event stays cached")

	t.Run("unchanged_name_keeps_cache", func(t *testing.T) {
		cache.deleted = nil
		_, err := svc.Update(ctx, out[0].ID, &name)
		require.NoError(t, err)
		assert.Empty(t, cache.deleted)
	})

	t.Run("failed_rename_keeps_cache", func(t *testing.T) {
		cache.deleted = nil
		_, err := svc.CreateMany(ctx, []string{"Jazz"})
		require.NoError(t, err)
		taken := "Jazz"
		_, err = svc.Update(ctx, out[0].ID, &taken)
		assert.True(t, domain.Is(err, "category_exists"))
		assert.Empty(t, cache.deleted)
	})
}
