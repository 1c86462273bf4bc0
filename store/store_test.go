package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/btsp/btsp"
	"github.com/katalvlaran/btsp/graph"
	"github.com/katalvlaran/btsp/store"
)

func open(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "cache.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sample() btsp.Result {
	return btsp.Result{
		Tour:           []int{0, 1, 2, 3},
		Objective:      1,
		BottleneckEdge: graph.Edge{U: 0, V: 1},
		LowerBound:     1,
	}
}

func TestStore_PutGet(t *testing.T) {
	s := open(t)
	key := store.Key("sha256:abc", "cycle", "approx")
	assert.Equal(t, "sha256:abc/cycle/approx", key)

	require.NoError(t, s.Put(key, store.NewRecord("approx", sample())))

	rec, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, key, rec.Key)
	assert.Equal(t, "approx", rec.Solver)
	assert.NotZero(t, rec.ID)
	assert.Equal(t, sample(), rec.Result())
}

func TestStore_Replace(t *testing.T) {
	s := open(t)
	key := store.Key("sha256:abc", "path", "exact")
	require.NoError(t, s.Put(key, store.NewRecord("exact", sample())))
	first, err := s.Get(key)
	require.NoError(t, err)

	res := sample()
	res.Tour = []int{0, 3, 2, 1}
	require.NoError(t, s.Put(key, store.NewRecord("exact", res)))

	second, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []int{0, 3, 2, 1}, second.Tour)
}

func TestStore_ReplaceKeepsCreatedAt(t *testing.T) {
	s := open(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now := created
	store.SetClock(s, func() time.Time { return now })

	require.NoError(t, s.Put("k", store.NewRecord("approx", sample())))
	now = created.Add(time.Hour)
	require.NoError(t, s.Put("k", store.NewRecord("exact", sample())))

	rec, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "exact", rec.Solver)
	assert.Equal(t, created.Unix(), rec.CreatedAt)
	assert.Equal(t, now.Unix(), rec.UsedAt)
}

func TestStore_NotFound(t *testing.T) {
	_, err := open(t).Get("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_Prune(t *testing.T) {
	s := open(t)
	require.NoError(t, s.Put("a", store.NewRecord("approx", sample())))
	require.NoError(t, s.Put("b", store.NewRecord("approx", sample())))

	n, err := s.Prune(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.Prune(time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = s.Get("a")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	s, err := store.Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Put("k", store.NewRecord("approx", sample())))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second close is a no-op")

	s, err = store.Open(path, nil)
	require.NoError(t, err)
	defer s.Close()
	rec, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, rec.Tour)
}
