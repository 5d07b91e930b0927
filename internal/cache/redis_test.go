package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// withMiniredis swaps the package client for a miniredis-backed one and
// restores the previous client when the test ends.
func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := GetClient()
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() {
		_ = Close()
		SetClient(prev)
	})
	return mr
}

func TestGetSetJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		withMiniredis(t)

		doc := cachedDoc{Name: "widget", Count: 3}
		require.NoError(t, SetJSON(ctx, "doc:1", doc, time.Minute))

		var got cachedDoc
		found, err := GetJSON(ctx, "doc:1", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, doc, got)
	})

	t.Run("Miss returns found=false", func(t *testing.T) {
		withMiniredis(t)

		var got cachedDoc
		found, err := GetJSON(ctx, "doc:missing", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Entries expire", func(t *testing.T) {
		mr := withMiniredis(t)

		require.NoError(t, SetJSON(ctx, "doc:ttl", cachedDoc{Name: "short-lived"}, time.Second))
		mr.FastForward(2 * time.Second)

		var got cachedDoc
		found, err := GetJSON(ctx, "doc:ttl", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Nil client degrades to no-op", func(t *testing.T) {
		prev := GetClient()
		SetClient(nil)
		t.Cleanup(func() { SetClient(prev) })

		require.NoError(t, SetJSON(ctx, "doc:1", cachedDoc{Name: "widget"}, time.Minute))

		var got cachedDoc
		found, err := GetJSON(ctx, "doc:1", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestAside(t *testing.T) {
	ctx := context.Background()

	t.Run("Miss fetches and populates the cache", func(t *testing.T) {
		withMiniredis(t)

		fetches := 0
		fetch := func(dest *cachedDoc) func() error {
			return func() error {
				fetches++
				*dest = cachedDoc{Name: "fetched", Count: fetches}
				return nil
			}
		}

		var first cachedDoc
		require.NoError(t, Aside(ctx, "aside:1", &first, time.Minute, fetch(&first)))
		assert.Equal(t, 1, fetches)
		assert.Equal(t, "fetched", first.Name)

		// Second read is served from the cache, not the fetcher
		var second cachedDoc
		require.NoError(t, Aside(ctx, "aside:1", &second, time.Minute, fetch(&second)))
		assert.Equal(t, 1, fetches)
		assert.Equal(t, first, second)
	})

	t.Run("Fetch errors propagate", func(t *testing.T) {
		withMiniredis(t)

		var got cachedDoc
		err := Aside(ctx, "aside:err", &got, time.Minute, func() error {
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Nil client always fetches", func(t *testing.T) {
		prev := GetClient()
		SetClient(nil)
		t.Cleanup(func() { SetClient(prev) })

		fetches := 0
		for i := 0; i < 2; i++ {
			var got cachedDoc
			require.NoError(t, Aside(ctx, "aside:nil", &got, time.Minute, func() error {
				fetches++
				got.Name = "fresh"
				return nil
			}))
		}
		assert.Equal(t, 2, fetches)
	})
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes the entry", func(t *testing.T) {
		withMiniredis(t)

		require.NoError(t, SetJSON(ctx, PostKey("abc"), cachedDoc{Name: "post"}, time.Minute))
		InvalidatePost(ctx, "abc")

		var got cachedDoc
		found, err := GetJSON(ctx, PostKey("abc"), &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("User and post keys do not collide", func(t *testing.T) {
		withMiniredis(t)

		require.NoError(t, SetJSON(ctx, UserKey("abc"), cachedDoc{Name: "user"}, time.Minute))
		require.NoError(t, SetJSON(ctx, PostKey("abc"), cachedDoc{Name: "post"}, time.Minute))

		InvalidateUser(ctx, "abc")

		var got cachedDoc
		found, err := GetJSON(ctx, PostKey("abc"), &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "post", got.Name)
	})

	t.Run("Nil client is a no-op", func(t *testing.T) {
		prev := GetClient()
		SetClient(nil)
		t.Cleanup(func() { SetClient(prev) })

		assert.NotPanics(t, func() { Invalidate(ctx, "anything") })
	})
}
