package fetchcache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipinhq/chipin-go/pkg/fetchcache"
)

func TestCache_GetSet(t *testing.T) {
	t.Parallel()

	t.Run("miss on empty cache", func(t *testing.T) {
		c := fetchcache.New[string, int](time.Minute)
		_, ok := c.Get("a")
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		c := fetchcache.New[string, int](time.Minute)
		c.Set("a", 1)

		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		c := fetchcache.New[string, int](0)
		c.Set("a", 1)

		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, v)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		c := fetchcache.New[string, int](10 * time.Millisecond)
		c.Set("a", 1)
		time.Sleep(20 * time.Millisecond)

		_, ok := c.Get("a")
		assert.False(t, ok)
	})
}

func TestCache_GetOrFetch(t *testing.T) {
	t.Parallel()

	t.Run("fetches on miss and caches", func(t *testing.T) {
		c := fetchcache.New[string, int](time.Minute)

		var calls atomic.Int32
		fetch := func(context.Context) (int, error) {
			calls.Add(1)
			return 42, nil
		}

		v, err := c.GetOrFetch(context.Background(), "a", fetch)
		require.NoError(t, err)
		assert.Equal(t, 42, v)

		v, err = c.GetOrFetch(context.Background(), "a", fetch)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("fetch error is not cached", func(t *testing.T) {
		c := fetchcache.New[string, int](time.Minute)

		boom := errors.New("boom")
		_, err := c.GetOrFetch(context.Background(), "a", func(context.Context) (int, error) {
			return 0, boom
		})
		require.ErrorIs(t, err, boom)

		v, err := c.GetOrFetch(context.Background(), "a", func(context.Context) (int, error) {
			return 7, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("concurrent callers share one fetch", func(t *testing.T) {
		c := fetchcache.New[string, int](time.Minute)

		var calls atomic.Int32
		release := make(chan struct{})
		fetch := func(context.Context) (int, error) {
			calls.Add(1)
			<-release
			return 42, nil
		}

		const waiters = 5
		var wg sync.WaitGroup
		results := make([]int, waiters)
		for i := range waiters {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				v, err := c.GetOrFetch(context.Background(), "a", fetch)
				require.NoError(t, err)
				results[i] = v
			}(i)
		}

		// Let the goroutines pile up on the in-flight call.
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
		for _, v := range results {
			assert.Equal(t, 42, v)
		}
	})

	t.Run("waiter honors context cancellation", func(t *testing.T) {
		c := fetchcache.New[string, int](time.Minute)

		release := make(chan struct{})
		go func() {
			_, _ = c.GetOrFetch(context.Background(), "a", func(context.Context) (int, error) {
				<-release
				return 1, nil
			})
		}()
		time.Sleep(10 * time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.GetOrFetch(ctx, "a", func(context.Context) (int, error) {
			return 2, nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		close(release)
	})
}

func TestCache_Invalidate(t *testing.T) {
	t.Parallel()

	t.Run("invalidate forces re-fetch", func(t *testing.T) {
		c := fetchcache.New[string, int](time.Minute)
		c.Set("a", 1)
		c.Invalidate("a")

		_, ok := c.Get("a")
		assert.False(t, ok)
	})

	t.Run("invalidate discards in-flight result", func(t *testing.T) {
		c := fetchcache.New[string, int](time.Minute)

		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = c.GetOrFetch(context.Background(), "a", func(context.Context) (int, error) {
				close(started)
				<-release
				return 1, nil
			})
		}()

		<-started
		c.Invalidate("a")
		close(release)
		<-done

		// The superseded fetch must not have repopulated the entry.
		_, ok := c.Get("a")
		assert.False(t, ok)
	})
}

func TestCache_InvalidateMatching(t *testing.T) {
	t.Parallel()

	c := fetchcache.New[string, int](time.Minute)
	c.Set("groups?offset=0&limit=12", 1)
	c.Set("groups?offset=12&limit=12", 2)
	c.Set("groups/7", 3)

	c.InvalidateMatching(func(key string) bool {
		return len(key) > 7 && key[:7] == "groups?"
	})

	_, ok := c.Get("groups?offset=0&limit=12")
	assert.False(t, ok)
	_, ok = c.Get("groups?offset=12&limit=12")
	assert.False(t, ok)

	v, ok := c.Get("groups/7")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestCache_Clear(t *testing.T) {
	t.Parallel()

	t.Run("removes all entries", func(t *testing.T) {
		c := fetchcache.New[string, int](time.Minute)
		c.Set("a", 1)
		c.Set("b", 2)
		c.Clear()

		assert.Equal(t, 0, c.Len())
		_, ok := c.Get("a")
		assert.False(t, ok)
		_, ok = c.Get("b")
		assert.False(t, ok)
	})

	t.Run("clear discards in-flight results", func(t *testing.T) {
		c := fetchcache.New[string, int](time.Minute)

		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = c.GetOrFetch(context.Background(), "me", func(context.Context) (int, error) {
				close(started)
				<-release
				return 1, nil
			})
		}()

		<-started
		c.Clear()
		close(release)
		<-done

		_, ok := c.Get("me")
		assert.False(t, ok)
	})
}
