package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instagram-rest/internal/instagram"
)

type stubClient struct {
	instagram.Client
	id int64
}

func (s *stubClient) UserID() int64 { return s.id }

func (s *stubClient) Login(ctx context.Context, username, password string) error { return nil }

func TestRegistry_Create(t *testing.T) {
	t.Run("mints distinct ids", func(t *testing.T) {
		r := NewRegistry()

		seen := make(map[string]bool)
		for i := 0; i < 10; i++ {
			id := r.Create(&stubClient{id: int64(i)})
			assert.False(t, seen[id], "id %s reused", id)
			seen[id] = true
		}
		assert.Equal(t, 10, r.Len())
	})

	t.Run("ids follow the session_N scheme", func(t *testing.T) {
		r := NewRegistry()
		assert.Equal(t, "session_1", r.Create(&stubClient{}))
		assert.Equal(t, "session_2", r.Create(&stubClient{}))
	})

	t.Run("counter does not reuse ids after delete", func(t *testing.T) {
		r := NewRegistry()
		first := r.Create(&stubClient{})
		require.True(t, r.Delete(first))

		second := r.Create(&stubClient{})
		assert.NotEqual(t, first, second)
	})
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	client := &stubClient{id: 7}
	id := r.Create(client)

	got, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, int64(7), got.UserID())

	_, ok = r.Get("session_999")
	assert.False(t, ok)
}

func TestRegistry_Delete(t *testing.T) {
	r := NewRegistry()
	id := r.Create(&stubClient{})

	assert.True(t, r.Delete(id))

	_, ok := r.Get(id)
	assert.False(t, ok, "deleted session must not resolve")

	assert.False(t, r.Delete(id), "second delete reports nothing removed")
}

func TestRegistry_ConcurrentCreate(t *testing.T) {
	r := NewRegistry()

	const n = 64
	ids := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = r.Create(&stubClient{id: int64(i)})
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, id := range ids {
		require.False(t, seen[id], fmt.Sprintf("id %s minted twice", id))
		seen[id] = true
	}
	assert.Equal(t, n, r.Len())
}
