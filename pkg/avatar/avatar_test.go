package avatar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Jane Roe", "JR"},
		{"jane", "J"},
		{"Jane Alice Roe", "JA"},
		{"  ", "?"},
		{"", "?"},
		{"(Jane) Roe", "JR"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Initials(tt.name), "name %q", tt.name)
	}
}

func TestPlaceholder_Deterministic(t *testing.T) {
	t.Parallel()

	first := Placeholder("Jane Roe")
	second := Placeholder("Jane Roe")
	assert.Equal(t, first, second)
	assert.Contains(t, string(first), ">JR<")
	assert.Contains(t, string(first), "<svg")
}

func TestGet_FetchesAndCaches(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("image-bytes"))
	}))
	t.Cleanup(srv.Close)

	c := New(Options{CacheSize: 4, RequestsPerSec: 100})
	ctx := context.Background()

	first, err := c.Get(ctx, srv.URL+"/a.jpg", "Jane Roe")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), first)

	second, err := c.Get(ctx, srv.URL+"/a.jpg", "Jane Roe")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, 1, c.CacheLen())
}

func TestGet_FallsBackToPlaceholder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	c := New(Options{CacheSize: 4, RequestsPerSec: 100})

	data, err := c.Get(context.Background(), srv.URL+"/missing.jpg", "Jane Roe")
	require.NoError(t, err)
	assert.Equal(t, Placeholder("Jane Roe"), data)
	// Failures are not cached.
	assert.Equal(t, 0, c.CacheLen())
}

func TestGet_EmptyURL(t *testing.T) {
	t.Parallel()

	c := New(Options{})
	data, err := c.Get(context.Background(), "", "Jane Roe")
	require.NoError(t, err)
	assert.Equal(t, Placeholder("Jane Roe"), data)
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	c := newLRU(2)
	c.put("a", []byte("1"))
	c.put("b", []byte("2"))

	// Touch a so b becomes the eviction candidate.
	_, ok := c.get("a")
	require.True(t, ok)

	c.put("c", []byte("3"))
	assert.Equal(t, 2, c.len())

	_, ok = c.get("b")
	assert.False(t, ok)
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
}
