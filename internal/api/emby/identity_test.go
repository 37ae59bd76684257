package emby

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUserIDMemoizes(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emby/Users", r.URL.Path)
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"Id":"u1","Name":"admin"},{"Id":"u2","Name":"guest"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")

	id, ok := client.resolveUserID(context.Background())
	require.True(t, ok)
	assert.Equal(t, "u1", id)

	id, ok = client.resolveUserID(context.Background())
	require.True(t, ok)
	assert.Equal(t, "u1", id)

	assert.Equal(t, int32(1), calls.Load())
}

func TestResolveUserIDNeverCachesFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"Id":"u1","Name":"admin"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")

	_, ok := client.resolveUserID(context.Background())
	assert.False(t, ok)
	_, ok = client.resolveUserID(context.Background())
	assert.False(t, ok)

	id, ok := client.resolveUserID(context.Background())
	require.True(t, ok)
	assert.Equal(t, "u1", id)

	// Success is memoized from here on.
	_, _ = client.resolveUserID(context.Background())
	assert.Equal(t, int32(3), calls.Load())
}

func TestResolveUserIDEmptyListIsAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, ok := client.resolveUserID(context.Background())
	assert.False(t, ok)
}

func TestResolveUserIDConcurrentFirstResolution(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"Id":"u1","Name":"admin"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, ok := client.resolveUserID(context.Background())
			assert.True(t, ok)
			assert.Equal(t, "u1", id)
		}()
	}
	wg.Wait()
}
