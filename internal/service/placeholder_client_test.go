package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchPosts(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Post{
			{UserID: 1, ID: 1, Title: "first", Body: "a"},
			{UserID: 1, ID: 2, Title: "second", Body: "b"},
		})
	}))
	defer upstream.Close()

	client := NewPlaceholderClient(upstream.URL, 2*time.Second, zap.NewNop())

	posts, err := client.FetchPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].Title)
	assert.Equal(t, 2, posts[1].ID)
}

func TestFetchPosts_ErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer upstream.Close()

	client := NewPlaceholderClient(upstream.URL, 2*time.Second, zap.NewNop())

	_, err := client.FetchPosts(context.Background())
	assert.Error(t, err)
}
