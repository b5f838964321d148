package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"usage-data/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newExternalTestHandler(t *testing.T, upstreamURL string) http.Handler {
	t.Helper()

	logger := zap.NewNop()
	client := service.NewPlaceholderClient(upstreamURL, 2*time.Second, logger)

	router := NewRouter(logger)
	router.RegisterExternalRoutes(NewExternalHandler(client, logger))
	return router
}

func TestGetExternalPosts(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		posts := make([]map[string]any, 0, 8)
		for i := 1; i <= 8; i++ {
			posts = append(posts, map[string]any{
				"userId": 1,
				"id":     i,
				"title":  fmt.Sprintf("post %d", i),
				"body":   "body",
			})
		}
		_ = json.NewEncoder(w).Encode(posts)
	}))
	defer upstream.Close()

	h := newExternalTestHandler(t, upstream.URL)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/external-posts", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Count  int `json:"count"`
		Sample []struct {
			ID    int    `json:"id"`
			Title string `json:"title"`
		} `json:"sample"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 8, payload.Count)
	require.Len(t, payload.Sample, 5)
	assert.Equal(t, 1, payload.Sample[0].ID)
	assert.Equal(t, "post 1", payload.Sample[0].Title)
}

func TestGetExternalPosts_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	h := newExternalTestHandler(t, upstream.URL)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/external-posts", nil))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "upstream", payload["kind"])
}

func TestGetExternalPosts_UpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // connection refused from here on

	h := newExternalTestHandler(t, upstream.URL)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/external-posts", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
