package httpapi

import (
	"net/http"

	"usage-data/internal/service"

	"go.uber.org/zap"
)

const maxPostSamples = 5

// ExternalHandler proxies the third-party posts API. It shares the process
// with the record store but none of its state.
type ExternalHandler struct {
	posts  *service.PlaceholderClient
	logger *zap.Logger
}

func NewExternalHandler(posts *service.PlaceholderClient, logger *zap.Logger) *ExternalHandler {
	return &ExternalHandler{
		posts:  posts,
		logger: logger,
	}
}

type postSample struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func (h *ExternalHandler) GetExternalPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.FetchPosts(r.Context())
	if err != nil {
		h.logger.Warn("GetExternalPosts upstream failure", zap.Error(err))
		writeError(w, http.StatusBadGateway, "upstream", "failed to fetch external posts")
		return
	}

	sample := make([]postSample, 0, maxPostSamples)
	for _, p := range posts {
		if len(sample) == maxPostSamples {
			break
		}
		sample = append(sample, postSample{ID: p.ID, Title: p.Title})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":  len(posts),
		"sample": sample,
	})
}
