package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mentorhub/apiserver/internal/services"
	"github.com/mentorhub/apiserver/types"
)

// PostHandler provides HTTP handlers for the feed.
type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostRouter registers feed routes on the given router.
func PostRouter(r chi.Router, postService *services.PostService) {
	handler := NewPostHandler(postService)

	r.Get("/", handler.ListPosts)
	r.Post("/", handler.CreatePost)
}

// ListPosts returns the globally visible feed.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to list posts")
		return
	}

	writeJSON(w, http.StatusOK, PostListResponse{Posts: posts})
}

// CreatePost stores an auto-approved feed post.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	post, err := h.postService.Create(r.Context(), req.UserID, req.Content)
	if err != nil {
		writeServiceError(w, err, "failed to create post")
		return
	}

	writeJSON(w, http.StatusCreated, PostResponse{Post: post})
}

type CreatePostRequest struct {
	UserID  int    `json:"userId"`
	Content string `json:"content"`
}

// PostListResponse is the feed listing envelope.
type PostListResponse struct {
	Posts []types.Post `json:"posts"`
}

// PostResponse is the single-post envelope.
type PostResponse struct {
	Post types.Post `json:"post"`
}
