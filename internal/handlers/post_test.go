package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mentorhub/apiserver/internal/handlers"
	"github.com/mentorhub/apiserver/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostRouter(repo *fakePostRepo) http.Handler {
	postService := services.NewPostService(repo, nil)
	router := chi.NewRouter()
	router.Route("/posts", func(r chi.Router) {
		handlers.PostRouter(r, postService)
	})
	return router
}

func TestCreatePostAutoApprovedAndImmediatelyVisible(t *testing.T) {
	repo := &fakePostRepo{}
	router := newPostRouter(repo)

	rec := postJSON(t, router, http.MethodPost, "/posts", map[string]any{
		"userId":  5,
		"content": "first post",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created handlers.PostResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Post.IsModerated)
	assert.Equal(t, "Anna", created.Post.UserName)
	assert.Equal(t, "Mentor", created.Post.UserPosition)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	recList := httptest.NewRecorder()
	router.ServeHTTP(recList, req)
	require.Equal(t, http.StatusOK, recList.Code)

	var resp handlers.PostListResponse
	require.NoError(t, json.Unmarshal(recList.Body.Bytes(), &resp))
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, created.Post.ID, resp.Posts[0].ID)
}

func TestCreatePostMissingFields(t *testing.T) {
	router := newPostRouter(&fakePostRepo{})

	rec := postJSON(t, router, http.MethodPost, "/posts", map[string]any{
		"content": "no author",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, router, http.MethodPost, "/posts", map[string]any{
		"userId": 5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
