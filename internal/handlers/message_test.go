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

func newMessageRouter(repo *fakeMessageRepo) http.Handler {
	messageService := services.NewMessageService(repo, nil)
	router := chi.NewRouter()
	router.Route("/messages", func(r chi.Router) {
		handlers.MessageRouter(r, messageService)
	})
	return router
}

func TestSendBroadcastVisibleToEveryone(t *testing.T) {
	repo := &fakeMessageRepo{}
	router := newMessageRouter(repo)

	rec := postJSON(t, router, http.MethodPost, "/messages", map[string]any{
		"fromUserId": 3,
		"content":    "hello everyone",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created handlers.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Nil(t, created.Message.ToUserID)
	assert.Equal(t, "Anna", created.Message.FromUserName)

	// Unscoped listing carries broadcasts.
	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	recList := httptest.NewRecorder()
	router.ServeHTTP(recList, req)
	require.Equal(t, http.StatusOK, recList.Code)

	var resp handlers.MessageListResponse
	require.NoError(t, json.Unmarshal(recList.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)

	// So does any scoped inbox.
	req = httptest.NewRequest(http.MethodGet, "/messages?userId=42", nil)
	recScoped := httptest.NewRecorder()
	router.ServeHTTP(recScoped, req)
	require.Equal(t, http.StatusOK, recScoped.Code)

	require.NoError(t, json.Unmarshal(recScoped.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
}

func TestDirectMessageHiddenFromBroadcastListing(t *testing.T) {
	repo := &fakeMessageRepo{}
	router := newMessageRouter(repo)

	rec := postJSON(t, router, http.MethodPost, "/messages", map[string]any{
		"fromUserId": 3,
		"toUserId":   9,
		"content":    "private hello",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp handlers.MessageListResponse

	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	recList := httptest.NewRecorder()
	router.ServeHTTP(recList, req)
	require.NoError(t, json.Unmarshal(recList.Body.Bytes(), &resp))
	assert.Empty(t, resp.Messages)

	for _, participant := range []string{"3", "9"} {
		req = httptest.NewRequest(http.MethodGet, "/messages?userId="+participant, nil)
		recScoped := httptest.NewRecorder()
		router.ServeHTTP(recScoped, req)
		require.NoError(t, json.Unmarshal(recScoped.Body.Bytes(), &resp))
		assert.Len(t, resp.Messages, 1, "participant %s should see the message", participant)
	}
}

func TestSendMessageMissingContent(t *testing.T) {
	router := newMessageRouter(&fakeMessageRepo{})

	rec := postJSON(t, router, http.MethodPost, "/messages", map[string]any{
		"fromUserId": 3,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
