package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mentorhub/apiserver/internal/services"
	"github.com/mentorhub/apiserver/types"
)

// MessageHandler provides HTTP handlers for messaging.
type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// MessageRouter registers messaging routes on the given router.
func MessageRouter(r chi.Router, messageService *services.MessageService) {
	handler := NewMessageHandler(messageService)

	r.Get("/", handler.ListMessages)
	r.Post("/", handler.SendMessage)
}

// ListMessages returns the caller's merged inbox when userId is supplied,
// or broadcasts only when it is absent.
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID, err := optionalUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	messages, err := h.messageService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "failed to list messages")
		return
	}

	writeJSON(w, http.StatusOK, MessageListResponse{Messages: messages})
}

// SendMessage stores a direct or broadcast message.
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	message, err := h.messageService.Send(r.Context(), services.SendMessageParams{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Content:    req.Content,
	})
	if err != nil {
		writeServiceError(w, err, "failed to send message")
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: message})
}

type SendMessageRequest struct {
	FromUserID int    `json:"fromUserId"`
	ToUserID   *int   `json:"toUserId"`
	Content    string `json:"content"`
}

// MessageListResponse is the message listing envelope.
type MessageListResponse struct {
	Messages []types.Message `json:"messages"`
}

// MessageResponse is the single-message envelope.
type MessageResponse struct {
	Message types.Message `json:"message"`
}
