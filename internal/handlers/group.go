package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mentorhub/apiserver/internal/services"
	"github.com/mentorhub/apiserver/types"
)

// GroupHandler provides HTTP handlers for groups.
type GroupHandler struct {
	groupService *services.GroupService
}

func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// GroupRouter registers group routes on the given router.
func GroupRouter(r chi.Router, groupService *services.GroupService) {
	handler := NewGroupHandler(groupService)

	r.Get("/", handler.ListGroups)
	r.Post("/", handler.CreateGroup)
}

// ListGroups returns groups scoped to the userId query parameter, or the
// most recent groups system-wide when it is absent.
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	userID, err := optionalUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	groups, err := h.groupService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "failed to list groups")
		return
	}

	writeJSON(w, http.StatusOK, GroupListResponse{Groups: groups})
}

// CreateGroup inserts a group with the caller as its first member.
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	group, err := h.groupService.Create(r.Context(), services.CreateGroupParams{
		Name:        req.Name,
		Description: req.Description,
		UserID:      req.UserID,
	})
	if err != nil {
		writeServiceError(w, err, "failed to create group")
		return
	}

	writeJSON(w, http.StatusCreated, GroupResponse{Group: group})
}

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      int    `json:"userId"`
}

// GroupListResponse is the group listing envelope.
type GroupListResponse struct {
	Groups []types.Group `json:"groups"`
}

// GroupResponse is the single-group envelope.
type GroupResponse struct {
	Group types.Group `json:"group"`
}
