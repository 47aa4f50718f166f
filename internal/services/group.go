package services

import (
	"context"
	"strings"

	"github.com/mentorhub/apiserver/internal/events"
	"github.com/mentorhub/apiserver/types"
)

// Unscoped listings return at most this many groups.
const defaultGroupLimit = 50

// GroupRepository defines persistence operations for groups.
type GroupRepository interface {
	ListForUser(ctx context.Context, userID int) ([]types.Group, error)
	ListRecent(ctx context.Context, limit int) ([]types.Group, error)
	Create(ctx context.Context, group types.Group) (types.Group, error)
}

// GroupService encapsulates group use-cases.
type GroupService struct {
	repo GroupRepository
	bus  *events.Bus
}

func NewGroupService(repo GroupRepository, bus *events.Bus) *GroupService {
	return &GroupService{repo: repo, bus: bus}
}

// List returns groups visible to the given user (created or joined), or
// the most recent groups system-wide when no user is supplied.
func (s *GroupService) List(ctx context.Context, userID *int) ([]types.Group, error) {
	if userID != nil {
		return s.repo.ListForUser(ctx, *userID)
	}
	return s.repo.ListRecent(ctx, defaultGroupLimit)
}

// CreateGroupParams carries the group-creation input.
type CreateGroupParams struct {
	Name        string
	Description string
	UserID      int
}

// Create inserts a group with the creator as its first member.
func (s *GroupService) Create(ctx context.Context, params CreateGroupParams) (types.Group, error) {
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" || params.UserID < 1 {
		return types.Group{}, invalid("name and user id are required")
	}

	group, err := s.repo.Create(ctx, types.Group{
		Name:        params.Name,
		Description: params.Description,
		CreatedBy:   params.UserID,
	})
	if err != nil {
		return types.Group{}, err
	}

	publishEvent(ctx, s.bus, events.ChannelGroups, events.KindGroupCreated, group)
	return group, nil
}
