package services

import (
	"context"
	"strings"

	"github.com/mentorhub/apiserver/internal/events"
	"github.com/mentorhub/apiserver/types"
)

// The feed returns at most this many posts.
const defaultFeedLimit = 50

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	ListModerated(ctx context.Context, limit int) ([]types.Post, error)
	Create(ctx context.Context, post types.Post) (types.Post, error)
}

// PostService encapsulates feed use-cases.
type PostService struct {
	repo PostRepository
	bus  *events.Bus
}

func NewPostService(repo PostRepository, bus *events.Bus) *PostService {
	return &PostService{repo: repo, bus: bus}
}

// List returns the globally visible feed, newest first.
func (s *PostService) List(ctx context.Context) ([]types.Post, error) {
	return s.repo.ListModerated(ctx, defaultFeedLimit)
}

// Create stores a post. Posts are auto-approved: IsModerated is always
// true at creation and nothing flips it later.
func (s *PostService) Create(ctx context.Context, userID int, content string) (types.Post, error) {
	content = strings.TrimSpace(content)
	if userID < 1 || content == "" {
		return types.Post{}, invalid("user id and content are required")
	}

	post, err := s.repo.Create(ctx, types.Post{
		UserID:      userID,
		Content:     content,
		IsModerated: true,
	})
	if err != nil {
		return types.Post{}, err
	}

	publishEvent(ctx, s.bus, events.ChannelPosts, events.KindPostCreated, post)
	return post, nil
}
