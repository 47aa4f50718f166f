package handlers_test

import (
	"context"
	"time"

	"github.com/mentorhub/apiserver/internal/store"
	"github.com/mentorhub/apiserver/types"
)

type fakeUserRepo struct {
	byID   map[int]types.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[int]types.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (types.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByPhone(_ context.Context, phone string) (types.User, error) {
	for _, user := range r.byID {
		if user.Phone == phone {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	for _, existing := range r.byID {
		if existing.Phone == user.Phone {
			return types.User{}, store.ErrDuplicate
		}
	}
	r.nextID++
	user.ID = r.nextID
	now := time.Now()
	user.RegisteredAt = now
	user.UpdatedAt = now
	r.byID[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id int, update types.ProfileUpdate) (types.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Position != nil {
		user.Position = *update.Position
	}
	if update.Email != nil {
		user.Email = update.Email
	}
	if update.BirthDate != nil {
		user.BirthDate = update.BirthDate
	}
	if update.Bio != nil {
		user.Bio = update.Bio
	}
	user.UpdatedAt = time.Now()
	r.byID[id] = user
	return user, nil
}

func (r *fakeUserRepo) SetAvatarURL(_ context.Context, id int, avatarURL string) error {
	user, ok := r.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	user.AvatarURL = &avatarURL
	r.byID[id] = user
	return nil
}

type fakeGroupRepo struct {
	groups  []types.Group
	members map[int][]int
	nextID  int
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{members: make(map[int][]int)}
}

func (r *fakeGroupRepo) ListForUser(_ context.Context, userID int) ([]types.Group, error) {
	visible := make([]types.Group, 0)
	for _, group := range r.groups {
		if group.CreatedBy == userID {
			visible = append(visible, r.withCount(group))
			continue
		}
		for _, member := range r.members[group.ID] {
			if member == userID {
				visible = append(visible, r.withCount(group))
				break
			}
		}
	}
	return visible, nil
}

func (r *fakeGroupRepo) ListRecent(_ context.Context, limit int) ([]types.Group, error) {
	recent := make([]types.Group, 0, len(r.groups))
	for _, group := range r.groups {
		recent = append(recent, r.withCount(group))
		if len(recent) == limit {
			break
		}
	}
	return recent, nil
}

func (r *fakeGroupRepo) Create(_ context.Context, group types.Group) (types.Group, error) {
	r.nextID++
	group.ID = r.nextID
	group.CreatedAt = time.Now()
	r.groups = append(r.groups, group)
	r.members[group.ID] = []int{group.CreatedBy}
	group.MemberCount = 1
	return group, nil
}

func (r *fakeGroupRepo) withCount(group types.Group) types.Group {
	group.MemberCount = len(r.members[group.ID])
	return group
}

type fakeMessageRepo struct {
	messages []types.Message
	nextID   int
}

func (r *fakeMessageRepo) ListForUser(_ context.Context, userID, limit int) ([]types.Message, error) {
	inbox := make([]types.Message, 0)
	for i := len(r.messages) - 1; i >= 0 && len(inbox) < limit; i-- {
		message := r.messages[i]
		if message.FromUserID == userID || message.ToUserID == nil ||
			(message.ToUserID != nil && *message.ToUserID == userID) {
			inbox = append(inbox, message)
		}
	}
	return inbox, nil
}

func (r *fakeMessageRepo) ListBroadcast(_ context.Context, limit int) ([]types.Message, error) {
	broadcasts := make([]types.Message, 0)
	for i := len(r.messages) - 1; i >= 0 && len(broadcasts) < limit; i-- {
		if r.messages[i].ToUserID == nil {
			broadcasts = append(broadcasts, r.messages[i])
		}
	}
	return broadcasts, nil
}

func (r *fakeMessageRepo) Create(_ context.Context, message types.Message) (types.Message, error) {
	r.nextID++
	message.ID = r.nextID
	message.CreatedAt = time.Now()
	message.FromUserName = "Anna"
	r.messages = append(r.messages, message)
	return message, nil
}

type fakePostRepo struct {
	posts  []types.Post
	nextID int
}

func (r *fakePostRepo) ListModerated(_ context.Context, limit int) ([]types.Post, error) {
	visible := make([]types.Post, 0)
	for i := len(r.posts) - 1; i >= 0 && len(visible) < limit; i-- {
		if r.posts[i].IsModerated {
			visible = append(visible, r.posts[i])
		}
	}
	return visible, nil
}

func (r *fakePostRepo) Create(_ context.Context, post types.Post) (types.Post, error) {
	r.nextID++
	post.ID = r.nextID
	post.CreatedAt = time.Now()
	post.UserName = "Anna"
	post.UserPosition = "Mentor"
	r.posts = append(r.posts, post)
	return post, nil
}
