package services

import (
	"context"
	"testing"
	"time"

	"github.com/mentorhub/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroupRepo struct {
	scopedUser  *int
	recentLimit int
	created     []types.Group
}

func (r *fakeGroupRepo) ListForUser(_ context.Context, userID int) ([]types.Group, error) {
	r.scopedUser = &userID
	return nil, nil
}

func (r *fakeGroupRepo) ListRecent(_ context.Context, limit int) ([]types.Group, error) {
	r.recentLimit = limit
	return nil, nil
}

func (r *fakeGroupRepo) Create(_ context.Context, group types.Group) (types.Group, error) {
	group.ID = len(r.created) + 1
	group.CreatedAt = time.Now()
	group.MemberCount = 1
	r.created = append(r.created, group)
	return group, nil
}

func TestGroupListScopesToUserWhenSupplied(t *testing.T) {
	repo := &fakeGroupRepo{}
	service := NewGroupService(repo, nil)

	userID := 7
	_, err := service.List(context.Background(), &userID)
	require.NoError(t, err)

	require.NotNil(t, repo.scopedUser)
	assert.Equal(t, 7, *repo.scopedUser)
	assert.Zero(t, repo.recentLimit)
}

func TestGroupListUnscopedUsesRecentCap(t *testing.T) {
	repo := &fakeGroupRepo{}
	service := NewGroupService(repo, nil)

	_, err := service.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 50, repo.recentLimit)
	assert.Nil(t, repo.scopedUser)
}

func TestGroupCreateRequiresNameAndUser(t *testing.T) {
	service := NewGroupService(&fakeGroupRepo{}, nil)

	var validationErr *ValidationError

	_, err := service.Create(context.Background(), CreateGroupParams{Name: "", UserID: 7})
	require.ErrorAs(t, err, &validationErr)

	_, err = service.Create(context.Background(), CreateGroupParams{Name: "Reading Club"})
	require.ErrorAs(t, err, &validationErr)
}

func TestGroupCreateReturnsSingleMemberGroup(t *testing.T) {
	repo := &fakeGroupRepo{}
	service := NewGroupService(repo, nil)

	group, err := service.Create(context.Background(), CreateGroupParams{
		Name:   "Reading Club",
		UserID: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, "Reading Club", group.Name)
	assert.Equal(t, 7, group.CreatedBy)
	assert.Equal(t, 1, group.MemberCount)
}
