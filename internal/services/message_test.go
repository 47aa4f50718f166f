package services

import (
	"context"
	"testing"
	"time"

	"github.com/mentorhub/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	inboxUser      *int
	broadcastCalls int
	limit          int
	created        []types.Message
}

func (r *fakeMessageRepo) ListForUser(_ context.Context, userID, limit int) ([]types.Message, error) {
	r.inboxUser = &userID
	r.limit = limit
	return nil, nil
}

func (r *fakeMessageRepo) ListBroadcast(_ context.Context, limit int) ([]types.Message, error) {
	r.broadcastCalls++
	r.limit = limit
	return nil, nil
}

func (r *fakeMessageRepo) Create(_ context.Context, message types.Message) (types.Message, error) {
	message.ID = len(r.created) + 1
	message.CreatedAt = time.Now()
	message.FromUserName = "Anna"
	r.created = append(r.created, message)
	return message, nil
}

func TestMessageListScopedUsesInbox(t *testing.T) {
	repo := &fakeMessageRepo{}
	service := NewMessageService(repo, nil)

	userID := 9
	_, err := service.List(context.Background(), &userID)
	require.NoError(t, err)

	require.NotNil(t, repo.inboxUser)
	assert.Equal(t, 9, *repo.inboxUser)
	assert.Equal(t, 100, repo.limit)
	assert.Zero(t, repo.broadcastCalls)
}

func TestMessageListUnscopedReturnsBroadcastsOnly(t *testing.T) {
	repo := &fakeMessageRepo{}
	service := NewMessageService(repo, nil)

	_, err := service.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.broadcastCalls)
	assert.Equal(t, 100, repo.limit)
}

func TestSendRequiresSenderAndContent(t *testing.T) {
	service := NewMessageService(&fakeMessageRepo{}, nil)

	var validationErr *ValidationError

	_, err := service.Send(context.Background(), SendMessageParams{Content: "hi"})
	require.ErrorAs(t, err, &validationErr)

	_, err = service.Send(context.Background(), SendMessageParams{FromUserID: 3, Content: "   "})
	require.ErrorAs(t, err, &validationErr)
}

func TestSendWithoutRecipientIsBroadcast(t *testing.T) {
	repo := &fakeMessageRepo{}
	service := NewMessageService(repo, nil)

	message, err := service.Send(context.Background(), SendMessageParams{
		FromUserID: 3,
		Content:    "hello everyone",
	})
	require.NoError(t, err)

	assert.True(t, message.IsBroadcast())
	assert.Equal(t, "Anna", message.FromUserName)
}

func TestSendKeepsRecipientWithoutExistenceCheck(t *testing.T) {
	repo := &fakeMessageRepo{}
	service := NewMessageService(repo, nil)

	recipient := 404
	message, err := service.Send(context.Background(), SendMessageParams{
		FromUserID: 3,
		ToUserID:   &recipient,
		Content:    "hi",
	})
	require.NoError(t, err)

	require.NotNil(t, message.ToUserID)
	assert.Equal(t, 404, *message.ToUserID)
}
