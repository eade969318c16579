package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daylist-io/daylist/internal/models"
	"github.com/daylist-io/daylist/internal/services"
)

func TestMessageServiceCreateDefaultsSender(t *testing.T) {
	db := openServiceDB(t)
	owner := seedUser(t, db)
	conversations, err := services.NewConversationService(db)
	require.NoError(t, err)
	svc, err := services.NewMessageService(db)
	require.NoError(t, err)

	conversation, err := conversations.Create(context.Background(), owner.ID, "Inbox")
	require.NoError(t, err)

	message, err := svc.Create(context.Background(), conversation.ID.String(), owner.ID, services.CreateMessageInput{
		Content: "What's on today?",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SenderUser, message.Sender)

	reply, err := svc.Create(context.Background(), conversation.ID.String(), owner.ID, services.CreateMessageInput{
		Sender:  models.SenderAI,
		Content: "Three tasks and one meeting.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SenderAI, reply.Sender)

	_, err = svc.Create(context.Background(), conversation.ID.String(), owner.ID, services.CreateMessageInput{
		Sender:  "bot",
		Content: "nope",
	})
	assert.ErrorIs(t, err, services.ErrInvalidSender)
}

func TestMessageServiceListOrdersByCreation(t *testing.T) {
	db := openServiceDB(t)
	owner := seedUser(t, db)
	conversations, err := services.NewConversationService(db)
	require.NoError(t, err)
	svc, err := services.NewMessageService(db)
	require.NoError(t, err)

	conversation, err := conversations.Create(context.Background(), owner.ID, "Thread")
	require.NoError(t, err)

	contents := []string{"first", "second", "third"}
	for _, c := range contents {
		_, err := svc.Create(context.Background(), conversation.ID.String(), owner.ID, services.CreateMessageInput{Content: c})
		require.NoError(t, err)
	}

	messages, total, err := svc.ListByConversation(context.Background(), conversation.ID.String(), owner.ID, 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, messages, 3)
	for i, c := range contents {
		assert.Equal(t, c, messages[i].Content)
	}
}

func TestMessageServiceAccessViaConversationOwner(t *testing.T) {
	db := openServiceDB(t)
	owner := seedUser(t, db)
	intruder := seedUser(t, db)
	conversations, err := services.NewConversationService(db)
	require.NoError(t, err)
	svc, err := services.NewMessageService(db)
	require.NoError(t, err)

	conversation, err := conversations.Create(context.Background(), owner.ID, "Mine")
	require.NoError(t, err)
	message, err := svc.Create(context.Background(), conversation.ID.String(), owner.ID, services.CreateMessageInput{Content: "secret"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), conversation.ID.String(), intruder.ID, services.CreateMessageInput{Content: "hi"})
	assert.ErrorIs(t, err, services.ErrConversationNotFound)

	_, _, err = svc.ListByConversation(context.Background(), conversation.ID.String(), intruder.ID, 0, 0)
	assert.ErrorIs(t, err, services.ErrConversationNotFound)

	_, err = svc.Get(context.Background(), message.ID.String(), intruder.ID)
	assert.ErrorIs(t, err, services.ErrMessageNotFound)

	err = svc.Delete(context.Background(), message.ID.String(), intruder.ID)
	assert.ErrorIs(t, err, services.ErrMessageNotFound)
}

func TestMessageServiceUpdate(t *testing.T) {
	db := openServiceDB(t)
	owner := seedUser(t, db)
	intruder := seedUser(t, db)
	conversations, err := services.NewConversationService(db)
	require.NoError(t, err)
	svc, err := services.NewMessageService(db)
	require.NoError(t, err)

	conversation, err := conversations.Create(context.Background(), owner.ID, "Edits")
	require.NoError(t, err)
	message, err := svc.Create(context.Background(), conversation.ID.String(), owner.ID, services.CreateMessageInput{Content: "drfat"})
	require.NoError(t, err)

	content := "draft"
	updated, err := svc.Update(context.Background(), message.ID.String(), owner.ID, &content)
	require.NoError(t, err)
	assert.Equal(t, "draft", updated.Content)
	assert.Equal(t, message.Sender, updated.Sender)

	// A nil content leaves the message untouched.
	same, err := svc.Update(context.Background(), message.ID.String(), owner.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "draft", same.Content)

	_, err = svc.Update(context.Background(), message.ID.String(), intruder.ID, &content)
	assert.ErrorIs(t, err, services.ErrMessageNotFound)
}

func TestMessageServiceDelete(t *testing.T) {
	db := openServiceDB(t)
	owner := seedUser(t, db)
	conversations, err := services.NewConversationService(db)
	require.NoError(t, err)
	svc, err := services.NewMessageService(db)
	require.NoError(t, err)

	conversation, err := conversations.Create(context.Background(), owner.ID, "Cleanup")
	require.NoError(t, err)
	message, err := svc.Create(context.Background(), conversation.ID.String(), owner.ID, services.CreateMessageInput{Content: "bye"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), message.ID.String(), owner.ID))

	_, err = svc.Get(context.Background(), message.ID.String(), owner.ID)
	assert.ErrorIs(t, err, services.ErrMessageNotFound)
}
