package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daylist-io/daylist/internal/models"
	"github.com/daylist-io/daylist/internal/services"
)

func TestConversationServiceCRUD(t *testing.T) {
	db := openServiceDB(t)
	owner := seedUser(t, db)
	svc, err := services.NewConversationService(db)
	require.NoError(t, err)

	conversation, err := svc.Create(context.Background(), owner.ID, "Weekly plan")
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), conversation.ID.String(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekly plan", fetched.Title)

	title := "Weekly planning"
	updated, err := svc.Update(context.Background(), conversation.ID.String(), owner.ID, &title)
	require.NoError(t, err)
	assert.Equal(t, "Weekly planning", updated.Title)

	require.NoError(t, svc.Delete(context.Background(), conversation.ID.String(), owner.ID))

	_, err = svc.Get(context.Background(), conversation.ID.String(), owner.ID)
	assert.ErrorIs(t, err, services.ErrConversationNotFound)
}

func TestConversationServiceOwnerIsolation(t *testing.T) {
	db := openServiceDB(t)
	owner := seedUser(t, db)
	intruder := seedUser(t, db)
	svc, err := services.NewConversationService(db)
	require.NoError(t, err)

	conversation, err := svc.Create(context.Background(), owner.ID, "Private thread")
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), conversation.ID.String(), intruder.ID)
	assert.ErrorIs(t, err, services.ErrConversationNotFound)

	err = svc.Delete(context.Background(), conversation.ID.String(), intruder.ID)
	assert.ErrorIs(t, err, services.ErrConversationNotFound)
}

func TestConversationServiceDeleteCascadesMessages(t *testing.T) {
	db := openServiceDB(t)
	owner := seedUser(t, db)
	svc, err := services.NewConversationService(db)
	require.NoError(t, err)
	messages, err := services.NewMessageService(db)
	require.NoError(t, err)

	conversation, err := svc.Create(context.Background(), owner.ID, "Doomed")
	require.NoError(t, err)
	_, err = messages.Create(context.Background(), conversation.ID.String(), owner.ID, services.CreateMessageInput{Content: "hello"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), conversation.ID.String(), owner.ID))

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Where("conversation_id = ?", conversation.ID).Count(&count).Error)
	assert.Zero(t, count)
}
