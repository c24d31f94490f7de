package services

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/warden/ent/chatmessage"
	"github.com/codeready-toolchain/warden/pkg/models"
	testdb "github.com/codeready-toolchain/warden/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelService_ResolveAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewChannelService(client.Client)
	ctx := context.Background()

	defaultAgent := createTestAgent(t, client.Client, "")
	allowedAgent := createTestAgent(t, client.Client, "")
	outsider := createTestAgent(t, client.Client, "")

	ch, err := service.CreateChannel(ctx, models.CreateChannelRequest{
		Name:            "ops",
		DefaultAgentID:  defaultAgent.ID,
		AllowedAgentIDs: []string{defaultAgent.ID, allowedAgent.ID},
	})
	require.NoError(t, err)

	t.Run("falls back to the default agent", func(t *testing.T) {
		agent, err := service.ResolveAgent(ctx, ch.ID, "")
		require.NoError(t, err)
		assert.Equal(t, defaultAgent.ID, agent.ID)
	})

	t.Run("honors an allowed override", func(t *testing.T) {
		agent, err := service.ResolveAgent(ctx, ch.ID, allowedAgent.ID)
		require.NoError(t, err)
		assert.Equal(t, allowedAgent.ID, agent.ID)
	})

	t.Run("rejects an override outside the allowed list", func(t *testing.T) {
		_, err := service.ResolveAgent(ctx, ch.ID, outsider.ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("channel without default agent", func(t *testing.T) {
		bare, err := service.CreateChannel(ctx, models.CreateChannelRequest{Name: "bare"})
		require.NoError(t, err)

		_, err = service.ResolveAgent(ctx, bare.ID, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects a channel pointing at a missing agent", func(t *testing.T) {
		_, err := service.CreateChannel(ctx, models.CreateChannelRequest{
			Name:           "broken",
			DefaultAgentID: uuid.New().String(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestChannelService_History(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewChannelService(client.Client)
	ctx := context.Background()

	ch, err := service.CreateChannel(ctx, models.CreateChannelRequest{Name: "general"})
	require.NoError(t, err)

	t.Run("records a full exchange", func(t *testing.T) {
		assistantID, err := service.AppendExchange(ctx, ch.ID, "what is the uptime?", "14 days")
		require.NoError(t, err)
		assert.NotEmpty(t, assistantID)

		msgs, err := service.ChatHistory(ctx, ch.ID, 10)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, chatmessage.RoleUser, msgs[0].Role)
		assert.Equal(t, "what is the uptime?", msgs[0].Content)
		assert.Equal(t, chatmessage.RoleAssistant, msgs[1].Role)
		assert.Equal(t, assistantID, msgs[1].ID)
	})

	t.Run("records a turn without assistant response", func(t *testing.T) {
		time.Sleep(10 * time.Millisecond) // keep created_at ordering unambiguous
		assistantID, err := service.AppendExchange(ctx, ch.ID, "hello?", "")
		require.NoError(t, err)
		assert.Empty(t, assistantID)

		msgs, err := service.ChatHistory(ctx, ch.ID, 10)
		require.NoError(t, err)
		assert.Len(t, msgs, 3)
	})

	t.Run("limit keeps the most recent messages in order", func(t *testing.T) {
		msgs, err := service.ChatHistory(ctx, ch.ID, 2)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "14 days", msgs[0].Content)
		assert.Equal(t, "hello?", msgs[1].Content)
	})
}

func TestChannelService_PurgeMessagesBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewChannelService(client.Client)
	ctx := context.Background()

	ch, err := service.CreateChannel(ctx, models.CreateChannelRequest{Name: "general"})
	require.NoError(t, err)

	// One stale message past the retention window, one fresh
	_, err = client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetChannelID(ch.ID).
		SetRole(chatmessage.RoleUser).
		SetContent("old news").
		SetCreatedAt(time.Now().Add(-120 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = service.AppendExchange(ctx, ch.ID, "fresh", "still here")
	require.NoError(t, err)

	n, err := service.PurgeMessagesBefore(ctx, time.Now().Add(-90*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	msgs, err := service.ChatHistory(ctx, ch.ID, 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}
