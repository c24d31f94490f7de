package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/channel"
	"github.com/codeready-toolchain/warden/ent/chatmessage"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/google/uuid"
)

// ChannelService manages channels, their contexts, and persisted chat history.
type ChannelService struct {
	client *ent.Client
}

// NewChannelService creates a new ChannelService
func NewChannelService(client *ent.Client) *ChannelService {
	return &ChannelService{client: client}
}

// CreateChannel creates a channel.
func (s *ChannelService) CreateChannel(httpCtx context.Context, req models.CreateChannelRequest) (*ent.Channel, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Channel.Create().
		SetID(uuid.New().String()).
		SetName(req.Name)
	if req.DefaultAgentID != "" {
		builder.SetDefaultAgentID(req.DefaultAgentID)
	}
	if req.ContextID != "" {
		builder.SetContextID(req.ContextID)
	}
	if len(req.AllowedAgentIDs) > 0 {
		builder.AddAllowedAgentIDs(req.AllowedAgentIDs...)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("channel references a missing agent or context: %w", ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	return created, nil
}

// GetChannel retrieves a channel by ID with optional edge loading.
func (s *ChannelService) GetChannel(ctx context.Context, channelID string, withEdges bool) (*ent.Channel, error) {
	query := s.client.Channel.Query().Where(channel.IDEQ(channelID))
	if withEdges {
		query = query.WithDefaultAgent().WithAllowedAgents().WithContext()
	}

	ch, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return ch, nil
}

// CreateContext creates a channel context.
func (s *ChannelService) CreateContext(httpCtx context.Context, name string) (*ent.ChannelContext, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.ChannelContext.Create().
		SetID(uuid.New().String()).
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}
	return created, nil
}

// ResolveAgent picks the agent a chat message addresses: the explicit
// override when given (validated against the allowed list if one is
// configured), otherwise the channel's default agent.
func (s *ChannelService) ResolveAgent(ctx context.Context, channelID, overrideAgentID string) (*ent.Agent, error) {
	ch, err := s.GetChannel(ctx, channelID, true)
	if err != nil {
		return nil, err
	}

	if overrideAgentID != "" {
		if len(ch.Edges.AllowedAgents) > 0 {
			allowed := false
			for _, a := range ch.Edges.AllowedAgents {
				if a.ID == overrideAgentID {
					allowed = true
					break
				}
			}
			if !allowed {
				return nil, NewValidationError("agent_id", "agent not allowed on this channel")
			}
		}
		a, err := s.client.Agent.Get(ctx, overrideAgentID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get agent: %w", err)
		}
		return a, nil
	}

	if ch.Edges.DefaultAgent == nil {
		return nil, NewValidationError("agent_id", "channel has no default agent")
	}
	return ch.Edges.DefaultAgent, nil
}

// ChatHistory returns the most recent messages of a channel in
// chronological order.
func (s *ChannelService) ChatHistory(ctx context.Context, channelID string, limit int) ([]*ent.ChatMessage, error) {
	if limit <= 0 {
		limit = 50 // Default
	}

	msgs, err := s.client.ChatMessage.Query().
		Where(chatmessage.ChannelIDEQ(channelID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	// Reverse newest-first into chronological order
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// AppendExchange persists a completed chat turn: the user message and, when
// the loop produced one, the assistant's final response. One transaction so
// history never records half a turn. Returns the assistant message id, empty
// when no assistant content was stored.
func (s *ChannelService) AppendExchange(httpCtx context.Context, channelID, userContent, assistantContent string) (string, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetChannelID(channelID).
		SetRole(chatmessage.RoleUser).
		SetContent(userContent).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to persist user message: %w", err)
	}

	assistantID := ""
	if assistantContent != "" {
		assistantID = uuid.New().String()
		_, err = tx.ChatMessage.Create().
			SetID(assistantID).
			SetChannelID(channelID).
			SetRole(chatmessage.RoleAssistant).
			SetContent(assistantContent).
			Save(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to persist assistant message: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return assistantID, nil
}

// PurgeMessagesBefore deletes chat messages created before the cutoff.
func (s *ChannelService) PurgeMessagesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.ChatMessage.Delete().
		Where(chatmessage.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge chat messages: %w", err)
	}
	return n, nil
}
