package provider

import (
	"testing"

	providerv1 "github.com/codeready-toolchain/warden/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProtoMessages(t *testing.T) {
	messages := []Message{
		{Role: "user", Content: "run the backup"},
		{Role: "assistant", Content: "on it", ToolCalls: []ToolCall{
			{ID: "tc1", Name: "execute_dangerous_shell", Arguments: `{"script":"echo hi"}`},
		}},
		{Role: "tool", Content: `{"status":"completed"}`, ToolCallID: "tc1", ToolName: "execute_dangerous_shell"},
	}

	result := toProtoMessages(messages)
	require.Len(t, result, 3)

	assert.Equal(t, "user", result[0].Role)
	assert.Equal(t, "run the backup", result[0].Content)

	assert.Equal(t, "assistant", result[1].Role)
	require.Len(t, result[1].ToolCalls, 1)
	assert.Equal(t, "tc1", result[1].ToolCalls[0].Id)
	assert.Equal(t, "execute_dangerous_shell", result[1].ToolCalls[0].Name)

	assert.Equal(t, "tool", result[2].Role)
	assert.Equal(t, "tc1", result[2].ToolCallId)
	assert.Equal(t, "execute_dangerous_shell", result[2].ToolName)
}

func TestFromProtoChat(t *testing.T) {
	t.Run("text delta", func(t *testing.T) {
		chunk := fromProtoChat(&providerv1.ChatResponse{
			Content: &providerv1.ChatResponse_Text{Text: &providerv1.TextDelta{Content: "hel"}},
		})
		require.IsType(t, TextChunk{}, chunk)
		assert.Equal(t, "hel", chunk.(TextChunk).Content)
	})

	t.Run("tool call", func(t *testing.T) {
		chunk := fromProtoChat(&providerv1.ChatResponse{
			Content: &providerv1.ChatResponse_ToolCall{ToolCall: &providerv1.ToolCall{
				Id: "tc9", Name: "access_website", Arguments: `{"resource_id":"r1"}`,
			}},
		})
		require.IsType(t, ToolCallChunk{}, chunk)
		call := chunk.(ToolCallChunk).Call
		assert.Equal(t, "tc9", call.ID)
		assert.Equal(t, "access_website", call.Name)
	})

	t.Run("done", func(t *testing.T) {
		chunk := fromProtoChat(&providerv1.ChatResponse{
			Content: &providerv1.ChatResponse_Done{Done: &providerv1.Done{Content: "final text"}},
		})
		require.IsType(t, DoneChunk{}, chunk)
		assert.Equal(t, "final text", chunk.(DoneChunk).Content)
	})

	t.Run("error carries status and code", func(t *testing.T) {
		chunk := fromProtoChat(&providerv1.ChatResponse{
			Content: &providerv1.ChatResponse_Error{Error: &providerv1.Error{
				Message: "rate limited", HttpStatus: 429, Code: "rate_limit_exceeded",
			}},
		})
		require.IsType(t, ErrorChunk{}, chunk)
		var pe *ProviderError
		require.ErrorAs(t, chunk.(ErrorChunk).Err, &pe)
		assert.Equal(t, 429, pe.HTTPStatus)
		assert.Equal(t, "rate_limit_exceeded", pe.Code)
		assert.True(t, retryable(chunk.(ErrorChunk).Err))
	})

	t.Run("empty response is skipped", func(t *testing.T) {
		assert.Nil(t, fromProtoChat(&providerv1.ChatResponse{}))
	})
}
