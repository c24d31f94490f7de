package provider

import (
	"context"
	"fmt"
	"io"
	"time"

	providerv1 "github.com/codeready-toolchain/warden/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient implements ChatClient, SpeechClient, and AudioCapture over one
// connection to the provider bridge.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client providerv1.ProviderServiceClient
	retry  RetryPolicy
}

// NewGRPCClient connects to the provider bridge. Dialing is lazy; the actual
// connection is established on the first RPC. A zero retry policy selects
// the default.
func NewGRPCClient(addr string, retry RetryPolicy) (*GRPCClient, error) {
	if retry.MaxRetries <= 0 || retry.BaseBackoff <= 0 {
		retry = DefaultRetryPolicy
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to provider bridge at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: providerv1.NewProviderServiceClient(conn),
		retry:  retry,
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// ChatCompletion performs a plain text completion.
func (c *GRPCClient) ChatCompletion(ctx context.Context, model ModelSpec, systemPrompt string, messages []Message) (string, error) {
	result, err := c.ChatCompletionWithTools(ctx, model, systemPrompt, messages, nil)
	if err != nil {
		return "", err
	}
	return result.Content, nil
}

// ChatCompletionWithTools drains a Chat stream into a collected result,
// applying the transient-error retry policy to the whole round.
func (c *GRPCClient) ChatCompletionWithTools(ctx context.Context, model ModelSpec, systemPrompt string, messages []Message, tools []ToolDefinition) (*ChatResult, error) {
	return withRetry(ctx, c.retry, func(ctx context.Context) (*ChatResult, error) {
		stream, err := c.openChat(ctx, model, systemPrompt, messages, tools)
		if err != nil {
			return nil, err
		}
		return collectChat(stream)
	})
}

// StreamChatCompletionWithTools returns a channel of chunks. Deltas are
// forwarded as they arrive; the channel closes after the terminal chunk.
// Streams are not retried: deltas may already have reached the consumer.
func (c *GRPCClient) StreamChatCompletionWithTools(ctx context.Context, model ModelSpec, systemPrompt string, messages []Message, tools []ToolDefinition) (<-chan Chunk, error) {
	stream, err := c.openChat(ctx, model, systemPrompt, messages, tools)
	if err != nil {
		return nil, err
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- ErrorChunk{Err: fmt.Errorf("chat stream failed: %w", err)}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoChat(resp)
			if chunk == nil {
				continue
			}
			select {
			case ch <- chunk:
			case <-ctx.Done():
				return
			}
			if isTerminal(chunk) {
				return
			}
		}
	}()

	return ch, nil
}

// Transcribe recognizes one WAV chunk under the retry policy.
func (c *GRPCClient) Transcribe(ctx context.Context, model ModelSpec, wav []byte, language string) (*Transcription, error) {
	return withRetry(ctx, c.retry, func(ctx context.Context) (*Transcription, error) {
		resp, err := c.client.Transcribe(ctx, &providerv1.TranscribeRequest{
			Model:    model.Model,
			Provider: model.Provider,
			ApiKey:   model.APIKey,
			Wav:      wav,
			Language: language,
		})
		if err != nil {
			return nil, fmt.Errorf("transcribe call failed: %w", err)
		}

		out := &Transcription{
			Text:     resp.Text,
			Duration: time.Duration(resp.DurationSeconds * float64(time.Second)),
		}
		for _, s := range resp.Segments {
			span := TranscriptionSpan{
				Text:         s.Text,
				StartSeconds: s.StartSeconds,
				EndSeconds:   s.EndSeconds,
			}
			if s.Confidence != nil {
				conf := *s.Confidence
				span.Confidence = &conf
			}
			out.Segments = append(out.Segments, span)
		}
		return out, nil
	})
}

// ListDevices enumerates capture devices on the bridge host.
func (c *GRPCClient) ListDevices(ctx context.Context) ([]AudioDevice, error) {
	resp, err := c.client.ListAudioDevices(ctx, &providerv1.ListAudioDevicesRequest{})
	if err != nil {
		return nil, fmt.Errorf("list audio devices failed: %w", err)
	}
	devices := make([]AudioDevice, 0, len(resp.Devices))
	for _, d := range resp.Devices {
		devices = append(devices, AudioDevice{ID: d.Id, Name: d.Name})
	}
	return devices, nil
}

// Capture streams chunks from the bridge to onChunk. The server-streaming
// Recv loop is a single goroutine, so the sequential-callback contract holds
// by construction.
func (c *GRPCClient) Capture(ctx context.Context, deviceID string, chunkDuration time.Duration, onChunk ChunkFunc) error {
	stream, err := c.client.CaptureAudio(ctx, &providerv1.CaptureAudioRequest{
		DeviceId:     deviceID,
		ChunkSeconds: chunkDuration.Seconds(),
	})
	if err != nil {
		return fmt.Errorf("capture audio call failed: %w", err)
	}

	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("capture stream failed: %w", err)
		}
		if err := onChunk(chunk.Wav, int(chunk.Index)); err != nil {
			return err
		}
	}
}

func (c *GRPCClient) openChat(ctx context.Context, model ModelSpec, systemPrompt string, messages []Message, tools []ToolDefinition) (providerv1.ProviderService_ChatClient, error) {
	req := &providerv1.ChatRequest{
		Model:        model.Model,
		Provider:     model.Provider,
		ApiKey:       model.APIKey,
		BaseUrl:      model.BaseURL,
		SystemPrompt: systemPrompt,
		Messages:     toProtoMessages(messages),
		Tools:        toProtoTools(tools),
	}
	stream, err := c.client.Chat(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chat call failed: %w", err)
	}
	return stream, nil
}

// collectChat drains a chat stream into a ChatResult.
func collectChat(stream providerv1.ProviderService_ChatClient) (*ChatResult, error) {
	result := &ChatResult{}
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return nil, fmt.Errorf("chat stream failed: %w", err)
		}
		switch chunk := fromProtoChat(resp).(type) {
		case nil:
		case TextChunk:
			// Deltas are subsumed by DoneChunk content in collected mode.
		case ToolCallChunk:
			result.ToolCalls = append(result.ToolCalls, chunk.Call)
		case DoneChunk:
			result.Content = chunk.Content
			return result, nil
		case ErrorChunk:
			return nil, chunk.Err
		}
	}
}

func isTerminal(chunk Chunk) bool {
	switch chunk.(type) {
	case DoneChunk, ErrorChunk:
		return true
	}
	return false
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func toProtoMessages(msgs []Message) []*providerv1.ChatMessage {
	out := make([]*providerv1.ChatMessage, len(msgs))
	for i, m := range msgs {
		pm := &providerv1.ChatMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallId: m.ToolCallID,
			ToolName:   m.ToolName,
		}
		for _, tc := range m.ToolCalls {
			pm.ToolCalls = append(pm.ToolCalls, &providerv1.ToolCall{
				Id:        tc.ID,
				Name:      tc.Name,
				Arguments: tc.Arguments,
			})
		}
		out[i] = pm
	}
	return out
}

func toProtoTools(tools []ToolDefinition) []*providerv1.ToolDefinition {
	if len(tools) == 0 {
		return nil
	}
	out := make([]*providerv1.ToolDefinition, len(tools))
	for i, t := range tools {
		out[i] = &providerv1.ToolDefinition{
			Name:             t.Name,
			Description:      t.Description,
			ParametersSchema: t.ParametersSchema,
		}
	}
	return out
}

func fromProtoChat(resp *providerv1.ChatResponse) Chunk {
	switch c := resp.Content.(type) {
	case *providerv1.ChatResponse_Text:
		return TextChunk{Content: c.Text.Content}
	case *providerv1.ChatResponse_ToolCall:
		return ToolCallChunk{Call: ToolCall{
			ID:        c.ToolCall.Id,
			Name:      c.ToolCall.Name,
			Arguments: c.ToolCall.Arguments,
		}}
	case *providerv1.ChatResponse_Done:
		return DoneChunk{Content: c.Done.Content}
	case *providerv1.ChatResponse_Error:
		return ErrorChunk{Err: &ProviderError{
			Message:    c.Error.Message,
			HTTPStatus: int(c.Error.HttpStatus),
			Code:       c.Error.Code,
		}}
	}
	return nil
}

var _ ChatClient = (*GRPCClient)(nil)
var _ SpeechClient = (*GRPCClient)(nil)
var _ AudioCapture = (*GRPCClient)(nil)
