// Package provider is the Go-side client for the out-of-process provider
// bridge: chat completion, speech-to-text, and audio capture all cross one
// gRPC connection. The bridge holds no secrets; the decrypted API key rides
// on every call.
package provider

import (
	"context"
	"time"
)

// ModelSpec identifies the provider model a call runs against. APIKey is the
// decrypted key for this call only.
type ModelSpec struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// Message is one entry of a tool-aware conversation.
type Message struct {
	Role       string // "user", "assistant", "tool"
	Content    string
	ToolCalls  []ToolCall // assistant messages
	ToolCallID string     // tool result messages
	ToolName   string     // tool result messages
}

// ToolDefinition describes a tool offered to the model.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// ToolCall is a model-emitted structured invocation.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON
}

// ChatResult is the collected outcome of one model round.
type ChatResult struct {
	Content   string
	ToolCalls []ToolCall
}

// Chunk is the tagged union of streaming chat events. The stream carries
// TextChunk deltas, then exactly one DoneChunk (or ErrorChunk) before close.
type Chunk interface {
	chunkType() string
}

// TextChunk is one text delta.
type TextChunk struct{ Content string }

// ToolCallChunk signals one complete tool call.
type ToolCallChunk struct{ Call ToolCall }

// DoneChunk terminates a successful stream with the full assistant text.
type DoneChunk struct{ Content string }

// ErrorChunk terminates a failed stream.
type ErrorChunk struct{ Err error }

func (TextChunk) chunkType() string     { return "text" }
func (ToolCallChunk) chunkType() string { return "tool_call" }
func (DoneChunk) chunkType() string     { return "done" }
func (ErrorChunk) chunkType() string    { return "error" }

// ChatClient sends conversations to the provider bridge.
type ChatClient interface {
	// ChatCompletion performs a plain text completion.
	ChatCompletion(ctx context.Context, model ModelSpec, systemPrompt string, messages []Message) (string, error)

	// ChatCompletionWithTools performs one tool-aware round and returns the
	// collected result.
	ChatCompletionWithTools(ctx context.Context, model ModelSpec, systemPrompt string, messages []Message, tools []ToolDefinition) (*ChatResult, error)

	// StreamChatCompletionWithTools returns a channel of chunks. The channel
	// closes after the terminal DoneChunk or ErrorChunk.
	StreamChatCompletionWithTools(ctx context.Context, model ModelSpec, systemPrompt string, messages []Message, tools []ToolDefinition) (<-chan Chunk, error)
}

// Transcription is the bridge's recognition result for one WAV chunk.
type Transcription struct {
	Text     string
	Duration time.Duration
	Segments []TranscriptionSpan
}

// TranscriptionSpan is one recognized span within a chunk. Times are offsets
// within the chunk in seconds.
type TranscriptionSpan struct {
	Text         string
	StartSeconds float64
	EndSeconds   float64
	Confidence   *float64
}

// SpeechClient recognizes audio through the provider bridge.
type SpeechClient interface {
	Transcribe(ctx context.Context, model ModelSpec, wav []byte, language string) (*Transcription, error)
}

// AudioDevice is one capture device on the bridge host.
type AudioDevice struct {
	ID   string
	Name string
}

// ChunkFunc receives one captured WAV chunk. The capture driver invokes it
// sequentially; a returned error aborts the capture.
type ChunkFunc func(wav []byte, index int) error

// AudioCapture drives chunked audio capture through the bridge.
type AudioCapture interface {
	ListDevices(ctx context.Context) ([]AudioDevice, error)

	// Capture streams fixed-duration chunks from the device to onChunk until
	// the context is cancelled or the input ends. Blocks for the capture's
	// lifetime.
	Capture(ctx context.Context, deviceID string, chunkDuration time.Duration, onChunk ChunkFunc) error
}
