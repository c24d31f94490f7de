// Package transcribe runs live transcription streams: chunked audio capture
// through the provider bridge, speech-to-text per chunk, segment persistence,
// and fan-out to subscribers. The orchestrator owns the terminal transitions
// of transcription-kind jobs.
package transcribe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/joblogentry"
	"github.com/codeready-toolchain/warden/pkg/events"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/provider"
	"github.com/codeready-toolchain/warden/pkg/secrets"
	"github.com/codeready-toolchain/warden/pkg/services"
)

// DefaultChunkDuration is the capture chunk length.
const DefaultChunkDuration = 3 * time.Second

// DefaultQueueSize is the capture-to-consumer buffer per stream.
const DefaultQueueSize = 64

// maxConsecutiveFailures stops the stream: the job fails on the 5th
// consecutive chunk failure. Any success resets the counter.
const maxConsecutiveFailures = 5

// sttCallTimeout bounds one recognition call.
const sttCallTimeout = 30 * time.Second

// JobControl is the job persistence surface the orchestrator drives.
// Implemented by services.JobService.
type JobControl interface {
	CompleteJob(ctx context.Context, jobID, resultData string) (*ent.Job, error)
	FailJob(ctx context.Context, jobID, errorLog string) (*ent.Job, error)
	CancelJob(ctx context.Context, jobID, note string) (*ent.Job, error)
	AppendLog(ctx context.Context, jobID string, severity joblogentry.Severity, message string) error
}

// SegmentSink persists recognized segments. Implemented by
// services.SegmentService.
type SegmentSink interface {
	AddSegments(ctx context.Context, jobID string, inputs []models.SegmentInput) ([]*ent.TranscriptionSegment, error)
}

// ModelSource resolves transcription models. Implemented by
// services.DirectoryService.
type ModelSource interface {
	GetModel(ctx context.Context, modelID string) (*ent.ProviderModel, error)
}

// streamOutcome is the reason a stream finished; first writer wins.
type streamOutcome string

const (
	outcomeStopped   streamOutcome = "stopped"   // Stop: finite input ran its course
	outcomeCancelled streamOutcome = "cancelled" // Cancel: aborted
	outcomeFailed    streamOutcome = "failed"    // failure policy or capture error
	outcomeEnded     streamOutcome = "ended"     // capture ended naturally
)

type stream struct {
	jobID     string
	cancel    context.CancelFunc
	queue     chan audioChunk
	done      chan struct{} // closed when the consumer finished finalizing
	broadcast *broadcaster

	mu          sync.Mutex
	outcome     streamOutcome
	outcomeNote string
}

type audioChunk struct {
	wav   []byte
	index int
}

// setOutcome records the finish reason once; later callers lose.
func (s *stream) setOutcome(o streamOutcome, note string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outcome != "" {
		return false
	}
	s.outcome = o
	s.outcomeNote = note
	return true
}

func (s *stream) getOutcome() (streamOutcome, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome, s.outcomeNote
}

// Orchestrator manages the live transcription streams of this process.
type Orchestrator struct {
	jobs      JobControl
	segments  SegmentSink
	modelSrc  ModelSource
	cipher    *secrets.Cipher
	speech    provider.SpeechClient
	capture   provider.AudioCapture
	publisher *events.EventPublisher
	chunkLen  time.Duration
	queueSize int
	logger    *slog.Logger

	mu      sync.Mutex
	streams map[string]*stream
}

// NewOrchestrator creates an Orchestrator. chunkDuration <= 0 selects the
// default of 3 seconds; queueSize <= 0 selects the default per-stream buffer.
func NewOrchestrator(jobs JobControl, segments SegmentSink, modelSrc ModelSource, cipher *secrets.Cipher, speech provider.SpeechClient, capture provider.AudioCapture, publisher *events.EventPublisher, chunkDuration time.Duration, queueSize int) *Orchestrator {
	if chunkDuration <= 0 {
		chunkDuration = DefaultChunkDuration
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Orchestrator{
		jobs:      jobs,
		segments:  segments,
		modelSrc:  modelSrc,
		cipher:    cipher,
		speech:    speech,
		capture:   capture,
		publisher: publisher,
		chunkLen:  chunkDuration,
		queueSize: queueSize,
		logger:    slog.Default().With("component", "transcribe"),
		streams:   make(map[string]*stream),
	}
}

// Start begins the live stream for an Executing transcription job. A job id
// already registered is a programming error, not an idempotent no-op.
func (o *Orchestrator) Start(ctx context.Context, j *ent.Job) error {
	modelID := ""
	if j.TranscriptionModelID != nil {
		modelID = *j.TranscriptionModelID
	}
	model, err := o.modelSrc.GetModel(ctx, modelID)
	if err != nil {
		return fmt.Errorf("resolving transcription model %s: %w", modelID, err)
	}
	apiKey, err := o.cipher.Decrypt(model.EncryptedAPIKey)
	if err != nil {
		return fmt.Errorf("decrypting provider API key: %w", err)
	}

	spec := provider.ModelSpec{
		Provider: string(model.Provider),
		Model:    model.ModelName,
		APIKey:   apiKey,
	}
	if model.BaseURL != nil {
		spec.BaseURL = *model.BaseURL
	}

	captureCtx, cancel := context.WithCancel(context.Background())
	st := &stream{
		jobID:     j.ID,
		cancel:    cancel,
		queue:     make(chan audioChunk, o.queueSize),
		done:      make(chan struct{}),
		broadcast: newBroadcaster(),
	}

	o.mu.Lock()
	if _, exists := o.streams[j.ID]; exists {
		o.mu.Unlock()
		cancel()
		return fmt.Errorf("transcription for job %s already running: %w", j.ID, services.ErrInvariantViolation)
	}
	o.streams[j.ID] = st
	o.mu.Unlock()

	logger := o.logger.With("job_id", j.ID, "action", j.Action)
	language := ""
	if j.Language != nil {
		language = *j.Language
	}
	deviceID := ""
	if j.ResourceID != nil {
		deviceID = *j.ResourceID
	}

	go o.runCapture(captureCtx, st, deviceID, logger)
	go o.consume(st, spec, language, logger)

	logger.Info("Transcription stream started", "model", model.ModelName, "chunk_duration", o.chunkLen)
	return nil
}

// runCapture drives the capture driver and closes the queue when capture
// ends, for whatever reason.
func (o *Orchestrator) runCapture(ctx context.Context, st *stream, deviceID string, logger *slog.Logger) {
	defer close(st.queue)

	err := o.capture.Capture(ctx, deviceID, o.chunkLen, func(wav []byte, index int) error {
		// Single producer: a full queue blocks capture, not the consumer.
		select {
		case st.queue <- audioChunk{wav: wav, index: index}:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	switch {
	case ctx.Err() != nil:
		// Stop/Cancel/failure policy cancelled the capture; the outcome is
		// already recorded.
	case err != nil:
		st.setOutcome(outcomeFailed, fmt.Sprintf("audio capture failed: %v", err))
		logger.Error("Audio capture failed", "error", err)
	default:
		// Finite input ended on its own.
		st.setOutcome(outcomeEnded, "input ended")
	}
}

// consume is the single consumer goroutine: recognition, persistence, and
// fan-out happen here, in stream order.
func (o *Orchestrator) consume(st *stream, spec provider.ModelSpec, language string, logger *slog.Logger) {
	defer close(st.done)

	consecutiveFailures := 0
	totalSegments := 0

	for chunk := range st.queue {
		if outcome, _ := st.getOutcome(); outcome == outcomeCancelled || outcome == outcomeFailed {
			// Aborted: drop the remaining chunks.
			continue
		}

		callCtx, cancel := context.WithTimeout(context.Background(), sttCallTimeout)
		tr, err := o.speech.Transcribe(callCtx, spec, chunk.wav, language)
		cancel()
		if err != nil {
			consecutiveFailures++
			logger.Warn("Chunk recognition failed",
				"chunk_index", chunk.index, "consecutive_failures", consecutiveFailures, "error", err)
			if lerr := o.jobs.AppendLog(context.Background(), st.jobID, joblogentry.SeverityWarning,
				fmt.Sprintf("chunk %d recognition failed (%d consecutive): %v", chunk.index, consecutiveFailures, err)); lerr != nil {
				logger.Warn("Failed to append job log", "error", lerr)
			}
			if consecutiveFailures >= maxConsecutiveFailures {
				st.setOutcome(outcomeFailed, fmt.Sprintf("transcription aborted after %d consecutive chunk failures; last error: %v", consecutiveFailures, err))
				st.cancel()
			}
			continue
		}
		consecutiveFailures = 0

		if len(tr.Segments) == 0 {
			continue
		}

		// Chunk-relative times become stream offsets.
		offset := float64(chunk.index) * o.chunkLen.Seconds()
		inputs := make([]models.SegmentInput, 0, len(tr.Segments))
		for _, span := range tr.Segments {
			inputs = append(inputs, models.SegmentInput{
				ChunkIndex:   chunk.index,
				Text:         span.Text,
				StartSeconds: offset + span.StartSeconds,
				EndSeconds:   offset + span.EndSeconds,
				Confidence:   span.Confidence,
			})
		}

		persisted, err := o.segments.AddSegments(context.Background(), st.jobID, inputs)
		if err != nil {
			logger.Error("Failed to persist segments", "chunk_index", chunk.index, "error", err)
			continue
		}
		totalSegments += len(persisted)

		for i, seg := range persisted {
			st.broadcast.Publish(seg)
			if o.publisher != nil {
				if perr := o.publisher.PublishSegment(events.SegmentPayload{
					JobID:     st.jobID,
					Index:     totalSegments - len(persisted) + i,
					StartTime: seg.StartSeconds,
					EndTime:   seg.EndSeconds,
					Text:      seg.Text,
					Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
				}); perr != nil {
					logger.Warn("Failed to publish segment event", "error", perr)
				}
			}
		}
	}

	o.finalize(st, totalSegments, logger)
}

// finalize transitions the job by the recorded outcome, closes the broadcast
// channel, and deregisters the stream.
func (o *Orchestrator) finalize(st *stream, totalSegments int, logger *slog.Logger) {
	outcome, note := st.getOutcome()
	if outcome == "" {
		// Consumer exited without a recorded reason; treat as a natural end.
		outcome, note = outcomeEnded, "input ended"
	}

	ctx := context.Background()
	var err error
	switch outcome {
	case outcomeFailed:
		_, err = o.jobs.FailJob(ctx, st.jobID, note)
	case outcomeCancelled:
		_, err = o.jobs.CancelJob(ctx, st.jobID, note)
	default: // stopped or ended
		_, err = o.jobs.CompleteJob(ctx, st.jobID, fmt.Sprintf("%d segment(s) transcribed", totalSegments))
	}
	if err != nil {
		logger.Error("Failed to finalize transcription job", "outcome", outcome, "error", err)
	}

	st.broadcast.Close()
	o.mu.Lock()
	delete(o.streams, st.jobID)
	o.mu.Unlock()

	logger.Info("Transcription stream finished", "outcome", outcome, "segments", totalSegments)
}

// Stop ends a live stream that ran its course: capture is cancelled, the
// queue drains, and the job completes.
func (o *Orchestrator) Stop(ctx context.Context, jobID string) error {
	return o.shutdown(ctx, jobID, outcomeStopped, "stopped")
}

// Cancel aborts a live stream: remaining chunks are dropped and the job is
// cancelled.
func (o *Orchestrator) Cancel(ctx context.Context, jobID string) error {
	return o.shutdown(ctx, jobID, outcomeCancelled, "transcription cancelled")
}

func (o *Orchestrator) shutdown(ctx context.Context, jobID string, outcome streamOutcome, note string) error {
	o.mu.Lock()
	st, ok := o.streams[jobID]
	o.mu.Unlock()
	if !ok {
		return fmt.Errorf("no live transcription for job %s: %w", jobID, services.ErrNotFound)
	}

	st.setOutcome(outcome, note)
	st.cancel()

	select {
	case <-st.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe returns the read end of the job's broadcast channel, or nil when
// no live stream is registered. The channel closes when the stream ends.
func (o *Orchestrator) Subscribe(jobID string) <-chan *ent.TranscriptionSegment {
	o.mu.Lock()
	defer o.mu.Unlock()
	st, ok := o.streams[jobID]
	if !ok {
		return nil
	}
	return st.broadcast.Subscribe()
}

// ActiveStreams returns the number of live streams. Used by the health
// endpoint.
func (o *Orchestrator) ActiveStreams() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.streams)
}

// CancelAll aborts every live stream. Called during shutdown; streams
// cancelled here restart-reconcile as orphans if the process dies first.
func (o *Orchestrator) CancelAll(ctx context.Context) {
	o.mu.Lock()
	ids := make([]string, 0, len(o.streams))
	for id := range o.streams {
		ids = append(ids, id)
	}
	o.mu.Unlock()

	for _, id := range ids {
		if err := o.shutdown(ctx, id, outcomeCancelled, "server shutting down"); err != nil {
			o.logger.Warn("Cancelling stream on shutdown", "job_id", id, "error", err)
		}
	}
}
