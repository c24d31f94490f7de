package transcribe

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/joblogentry"
	"github.com/codeready-toolchain/warden/ent/providermodel"
	"github.com/codeready-toolchain/warden/pkg/events"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/provider"
	"github.com/codeready-toolchain/warden/pkg/secrets"
	"github.com/codeready-toolchain/warden/pkg/services"
)

func ptr(s string) *string { return &s }

type finalCall struct {
	kind string // "complete", "fail", "cancel"
	text string
}

type fakeJobCtl struct {
	mu       sync.Mutex
	finals   map[string]finalCall
	warnings []string
}

func newFakeJobCtl() *fakeJobCtl {
	return &fakeJobCtl{finals: make(map[string]finalCall)}
}

func (f *fakeJobCtl) CompleteJob(_ context.Context, jobID, resultData string) (*ent.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finals[jobID] = finalCall{kind: "complete", text: resultData}
	return &ent.Job{ID: jobID}, nil
}

func (f *fakeJobCtl) FailJob(_ context.Context, jobID, errorLog string) (*ent.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finals[jobID] = finalCall{kind: "fail", text: errorLog}
	return &ent.Job{ID: jobID}, nil
}

func (f *fakeJobCtl) CancelJob(_ context.Context, jobID, note string) (*ent.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finals[jobID] = finalCall{kind: "cancel", text: note}
	return &ent.Job{ID: jobID}, nil
}

func (f *fakeJobCtl) AppendLog(_ context.Context, _ string, _ joblogentry.Severity, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warnings = append(f.warnings, message)
	return nil
}

func (f *fakeJobCtl) finalFor(jobID string) (finalCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.finals[jobID]
	return c, ok
}

type fakeSegments struct {
	mu     sync.Mutex
	stored []*ent.TranscriptionSegment
}

func (f *fakeSegments) AddSegments(_ context.Context, jobID string, inputs []models.SegmentInput) ([]*ent.TranscriptionSegment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*ent.TranscriptionSegment, 0, len(inputs))
	for _, in := range inputs {
		seg := &ent.TranscriptionSegment{
			ID:           fmt.Sprintf("seg-%d", len(f.stored)+len(out)),
			JobID:        jobID,
			ChunkIndex:   in.ChunkIndex,
			Text:         in.Text,
			StartSeconds: in.StartSeconds,
			EndSeconds:   in.EndSeconds,
		}
		out = append(out, seg)
	}
	f.stored = append(f.stored, out...)
	return out, nil
}

func (f *fakeSegments) all() []*ent.TranscriptionSegment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*ent.TranscriptionSegment(nil), f.stored...)
}

type fakeModelSource struct {
	model *ent.ProviderModel
}

func (f *fakeModelSource) GetModel(_ context.Context, modelID string) (*ent.ProviderModel, error) {
	if f.model == nil || f.model.ID != modelID {
		return nil, services.ErrNotFound
	}
	return f.model, nil
}

// fakeCapture feeds the scripted chunks, then either returns nil (finite
// input) or blocks until the context is cancelled.
type fakeCapture struct {
	chunks  [][]byte
	hold    bool
	gate    chan struct{} // when set, feeding waits until the gate closes
	started chan struct{}
	once    sync.Once
}

func newFakeCapture(chunks [][]byte, hold bool) *fakeCapture {
	return &fakeCapture{chunks: chunks, hold: hold, started: make(chan struct{})}
}

func (f *fakeCapture) ListDevices(context.Context) ([]provider.AudioDevice, error) {
	return nil, nil
}

func (f *fakeCapture) Capture(ctx context.Context, _ string, _ time.Duration, onChunk provider.ChunkFunc) error {
	f.once.Do(func() { close(f.started) })
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	for i, wav := range f.chunks {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := onChunk(wav, i); err != nil {
			return err
		}
	}
	if f.hold {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

// fakeSpeech maps chunk payloads to scripted results. A payload listed in
// failures errors instead.
type fakeSpeech struct {
	mu       sync.Mutex
	results  map[string]*provider.Transcription
	failures map[string]error
	calls    []string
}

func newFakeSpeech() *fakeSpeech {
	return &fakeSpeech{
		results:  make(map[string]*provider.Transcription),
		failures: make(map[string]error),
	}
}

func (f *fakeSpeech) Transcribe(_ context.Context, _ provider.ModelSpec, wav []byte, _ string) (*provider.Transcription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, string(wav))
	if err, ok := f.failures[string(wav)]; ok {
		return nil, err
	}
	if tr, ok := f.results[string(wav)]; ok {
		return tr, nil
	}
	return &provider.Transcription{}, nil
}

func spans(texts ...string) *provider.Transcription {
	tr := &provider.Transcription{}
	for i, text := range texts {
		tr.Segments = append(tr.Segments, provider.TranscriptionSpan{
			Text:         text,
			StartSeconds: float64(i),
			EndSeconds:   float64(i) + 1,
		})
	}
	return tr
}

type orchFixture struct {
	orch     *Orchestrator
	jobs     *fakeJobCtl
	segments *fakeSegments
	speech   *fakeSpeech
	capture  *fakeCapture
}

func setupOrchestrator(t *testing.T, capture *fakeCapture, speech *fakeSpeech) *orchFixture {
	t.Helper()
	cipher := secrets.NewCipher("unit-test-master-key")
	encrypted, err := cipher.Encrypt("sk-test")
	require.NoError(t, err)

	models := &fakeModelSource{model: &ent.ProviderModel{
		ID:              "model-1",
		Provider:        providermodel.ProviderOpenai,
		ModelName:       "whisper-1",
		EncryptedAPIKey: encrypted,
	}}
	jobs := newFakeJobCtl()
	segments := &fakeSegments{}
	orch := NewOrchestrator(jobs, segments, models, cipher, speech, capture, events.NewEventPublisher(), 3*time.Second, 0)
	return &orchFixture{orch: orch, jobs: jobs, segments: segments, speech: speech, capture: capture}
}

func transcriptionJob(id string) *ent.Job {
	return &ent.Job{
		ID:                   id,
		TranscriptionModelID: ptr("model-1"),
		ResourceID:           ptr("mic-0"),
		Language:             ptr("en"),
	}
}

func waitForFinal(t *testing.T, jobs *fakeJobCtl, jobID string) finalCall {
	t.Helper()
	var call finalCall
	require.Eventually(t, func() bool {
		c, ok := jobs.finalFor(jobID)
		if ok {
			call = c
		}
		return ok
	}, 2*time.Second, 5*time.Millisecond)
	return call
}

func TestOrchestratorTranscribesFiniteInput(t *testing.T) {
	speech := newFakeSpeech()
	speech.results["chunk-0"] = spans("hello", "there")
	speech.results["chunk-1"] = spans("how are", "you")
	speech.results["chunk-2"] = spans("today", "friend")
	capture := newFakeCapture([][]byte{[]byte("chunk-0"), []byte("chunk-1"), []byte("chunk-2")}, false)
	fx := setupOrchestrator(t, capture, speech)

	require.NoError(t, fx.orch.Start(context.Background(), transcriptionJob("job-1")))

	call := waitForFinal(t, fx.jobs, "job-1")
	assert.Equal(t, "complete", call.kind)
	assert.Equal(t, "6 segment(s) transcribed", call.text)

	stored := fx.segments.all()
	require.Len(t, stored, 6)
	// Chunk-relative span times become stream offsets.
	assert.Equal(t, "hello", stored[0].Text)
	assert.Equal(t, 0.0, stored[0].StartSeconds)
	assert.Equal(t, "how are", stored[2].Text)
	assert.Equal(t, 3.0, stored[2].StartSeconds)
	assert.Equal(t, 4.0, stored[2].EndSeconds)
	assert.Equal(t, "friend", stored[5].Text)
	assert.Equal(t, 7.0, stored[5].StartSeconds)

	assert.Equal(t, 0, fx.orch.ActiveStreams())
}

func TestOrchestratorFailsAfterFiveConsecutiveFailures(t *testing.T) {
	speech := newFakeSpeech()
	chunks := make([][]byte, 6)
	for i := range chunks {
		chunks[i] = []byte(fmt.Sprintf("bad-%d", i))
		speech.failures[fmt.Sprintf("bad-%d", i)] = errors.New("stt unavailable")
	}
	capture := newFakeCapture(chunks, true)
	fx := setupOrchestrator(t, capture, speech)

	require.NoError(t, fx.orch.Start(context.Background(), transcriptionJob("job-1")))

	call := waitForFinal(t, fx.jobs, "job-1")
	assert.Equal(t, "fail", call.kind)
	assert.Contains(t, call.text, "5 consecutive chunk failures")
	assert.Contains(t, call.text, "stt unavailable")
}

func TestOrchestratorSuccessResetsFailureCounter(t *testing.T) {
	speech := newFakeSpeech()
	var chunks [][]byte
	// Four failures, a success, then four more failures: never five in a row.
	for i := 0; i < 4; i++ {
		name := fmt.Sprintf("bad-a%d", i)
		chunks = append(chunks, []byte(name))
		speech.failures[name] = errors.New("flaky")
	}
	chunks = append(chunks, []byte("good"))
	speech.results["good"] = spans("recovered")
	for i := 0; i < 4; i++ {
		name := fmt.Sprintf("bad-b%d", i)
		chunks = append(chunks, []byte(name))
		speech.failures[name] = errors.New("flaky")
	}
	capture := newFakeCapture(chunks, false)
	fx := setupOrchestrator(t, capture, speech)

	require.NoError(t, fx.orch.Start(context.Background(), transcriptionJob("job-1")))

	call := waitForFinal(t, fx.jobs, "job-1")
	assert.Equal(t, "complete", call.kind)
	require.Len(t, fx.segments.all(), 1)
	assert.Equal(t, "recovered", fx.segments.all()[0].Text)
}

func TestOrchestratorDoubleStartRejected(t *testing.T) {
	capture := newFakeCapture(nil, true)
	fx := setupOrchestrator(t, capture, newFakeSpeech())

	require.NoError(t, fx.orch.Start(context.Background(), transcriptionJob("job-1")))
	err := fx.orch.Start(context.Background(), transcriptionJob("job-1"))
	require.ErrorIs(t, err, services.ErrInvariantViolation)

	require.NoError(t, fx.orch.Cancel(context.Background(), "job-1"))
}

func TestOrchestratorStopCompletesJob(t *testing.T) {
	speech := newFakeSpeech()
	speech.results["chunk-0"] = spans("only segment")
	capture := newFakeCapture([][]byte{[]byte("chunk-0")}, true)
	fx := setupOrchestrator(t, capture, speech)

	require.NoError(t, fx.orch.Start(context.Background(), transcriptionJob("job-1")))

	// Wait for the chunk to make it through before stopping.
	require.Eventually(t, func() bool {
		return len(fx.segments.all()) == 1
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, fx.orch.Stop(context.Background(), "job-1"))
	call, ok := fx.jobs.finalFor("job-1")
	require.True(t, ok)
	assert.Equal(t, "complete", call.kind)
	assert.Equal(t, "1 segment(s) transcribed", call.text)
}

func TestOrchestratorCancelAborts(t *testing.T) {
	capture := newFakeCapture(nil, true)
	fx := setupOrchestrator(t, capture, newFakeSpeech())

	require.NoError(t, fx.orch.Start(context.Background(), transcriptionJob("job-1")))
	<-capture.started

	require.NoError(t, fx.orch.Cancel(context.Background(), "job-1"))
	call, ok := fx.jobs.finalFor("job-1")
	require.True(t, ok)
	assert.Equal(t, "cancel", call.kind)
	assert.Equal(t, 0, fx.orch.ActiveStreams())
}

func TestOrchestratorStopUnknownJob(t *testing.T) {
	fx := setupOrchestrator(t, newFakeCapture(nil, true), newFakeSpeech())
	err := fx.orch.Stop(context.Background(), "nope")
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestOrchestratorStartUnknownModel(t *testing.T) {
	fx := setupOrchestrator(t, newFakeCapture(nil, true), newFakeSpeech())
	j := transcriptionJob("job-1")
	j.TranscriptionModelID = ptr("missing-model")
	err := fx.orch.Start(context.Background(), j)
	require.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, 0, fx.orch.ActiveStreams())
}

func TestOrchestratorSubscriberReceivesSegmentsInOrder(t *testing.T) {
	speech := newFakeSpeech()
	speech.results["chunk-0"] = spans("one", "two")
	speech.results["chunk-1"] = spans("three")
	capture := newFakeCapture([][]byte{[]byte("chunk-0"), []byte("chunk-1")}, true)
	capture.gate = make(chan struct{})
	fx := setupOrchestrator(t, capture, speech)

	require.NoError(t, fx.orch.Start(context.Background(), transcriptionJob("job-1")))
	sub := fx.orch.Subscribe("job-1")
	require.NotNil(t, sub)
	close(capture.gate)

	require.Eventually(t, func() bool {
		return len(fx.segments.all()) == 3
	}, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, fx.orch.Stop(context.Background(), "job-1"))

	var texts []string
	for seg := range sub {
		texts = append(texts, seg.Text)
	}
	assert.Equal(t, []string{"one", "two", "three"}, texts)

	assert.Nil(t, fx.orch.Subscribe("job-1"))
}
