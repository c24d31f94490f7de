package events

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent/job"
)

// recordingSink captures every broadcast for assertions.
type recordingSink struct {
	mu     sync.Mutex
	events map[string][][]byte // channel → events in order
}

func newRecordingSink() *recordingSink {
	return &recordingSink{events: make(map[string][][]byte)}
}

func (s *recordingSink) Broadcast(channel string, event []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(event))
	copy(cp, event)
	s.events[channel] = append(s.events[channel], cp)
}

func (s *recordingSink) on(channel string) [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[channel]
}

func decodeEvent(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestEventPublisher_JobStatusFansOutToJobAndGlobalChannels(t *testing.T) {
	sink := newRecordingSink()
	pub := NewEventPublisher()
	pub.AddSink(sink)

	err := pub.PublishJobStatus(JobStatusPayload{
		JobID:     "job-1",
		Status:    job.StatusExecuting,
		Action:    job.ActionAccessWebsite,
		AgentID:   "agent-1",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	jobEvents := sink.on(JobChannel("job-1"))
	require.Len(t, jobEvents, 1)
	msg := decodeEvent(t, jobEvents[0])
	assert.Equal(t, EventTypeJobStatus, msg["type"])
	assert.Equal(t, "job-1", msg["job_id"])
	assert.Equal(t, "executing", msg["status"])
	assert.Equal(t, "access_website", msg["action"])

	globalEvents := sink.on(GlobalJobsChannel)
	require.Len(t, globalEvents, 1)
	assert.Equal(t, jobEvents[0], globalEvents[0])
}

func TestEventPublisher_JobLogRoutesToJobChannelOnly(t *testing.T) {
	sink := newRecordingSink()
	pub := NewEventPublisher()
	pub.AddSink(sink)

	err := pub.PublishJobLog(JobLogPayload{
		JobID:    "job-2",
		Severity: "warning",
		Message:  "rejected: already completed",
		Sequence: 3,
	})
	require.NoError(t, err)

	logEvents := sink.on(JobChannel("job-2"))
	require.Len(t, logEvents, 1)
	msg := decodeEvent(t, logEvents[0])
	assert.Equal(t, EventTypeJobLog, msg["type"])
	assert.Equal(t, "warning", msg["severity"])
	assert.Equal(t, float64(3), msg["sequence"])

	assert.Empty(t, sink.on(GlobalJobsChannel))
}

func TestEventPublisher_SegmentRoutesToJobChannel(t *testing.T) {
	sink := newRecordingSink()
	pub := NewEventPublisher()
	pub.AddSink(sink)

	err := pub.PublishSegment(SegmentPayload{
		JobID:     "job-3",
		Index:     2,
		StartTime: 6.0,
		EndTime:   9.0,
		Text:      "hello world",
	})
	require.NoError(t, err)

	segEvents := sink.on(JobChannel("job-3"))
	require.Len(t, segEvents, 1)
	msg := decodeEvent(t, segEvents[0])
	assert.Equal(t, EventTypeSegment, msg["type"])
	assert.Equal(t, "hello world", msg["text"])
	assert.Equal(t, float64(6.0), msg["start_time"])
}

func TestEventPublisher_ChatEventsRouteToChatChannel(t *testing.T) {
	sink := newRecordingSink()
	pub := NewEventPublisher()
	pub.AddSink(sink)

	require.NoError(t, pub.PublishChatDelta(ChatDeltaPayload{
		ChannelID: "chan-1",
		Delta:     "par",
	}))
	require.NoError(t, pub.PublishApprovalRequired(ApprovalRequiredPayload{
		ChannelID:          "chan-1",
		JobID:              "job-4",
		Action:             job.ActionAccessContainer,
		EffectiveClearance: job.EffectiveClearanceWhitelistedUser,
	}))
	require.NoError(t, pub.PublishApprovalDecision(ApprovalDecisionPayload{
		ChannelID: "chan-1",
		JobID:     "job-4",
		Approved:  true,
		DecidedBy: "user-1",
	}))
	require.NoError(t, pub.PublishChatComplete(ChatCompletePayload{
		ChannelID: "chan-1",
		MessageID: "msg-1",
		Content:   "done",
		Rounds:    2,
	}))

	chatEvents := sink.on(ChatChannel("chan-1"))
	require.Len(t, chatEvents, 4)
	assert.Equal(t, EventTypeChatDelta, decodeEvent(t, chatEvents[0])["type"])
	assert.Equal(t, EventTypeApprovalRequired, decodeEvent(t, chatEvents[1])["type"])
	assert.Equal(t, EventTypeApprovalDecision, decodeEvent(t, chatEvents[2])["type"])
	assert.Equal(t, EventTypeChatComplete, decodeEvent(t, chatEvents[3])["type"])
}

func TestEventPublisher_MultipleSinksAllReceive(t *testing.T) {
	first := newRecordingSink()
	second := newRecordingSink()
	pub := NewEventPublisher()
	pub.AddSink(first)
	pub.AddSink(second)

	require.NoError(t, pub.PublishJobLog(JobLogPayload{JobID: "job-5", Severity: "info", Message: "queued"}))

	assert.Len(t, first.on(JobChannel("job-5")), 1)
	assert.Len(t, second.on(JobChannel("job-5")), 1)
}

func TestEventPublisher_NoSinksIsNoop(t *testing.T) {
	pub := NewEventPublisher()
	assert.NoError(t, pub.PublishJobStatus(JobStatusPayload{JobID: "job-6", Status: job.StatusQueued}))
}
