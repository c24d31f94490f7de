package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/pkg/config"
)

type fakePurger struct {
	mu      sync.Mutex
	cutoffs []time.Time
	n       int
	err     error
}

func (f *fakePurger) purge(cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.n, f.err
}

func (f *fakePurger) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

type fakeJobPurger struct{ fakePurger }

func (f *fakeJobPurger) PurgeTerminalJobsBefore(_ context.Context, cutoff time.Time) (int, error) {
	return f.purge(cutoff)
}

type fakeChatPurger struct{ fakePurger }

func (f *fakeChatPurger) PurgeMessagesBefore(_ context.Context, cutoff time.Time) (int, error) {
	return f.purge(cutoff)
}

func retentionConfig(interval time.Duration) *config.RetentionConfig {
	return &config.RetentionConfig{
		JobRetention:  30 * 24 * time.Hour,
		ChatRetention: 90 * 24 * time.Hour,
		Interval:      interval,
	}
}

func TestServiceSweepsImmediatelyOnStart(t *testing.T) {
	jobs := &fakeJobPurger{fakePurger{n: 2}}
	chats := &fakeChatPurger{}

	svc := NewService(retentionConfig(time.Hour), jobs, chats)
	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return jobs.calls() >= 1 && chats.calls() >= 1
	}, 2*time.Second, 5*time.Millisecond)

	jobs.mu.Lock()
	cutoff := jobs.cutoffs[0]
	jobs.mu.Unlock()
	assert.WithinDuration(t, time.Now().Add(-30*24*time.Hour), cutoff, time.Minute)
}

func TestServiceSweepsOnInterval(t *testing.T) {
	jobs := &fakeJobPurger{}
	chats := &fakeChatPurger{}

	svc := NewService(retentionConfig(20*time.Millisecond), jobs, chats)
	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return jobs.calls() >= 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestServiceStopWaitsForLoop(t *testing.T) {
	svc := NewService(retentionConfig(time.Hour), &fakeJobPurger{}, &fakeChatPurger{})
	svc.Start(context.Background())
	svc.Stop()

	// A second Stop is a no-op, not a deadlock or panic.
	svc.Stop()
}

func TestServicePurgeErrorDoesNotStopLoop(t *testing.T) {
	jobs := &fakeJobPurger{fakePurger{err: errors.New("db gone")}}
	chats := &fakeChatPurger{}

	svc := NewService(retentionConfig(20*time.Millisecond), jobs, chats)
	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return jobs.calls() >= 2 && chats.calls() >= 2
	}, 2*time.Second, 5*time.Millisecond)
}
