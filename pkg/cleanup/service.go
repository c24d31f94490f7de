// Package cleanup enforces data retention: terminal jobs and old chat
// history are purged on a fixed cadence.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/warden/pkg/config"
)

// JobPurger deletes terminal jobs past retention. Implemented by
// services.JobService.
type JobPurger interface {
	PurgeTerminalJobsBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// ChatPurger deletes old chat messages. Implemented by
// services.ChannelService.
type ChatPurger interface {
	PurgeMessagesBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// Service runs the periodic retention sweep. All operations are idempotent;
// a sweep that overlaps a restart just deletes nothing the second time.
type Service struct {
	config *config.RetentionConfig
	jobs   JobPurger
	chats  ChatPurger
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the retention sweeper.
func NewService(cfg *config.RetentionConfig, jobs JobPurger, chats ChatPurger) *Service {
	return &Service{
		config: cfg,
		jobs:   jobs,
		chats:  chats,
		logger: slog.Default().With("component", "cleanup"),
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Retention sweeper started",
		"job_retention", s.config.JobRetention,
		"chat_retention", s.config.ChatRetention,
		"interval", s.config.Interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Retention sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	now := time.Now()

	if n, err := s.jobs.PurgeTerminalJobsBefore(ctx, now.Add(-s.config.JobRetention)); err != nil {
		if ctx.Err() == nil {
			s.logger.Error("Job retention sweep failed", "error", err)
		}
	} else if n > 0 {
		s.logger.Info("Purged terminal jobs past retention", "count", n)
	}

	if n, err := s.chats.PurgeMessagesBefore(ctx, now.Add(-s.config.ChatRetention)); err != nil {
		if ctx.Err() == nil {
			s.logger.Error("Chat retention sweep failed", "error", err)
		}
	} else if n > 0 {
		s.logger.Info("Purged chat messages past retention", "count", n)
	}
}
