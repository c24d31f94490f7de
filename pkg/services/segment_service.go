package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/transcriptionsegment"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/google/uuid"
)

// SegmentService persists and reads transcription segments.
type SegmentService struct {
	client *ent.Client
}

// NewSegmentService creates a new SegmentService
func NewSegmentService(client *ent.Client) *SegmentService {
	return &SegmentService{client: client}
}

// AddSegments persists one chunk's recognized spans in stream order. The
// single consumer goroutine is the only writer for a job, so ordering
// guarantees reduce to transaction ordering here.
func (s *SegmentService) AddSegments(ctx context.Context, jobID string, inputs []models.SegmentInput) ([]*ent.TranscriptionSegment, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builders := make([]*ent.TranscriptionSegmentCreate, 0, len(inputs))
	for _, in := range inputs {
		builder := tx.TranscriptionSegment.Create().
			SetID(uuid.New().String()).
			SetJobID(jobID).
			SetChunkIndex(in.ChunkIndex).
			SetText(in.Text).
			SetStartSeconds(in.StartSeconds).
			SetEndSeconds(in.EndSeconds)
		if in.Confidence != nil {
			builder.SetConfidence(*in.Confidence)
		}
		builders = append(builders, builder)
	}

	segments, err := tx.TranscriptionSegment.CreateBulk(builders...).Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist segments: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return segments, nil
}

// ListSegments returns all segments of a job ordered by stream position.
func (s *SegmentService) ListSegments(ctx context.Context, jobID string) ([]*ent.TranscriptionSegment, error) {
	segments, err := s.client.TranscriptionSegment.Query().
		Where(transcriptionsegment.JobIDEQ(jobID)).
		Order(ent.Asc(transcriptionsegment.FieldStartSeconds)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}
	return segments, nil
}

// SegmentsSince returns segments captured after the given instant, ordered by
// stream position. This is the polling alternative to a live subscription.
func (s *SegmentService) SegmentsSince(ctx context.Context, jobID string, since time.Time) ([]*ent.TranscriptionSegment, error) {
	segments, err := s.client.TranscriptionSegment.Query().
		Where(
			transcriptionsegment.JobIDEQ(jobID),
			transcriptionsegment.CapturedAtGT(since),
		).
		Order(ent.Asc(transcriptionsegment.FieldStartSeconds)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments since %s: %w", since, err)
	}
	return segments, nil
}
