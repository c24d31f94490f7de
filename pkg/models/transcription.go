package models

// SegmentInput describes one recognized span to persist for a transcription
// job. Times are stream offsets in seconds, already shifted by the chunk's
// position.
type SegmentInput struct {
	ChunkIndex   int      `json:"chunk_index"`
	Text         string   `json:"text"`
	StartSeconds float64  `json:"start_seconds"`
	EndSeconds   float64  `json:"end_seconds"`
	Confidence   *float64 `json:"confidence,omitempty"`
}
