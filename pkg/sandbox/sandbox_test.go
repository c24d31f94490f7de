package sandbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	result := &Result{
		AllSucceeded: false,
		Steps: []StepResult{
			{Index: 0, Verb: "fetch", Success: true, Attempts: 1, Duration: 120 * time.Millisecond},
			{Index: 1, Verb: "write", Success: true, Attempts: 3, Duration: 80 * time.Millisecond},
			{Index: 2, Verb: "publish", Success: false, Attempts: 1, Error: "permission denied"},
		},
		TotalDuration: 200 * time.Millisecond,
	}

	summary := Summarize(result)
	assert.Contains(t, summary, "3 step(s)")
	assert.Contains(t, summary, "1. fetch: ok")
	assert.Contains(t, summary, "2. write: ok (3 attempts)")
	assert.Contains(t, summary, "3. publish: FAILED")
	assert.Contains(t, summary, "permission denied")
}

func TestFirstFailure(t *testing.T) {
	t.Run("returns first failing step", func(t *testing.T) {
		result := &Result{Steps: []StepResult{
			{Index: 0, Success: true},
			{Index: 1, Success: false, Error: "boom"},
			{Index: 2, Success: false, Error: "later"},
		}}
		failure := FirstFailure(result)
		require.NotNil(t, failure)
		assert.Equal(t, 1, failure.Index)
		assert.Equal(t, "boom", failure.Error)
	})

	t.Run("nil when all succeeded", func(t *testing.T) {
		result := &Result{AllSucceeded: true, Steps: []StepResult{{Success: true}}}
		assert.Nil(t, FirstFailure(result))
	})
}
