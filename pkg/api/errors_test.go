package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/warden/pkg/services"
)

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation error", services.NewValidationError("script", "shell jobs need a script"), http.StatusBadRequest},
		{"not found", fmt.Errorf("job abc: %w", services.ErrNotFound), http.StatusNotFound},
		{"not qualified", services.ErrNotQualified, http.StatusForbidden},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"invariant violation", fmt.Errorf("wildcard grants are immutable: %w", services.ErrInvariantViolation), http.StatusConflict},
		{"concurrent modification", services.ErrConcurrentModification, http.StatusConflict},
		{"invalid input", services.ErrInvalidInput, http.StatusBadRequest},
		{"no role", fmt.Errorf("agent a1: %w", services.ErrNoRole), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			respondServiceError(c, tt.err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
