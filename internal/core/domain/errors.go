package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrMissingAPIKey       = errors.New("gemini api key is not configured")
	ErrMissingClientID     = errors.New("google client id is not configured")
	ErrMalformedResponse   = errors.New("model response is not a task array")
	ErrNoTaskList          = errors.New("no google task list available")
	ErrRemoteAuth          = errors.New("google access token is missing or expired")
	ErrSyncInProgress      = errors.New("sync already in progress")
	ErrDecomposeInProgress = errors.New("decomposition already in progress")
)

// GenerationError reports that every model candidate failed. Last holds
// the failure of the final candidate tried.
type GenerationError struct {
	Last error
}

func (e *GenerationError) Error() string {
	if e.Last == nil {
		return "task generation failed: no usable model"
	}
	return fmt.Sprintf("task generation failed: %v", e.Last)
}

func (e *GenerationError) Unwrap() error {
	return e.Last
}
