package searcher

import (
	"errors"
	"fmt"
)

// UnknownNodeError reports a lookup with an id the arena never issued.
// This is arena misuse and is never retried.
type UnknownNodeError struct {
	ID NodeID
}

func (e UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node id %d", e.ID)
}

// ErrGeneration and ErrEvaluation classify transient capability failures.
// Capability implementations wrap them so the stages can retry.
var (
	ErrGeneration = errors.New("generation failed")
	ErrEvaluation = errors.New("evaluation failed")
)

// StageFailure reports a capability failure that survived all local retries.
// The controller records it and degrades to a best-effort result instead of
// aborting the run.
type StageFailure struct {
	Stage string
	Err   error
}

func (e *StageFailure) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageFailure) Unwrap() error {
	return e.Err
}
