package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrCapabilityAbsent means the host exposes no recognized AI interface.
	// Tasks check for it up front and never reach the host.
	ErrCapabilityAbsent = errors.New("ai capability absent")

	// ErrNoSessionInterface means neither session creator exists.
	ErrNoSessionInterface = errors.New("no session interface")

	// ErrPathAbsent marks an attempt whose interface is missing. It is skipped,
	// never reported as a fault.
	ErrPathAbsent = errors.New("interface not present")

	// ErrEmptyOutput is returned when the model answered with nothing usable.
	ErrEmptyOutput = errors.New("empty model output")
)

// SessionCreationError is a fault raised by a session creator.
type SessionCreationError struct {
	API string
	Err error
}

func (e *SessionCreationError) Error() string {
	return fmt.Sprintf("%s: create session: %v", e.API, e.Err)
}

func (e *SessionCreationError) Unwrap() error { return e.Err }

// PromptError is a fault raised while prompting a session or a direct interface.
type PromptError struct {
	API string
	Err error
}

func (e *PromptError) Error() string {
	return fmt.Sprintf("%s: prompt: %v", e.API, e.Err)
}

func (e *PromptError) Unwrap() error { return e.Err }

// ExhaustedError means every attempt was absent or failed.
// Last is nil when no interface was present at all.
type ExhaustedError struct {
	Task string
	Last error
}

func (e *ExhaustedError) Error() string {
	if e.Last == nil {
		return fmt.Sprintf("%s: no suitable api found", e.Task)
	}
	return fmt.Sprintf("%s: all paths failed: %v", e.Task, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }

// hostFault extracts the message of the fault the host raised, without the
// gateway's own decoration. It returns "" if no interface faulted.
func hostFault(err error) string {
	var exhausted *ExhaustedError
	if errors.As(err, &exhausted) && exhausted.Last == nil {
		return ""
	}

	var createErr *SessionCreationError
	if errors.As(err, &createErr) {
		return createErr.Err.Error()
	}
	var promptErr *PromptError
	if errors.As(err, &promptErr) {
		return promptErr.Err.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
