package recommend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyRole rejects a submission whose role is empty after trimming.
// It is surfaced inline; no network call is issued.
var ErrEmptyRole = errors.New("job role must not be empty")

// RetryMessage is the generic user-facing text for a failed submission.
// There are no automatic retries; the user re-triggers.
const RetryMessage = "Failed to fetch recommendations. Please try again."

// StartupError aggregates failures of the one-time startup fetches
// (platforms, skills, capability probe). The app degrades but keeps running.
type StartupError struct {
	Errs []error
}

func (e *StartupError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("failed to load startup data: %s", strings.Join(msgs, "; "))
}

func (e *StartupError) Unwrap() []error { return e.Errs }
