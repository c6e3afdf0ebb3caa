package profile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind represents the category of a submission failure
type ErrorKind int

const (
	// ErrIncompleteSubmission indicates a required field was empty or gender unset
	ErrIncompleteSubmission ErrorKind = iota
)

// IncompleteMessage is the single generic message shown to the user.
const IncompleteMessage = "Please fill in all the fields."

// ErrIncomplete is the sentinel matched by errors.Is for incomplete submissions.
var ErrIncomplete = errors.New("incomplete submission")

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrIncompleteSubmission:
		return "Incomplete Submission"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// SubmissionError is returned by Controller.Submit when the profile is rejected.
type SubmissionError struct {
	Kind    ErrorKind
	Message string  // Message shown to the user
	Missing []Field // Fields that failed the check (for logs, not for display)
}

// Error implements the error interface
func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is match ErrIncomplete.
func (e *SubmissionError) Is(target error) bool {
	return target == ErrIncomplete && e.Kind == ErrIncompleteSubmission
}

// MissingFields returns the flag-style names of the failing fields.
func (e *SubmissionError) MissingFields() []string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.String()
	}
	return names
}

// Detail returns a comma-separated list of failing fields.
func (e *SubmissionError) Detail() string {
	return strings.Join(e.MissingFields(), ", ")
}

// NewIncompleteError creates a SubmissionError for the given missing fields
func NewIncompleteError(missing []Field) *SubmissionError {
	return &SubmissionError{
		Kind:    ErrIncompleteSubmission,
		Message: IncompleteMessage,
		Missing: missing,
	}
}

// IsIncomplete reports whether err is an incomplete-submission error
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}
