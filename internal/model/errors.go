package model

import "fmt"

// GenerationErrorKind classifies why a generation call failed
type GenerationErrorKind string

const (
	GenerationTransport GenerationErrorKind = "transport" // Network/transport failure
	GenerationStatus    GenerationErrorKind = "status"    // Non-success HTTP status
	GenerationMalformed GenerationErrorKind = "malformed" // Response missing the text payload
)

// GenerationError reports a failed call to the generation service.
// Recoverable by a manual user retry; never mutates flow state.
type GenerationError struct {
	Kind    GenerationErrorKind
	Status  int // HTTP status for Kind == GenerationStatus
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("generation failed (%s, status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("generation failed (%s): %s", e.Kind, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
