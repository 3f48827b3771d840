// Package errs defines the sentinel errors shared across the service layers.
// Callers classify failures with errors.Is; layers add context with
// fmt.Errorf("...: %w", err) without changing the classification.
package errs

import "errors"

var (
	// ErrValidation marks missing or malformed input. The client must
	// correct and resubmit; it is never retried automatically.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced id that no longer exists.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition marks a status change the workflow forbids.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyAssigned marks a claim that lost the race: another rescuer
	// already holds the report.
	ErrAlreadyAssigned = errors.New("report already assigned to another rescuer")

	// ErrSelfReport marks a rescuer trying to claim their own report.
	ErrSelfReport = errors.New("reporter may not rescue their own report")

	// ErrUnauthorized marks an actor that may not perform the operation.
	ErrUnauthorized = errors.New("not authorized for this operation")

	// ErrUpstream marks a failure in an external collaborator (push
	// gateway, payment processor).
	ErrUpstream = errors.New("upstream service failure")
)
