package errs

import (
	"errors"
	"fmt"
)

var (
	ErrTransitionRejected = errors.New("transition rejected")
	ErrPermissionDenied   = errors.New("permission denied")
)

// TransitionRejectedError reports a lifecycle move that the state machine of
// Entity does not allow from its current status.
type TransitionRejectedError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

func NewTransitionRejectedError(entity, from, to string) *TransitionRejectedError {
	return &TransitionRejectedError{
		Entity: entity,
		From:   from,
		To:     to,
	}
}

func NewTransitionRejectedErrorWithCause(entity, from, to string, cause error) *TransitionRejectedError {
	return &TransitionRejectedError{
		Entity: entity,
		From:   from,
		To:     to,
		Cause:  cause,
	}
}

func (e *TransitionRejectedError) Error() string {
	msg := fmt.Sprintf("%s: %s cannot move from %s to %s", ErrTransitionRejected, e.Entity, e.From, e.To)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *TransitionRejectedError) Unwrap() error {
	return ErrTransitionRejected
}

type PermissionDeniedError struct {
	Action string
	Cause  error
}

func NewPermissionDeniedError(action string) *PermissionDeniedError {
	return &PermissionDeniedError{Action: action}
}

func NewPermissionDeniedErrorWithCause(action string, cause error) *PermissionDeniedError {
	return &PermissionDeniedError{
		Action: action,
		Cause:  cause,
	}
}

func (e *PermissionDeniedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPermissionDenied, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPermissionDenied, e.Action)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}
