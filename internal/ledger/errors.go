package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("invalid subject")
	ErrNotFound   = errors.New("subject not found")
)

type ValidationReason string

const (
	ReasonEmptyName        ValidationReason = "EmptyName"
	ReasonCreditOutOfRange ValidationReason = "CreditOutOfRange"
	ReasonGradeOutOfRange  ValidationReason = "GradeOutOfRange"
)

// ValidationError is returned by Add when an input is rejected.
type ValidationError struct {
	Reason ValidationReason
	Value  any
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonEmptyName:
		return "subject name must not be empty"
	case ReasonCreditOutOfRange:
		return fmt.Sprintf("credit must be between %d and %d, got %v", MinCredit, MaxCredit, e.Value)
	case ReasonGradeOutOfRange:
		return fmt.Sprintf("grade value must be between 0.00 and 4.00, got %v", e.Value)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError is returned by Remove for an unknown id. Callers usually
// hold stale state and can ignore it.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("subject %q not found", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
