// file: internals/features/competency/assessments/service/errors.go
package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

/* ==============================
   Typed workflow errors
   Caller branch pakai Kind (data), bukan string matching.
============================== */

type ErrorKind string

const (
	ErrInvalidTransition ErrorKind = "invalid_transition"
	ErrPermissionDenied  ErrorKind = "permission_denied"
	ErrValidation        ErrorKind = "validation_error"
	ErrDuplicate         ErrorKind = "duplicate_assessment"
	ErrPersistence       ErrorKind = "persistence_error"
	ErrNotFound          ErrorKind = "not_found"
)

type WorkflowError struct {
	Kind    ErrorKind
	Message string
}

func (e *WorkflowError) Error() string { return e.Message }

func NewWorkflowError(kind ErrorKind, format string, args ...interface{}) *WorkflowError {
	return &WorkflowError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf mengembalikan kind dari error; ErrPersistence untuk error DB/unknown.
func KindOf(err error) ErrorKind {
	var we *WorkflowError
	if errors.As(err, &we) {
		return we.Kind
	}
	return ErrPersistence
}

// HTTPStatusOf memetakan kind -> status code untuk layer controller.
func HTTPStatusOf(err error) int {
	switch KindOf(err) {
	case ErrInvalidTransition, ErrValidation:
		return fiber.StatusUnprocessableEntity
	case ErrPermissionDenied:
		return fiber.StatusForbidden
	case ErrDuplicate:
		return fiber.StatusConflict
	case ErrNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
