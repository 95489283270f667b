package apperr

import (
	"errors"
	"fmt"
)

// DuplicateSubmissionError is a firm rejection: the student has already
// submitted the quiz or task in question and the second submission is never
// silently accepted or merged. The HTTP layer maps it to 409.
type DuplicateSubmissionError struct {
	msg string
}

func (e *DuplicateSubmissionError) Error() string { return e.msg }

var (
	ErrQuizAlreadySubmitted = &DuplicateSubmissionError{msg: "Student has already submitted quiz for this lesson"}
	ErrTaskAlreadySubmitted = &DuplicateSubmissionError{msg: "Student has already submitted this task"}
)

// NotFoundError reports an update or lookup against a record id that does
// not exist, instead of conflating it with a successful change.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

func NewNotFound(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func IsDuplicateSubmission(err error) bool {
	var dup *DuplicateSubmissionError
	return errors.As(err, &dup)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
