package domain

import (
	"errors"
	"fmt"
)

// FieldViolation describes one failed payload rule.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Violations []FieldViolation
	Err        error
}

func (e ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation error"
	}
	v := e.Violations[0]
	if len(e.Violations) == 1 {
		return fmt.Sprintf("%s %s", v.Field, v.Rule)
	}
	return fmt.Sprintf("%s %s (and %d more)", v.Field, v.Rule, len(e.Violations)-1)
}

func (e ValidationError) Unwrap() error { return e.Err }

// ConstraintError covers store-level foreign key / uniqueness failures.
type ConstraintError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConstraintError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s constraint violation", e.Resource)
	default:
		return "constraint violation"
	}
}

func (e ConstraintError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConstraint(err error) bool {
	var target ConstraintError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
