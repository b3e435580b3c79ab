package view

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Error is a syntax error with source location and optional hint.
type Error struct {
	Pos     Position
	Message string
	Hint    string // optional suggestion for fixing the error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Pos.String())
	sb.WriteString(": error: ")
	sb.WriteString(e.Message)
	if e.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

// ErrorList collects the errors of one parse.
type ErrorList struct {
	errors []*Error
}

func (el *ErrorList) add(pos Position, message, hint string) {
	// Recovery can report the same spot twice; keep the first message.
	for _, e := range el.errors {
		if e.Pos == pos {
			return
		}
	}
	el.errors = append(el.errors, &Error{Pos: pos, Message: message, Hint: hint})
}

func (el *ErrorList) addf(pos Position, format string, args ...any) {
	el.add(pos, fmt.Sprintf(format, args...), "")
}

// Len returns the number of errors.
func (el *ErrorList) Len() int {
	return len(el.errors)
}

// Errors returns the errors ordered by position.
func (el *ErrorList) Errors() []*Error {
	result := slices.Clone(el.errors)
	slices.SortStableFunc(result, func(a, b *Error) int {
		return cmp.Or(cmp.Compare(a.Pos.Line, b.Pos.Line), cmp.Compare(a.Pos.Column, b.Pos.Column))
	})
	return result
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (el *ErrorList) Unwrap() []error {
	errs := make([]error, 0, len(el.errors))
	for _, e := range el.Errors() {
		errs = append(errs, e)
	}
	return errs
}

// Error implements the error interface, returning all errors joined by newlines.
func (el *ErrorList) Error() string {
	lines := make([]string, 0, len(el.errors))
	for _, e := range el.Errors() {
		lines = append(lines, e.Error())
	}
	return strings.Join(lines, "\n")
}

// Err returns nil if there are no errors, otherwise the list itself.
func (el *ErrorList) Err() error {
	if len(el.errors) == 0 {
		return nil
	}
	return el
}
