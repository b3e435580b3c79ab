// Package errors provides error handling for viewfmt.
//
// This package re-exports github.com/cockroachdb/errors so the rest of the
// module gets stack traces, hints and assertion failures from one import:
//
//	if err := fmtr.Format(name, src); err != nil {
//	    return errors.Wrapf(err, "formatting %s", name)
//	}
//
// Internal contract violations (for example an unbalanced printer group) are
// raised with AssertionFailedf and detected with IsAssertionFailure.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is           = crdb.Is
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	UnwrapAll    = crdb.UnwrapAll
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Assertions
var (
	AssertionFailedf    = crdb.AssertionFailedf
	IsAssertionFailure  = crdb.IsAssertionFailure
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Sentinel errors reported by the command line tool.
var (
	// ErrNotFormatted indicates that --check found files whose content would change.
	ErrNotFormatted = New("not formatted")

	// ErrNoFiles indicates that no .view files matched the given paths.
	ErrNoFiles = New("no .view files found")
)
