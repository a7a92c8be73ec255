// Package errors provides error handling for praxis.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownPlatform) {
//	    // handle invalid target
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
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
	IsAny        = crdb.IsAny
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	UnwrapAll    = crdb.UnwrapAll
	FlattenHints = crdb.FlattenHints
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the scaffolding engine.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnknownPlatform indicates a target platform id outside the fixed enum.
	// Raised before any filesystem mutation; fatal for the whole init call.
	ErrUnknownPlatform = New("unknown platform")

	// ErrNotFound indicates a requested resource (template, document) does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates a malformed request from an external transport
	ErrInvalidRequest = New("invalid request")
)

// IsUnknownPlatformError checks if an error is or wraps ErrUnknownPlatform
func IsUnknownPlatformError(err error) bool {
	return err != nil && Is(err, ErrUnknownPlatform)
}

// NewUnknownPlatformError creates an unknown-platform error naming the offending id
func NewUnknownPlatformError(id string) error {
	return WithHintf(Wrapf(ErrUnknownPlatform, "%q", id),
		"valid platforms: claude, cursor, windsurf, copilot, or \"all\"")
}

// WrapNotFound wraps an error as a not-found error with context
func WrapNotFound(err error, context string) error {
	return Wrap(Wrap(ErrNotFound, err.Error()), context)
}
