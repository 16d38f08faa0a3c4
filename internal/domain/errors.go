package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Purchase outcomes
	ErrMsgUnknownProducer   = "unknown producer"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Session errors
	ErrMsgNotReady = "game is not ready"

	// Storage errors
	ErrMsgStorageUnavailable = "storage unavailable"
	ErrMsgMalformedField     = "malformed saved field"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Sentinel errors. Purchase errors describe a normal no-op outcome rather
// than a failure: the state is left untouched and no event is tracked.
var (
	ErrUnknownProducer    = errors.New(ErrMsgUnknownProducer)
	ErrInsufficientFunds  = errors.New(ErrMsgInsufficientFunds)
	ErrNotReady           = errors.New(ErrMsgNotReady)
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
	ErrMalformedField     = errors.New(ErrMsgMalformedField)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
)
