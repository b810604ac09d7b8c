// Package common defines sentinel errors shared by the client and server
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// ErrorStore marks a failed read or write against the event store.
	ErrorStore = errors.New("store error")

	// ErrorValidation marks rejected user input; nothing was written.
	ErrorValidation = errors.New("validation error")

	ErrorInternal = errors.New("internal error")
)
