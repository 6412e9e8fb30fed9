package repository

import "errors"

// Common repository errors
var (
	// ErrPersonNotFound is returned when a person is not found
	ErrPersonNotFound = errors.New("person not found")

	// ErrClientNotFound is returned when a client is not found
	ErrClientNotFound = errors.New("client not found")

	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")
)
