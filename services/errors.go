package services

import "errors"

var (
	// ErrNotFound means the record does not exist or is owned by another user.
	ErrNotFound = errors.New("record not found")

	// ErrNoTasks is returned by schedule generation when no task names are given.
	ErrNoTasks = errors.New("tasks array is required")
)
