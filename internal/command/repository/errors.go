package repository

import "errors"

// Repository-level errors.
var (
	ErrFailedToInsert  = errors.New("failed to insert record")
	ErrProjectNotFound = errors.New("project not found")
)
