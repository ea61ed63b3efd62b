package command

import "errors"

// Domain-specific errors for the command package.
var (
	ErrEmptyTranscript = errors.New("transcript is empty")
	ErrProjectNotFound = errors.New("ambient project not found")
	ErrExecuteFailed   = errors.New("failed to execute command")
)
