package store

import "errors"

var (
	ErrNotLoaded            = errors.New("data is not loaded")
	ErrConfirmationRequired = errors.New("confirmation required for destructive action")
)
