package document

import "errors"

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrDuplicateID       = errors.New("document with this id already exists")
	ErrInvalidDocument   = errors.New("document must be a JSON object")
)
