package domain

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrSessionNotFound   = errors.New("session not found")
	// ErrDocumentNotFound means the remote document was never written, as
	// opposed to the request failing. The sync engine treats the two
	// differently.
	ErrDocumentNotFound = errors.New("remote document not found")
)
