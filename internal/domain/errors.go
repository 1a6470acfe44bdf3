package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique key collision.
	ErrAlreadyExists = errors.New("already exists")
	// ErrCorruptStore indicates the persisted payload does not match the
	// expected schema.
	ErrCorruptStore = errors.New("corrupt account store")
	// ErrPersistence indicates the underlying storage write failed.
	ErrPersistence = errors.New("persistence failure")
)
