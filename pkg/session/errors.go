package session

import "errors"

var (
	// ErrStoreRequired indicates no store was configured
	ErrStoreRequired = errors.New("session.store_required")

	// ErrKeysRequired indicates signed cookies were enabled without any key
	ErrKeysRequired = errors.New("session.keys_required")

	// ErrSessionNotFound indicates no session exists for the given ID
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrInvalidRecord indicates a store was handed a record it cannot persist
	ErrInvalidRecord = errors.New("session.invalid_record")
)
