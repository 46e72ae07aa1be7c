package session

import "errors"

// Errors returned by Session.
var (
	// ErrNothingToShare indicates there are no shareable changes.
	ErrNothingToShare = errors.New("nothing to share")

	// ErrMappingNotFound indicates no mapping has the given id.
	ErrMappingNotFound = errors.New("mapping not found")
)
