package domain

import "errors"

var (
	// ErrEmptyQuery signals a blank search query. User-correctable, never a system fault.
	ErrEmptyQuery = errors.New("empty query")
	// ErrInvalidRequest signals request parameters that fail validation.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrRetrievalUnavailable signals an embedding provider failure for a single request.
	ErrRetrievalUnavailable = errors.New("retrieval unavailable")
	// ErrChatUnavailable signals a chat provider failure.
	ErrChatUnavailable = errors.New("chat unavailable")
	// ErrCatalogIntegrity signals a catalog/embedding mismatch or missing data at load.
	// Unrecoverable: the process must not start serving.
	ErrCatalogIntegrity = errors.New("catalog integrity failure")
)
