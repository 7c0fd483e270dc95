package health

import "context"

// CatalogReader reports the size of the loaded catalog.
type CatalogReader interface {
	Len() int
}

// EmbeddingChecker checks embedding provider availability.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}
