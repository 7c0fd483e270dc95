package search

import (
	"context"

	"github.com/kailas-cloud/roomsearch/internal/domain"
	"github.com/kailas-cloud/roomsearch/internal/domain/item"
)

// Catalog provides read-only access to the indexed items and their
// embedding matrix. Item i always corresponds to matrix row i.
type Catalog interface {
	Len() int
	At(i int) item.Item
	Vectors() [][]float32
}

// Embedder vectorizes query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
