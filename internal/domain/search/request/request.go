package request

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/roomsearch/internal/domain"
	"github.com/kailas-cloud/roomsearch/internal/domain/search/mode"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 1024
	DefaultTopK    = 12
	MaxTopK        = 100
)

// Request is a validated search query.
type Request struct {
	query      string
	searchMode mode.Mode
	topK       int
}

// New validates and normalizes search parameters.
// Defaults: mode=top_k, topK=12. The query is stored trimmed.
func New(query string, m mode.Mode, topK int) (Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, domain.ErrEmptyQuery
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidRequest, MaxQueryLength)
	}
	if m == "" {
		m = mode.TopK
	}
	if !m.IsValid() {
		return Request{}, fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidRequest, m)
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}
	return Request{query: query, searchMode: m, topK: topK}, nil
}

// Query returns the trimmed search query text.
func (r *Request) Query() string { return r.query }

// Mode returns the result selection policy.
func (r *Request) Mode() mode.Mode { return r.searchMode }

// TopK returns the number of results for top_k mode.
func (r *Request) TopK() int { return r.topK }
