package result

import "github.com/kailas-cloud/roomsearch/internal/domain/item"

// Result is a single ranked search hit.
type Result struct {
	rank  int
	item  item.Item
	score float64
}

// New creates a search result. Ranks are 1-indexed.
func New(rank int, it item.Item, score float64) Result {
	return Result{rank: rank, item: it, score: score}
}

// Rank returns the 1-indexed position in the ranking.
func (r *Result) Rank() int { return r.rank }

// Item returns the backing catalog item.
func (r *Result) Item() item.Item { return r.item }

// Score returns the final combined score.
func (r *Result) Score() float64 { return r.score }
