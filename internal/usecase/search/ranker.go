package search

import "sort"

// PenaltyWeight scales the negative-clause similarity subtracted from the
// positive score. Fixed at 1.0; not user-tunable.
const PenaltyWeight = 1.0

// ranked pairs a catalog index with its final score.
type ranked struct {
	index int
	score float64
}

// combine merges positive and negative similarity scores into final scores.
// With no negative clause the positive scores pass through unchanged.
func combine(pos, neg []float64) []float64 {
	if neg == nil {
		return pos
	}
	final := make([]float64, len(pos))
	for i := range pos {
		final[i] = pos[i] - PenaltyWeight*neg[i]
	}
	return final
}

// rankAll orders every catalog index by final score descending. Ties are
// broken by ascending catalog index, so identical inputs always produce
// identical orderings.
func rankAll(final []float64) []ranked {
	out := make([]ranked, len(final))
	for i, s := range final {
		out[i] = ranked{index: i, score: s}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].score > out[b].score
	})
	return out
}

// selectTopK keeps the first k entries of a descending ranking.
func selectTopK(order []ranked, k int) []ranked {
	if len(order) > k {
		order = order[:k]
	}
	return order
}

// selectCurated scans the descending ranking and keeps the first entries
// whose score is strictly below threshold, up to limit results. High-scoring
// entries are deliberately discarded: the curated gallery excludes
// near-duplicate and overly generic top matches.
func selectCurated(order []ranked, limit int, threshold float64) []ranked {
	kept := make([]ranked, 0, limit)
	for _, r := range order {
		if len(kept) >= limit {
			break
		}
		if r.score < threshold {
			kept = append(kept, r)
		}
	}
	return kept
}
