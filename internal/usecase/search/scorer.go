package search

import "math"

// scoreAll computes the cosine similarity of the query vector against every
// row of the embedding matrix. A zero-norm vector on either side scores 0;
// the output never contains NaN or Inf. Pure function, safe for concurrent
// calls against the same immutable matrix.
func scoreAll(query []float32, vectors [][]float32) []float64 {
	scores := make([]float64, len(vectors))

	queryNorm := norm(query)
	if queryNorm == 0 {
		return scores
	}

	for i, v := range vectors {
		scores[i] = cosine(query, v, queryNorm)
	}
	return scores
}

// cosine returns (q·v) / (‖q‖·‖v‖). queryNorm is precomputed by the caller.
func cosine(query, v []float32, queryNorm float64) float64 {
	if len(query) != len(v) {
		return 0
	}

	var dot, vNormSq float64
	for i := range v {
		dot += float64(query[i]) * float64(v[i])
		vNormSq += float64(v[i]) * float64(v[i])
	}
	if vNormSq == 0 {
		return 0
	}
	return dot / (queryNorm * math.Sqrt(vNormSq))
}

func norm(v []float32) float64 {
	var sq float64
	for _, x := range v {
		sq += float64(x) * float64(x)
	}
	return math.Sqrt(sq)
}
