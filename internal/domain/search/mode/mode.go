package mode

// Mode is the result selection policy.
type Mode string

// Selection mode constants.
const (
	// TopK returns exactly the k best-scoring items regardless of score.
	TopK Mode = "top_k"
	// Curated keeps only items whose final score is strictly below the
	// curation threshold, capped at a fixed count. The inverted filter is
	// intentional: it excludes near-duplicate and overly generic top
	// matches from the gallery view.
	Curated Mode = "curated"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == TopK || m == Curated
}
