package catalog

// Record mirrors one entry of the catalog JSON written by the indexer.
type Record struct {
	Style       string `json:"style"`
	FileName    string `json:"file_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// embeddingRow is one vector of the embeddings parquet file. Index is the
// row's position in the catalog; it is persisted so the row-for-row
// correspondence with the item list can be verified at load time.
type embeddingRow struct {
	Index  int32     `parquet:"index"`
	Vector []float32 `parquet:"vector,list"`
}
