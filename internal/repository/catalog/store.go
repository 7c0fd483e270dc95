// Package catalog loads and owns the immutable set of indexed items and
// their embedding matrix for the lifetime of the process.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"go.uber.org/zap"

	"github.com/kailas-cloud/roomsearch/internal/domain"
	"github.com/kailas-cloud/roomsearch/internal/domain/item"
)

// Config holds catalog file locations.
type Config struct {
	ItemsPath      string
	EmbeddingsPath string
	// AssetDir, when set, is the root the image assets must exist under.
	AssetDir string
	Logger   *zap.Logger
}

// Store holds the catalog items and their embedding matrix. Immutable after
// Load; safe for concurrent readers without locking.
type Store struct {
	items   []item.Item
	vectors [][]float32
	dim     int
}

// Load reads the catalog JSON and the embeddings parquet, verifies their
// row-for-row correspondence, and builds the store. Every error wraps
// domain.ErrCatalogIntegrity: the caller must treat it as fatal and refuse
// to serve traffic.
//
// Recovery policy: when the catalog has more records than the matrix has
// rows, records without a description (which never received an embedding at
// index time) are dropped and the counts re-checked. Any remaining mismatch
// is unrecoverable.
func Load(cfg Config) (*Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	records, err := readRecords(cfg.ItemsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogIntegrity, err)
	}

	rows, err := parquet.ReadFile[embeddingRow](cfg.EmbeddingsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read embeddings %s: %w", domain.ErrCatalogIntegrity, cfg.EmbeddingsPath, err)
	}

	items := make([]item.Item, len(records))
	for i, rec := range records {
		it, err := item.New(i, rec.Style, rec.FileName, rec.Title, rec.Description)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", domain.ErrCatalogIntegrity, i, err)
		}
		items[i] = it
	}

	if len(items) > len(rows) {
		logger.Warn("catalog/embedding count mismatch, dropping records without descriptions",
			zap.Int("records", len(items)),
			zap.Int("rows", len(rows)),
		)
		items = withDescriptions(items)
	}
	if len(items) != len(rows) {
		return nil, fmt.Errorf("%w: %d catalog records vs %d embedding rows",
			domain.ErrCatalogIntegrity, len(items), len(rows))
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", domain.ErrCatalogIntegrity)
	}

	vectors, dim, err := vectorsFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogIntegrity, err)
	}

	if cfg.AssetDir != "" {
		for i := range items {
			if err := assetExists(cfg.AssetDir, items[i]); err != nil {
				return nil, fmt.Errorf("%w: %w", domain.ErrCatalogIntegrity, err)
			}
		}
	}

	logger.Info("catalog loaded",
		zap.Int("items", len(items)),
		zap.Int("dimensions", dim),
	)

	return &Store{items: items, vectors: vectors, dim: dim}, nil
}

// Len returns the number of catalog items.
func (s *Store) Len() int { return len(s.items) }

// At returns the item at catalog index i.
func (s *Store) At(i int) item.Item { return s.items[i] }

// Vectors returns the embedding matrix. Callers must treat it as read-only.
func (s *Store) Vectors() [][]float32 { return s.vectors }

// Dim returns the embedding dimensionality.
func (s *Store) Dim() int { return s.dim }

// Write persists catalog records and their vectors side by side. Used by the
// indexer; refuses ragged input so a loadable pair is the only thing ever
// written.
func Write(itemsPath, embeddingsPath string, records []Record, vectors [][]float32) error {
	if len(records) != len(vectors) {
		return fmt.Errorf("%d records vs %d vectors", len(records), len(vectors))
	}
	if len(records) == 0 {
		return fmt.Errorf("nothing to write")
	}

	dim := len(vectors[0])
	rows := make([]embeddingRow, len(vectors))
	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("vector %d has %d dimensions, want %d", i, len(v), dim)
		}
		rows[i] = embeddingRow{Index: int32(i), Vector: v}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := os.WriteFile(itemsPath, data, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", itemsPath, err)
	}

	if err := parquet.WriteFile(embeddingsPath, rows); err != nil {
		return fmt.Errorf("write embeddings %s: %w", embeddingsPath, err)
	}
	return nil
}

func readRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return records, nil
}

// withDescriptions drops items that never received an embedding at index
// time and renumbers the survivors to match their new matrix rows.
func withDescriptions(items []item.Item) []item.Item {
	kept := items[:0]
	for _, it := range items {
		if strings.TrimSpace(it.Description()) != "" {
			kept = append(kept, it.WithID(len(kept)))
		}
	}
	return kept
}

func vectorsFromRows(rows []embeddingRow) ([][]float32, int, error) {
	dim := len(rows[0].Vector)
	if dim == 0 {
		return nil, 0, fmt.Errorf("embedding row 0 is empty")
	}
	vectors := make([][]float32, len(rows))
	for i, row := range rows {
		if int(row.Index) != i {
			return nil, 0, fmt.Errorf("embedding row %d carries index %d", i, row.Index)
		}
		if len(row.Vector) != dim {
			return nil, 0, fmt.Errorf("embedding row %d has %d dimensions, want %d", i, len(row.Vector), dim)
		}
		vectors[i] = row.Vector
	}
	return vectors, dim, nil
}

func assetExists(assetDir string, it item.Item) error {
	p := filepath.Join(assetDir, strings.ToLower(it.Style()), it.FileName())
	if _, err := os.Stat(p); err != nil {
		return fmt.Errorf("asset for item %d missing: %w", it.ID(), err)
	}
	return nil
}
