// Command indexer embeds catalog descriptions and writes the catalog pair
// the API server loads at startup: the item JSON and the embeddings parquet.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/roomsearch/internal/config"
	logpkg "github.com/kailas-cloud/roomsearch/internal/logger"
	"github.com/kailas-cloud/roomsearch/internal/metrics"
	catalogrepo "github.com/kailas-cloud/roomsearch/internal/repository/catalog"
	openaiClient "github.com/kailas-cloud/roomsearch/internal/transport/openai"
)

func main() {
	var (
		sourcePath = flag.String("source", "", "source catalog JSON with item descriptions")
		workers    = flag.Int("workers", 4, "concurrent embedding requests")
	)
	flag.Parse()

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	if *sourcePath == "" {
		*sourcePath = cfg.Catalog.ItemsPath
	}

	metrics.RegisterEmbeddingMetrics()

	embedder := openaiClient.NewEmbedder(&openaiClient.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   cfg.Embedding.Provider,
		Logger:     logger,
	})

	if err := run(cfg, *sourcePath, *workers, embedder, logger); err != nil {
		logger.Fatal("Indexing failed", zap.Error(err))
	}
}

func run(cfg config.Config, sourcePath string, workers int, embedder *openaiClient.Embedder, logger *zap.Logger) error {
	start := time.Now()

	records, err := readSource(sourcePath)
	if err != nil {
		return err
	}
	logger.Info("Source catalog read",
		zap.String("path", sourcePath),
		zap.Int("records", len(records)),
	)

	kept := make([]catalogrepo.Record, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Description) == "" {
			logger.Warn("Skipping record without description",
				zap.String("style", rec.Style),
				zap.String("file", rec.FileName),
			)
			continue
		}
		if cfg.Catalog.AssetDir != "" {
			p := filepath.Join(cfg.Catalog.AssetDir, strings.ToLower(rec.Style), rec.FileName)
			if _, err := os.Stat(p); err != nil {
				logger.Warn("Asset missing for record", zap.String("path", p))
			}
		}
		kept = append(kept, rec)
	}
	if len(kept) == 0 {
		return fmt.Errorf("no records with descriptions in %s", sourcePath)
	}

	// Embed concurrently; vectors[i] must stay aligned with kept[i].
	vectors := make([][]float32, len(kept))
	g, ctx := errgroup.WithContext(context.Background())
	if workers <= 0 {
		workers = 4
	}
	g.SetLimit(workers)
	for i, rec := range kept {
		i, rec := i, rec
		g.Go(func() error {
			res, err := embedder.Embed(ctx, rec.Description)
			if err != nil {
				return fmt.Errorf("embed record %d (%s): %w", i, rec.FileName, err)
			}
			vectors[i] = res.Embedding
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := catalogrepo.Write(cfg.Catalog.ItemsPath, cfg.Catalog.EmbeddingsPath, kept, vectors); err != nil {
		return fmt.Errorf("write catalog pair: %w", err)
	}

	logger.Info("Catalog indexed",
		zap.Int("items", len(kept)),
		zap.Int("skipped", len(records)-len(kept)),
		zap.Int("dimensions", len(vectors[0])),
		zap.String("items_path", cfg.Catalog.ItemsPath),
		zap.String("embeddings_path", cfg.Catalog.EmbeddingsPath),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

func readSource(path string) ([]catalogrepo.Record, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read source %s: %w", path, err)
	}
	var records []catalogrepo.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse source %s: %w", path, err)
	}
	return records, nil
}
