// Package search implements the retrieval pipeline: parse the query into
// positive and negative clauses, embed each clause, score the catalog by
// signed cosine similarity, and produce a deterministic ranking.
package search

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/roomsearch/internal/domain"
	"github.com/kailas-cloud/roomsearch/internal/domain/query"
	"github.com/kailas-cloud/roomsearch/internal/domain/search/mode"
	"github.com/kailas-cloud/roomsearch/internal/domain/search/request"
	"github.com/kailas-cloud/roomsearch/internal/domain/search/result"
	"github.com/kailas-cloud/roomsearch/internal/logger"
	"github.com/kailas-cloud/roomsearch/internal/metrics"
)

// Config holds selection and timeout settings.
type Config struct {
	CuratedCap       int
	CuratedThreshold float64
	EmbedTimeout     time.Duration
}

// Service is the retrieval facade. Stateless per request; the catalog is
// read-only, so concurrent Search calls need no locking.
type Service struct {
	catalog          Catalog
	embed            Embedder
	curatedCap       int
	curatedThreshold float64
	embedTimeout     time.Duration
}

// New creates a search service. Zero config fields fall back to a curated
// cap of 6, a curated threshold of 0.5, and a 10s embed timeout.
func New(catalog Catalog, embed Embedder, cfg Config) *Service {
	if cfg.CuratedCap <= 0 {
		cfg.CuratedCap = 6
	}
	if cfg.CuratedThreshold <= 0 {
		cfg.CuratedThreshold = 0.5
	}
	if cfg.EmbedTimeout <= 0 {
		cfg.EmbedTimeout = 10 * time.Second
	}
	return &Service{
		catalog:          catalog,
		embed:            embed,
		curatedCap:       cfg.CuratedCap,
		curatedThreshold: cfg.CuratedThreshold,
		embedTimeout:     cfg.EmbedTimeout,
	}
}

// Search runs the full pipeline for one validated request and returns the
// ranked results, 1-indexed. An empty result list is a valid outcome, not
// an error. Embedding provider failures surface as ErrRetrievalUnavailable
// and affect this request only.
func (s *Service) Search(ctx context.Context, req *request.Request) ([]result.Result, error) {
	start := time.Now()

	parsed := query.Parse(req.Query())
	log := logger.FromContext(ctx)
	log.Debug("query parsed",
		zap.String("positive", parsed.Positive()),
		zap.String("negative", parsed.Negative()),
	)

	results, err := s.run(ctx, req, parsed)

	m := string(req.Mode())
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.SearchRequestsTotal.WithLabelValues(m, strconv.FormatBool(parsed.HasNegative()), status).Inc()
	if err != nil {
		return nil, err
	}
	metrics.SearchDuration.WithLabelValues(m).Observe(time.Since(start).Seconds())
	metrics.SearchResults.WithLabelValues(m).Observe(float64(len(results)))

	return results, nil
}

func (s *Service) run(
	ctx context.Context, req *request.Request, parsed query.Parsed,
) ([]result.Result, error) {
	var pos []float64
	if parsed.Positive() == "" {
		// Negative-only query: neutral positive scores, ranking is driven
		// entirely by the penalty term.
		pos = make([]float64, s.catalog.Len())
	} else {
		vec, err := s.embedClause(ctx, parsed.Positive())
		if err != nil {
			return nil, fmt.Errorf("positive clause: %w", err)
		}
		pos = scoreAll(vec, s.catalog.Vectors())
	}

	var neg []float64
	if parsed.HasNegative() {
		vec, err := s.embedClause(ctx, parsed.Negative())
		if err != nil {
			return nil, fmt.Errorf("negative clause: %w", err)
		}
		neg = scoreAll(vec, s.catalog.Vectors())
	}

	order := rankAll(combine(pos, neg))

	var picked []ranked
	switch req.Mode() {
	case mode.Curated:
		picked = selectCurated(order, s.curatedCap, s.curatedThreshold)
	default:
		picked = selectTopK(order, req.TopK())
	}

	results := make([]result.Result, len(picked))
	for i, p := range picked {
		results[i] = result.New(i+1, s.catalog.At(p.index), p.score)
	}
	return results, nil
}

// embedClause obtains the vector for one clause under the embed timeout.
// Any provider failure is mapped to ErrRetrievalUnavailable.
func (s *Service) embedClause(ctx context.Context, text string) ([]float32, error) {
	tctx, cancel := context.WithTimeout(ctx, s.embedTimeout)
	defer cancel()

	res, err := s.embed.Embed(tctx, text)
	if err != nil {
		logger.FromContext(ctx).Warn("embedding provider failure", zap.Error(err))
		if errors.Is(err, domain.ErrRetrievalUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrRetrievalUnavailable, err)
	}
	return res.Embedding, nil
}
