package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/roomsearch/internal/domain"
	"github.com/kailas-cloud/roomsearch/internal/domain/search/mode"
	"github.com/kailas-cloud/roomsearch/internal/domain/search/request"
	"github.com/kailas-cloud/roomsearch/internal/domain/search/result"
	chatuc "github.com/kailas-cloud/roomsearch/internal/usecase/chat"
	healthuc "github.com/kailas-cloud/roomsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/roomsearch/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers for the search API.
type Server struct {
	search        *searchuc.Service
	chat          *chatuc.Service
	health        *healthuc.Service
	assetDir      string
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. assetDir is the root served
// under /static.
func NewServer(
	search *searchuc.Service,
	chat *chatuc.Service,
	health *healthuc.Service,
	assetDir string,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:   search,
		chat:     chat,
		health:   health,
		assetDir: assetDir,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		emptyQueryHandler,
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest),
		sentinelHandler(domain.ErrRetrievalUnavailable, http.StatusBadGateway),
		sentinelHandler(domain.ErrChatUnavailable, http.StatusBadGateway),
	}
	return s
}

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
	Mode  string `json:"mode,omitempty"`
}

type searchResultItem struct {
	Rank     int     `json:"rank"`
	Title    string  `json:"title"`
	Style    string  `json:"style"`
	AssetURL string  `json:"asset_url"`
	Score    float64 `json:"score"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// SearchImages handles POST /api/search.
func (s *Server) SearchImages(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	searchReq, err := request.New(req.Query, mode.Mode(req.Mode), req.TopK)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results, err := s.search.Search(r.Context(), &searchReq)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	// An empty list is a valid response, not an error.
	items := make([]searchResultItem, len(results))
	for i := range results {
		items[i] = resultToItem(&results[i])
	}

	writeJSON(w, http.StatusOK, items)
}

// Chat handles POST /chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	reply, err := s.chat.Reply(r.Context(), req.Message)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// StaticAssets returns the handler for GET /static/*.
func (s *Server) StaticAssets() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.Dir(s.assetDir)))
}

func resultToItem(r *result.Result) searchResultItem {
	it := r.Item()
	return searchResultItem{
		Rank:     r.Rank(),
		Title:    it.Title(),
		Style:    it.Style(),
		AssetURL: it.AssetPath(),
		Score:    r.Score(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyQuery,
		domain.ErrInvalidRequest,
		domain.ErrRetrievalUnavailable,
		domain.ErrChatUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// emptyQueryHandler handles ErrEmptyQuery with the canonical client message.
func emptyQueryHandler(w http.ResponseWriter, err error, _ string) bool {
	if !errors.Is(err, domain.ErrEmptyQuery) {
		return false
	}
	writeError(w, http.StatusBadRequest, "Empty query")
	return true
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
