// Package handler is the thin HTTP layer over the lookup service. It
// delegates to the service without embedding engine logic so transport
// concerns stay isolated.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"consulta/internal/identifier"
	"consulta/internal/lookup"
	"consulta/internal/registry/records"
	dErrors "consulta/pkg/domain-errors"
	"consulta/pkg/platform/httputil"
)

// Service defines the engine operations the handler consumes.
type Service interface {
	Classify(text string) identifier.Classification
	Resolve(ctx context.Context, t identifier.Type, raw string) (records.Record, error)
	AutoDetect(ctx context.Context, text string) lookup.Outcome
	BulkLookup(ctx context.Context, texts []string, concurrency int) lookup.BulkResult
}

// Handler wires lookup endpoints to the lookup service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a lookup handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Register mounts all lookup endpoints on the router. Every per-type
// resolve endpoint is an idempotent read keyed by the raw identifier.
func (h *Handler) Register(r chi.Router) {
	for _, t := range []identifier.Type{
		identifier.TypeCNPJ,
		identifier.TypeCPF,
		identifier.TypeCEP,
		identifier.TypePhone,
		identifier.TypeEmail,
		identifier.TypeDomain,
		identifier.TypePlate,
	} {
		r.Get("/v1/"+string(t)+"/{id}", h.handleResolve(t))
	}
	r.Get("/v1/classify", h.handleClassify)
	r.Post("/v1/lookup", h.handleAutoDetect)
	r.Post("/v1/bulk", h.handleBulk)
}

func (h *Handler) handleResolve(t identifier.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		rec, err := h.service.Resolve(r.Context(), t, id)
		if err != nil {
			h.logger.WarnContext(r.Context(), "resolve failed",
				"type", string(t),
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, rec)
	}
}

func (h *Handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "missing q parameter"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.Classify(q))
}

type autoDetectRequest struct {
	Query string `json:"query"`
}

func (h *Handler) handleAutoDetect(w http.ResponseWriter, r *http.Request) {
	var req autoDetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "body must be {\"query\": \"...\"}"))
		return
	}

	out := h.service.AutoDetect(r.Context(), req.Query)
	status := http.StatusOK
	if out.Err != nil {
		status = dErrors.ToHTTPStatus(dErrors.CodeOf(out.Err))
	}
	httputil.WriteJSON(w, status, out)
}

type bulkRequest struct {
	Queries     []string `json:"queries"`
	Concurrency int      `json:"concurrency"`
}

const maxBulkQueries = 1000

func (h *Handler) handleBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "malformed bulk request body"))
		return
	}
	if len(req.Queries) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "queries must not be empty"))
		return
	}
	if len(req.Queries) > maxBulkQueries {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "too many queries in one batch"))
		return
	}

	result := h.service.BulkLookup(r.Context(), req.Queries, req.Concurrency)
	httputil.WriteJSON(w, http.StatusOK, result)
}
