package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"tripforge/internal/adapters/observability"
	"tripforge/internal/app"
	"tripforge/internal/domain"
)

type Handlers struct {
	P       *app.PlannerService
	X       domain.GuideExporter
	Limiter *rate.Limiter
	MaxDays int
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	if h.MaxDays <= 0 {
		h.MaxDays = 30
	}
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/catalog", h.getCatalog)
	if h.Limiter != nil {
		s.mux.With(RateLimit(h.Limiter)).Post("/v1/trips", h.createTrip)
	} else {
		s.mux.Post("/v1/trips", h.createTrip)
	}
	s.mux.Get("/v1/trips/{id}", h.getTrip)
	s.mux.Get("/v1/trips/{id}/guide.pdf", h.exportGuide)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// getCatalog serves the selectable options that drive the trip form:
// interest tags, the grouped guardrail catalog and budget tiers.
func (h *Handlers) getCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Interests   []domain.Category       `json:"interests"`
		Guardrails  []domain.GuardrailGroup `json:"guardrails"`
		BudgetTiers []domain.BudgetTier     `json:"budget_tiers"`
	}{
		Interests:   domain.Interests,
		Guardrails:  domain.GuardrailCatalog,
		BudgetTiers: domain.BudgetTiers,
	})
}

// createTrip validates the form inputs (the engine itself never
// rejects) and runs one full generation.
func (h *Handlers) createTrip(w http.ResponseWriter, r *http.Request) {
	var req domain.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	req.Destination = strings.TrimSpace(req.Destination)
	req.Departure = strings.TrimSpace(req.Departure)
	if req.Destination == "" || req.Departure == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "destination and departure are required")
		return
	}
	if req.Days < 1 || req.Days > h.MaxDays {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "days must be between 1 and 30")
		return
	}

	start := time.Now()
	view, err := h.P.GenerateTrip(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("destination", req.Destination).Msg("trip generation failed")
		writeProblem(w, http.StatusInternalServerError, "Generation Failed", "could not store generated trip")
		return
	}
	observability.ObserveGeneration(string(req.Budget), time.Since(start))

	writeJSON(w, http.StatusCreated, view)
}

func (h *Handlers) getTrip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := h.P.GetTrip(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "trip not found or expired")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Lookup Failed", "could not load trip")
		return
	}

	etag, body := calcETagAndBody(view)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getTrip body")
	}
}

// exportGuide renders the stored trip as a PDF. Export failure is
// recoverable: the trip data stays valid, the caller can retry.
func (h *Handlers) exportGuide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := h.P.GetTrip(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "trip not found or expired")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Lookup Failed", "could not load trip")
		return
	}

	pdf, err := h.X.Guide(view)
	if err != nil {
		observability.ObserveExport("error")
		log.Error().Err(err).Str("trip", id).Msg("guide export failed")
		writeProblem(w, http.StatusBadGateway, "Export Failed", "PDF generation failed; trip data remains available")
		return
	}
	observability.ObserveExport("ok")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+guideFilename(view.Request.Destination))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Error().Err(err).Msg("failed to write guide body")
	}
}

func guideFilename(destination string) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(destination), " ", "_"))
	if slug == "" {
		slug = "trip"
	}
	return "travel_guide_" + slug + ".pdf"
}
